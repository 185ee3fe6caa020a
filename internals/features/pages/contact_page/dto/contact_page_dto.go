package dto

import (
	"github.com/go-playground/validator/v10"

	"azadi_backend/internals/features/pages/contact_page/model"
	helper "azadi_backend/internals/helpers"
	"azadi_backend/internals/storage"
)

// Every field is optional on upsert; a fresh row, null or "" falls back to the office defaults.
type UpsertContactPageRequest struct {
	helper.ServerFields
	SundayThursdayBn helper.PatchField[string] `json:"sundayThursdayBn"`
	SundayThursdayEn helper.PatchField[string] `json:"sundayThursdayEn"`
	FridayBn         helper.PatchField[string] `json:"fridayBn"`
	FridayEn         helper.PatchField[string] `json:"fridayEn"`
	SaturdayBn       helper.PatchField[string] `json:"saturdayBn"`
	SaturdayEn       helper.PatchField[string] `json:"saturdayEn"`
}

func (r *UpsertContactPageRequest) Normalize() {
	for _, f := range []*helper.PatchField[string]{
		&r.SundayThursdayBn, &r.SundayThursdayEn, &r.FridayBn,
		&r.FridayEn, &r.SaturdayBn, &r.SaturdayEn,
	} {
		helper.NormalizeOptionalText(f)
	}
}

func (r UpsertContactPageRequest) ToModel() model.ContactPage {
	m := model.ContactPage{
		SundayThursdayBn: helper.OrDefault(r.SundayThursdayBn.Value, model.DefaultSundayThursdayBn),
		SundayThursdayEn: helper.OrDefault(r.SundayThursdayEn.Value, model.DefaultSundayThursdayEn),
		FridayBn:         helper.OrDefault(r.FridayBn.Value, model.DefaultFridayBn),
		FridayEn:         helper.OrDefault(r.FridayEn.Value, model.DefaultFridayEn),
		SaturdayBn:       helper.OrDefault(r.SaturdayBn.Value, model.DefaultSaturdayBn),
		SaturdayEn:       helper.OrDefault(r.SaturdayEn.Value, model.DefaultSaturdayEn),
	}
	m.ID = storage.SingletonID
	return m
}

func (r UpsertContactPageRequest) Columns() []string {
	return helper.UpsertColumns(nil,
		helper.Opt("sunday_thursday_bn", r.SundayThursdayBn),
		helper.Opt("sunday_thursday_en", r.SundayThursdayEn),
		helper.Opt("friday_bn", r.FridayBn),
		helper.Opt("friday_en", r.FridayEn),
		helper.Opt("saturday_bn", r.SaturdayBn),
		helper.Opt("saturday_en", r.SaturdayEn),
	)
}

type PatchContactPageRequest struct {
	helper.ServerFields
	SundayThursdayBn helper.PatchField[string] `json:"sundayThursdayBn"`
	SundayThursdayEn helper.PatchField[string] `json:"sundayThursdayEn"`
	FridayBn         helper.PatchField[string] `json:"fridayBn"`
	FridayEn         helper.PatchField[string] `json:"fridayEn"`
	SaturdayBn       helper.PatchField[string] `json:"saturdayBn"`
	SaturdayEn       helper.PatchField[string] `json:"saturdayEn"`
}

func (p *PatchContactPageRequest) fields() map[string]*helper.PatchField[string] {
	return map[string]*helper.PatchField[string]{
		"sundayThursdayBn": &p.SundayThursdayBn,
		"sundayThursdayEn": &p.SundayThursdayEn,
		"fridayBn":         &p.FridayBn,
		"fridayEn":         &p.FridayEn,
		"saturdayBn":       &p.SaturdayBn,
		"saturdayEn":       &p.SaturdayEn,
	}
}

var columnOf = map[string]string{
	"sundayThursdayBn": "sunday_thursday_bn",
	"sundayThursdayEn": "sunday_thursday_en",
	"fridayBn":         "friday_bn",
	"fridayEn":         "friday_en",
	"saturdayBn":       "saturday_bn",
	"saturdayEn":       "saturday_en",
}

func (p *PatchContactPageRequest) Normalize() {
	for _, f := range p.fields() {
		helper.NormalizePatchText(f)
	}
}

func (p *PatchContactPageRequest) Validate(v *validator.Validate) error {
	pc := helper.NewPatchCheck(v)
	for name, f := range p.fields() {
		helper.CheckPatch(pc, name, *f, "required", false)
	}
	return pc.Err()
}

func (p *PatchContactPageRequest) ToUpdates() map[string]any {
	u := map[string]any{}
	for name, f := range p.fields() {
		helper.SetPatch(u, columnOf[name], *f)
	}
	return u
}
