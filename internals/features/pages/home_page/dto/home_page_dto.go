package dto

import (
	"github.com/go-playground/validator/v10"

	"azadi_backend/internals/features/pages/home_page/model"
	helper "azadi_backend/internals/helpers"
	"azadi_backend/internals/storage"
)

// Images and founding dates are optional: absent keeps the stored value, null or "" clears it
// (the founding dates fall back to their defaults).
type UpsertHomePageRequest struct {
	helper.ServerFields
	HeroTitle             string                    `json:"heroTitle" validate:"required"`
	HeroTitleEn           string                    `json:"heroTitleEn" validate:"required"`
	HeroDescription       string                    `json:"heroDescription" validate:"required"`
	HeroDescriptionEn     string                    `json:"heroDescriptionEn" validate:"required"`
	HeroImage             helper.PatchField[string] `json:"heroImage"`
	ServicesTitle         string                    `json:"servicesTitle" validate:"required"`
	ServicesTitleEn       string                    `json:"servicesTitleEn" validate:"required"`
	ServicesDescription   string                    `json:"servicesDescription" validate:"required"`
	ServicesDescriptionEn string                    `json:"servicesDescriptionEn" validate:"required"`
	ServicesImage         helper.PatchField[string] `json:"servicesImage"`
	EventsTitle           string                    `json:"eventsTitle" validate:"required"`
	EventsTitleEn         string                    `json:"eventsTitleEn" validate:"required"`
	EventsImage           helper.PatchField[string] `json:"eventsImage"`
	FoundedDate           helper.PatchField[string] `json:"foundedDate"`
	FoundedDateEn         helper.PatchField[string] `json:"foundedDateEn"`
}

func (r *UpsertHomePageRequest) Normalize() {
	for _, s := range []*string{
		&r.HeroTitle, &r.HeroTitleEn, &r.HeroDescription, &r.HeroDescriptionEn,
		&r.ServicesTitle, &r.ServicesTitleEn, &r.ServicesDescription, &r.ServicesDescriptionEn,
		&r.EventsTitle, &r.EventsTitleEn,
	} {
		*s = helper.CleanText(*s)
	}
	for _, f := range []*helper.PatchField[string]{
		&r.HeroImage, &r.ServicesImage, &r.EventsImage, &r.FoundedDate, &r.FoundedDateEn,
	} {
		helper.NormalizeOptionalText(f)
	}
}

func (r UpsertHomePageRequest) ToModel() model.HomePage {
	m := model.HomePage{
		HeroTitle:             r.HeroTitle,
		HeroTitleEn:           r.HeroTitleEn,
		HeroDescription:       r.HeroDescription,
		HeroDescriptionEn:     r.HeroDescriptionEn,
		HeroImage:             r.HeroImage.Value,
		ServicesTitle:         r.ServicesTitle,
		ServicesTitleEn:       r.ServicesTitleEn,
		ServicesDescription:   r.ServicesDescription,
		ServicesDescriptionEn: r.ServicesDescriptionEn,
		ServicesImage:         r.ServicesImage.Value,
		EventsTitle:           r.EventsTitle,
		EventsTitleEn:         r.EventsTitleEn,
		EventsImage:           r.EventsImage.Value,
		FoundedDate:           helper.OrDefault(r.FoundedDate.Value, model.DefaultFoundedDate),
		FoundedDateEn:         helper.OrDefault(r.FoundedDateEn.Value, model.DefaultFoundedDateEn),
	}
	m.ID = storage.SingletonID
	return m
}

func (r UpsertHomePageRequest) Columns() []string {
	return helper.UpsertColumns(
		[]string{
			"hero_title", "hero_title_en", "hero_description", "hero_description_en",
			"services_title", "services_title_en", "services_description", "services_description_en",
			"events_title", "events_title_en",
		},
		helper.Opt("hero_image", r.HeroImage),
		helper.Opt("services_image", r.ServicesImage),
		helper.Opt("events_image", r.EventsImage),
		helper.Opt("founded_date", r.FoundedDate),
		helper.Opt("founded_date_en", r.FoundedDateEn),
	)
}

type PatchHomePageRequest struct {
	helper.ServerFields
	HeroTitle             helper.PatchField[string] `json:"heroTitle"`
	HeroTitleEn           helper.PatchField[string] `json:"heroTitleEn"`
	HeroDescription       helper.PatchField[string] `json:"heroDescription"`
	HeroDescriptionEn     helper.PatchField[string] `json:"heroDescriptionEn"`
	HeroImage             helper.PatchField[string] `json:"heroImage"`
	ServicesTitle         helper.PatchField[string] `json:"servicesTitle"`
	ServicesTitleEn       helper.PatchField[string] `json:"servicesTitleEn"`
	ServicesDescription   helper.PatchField[string] `json:"servicesDescription"`
	ServicesDescriptionEn helper.PatchField[string] `json:"servicesDescriptionEn"`
	ServicesImage         helper.PatchField[string] `json:"servicesImage"`
	EventsTitle           helper.PatchField[string] `json:"eventsTitle"`
	EventsTitleEn         helper.PatchField[string] `json:"eventsTitleEn"`
	EventsImage           helper.PatchField[string] `json:"eventsImage"`
	FoundedDate           helper.PatchField[string] `json:"foundedDate"`
	FoundedDateEn         helper.PatchField[string] `json:"foundedDateEn"`
}

type patchColumn struct {
	name, column string
	image        bool
	f            *helper.PatchField[string]
}

func (p *PatchHomePageRequest) columns() []patchColumn {
	return []patchColumn{
		{"heroTitle", "hero_title", false, &p.HeroTitle},
		{"heroTitleEn", "hero_title_en", false, &p.HeroTitleEn},
		{"heroDescription", "hero_description", false, &p.HeroDescription},
		{"heroDescriptionEn", "hero_description_en", false, &p.HeroDescriptionEn},
		{"heroImage", "hero_image", true, &p.HeroImage},
		{"servicesTitle", "services_title", false, &p.ServicesTitle},
		{"servicesTitleEn", "services_title_en", false, &p.ServicesTitleEn},
		{"servicesDescription", "services_description", false, &p.ServicesDescription},
		{"servicesDescriptionEn", "services_description_en", false, &p.ServicesDescriptionEn},
		{"servicesImage", "services_image", true, &p.ServicesImage},
		{"eventsTitle", "events_title", false, &p.EventsTitle},
		{"eventsTitleEn", "events_title_en", false, &p.EventsTitleEn},
		{"eventsImage", "events_image", true, &p.EventsImage},
		{"foundedDate", "founded_date", false, &p.FoundedDate},
		{"foundedDateEn", "founded_date_en", false, &p.FoundedDateEn},
	}
}

func (p *PatchHomePageRequest) Normalize() {
	for _, c := range p.columns() {
		helper.NormalizePatchText(c.f)
	}
}

// Images may be cleared with null; text columns must stay non-empty.
func (p *PatchHomePageRequest) Validate(v *validator.Validate) error {
	pc := helper.NewPatchCheck(v)
	for _, c := range p.columns() {
		if c.image {
			helper.CheckPatch(pc, c.name, *c.f, "", true)
			continue
		}
		helper.CheckPatch(pc, c.name, *c.f, "required", false)
	}
	return pc.Err()
}

func (p *PatchHomePageRequest) ToUpdates() map[string]any {
	u := map[string]any{}
	for _, c := range p.columns() {
		helper.SetPatch(u, c.column, *c.f)
	}
	return u
}
