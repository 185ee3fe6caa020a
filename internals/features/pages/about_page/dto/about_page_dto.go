package dto

import (
	"github.com/go-playground/validator/v10"

	"azadi_backend/internals/features/pages/about_page/model"
	helper "azadi_backend/internals/helpers"
	"azadi_backend/internals/storage"
)

/* =========================
   Upsert (POST)
   ========================= */

// Optional keys: absent keeps the stored value, null or "" clears it
// (counts and office hours fall back to their defaults).
type UpsertAboutPageRequest struct {
	helper.ServerFields
	HistoryP1     string                    `json:"historyP1" validate:"required"`
	HistoryP1En   string                    `json:"historyP1En" validate:"required"`
	HistoryP2     string                    `json:"historyP2" validate:"required"`
	HistoryP2En   string                    `json:"historyP2En" validate:"required"`
	HistoryP3     string                    `json:"historyP3" validate:"required"`
	HistoryP3En   string                    `json:"historyP3En" validate:"required"`
	Image         helper.PatchField[string] `json:"image"`
	StudentsCount helper.PatchField[string] `json:"studentsCount"`
	EventsCount   helper.PatchField[string] `json:"eventsCount"`
	YearsCount    helper.PatchField[string] `json:"yearsCount"`
	OfficeHours   helper.PatchField[string] `json:"officeHours"`
	OfficeHoursEn helper.PatchField[string] `json:"officeHoursEn"`
}

func (r *UpsertAboutPageRequest) Normalize() {
	r.HistoryP1 = helper.CleanText(r.HistoryP1)
	r.HistoryP1En = helper.CleanText(r.HistoryP1En)
	r.HistoryP2 = helper.CleanText(r.HistoryP2)
	r.HistoryP2En = helper.CleanText(r.HistoryP2En)
	r.HistoryP3 = helper.CleanText(r.HistoryP3)
	r.HistoryP3En = helper.CleanText(r.HistoryP3En)
	for _, f := range []*helper.PatchField[string]{
		&r.Image, &r.StudentsCount, &r.EventsCount, &r.YearsCount, &r.OfficeHours, &r.OfficeHoursEn,
	} {
		helper.NormalizeOptionalText(f)
	}
}

func (r UpsertAboutPageRequest) ToModel() model.AboutPage {
	m := model.AboutPage{
		HistoryP1:     r.HistoryP1,
		HistoryP1En:   r.HistoryP1En,
		HistoryP2:     r.HistoryP2,
		HistoryP2En:   r.HistoryP2En,
		HistoryP3:     r.HistoryP3,
		HistoryP3En:   r.HistoryP3En,
		Image:         r.Image.Value,
		StudentsCount: helper.OrDefault(r.StudentsCount.Value, model.DefaultStudentsCount),
		EventsCount:   helper.OrDefault(r.EventsCount.Value, model.DefaultEventsCount),
		YearsCount:    helper.OrDefault(r.YearsCount.Value, model.DefaultYearsCount),
		OfficeHours:   helper.OrDefault(r.OfficeHours.Value, model.DefaultOfficeHours),
		OfficeHoursEn: helper.OrDefault(r.OfficeHoursEn.Value, model.DefaultOfficeHoursEn),
	}
	m.ID = storage.SingletonID
	return m
}

// Columns is what an existing row gets overwritten with.
func (r UpsertAboutPageRequest) Columns() []string {
	return helper.UpsertColumns(
		[]string{"history_p1", "history_p1_en", "history_p2", "history_p2_en", "history_p3", "history_p3_en"},
		helper.Opt("image", r.Image),
		helper.Opt("students_count", r.StudentsCount),
		helper.Opt("events_count", r.EventsCount),
		helper.Opt("years_count", r.YearsCount),
		helper.Opt("office_hours", r.OfficeHours),
		helper.Opt("office_hours_en", r.OfficeHoursEn),
	)
}

/* =========================
   Patch
   ========================= */

type PatchAboutPageRequest struct {
	helper.ServerFields
	HistoryP1     helper.PatchField[string] `json:"historyP1"`
	HistoryP1En   helper.PatchField[string] `json:"historyP1En"`
	HistoryP2     helper.PatchField[string] `json:"historyP2"`
	HistoryP2En   helper.PatchField[string] `json:"historyP2En"`
	HistoryP3     helper.PatchField[string] `json:"historyP3"`
	HistoryP3En   helper.PatchField[string] `json:"historyP3En"`
	Image         helper.PatchField[string] `json:"image"`
	StudentsCount helper.PatchField[string] `json:"studentsCount"`
	EventsCount   helper.PatchField[string] `json:"eventsCount"`
	YearsCount    helper.PatchField[string] `json:"yearsCount"`
	OfficeHours   helper.PatchField[string] `json:"officeHours"`
	OfficeHoursEn helper.PatchField[string] `json:"officeHoursEn"`
}

type patchColumn struct {
	name, column string
	nullable     bool
	f            *helper.PatchField[string]
}

func (p *PatchAboutPageRequest) columns() []patchColumn {
	return []patchColumn{
		{"historyP1", "history_p1", false, &p.HistoryP1},
		{"historyP1En", "history_p1_en", false, &p.HistoryP1En},
		{"historyP2", "history_p2", false, &p.HistoryP2},
		{"historyP2En", "history_p2_en", false, &p.HistoryP2En},
		{"historyP3", "history_p3", false, &p.HistoryP3},
		{"historyP3En", "history_p3_en", false, &p.HistoryP3En},
		{"image", "image", true, &p.Image},
		{"studentsCount", "students_count", false, &p.StudentsCount},
		{"eventsCount", "events_count", false, &p.EventsCount},
		{"yearsCount", "years_count", false, &p.YearsCount},
		{"officeHours", "office_hours", false, &p.OfficeHours},
		{"officeHoursEn", "office_hours_en", false, &p.OfficeHoursEn},
	}
}

func (p *PatchAboutPageRequest) Normalize() {
	for _, c := range p.columns() {
		helper.NormalizePatchText(c.f)
	}
}

func (p *PatchAboutPageRequest) Validate(v *validator.Validate) error {
	pc := helper.NewPatchCheck(v)
	for _, c := range p.columns() {
		tag := "required"
		if c.nullable {
			tag = ""
		}
		helper.CheckPatch(pc, c.name, *c.f, tag, c.nullable)
	}
	return pc.Err()
}

func (p *PatchAboutPageRequest) ToUpdates() map[string]any {
	u := map[string]any{}
	for _, c := range p.columns() {
		helper.SetPatch(u, c.column, *c.f)
	}
	return u
}
