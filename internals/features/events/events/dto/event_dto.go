package dto

import (
	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"

	"azadi_backend/internals/features/events/events/model"
	helper "azadi_backend/internals/helpers"
	"azadi_backend/internals/helpers/dbtime"
)

const maxAdditionalImages = "max=3"

/* =========================
   Create
   ========================= */

type CreateEventRequest struct {
	Title            string            `json:"title" validate:"required"`
	TitleEn          string            `json:"titleEn" validate:"required"`
	Description      string            `json:"description" validate:"required"`
	DescriptionEn    string            `json:"descriptionEn" validate:"required"`
	Date             dbtime.FlexTime   `json:"date" validate:"required"`
	Location         string            `json:"location" validate:"required"`
	LocationEn       string            `json:"locationEn" validate:"required"`
	Image            string            `json:"image" validate:"required"`
	AdditionalImages helper.StringList `json:"additionalImages" validate:"max=3"`
}

func (r *CreateEventRequest) Normalize() {
	r.Title = helper.CleanText(r.Title)
	r.TitleEn = helper.CleanText(r.TitleEn)
	r.Description = helper.CleanText(r.Description)
	r.DescriptionEn = helper.CleanText(r.DescriptionEn)
	r.Location = helper.CleanText(r.Location)
	r.LocationEn = helper.CleanText(r.LocationEn)
	r.Image = helper.CleanText(r.Image)
	r.AdditionalImages = r.AdditionalImages.Clean()
}

func (r CreateEventRequest) ToModel() model.Event {
	return model.Event{
		Title:            r.Title,
		TitleEn:          r.TitleEn,
		Description:      r.Description,
		DescriptionEn:    r.DescriptionEn,
		Date:             r.Date.UTC(),
		Location:         r.Location,
		LocationEn:       r.LocationEn,
		Image:            r.Image,
		AdditionalImages: datatypes.JSONSlice[string](r.AdditionalImages.Clean()),
	}
}

/* =========================
   Patch
   ========================= */

type PatchEventRequest struct {
	helper.ServerFields
	Title            helper.PatchField[string]            `json:"title"`
	TitleEn          helper.PatchField[string]            `json:"titleEn"`
	Description      helper.PatchField[string]            `json:"description"`
	DescriptionEn    helper.PatchField[string]            `json:"descriptionEn"`
	Date             helper.PatchField[dbtime.FlexTime]   `json:"date"`
	Location         helper.PatchField[string]            `json:"location"`
	LocationEn       helper.PatchField[string]            `json:"locationEn"`
	Image            helper.PatchField[string]            `json:"image"`
	AdditionalImages helper.PatchField[helper.StringList] `json:"additionalImages"`
}

func (p *PatchEventRequest) Normalize() {
	for _, f := range []*helper.PatchField[string]{
		&p.Title, &p.TitleEn, &p.Description, &p.DescriptionEn,
		&p.Location, &p.LocationEn, &p.Image,
	} {
		helper.NormalizePatchText(f)
	}
	if p.AdditionalImages.Value != nil {
		cleaned := helper.StringList(p.AdditionalImages.Value.Clean())
		p.AdditionalImages.Value = &cleaned
	}
}

func (p PatchEventRequest) Validate(v *validator.Validate) error {
	pc := helper.NewPatchCheck(v)
	helper.CheckPatch(pc, "title", p.Title, "required", false)
	helper.CheckPatch(pc, "titleEn", p.TitleEn, "required", false)
	helper.CheckPatch(pc, "description", p.Description, "required", false)
	helper.CheckPatch(pc, "descriptionEn", p.DescriptionEn, "required", false)
	helper.CheckPatch(pc, "date", p.Date, "", false)
	if p.Date.Value != nil && p.Date.Value.IsZero() {
		pc.Fail("date", "required")
	}
	helper.CheckPatch(pc, "location", p.Location, "required", false)
	helper.CheckPatch(pc, "locationEn", p.LocationEn, "required", false)
	helper.CheckPatch(pc, "image", p.Image, "required", false)
	helper.CheckPatch(pc, "additionalImages", p.AdditionalImages, maxAdditionalImages, false)
	return pc.Err()
}

func (p PatchEventRequest) ToUpdates() map[string]any {
	u := map[string]any{}
	helper.SetPatch(u, "title", p.Title)
	helper.SetPatch(u, "title_en", p.TitleEn)
	helper.SetPatch(u, "description", p.Description)
	helper.SetPatch(u, "description_en", p.DescriptionEn)
	helper.SetPatch(u, "location", p.Location)
	helper.SetPatch(u, "location_en", p.LocationEn)
	helper.SetPatch(u, "image", p.Image)
	if p.Date.Present && p.Date.Value != nil {
		u["event_date"] = p.Date.Value.UTC()
	}
	if p.AdditionalImages.Present && p.AdditionalImages.Value != nil {
		u["additional_images"] = datatypes.JSONSlice[string](*p.AdditionalImages.Value)
	}
	return u
}
