package dto

import (
	"github.com/go-playground/validator/v10"

	"azadi_backend/internals/features/home/leaders/model"
	helper "azadi_backend/internals/helpers"
)

type CreateLeaderRequest struct {
	Name       string `json:"name" validate:"required"`
	NameEn     string `json:"nameEn" validate:"required"`
	Position   string `json:"position" validate:"required"`
	PositionEn string `json:"positionEn" validate:"required"`
	Quote      string `json:"quote" validate:"required"`
	QuoteEn    string `json:"quoteEn" validate:"required"`
	Image      string `json:"image" validate:"required"`
}

func (r *CreateLeaderRequest) Normalize() {
	r.Name = helper.CleanText(r.Name)
	r.NameEn = helper.CleanText(r.NameEn)
	r.Position = helper.CleanText(r.Position)
	r.PositionEn = helper.CleanText(r.PositionEn)
	r.Quote = helper.CleanText(r.Quote)
	r.QuoteEn = helper.CleanText(r.QuoteEn)
	r.Image = helper.CleanText(r.Image)
}

func (r CreateLeaderRequest) ToModel() model.Leader {
	return model.Leader{
		Name:       r.Name,
		NameEn:     r.NameEn,
		Position:   r.Position,
		PositionEn: r.PositionEn,
		Quote:      r.Quote,
		QuoteEn:    r.QuoteEn,
		Image:      r.Image,
	}
}

type PatchLeaderRequest struct {
	helper.ServerFields
	Name       helper.PatchField[string] `json:"name"`
	NameEn     helper.PatchField[string] `json:"nameEn"`
	Position   helper.PatchField[string] `json:"position"`
	PositionEn helper.PatchField[string] `json:"positionEn"`
	Quote      helper.PatchField[string] `json:"quote"`
	QuoteEn    helper.PatchField[string] `json:"quoteEn"`
	Image      helper.PatchField[string] `json:"image"`
}

// fields pairs each JSON name with its column; every leader field is required.
func (p *PatchLeaderRequest) fields() []struct {
	name, column string
	f            *helper.PatchField[string]
} {
	return []struct {
		name, column string
		f            *helper.PatchField[string]
	}{
		{"name", "name", &p.Name},
		{"nameEn", "name_en", &p.NameEn},
		{"position", "position", &p.Position},
		{"positionEn", "position_en", &p.PositionEn},
		{"quote", "quote", &p.Quote},
		{"quoteEn", "quote_en", &p.QuoteEn},
		{"image", "image", &p.Image},
	}
}

func (p *PatchLeaderRequest) Normalize() {
	for _, x := range p.fields() {
		helper.NormalizePatchText(x.f)
	}
}

func (p *PatchLeaderRequest) Validate(v *validator.Validate) error {
	pc := helper.NewPatchCheck(v)
	for _, x := range p.fields() {
		helper.CheckPatch(pc, x.name, *x.f, "required", false)
	}
	return pc.Err()
}

func (p *PatchLeaderRequest) ToUpdates() map[string]any {
	u := map[string]any{}
	for _, x := range p.fields() {
		helper.SetPatch(u, x.column, *x.f)
	}
	return u
}
