package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"azadi_backend/internals/features/home/services/model"
	helper "azadi_backend/internals/helpers"
)

var iconRule = "oneof=" + strings.Join(model.Icons, " ")

type CreateServiceRequest struct {
	Title         string `json:"title" validate:"required"`
	TitleEn       string `json:"titleEn" validate:"required"`
	Description   string `json:"description" validate:"required"`
	DescriptionEn string `json:"descriptionEn" validate:"required"`
	Image         string `json:"image" validate:"required"`
	Icon          string `json:"icon" validate:"required,oneof=Book Heart Trophy Users Leaf Lightbulb"`
}

func (r *CreateServiceRequest) Normalize() {
	r.Title = helper.CleanText(r.Title)
	r.TitleEn = helper.CleanText(r.TitleEn)
	r.Description = helper.CleanText(r.Description)
	r.DescriptionEn = helper.CleanText(r.DescriptionEn)
	r.Image = helper.CleanText(r.Image)
	r.Icon = helper.CleanText(r.Icon)
}

func (r CreateServiceRequest) ToModel() model.Service {
	return model.Service{
		Title:         r.Title,
		TitleEn:       r.TitleEn,
		Description:   r.Description,
		DescriptionEn: r.DescriptionEn,
		Image:         r.Image,
		Icon:          r.Icon,
	}
}

type PatchServiceRequest struct {
	helper.ServerFields
	Title         helper.PatchField[string] `json:"title"`
	TitleEn       helper.PatchField[string] `json:"titleEn"`
	Description   helper.PatchField[string] `json:"description"`
	DescriptionEn helper.PatchField[string] `json:"descriptionEn"`
	Image         helper.PatchField[string] `json:"image"`
	Icon          helper.PatchField[string] `json:"icon"`
}

func (p *PatchServiceRequest) Normalize() {
	helper.NormalizePatchText(&p.Title)
	helper.NormalizePatchText(&p.TitleEn)
	helper.NormalizePatchText(&p.Description)
	helper.NormalizePatchText(&p.DescriptionEn)
	helper.NormalizePatchText(&p.Image)
	helper.NormalizePatchText(&p.Icon)
}

func (p PatchServiceRequest) Validate(v *validator.Validate) error {
	pc := helper.NewPatchCheck(v)
	helper.CheckPatch(pc, "title", p.Title, "required", false)
	helper.CheckPatch(pc, "titleEn", p.TitleEn, "required", false)
	helper.CheckPatch(pc, "description", p.Description, "required", false)
	helper.CheckPatch(pc, "descriptionEn", p.DescriptionEn, "required", false)
	helper.CheckPatch(pc, "image", p.Image, "required", false)
	helper.CheckPatch(pc, "icon", p.Icon, "required,"+iconRule, false)
	return pc.Err()
}

func (p PatchServiceRequest) ToUpdates() map[string]any {
	u := map[string]any{}
	helper.SetPatch(u, "title", p.Title)
	helper.SetPatch(u, "title_en", p.TitleEn)
	helper.SetPatch(u, "description", p.Description)
	helper.SetPatch(u, "description_en", p.DescriptionEn)
	helper.SetPatch(u, "image", p.Image)
	helper.SetPatch(u, "icon", p.Icon)
	return u
}
