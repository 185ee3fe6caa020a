package dto

import (
	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"

	"azadi_backend/internals/features/home/gallery/model"
	helper "azadi_backend/internals/helpers"
)

type CreateGalleryItemRequest struct {
	Title            string            `json:"title" validate:"required"`
	TitleEn          string            `json:"titleEn" validate:"required"`
	Description      *string           `json:"description"`
	DescriptionEn    *string           `json:"descriptionEn"`
	Image            string            `json:"image" validate:"required"`
	AdditionalImages helper.StringList `json:"additionalImages" validate:"max=3"`
	Type             string            `json:"type" validate:"omitempty,oneof=photo video"`
	VideoURL         *string           `json:"videoUrl" validate:"omitempty,url"`
	Order            int               `json:"order" validate:"gte=0"`
}

func (r *CreateGalleryItemRequest) Normalize() {
	r.Title = helper.CleanText(r.Title)
	r.TitleEn = helper.CleanText(r.TitleEn)
	r.Description = helper.CleanTextPtr(r.Description)
	r.DescriptionEn = helper.CleanTextPtr(r.DescriptionEn)
	r.Image = helper.CleanText(r.Image)
	r.AdditionalImages = r.AdditionalImages.Clean()
	r.Type = helper.CleanText(r.Type)
	if r.Type == "" {
		r.Type = model.TypePhoto
	}
	r.VideoURL = helper.CleanTextPtr(r.VideoURL)
}

func (r CreateGalleryItemRequest) ToModel() model.GalleryItem {
	return model.GalleryItem{
		Title:            r.Title,
		TitleEn:          r.TitleEn,
		Description:      r.Description,
		DescriptionEn:    r.DescriptionEn,
		Image:            r.Image,
		AdditionalImages: datatypes.JSONSlice[string](r.AdditionalImages.Clean()),
		Type:             r.Type,
		VideoURL:         r.VideoURL,
		Order:            r.Order,
	}
}

type PatchGalleryItemRequest struct {
	helper.ServerFields
	Title            helper.PatchField[string]            `json:"title"`
	TitleEn          helper.PatchField[string]            `json:"titleEn"`
	Description      helper.PatchField[string]            `json:"description"`
	DescriptionEn    helper.PatchField[string]            `json:"descriptionEn"`
	Image            helper.PatchField[string]            `json:"image"`
	AdditionalImages helper.PatchField[helper.StringList] `json:"additionalImages"`
	Type             helper.PatchField[string]            `json:"type"`
	VideoURL         helper.PatchField[string]            `json:"videoUrl"`
	Order            helper.PatchField[int]               `json:"order"`
}

func (p *PatchGalleryItemRequest) Normalize() {
	helper.NormalizePatchText(&p.Title)
	helper.NormalizePatchText(&p.TitleEn)
	helper.NormalizePatchText(&p.Description)
	helper.NormalizePatchText(&p.DescriptionEn)
	helper.NormalizePatchText(&p.Image)
	helper.NormalizePatchText(&p.Type)
	helper.NormalizePatchText(&p.VideoURL)
	if p.AdditionalImages.Value != nil {
		cleaned := helper.StringList(p.AdditionalImages.Value.Clean())
		p.AdditionalImages.Value = &cleaned
	}
}

func (p PatchGalleryItemRequest) Validate(v *validator.Validate) error {
	pc := helper.NewPatchCheck(v)
	helper.CheckPatch(pc, "title", p.Title, "required", false)
	helper.CheckPatch(pc, "titleEn", p.TitleEn, "required", false)
	helper.CheckPatch(pc, "description", p.Description, "", true)
	helper.CheckPatch(pc, "descriptionEn", p.DescriptionEn, "", true)
	helper.CheckPatch(pc, "image", p.Image, "required", false)
	helper.CheckPatch(pc, "additionalImages", p.AdditionalImages, "max=3", false)
	helper.CheckPatch(pc, "type", p.Type, "required,oneof=photo video", false)
	helper.CheckPatch(pc, "videoUrl", p.VideoURL, "omitempty,url", true)
	helper.CheckPatch(pc, "order", p.Order, "gte=0", false)
	return pc.Err()
}

func (p PatchGalleryItemRequest) ToUpdates() map[string]any {
	u := map[string]any{}
	helper.SetPatch(u, "title", p.Title)
	helper.SetPatch(u, "title_en", p.TitleEn)
	helper.SetPatch(u, "description", p.Description)
	helper.SetPatch(u, "description_en", p.DescriptionEn)
	helper.SetPatch(u, "image", p.Image)
	helper.SetPatch(u, "item_type", p.Type)
	helper.SetPatch(u, "video_url", p.VideoURL)
	helper.SetPatch(u, "display_order", p.Order)
	if p.AdditionalImages.Present && p.AdditionalImages.Value != nil {
		u["additional_images"] = datatypes.JSONSlice[string](*p.AdditionalImages.Value)
	}
	return u
}
