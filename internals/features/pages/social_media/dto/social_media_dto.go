package dto

import (
	"github.com/go-playground/validator/v10"

	"azadi_backend/internals/features/pages/social_media/model"
	helper "azadi_backend/internals/helpers"
	"azadi_backend/internals/storage"
)

// An absent link is kept; null or "" removes it.
type UpsertSocialMediaRequest struct {
	helper.ServerFields
	Facebook  helper.PatchField[string] `json:"facebook"`
	Instagram helper.PatchField[string] `json:"instagram"`
	Youtube   helper.PatchField[string] `json:"youtube"`
}

func (r *UpsertSocialMediaRequest) Normalize() {
	helper.NormalizeOptionalText(&r.Facebook)
	helper.NormalizeOptionalText(&r.Instagram)
	helper.NormalizeOptionalText(&r.Youtube)
}

func (r UpsertSocialMediaRequest) ToModel() model.SocialMedia {
	m := model.SocialMedia{Facebook: r.Facebook.Value, Instagram: r.Instagram.Value, Youtube: r.Youtube.Value}
	m.ID = storage.SingletonID
	return m
}

func (r UpsertSocialMediaRequest) Columns() []string {
	return helper.UpsertColumns(nil,
		helper.Opt("facebook", r.Facebook),
		helper.Opt("instagram", r.Instagram),
		helper.Opt("youtube", r.Youtube),
	)
}

// Links are nullable; null removes one.
type PatchSocialMediaRequest struct {
	helper.ServerFields
	Facebook  helper.PatchField[string] `json:"facebook"`
	Instagram helper.PatchField[string] `json:"instagram"`
	Youtube   helper.PatchField[string] `json:"youtube"`
}

func (p *PatchSocialMediaRequest) Normalize() {
	helper.NormalizePatchText(&p.Facebook)
	helper.NormalizePatchText(&p.Instagram)
	helper.NormalizePatchText(&p.Youtube)
}

func (p *PatchSocialMediaRequest) Validate(v *validator.Validate) error {
	pc := helper.NewPatchCheck(v)
	helper.CheckPatch(pc, "facebook", p.Facebook, "", true)
	helper.CheckPatch(pc, "instagram", p.Instagram, "", true)
	helper.CheckPatch(pc, "youtube", p.Youtube, "", true)
	return pc.Err()
}

func (p *PatchSocialMediaRequest) ToUpdates() map[string]any {
	u := map[string]any{}
	helper.SetPatch(u, "facebook", p.Facebook)
	helper.SetPatch(u, "instagram", p.Instagram)
	helper.SetPatch(u, "youtube", p.Youtube)
	return u
}
