package dto

import (
	"github.com/go-playground/validator/v10"

	"azadi_backend/internals/features/contact/messages/model"
	helper "azadi_backend/internals/helpers"
)

type CreateMessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,min=10"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func (r *CreateMessageRequest) Normalize() {
	r.Name = helper.CleanText(r.Name)
	r.Email = helper.CleanText(r.Email)
	r.Phone = helper.CleanText(r.Phone)
	r.Subject = helper.CleanText(r.Subject)
	r.Message = helper.CleanText(r.Message)
}

// ToModel: new messages are always unread.
func (r CreateMessageRequest) ToModel() model.Message {
	return model.Message{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Subject: r.Subject,
		Message: r.Message,
	}
}

type PatchMessageRequest struct {
	helper.ServerFields
	Name    helper.PatchField[string] `json:"name"`
	Email   helper.PatchField[string] `json:"email"`
	Phone   helper.PatchField[string] `json:"phone"`
	Subject helper.PatchField[string] `json:"subject"`
	Message helper.PatchField[string] `json:"message"`
	Read    helper.PatchField[bool]   `json:"read"`
}

func (p *PatchMessageRequest) Normalize() {
	helper.NormalizePatchText(&p.Name)
	helper.NormalizePatchText(&p.Email)
	helper.NormalizePatchText(&p.Phone)
	helper.NormalizePatchText(&p.Subject)
	helper.NormalizePatchText(&p.Message)
}

func (p PatchMessageRequest) Validate(v *validator.Validate) error {
	pc := helper.NewPatchCheck(v)
	helper.CheckPatch(pc, "name", p.Name, "required", false)
	helper.CheckPatch(pc, "email", p.Email, "required,email", false)
	helper.CheckPatch(pc, "phone", p.Phone, "required,min=10", false)
	helper.CheckPatch(pc, "subject", p.Subject, "required", false)
	helper.CheckPatch(pc, "message", p.Message, "required", false)
	helper.CheckPatch(pc, "read", p.Read, "", false)
	return pc.Err()
}

func (p PatchMessageRequest) ToUpdates() map[string]any {
	u := map[string]any{}
	helper.SetPatch(u, "name", p.Name)
	helper.SetPatch(u, "email", p.Email)
	helper.SetPatch(u, "phone", p.Phone)
	helper.SetPatch(u, "subject", p.Subject)
	helper.SetPatch(u, "message", p.Message)
	helper.SetPatch(u, "is_read", p.Read)
	return u
}
