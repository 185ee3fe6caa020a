package dto

import (
	"github.com/go-playground/validator/v10"

	"azadi_backend/internals/features/donations/payment_methods/model"
	helper "azadi_backend/internals/helpers"
)

type CreatePaymentMethodRequest struct {
	Name          string  `json:"name" validate:"required"`
	NameEn        string  `json:"nameEn" validate:"required"`
	Phone         string  `json:"phone" validate:"required"`
	Description   *string `json:"description"`
	DescriptionEn *string `json:"descriptionEn"`
	Order         int     `json:"order" validate:"gte=0"`
	Active        *bool   `json:"active"`
}

func (r *CreatePaymentMethodRequest) Normalize() {
	r.Name = helper.CleanText(r.Name)
	r.NameEn = helper.CleanText(r.NameEn)
	r.Phone = helper.CleanText(r.Phone)
	r.Description = helper.CleanTextPtr(r.Description)
	r.DescriptionEn = helper.CleanTextPtr(r.DescriptionEn)
}

func (r CreatePaymentMethodRequest) ToModel() model.PaymentMethod {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return model.PaymentMethod{
		Name:          r.Name,
		NameEn:        r.NameEn,
		Phone:         r.Phone,
		Description:   r.Description,
		DescriptionEn: r.DescriptionEn,
		Order:         r.Order,
		Active:        active,
	}
}

type PatchPaymentMethodRequest struct {
	helper.ServerFields
	Name          helper.PatchField[string] `json:"name"`
	NameEn        helper.PatchField[string] `json:"nameEn"`
	Phone         helper.PatchField[string] `json:"phone"`
	Description   helper.PatchField[string] `json:"description"`
	DescriptionEn helper.PatchField[string] `json:"descriptionEn"`
	Order         helper.PatchField[int]    `json:"order"`
	Active        helper.PatchField[bool]   `json:"active"`
}

func (p *PatchPaymentMethodRequest) Normalize() {
	helper.NormalizePatchText(&p.Name)
	helper.NormalizePatchText(&p.NameEn)
	helper.NormalizePatchText(&p.Phone)
	helper.NormalizePatchText(&p.Description)
	helper.NormalizePatchText(&p.DescriptionEn)
}

func (p PatchPaymentMethodRequest) Validate(v *validator.Validate) error {
	pc := helper.NewPatchCheck(v)
	helper.CheckPatch(pc, "name", p.Name, "required", false)
	helper.CheckPatch(pc, "nameEn", p.NameEn, "required", false)
	helper.CheckPatch(pc, "phone", p.Phone, "required", false)
	helper.CheckPatch(pc, "description", p.Description, "", true)
	helper.CheckPatch(pc, "descriptionEn", p.DescriptionEn, "", true)
	helper.CheckPatch(pc, "order", p.Order, "gte=0", false)
	helper.CheckPatch(pc, "active", p.Active, "", false)
	return pc.Err()
}

func (p PatchPaymentMethodRequest) ToUpdates() map[string]any {
	u := map[string]any{}
	helper.SetPatch(u, "name", p.Name)
	helper.SetPatch(u, "name_en", p.NameEn)
	helper.SetPatch(u, "phone", p.Phone)
	helper.SetPatch(u, "description", p.Description)
	helper.SetPatch(u, "description_en", p.DescriptionEn)
	helper.SetPatch(u, "display_order", p.Order)
	helper.SetPatch(u, "active", p.Active)
	return u
}
