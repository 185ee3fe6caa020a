package dto

import (
	"azadi_backend/internals/features/contact/volunteers/model"
	helper "azadi_backend/internals/helpers"
)

type CreateVolunteerRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   string  `json:"phone" validate:"required,min=10"`
	Message *string `json:"message"`
}

func (r *CreateVolunteerRequest) Normalize() {
	r.Name = helper.CleanText(r.Name)
	r.Email = helper.CleanText(r.Email)
	r.Phone = helper.CleanText(r.Phone)
	r.Message = helper.CleanTextPtr(r.Message)
}

func (r CreateVolunteerRequest) ToModel() model.Volunteer {
	return model.Volunteer{Name: r.Name, Email: r.Email, Phone: r.Phone, Message: r.Message}
}
