package dto

import (
	"azadi_backend/internals/features/events/event_registrations/model"
	helper "azadi_backend/internals/helpers"
)

type CreateEventRegistrationRequest struct {
	EventID  string  `json:"eventId" validate:"required"`
	MemberID *string `json:"memberId"`
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Phone    string  `json:"phone" validate:"required,min=10"`
}

func (r *CreateEventRegistrationRequest) Normalize() {
	r.EventID = helper.CleanText(r.EventID)
	r.MemberID = helper.CleanTextPtr(r.MemberID)
	r.Name = helper.CleanText(r.Name)
	r.Email = helper.CleanText(r.Email)
	r.Phone = helper.CleanText(r.Phone)
}

func (r CreateEventRegistrationRequest) ToModel() model.EventRegistration {
	return model.EventRegistration{
		EventID:  r.EventID,
		MemberID: r.MemberID,
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Status:   model.StatusRegistered,
	}
}
