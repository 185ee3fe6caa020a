package dto

import (
	"azadi_backend/internals/features/donations/donations/model"
	helper "azadi_backend/internals/helpers"
)

type CreateDonationRequest struct {
	Name          string  `json:"name" validate:"required"`
	Email         string  `json:"email" validate:"required,email"`
	Phone         string  `json:"phone" validate:"required,min=10"`
	Amount        int     `json:"amount" validate:"required,gte=100"`
	Message       *string `json:"message"`
	TransactionID *string `json:"transactionId"`
	Purpose       *string `json:"purpose"`
}

func (r *CreateDonationRequest) Normalize() {
	r.Name = helper.CleanText(r.Name)
	r.Email = helper.CleanText(r.Email)
	r.Phone = helper.CleanText(r.Phone)
	r.Message = helper.CleanTextPtr(r.Message)
	r.TransactionID = helper.CleanTextPtr(r.TransactionID)
	r.Purpose = helper.CleanTextPtr(r.Purpose)
}

// ToModel always starts the donation as pending.
func (r CreateDonationRequest) ToModel() model.Donation {
	return model.Donation{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Amount:        r.Amount,
		Message:       r.Message,
		TransactionID: r.TransactionID,
		Purpose:       r.Purpose,
		Status:        model.StatusPending,
	}
}

type UpdateDonationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

func (r *UpdateDonationStatusRequest) Normalize() {
	r.Status = helper.CleanText(r.Status)
}
