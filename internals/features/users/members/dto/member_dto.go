package dto

import (
	"strings"

	"azadi_backend/internals/features/users/members/model"
	helper "azadi_backend/internals/helpers"
)

type RegisterMemberRequest struct {
	Username string  `json:"username" validate:"required,min=3"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	FullName string  `json:"fullName" validate:"required,min=2"`
	Phone    *string `json:"phone"`
	Division *string `json:"division"`
	District *string `json:"district"`
}

// Normalize leaves the password untouched.
func (r *RegisterMemberRequest) Normalize() {
	r.Username = helper.CleanText(r.Username)
	r.Email = strings.ToLower(helper.CleanText(r.Email))
	r.FullName = helper.CleanText(r.FullName)
	r.Phone = helper.CleanTextPtr(r.Phone)
	r.Division = helper.CleanTextPtr(r.Division)
	r.District = helper.CleanTextPtr(r.District)
}

func (r RegisterMemberRequest) ToModel(passwordHash string) model.Member {
	return model.Member{
		Username: r.Username,
		Email:    r.Email,
		Password: passwordHash,
		FullName: r.FullName,
		Phone:    r.Phone,
		Division: r.Division,
		District: r.District,
	}
}

type LoginMemberRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
