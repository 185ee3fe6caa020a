package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azadi_backend/internals/features/donations/donations/dto"
	"azadi_backend/internals/features/donations/donations/model"
	"azadi_backend/internals/features/donations/donations/repository"
	helper "azadi_backend/internals/helpers"
)

const entity = "donation"

type DonationController struct {
	Repo     *repository.DonationRepository
	Validate *validator.Validate
}

func NewDonationController(db *gorm.DB) *DonationController {
	return &DonationController{
		Repo:     repository.NewDonationRepository(db),
		Validate: helper.NewValidator(),
	}
}

// GET /api/donations
func (ctrl *DonationController) List(c *fiber.Ctx) error {
	return helper.RespondList[model.Donation](c, ctrl.Repo)
}

// GET /api/donations/approved (bare array)
func (ctrl *DonationController) ListApproved(c *fiber.Ctx) error {
	rows, err := ctrl.Repo.ListApproved(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, rows)
}

// GET /api/donations/:id
func (ctrl *DonationController) Get(c *fiber.Ctx) error {
	row, err := ctrl.Repo.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.StorageError(err, entity)
	}
	return helper.JsonOK(c, row)
}

// POST /api/donations
func (ctrl *DonationController) Create(c *fiber.Ctx) error {
	var body dto.CreateDonationRequest
	if err := helper.Decode(c, &body); err != nil {
		return err
	}
	body.Normalize()
	if err := helper.ValidateStruct(ctrl.Validate, &body); err != nil {
		return err
	}

	row := body.ToModel()
	if err := ctrl.Repo.Create(c.UserContext(), &row); err != nil {
		return helper.StorageError(err, entity)
	}
	return helper.JsonOK(c, row)
}

// PATCH /api/donations/:id/status
func (ctrl *DonationController) UpdateStatus(c *fiber.Ctx) error {
	var body dto.UpdateDonationStatusRequest
	if err := helper.DecodeStrict(c, &body); err != nil {
		return err
	}
	body.Normalize()
	if err := helper.ValidateStruct(ctrl.Validate, &body); err != nil {
		return err
	}

	row, err := ctrl.Repo.SetStatus(c.UserContext(), c.Params("id"), body.Status)
	if err != nil {
		return helper.StorageError(err, entity)
	}
	return helper.JsonOK(c, row)
}

// DELETE /api/donations/:id
func (ctrl *DonationController) Delete(c *fiber.Ctx) error {
	if err := ctrl.Repo.Delete(c.UserContext(), c.Params("id")); err != nil {
		return helper.StorageError(err, entity)
	}
	return helper.JsonDeleted(c)
}
