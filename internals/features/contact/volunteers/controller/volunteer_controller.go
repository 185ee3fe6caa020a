package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azadi_backend/internals/features/contact/volunteers/dto"
	"azadi_backend/internals/features/contact/volunteers/model"
	"azadi_backend/internals/features/contact/volunteers/repository"
	helper "azadi_backend/internals/helpers"
	"azadi_backend/internals/storage"
)

type VolunteerController struct {
	Repo     storage.CRUD[model.Volunteer]
	Validate *validator.Validate
}

func NewVolunteerController(db *gorm.DB) *VolunteerController {
	return &VolunteerController{Repo: repository.NewVolunteerRepository(db), Validate: helper.NewValidator()}
}

func (ctrl *VolunteerController) List(c *fiber.Ctx) error {
	return helper.RespondList(c, ctrl.Repo)
}

func (ctrl *VolunteerController) Create(c *fiber.Ctx) error {
	var body dto.CreateVolunteerRequest
	if err := helper.Decode(c, &body); err != nil {
		return err
	}
	body.Normalize()
	if err := helper.ValidateStruct(ctrl.Validate, &body); err != nil {
		return err
	}
	row := body.ToModel()
	if err := ctrl.Repo.Create(c.UserContext(), &row); err != nil {
		return helper.StorageError(err, "volunteer")
	}
	return helper.JsonOK(c, row)
}

func (ctrl *VolunteerController) Delete(c *fiber.Ctx) error {
	if err := ctrl.Repo.Delete(c.UserContext(), c.Params("id")); err != nil {
		return helper.StorageError(err, "volunteer")
	}
	return helper.JsonDeleted(c)
}
