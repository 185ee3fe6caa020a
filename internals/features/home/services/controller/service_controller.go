package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azadi_backend/internals/features/home/services/dto"
	"azadi_backend/internals/features/home/services/model"
	"azadi_backend/internals/features/home/services/repository"
	helper "azadi_backend/internals/helpers"
	"azadi_backend/internals/storage"
)

const entity = "service"

type ServiceController struct {
	Repo     storage.CRUD[model.Service]
	Validate *validator.Validate
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{Repo: repository.NewServiceRepository(db), Validate: helper.NewValidator()}
}

func (ctrl *ServiceController) List(c *fiber.Ctx) error {
	return helper.RespondList(c, ctrl.Repo)
}

func (ctrl *ServiceController) Get(c *fiber.Ctx) error {
	row, err := ctrl.Repo.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.StorageError(err, entity)
	}
	return helper.JsonOK(c, row)
}

func (ctrl *ServiceController) Create(c *fiber.Ctx) error {
	var body dto.CreateServiceRequest
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

func (ctrl *ServiceController) Patch(c *fiber.Ctx) error {
	var body dto.PatchServiceRequest
	if err := helper.DecodeStrict(c, &body); err != nil {
		return err
	}
	body.Normalize()
	if err := body.Validate(ctrl.Validate); err != nil {
		return err
	}
	row, err := ctrl.Repo.Update(c.UserContext(), c.Params("id"), body.ToUpdates())
	if err != nil {
		return helper.StorageError(err, entity)
	}
	return helper.JsonOK(c, row)
}

func (ctrl *ServiceController) Delete(c *fiber.Ctx) error {
	if err := ctrl.Repo.Delete(c.UserContext(), c.Params("id")); err != nil {
		return helper.StorageError(err, entity)
	}
	return helper.JsonDeleted(c)
}
