package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azadi_backend/internals/features/home/leaders/dto"
	"azadi_backend/internals/features/home/leaders/model"
	"azadi_backend/internals/features/home/leaders/repository"
	helper "azadi_backend/internals/helpers"
	"azadi_backend/internals/storage"
)

const entity = "leader"

type LeaderController struct {
	Repo     storage.CRUD[model.Leader]
	Validate *validator.Validate
}

func NewLeaderController(db *gorm.DB) *LeaderController {
	return &LeaderController{Repo: repository.NewLeaderRepository(db), Validate: helper.NewValidator()}
}

func (ctrl *LeaderController) List(c *fiber.Ctx) error {
	return helper.RespondList(c, ctrl.Repo)
}

func (ctrl *LeaderController) Get(c *fiber.Ctx) error {
	row, err := ctrl.Repo.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.StorageError(err, entity)
	}
	return helper.JsonOK(c, row)
}

func (ctrl *LeaderController) Create(c *fiber.Ctx) error {
	var body dto.CreateLeaderRequest
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

func (ctrl *LeaderController) Patch(c *fiber.Ctx) error {
	var body dto.PatchLeaderRequest
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

func (ctrl *LeaderController) Delete(c *fiber.Ctx) error {
	if err := ctrl.Repo.Delete(c.UserContext(), c.Params("id")); err != nil {
		return helper.StorageError(err, entity)
	}
	return helper.JsonDeleted(c)
}
