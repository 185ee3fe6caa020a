package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azadi_backend/internals/features/events/events/dto"
	"azadi_backend/internals/features/events/events/model"
	"azadi_backend/internals/features/events/events/repository"
	helper "azadi_backend/internals/helpers"
)

const entity = "event"

type EventController struct {
	Repo     *repository.EventRepository
	Validate *validator.Validate
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{
		Repo:     repository.NewEventRepository(db),
		Validate: helper.NewValidator(),
	}
}

func (ctrl *EventController) List(c *fiber.Ctx) error {
	return helper.RespondList[model.Event](c, ctrl.Repo)
}

func (ctrl *EventController) Get(c *fiber.Ctx) error {
	row, err := ctrl.Repo.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.StorageError(err, entity)
	}
	return helper.JsonOK(c, row)
}

func (ctrl *EventController) Create(c *fiber.Ctx) error {
	var body dto.CreateEventRequest
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

func (ctrl *EventController) Patch(c *fiber.Ctx) error {
	var body dto.PatchEventRequest
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

func (ctrl *EventController) Delete(c *fiber.Ctx) error {
	if err := ctrl.Repo.Delete(c.UserContext(), c.Params("id")); err != nil {
		return helper.StorageError(err, entity)
	}
	return helper.JsonDeleted(c)
}
