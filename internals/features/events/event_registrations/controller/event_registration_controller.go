package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azadi_backend/internals/features/events/event_registrations/dto"
	"azadi_backend/internals/features/events/event_registrations/model"
	"azadi_backend/internals/features/events/event_registrations/repository"
	eventRepo "azadi_backend/internals/features/events/events/repository"
	helper "azadi_backend/internals/helpers"
)

const entity = "registration"

type EventRegistrationController struct {
	Repo     *repository.EventRegistrationRepository
	Events   *eventRepo.EventRepository
	Validate *validator.Validate
}

func NewEventRegistrationController(db *gorm.DB) *EventRegistrationController {
	return &EventRegistrationController{
		Repo:     repository.NewEventRegistrationRepository(db),
		Events:   eventRepo.NewEventRepository(db),
		Validate: helper.NewValidator(),
	}
}

// GET /api/event-registrations?eventId=
func (ctrl *EventRegistrationController) List(c *fiber.Ctx) error {
	return helper.RespondList[model.EventRegistration](c, ctrl.Repo, repository.ByEvent(c.Query("eventId")))
}

// POST /api/event-registrations
func (ctrl *EventRegistrationController) Create(c *fiber.Ctx) error {
	var body dto.CreateEventRegistrationRequest
	if err := helper.Decode(c, &body); err != nil {
		return err
	}
	body.Normalize()
	if err := helper.ValidateStruct(ctrl.Validate, &body); err != nil {
		return err
	}

	ctx := c.UserContext()
	if _, err := ctrl.Events.Get(ctx, body.EventID); err != nil {
		return helper.StorageError(err, "event")
	}

	row := body.ToModel()
	if err := ctrl.Repo.Create(ctx, &row); err != nil {
		return helper.StorageError(err, entity)
	}
	return helper.JsonOK(c, row)
}

// DELETE /api/event-registrations/:id
func (ctrl *EventRegistrationController) Delete(c *fiber.Ctx) error {
	if err := ctrl.Repo.Delete(c.UserContext(), c.Params("id")); err != nil {
		return helper.StorageError(err, entity)
	}
	return helper.JsonDeleted(c)
}
