package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azadi_backend/internals/features/contact/messages/dto"
	"azadi_backend/internals/features/contact/messages/model"
	"azadi_backend/internals/features/contact/messages/repository"
	helper "azadi_backend/internals/helpers"
	"azadi_backend/internals/storage"
)

const entity = "message"

type MessageController struct {
	Repo     storage.CRUD[model.Message]
	Validate *validator.Validate
}

func NewMessageController(db *gorm.DB) *MessageController {
	return &MessageController{Repo: repository.NewMessageRepository(db), Validate: helper.NewValidator()}
}

// GET /api/messages[?unread=true]
func (ctrl *MessageController) List(c *fiber.Ctx) error {
	var scopes []storage.Scope
	if c.QueryBool("unread") {
		scopes = append(scopes, repository.Unread)
	}
	return helper.RespondList(c, ctrl.Repo, scopes...)
}

func (ctrl *MessageController) Get(c *fiber.Ctx) error {
	row, err := ctrl.Repo.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.StorageError(err, entity)
	}
	return helper.JsonOK(c, row)
}

// POST /api/messages (public contact form)
func (ctrl *MessageController) Create(c *fiber.Ctx) error {
	var body dto.CreateMessageRequest
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

// PATCH /api/messages/:id, usually {"read": true}
func (ctrl *MessageController) Patch(c *fiber.Ctx) error {
	var body dto.PatchMessageRequest
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

func (ctrl *MessageController) Delete(c *fiber.Ctx) error {
	if err := ctrl.Repo.Delete(c.UserContext(), c.Params("id")); err != nil {
		return helper.StorageError(err, entity)
	}
	return helper.JsonDeleted(c)
}
