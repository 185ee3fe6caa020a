package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azadi_backend/internals/features/home/gallery/dto"
	"azadi_backend/internals/features/home/gallery/model"
	"azadi_backend/internals/features/home/gallery/repository"
	helper "azadi_backend/internals/helpers"
	"azadi_backend/internals/storage"
)

const entity = "gallery item"

type GalleryController struct {
	Repo     storage.CRUD[model.GalleryItem]
	Validate *validator.Validate
}

func NewGalleryController(db *gorm.DB) *GalleryController {
	return &GalleryController{Repo: repository.NewGalleryRepository(db), Validate: helper.NewValidator()}
}

func (ctrl *GalleryController) List(c *fiber.Ctx) error {
	return helper.RespondList(c, ctrl.Repo)
}

func (ctrl *GalleryController) Get(c *fiber.Ctx) error {
	row, err := ctrl.Repo.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.StorageError(err, entity)
	}
	return helper.JsonOK(c, row)
}

func (ctrl *GalleryController) Create(c *fiber.Ctx) error {
	var body dto.CreateGalleryItemRequest
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

func (ctrl *GalleryController) Patch(c *fiber.Ctx) error {
	var body dto.PatchGalleryItemRequest
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

func (ctrl *GalleryController) Delete(c *fiber.Ctx) error {
	if err := ctrl.Repo.Delete(c.UserContext(), c.Params("id")); err != nil {
		return helper.StorageError(err, entity)
	}
	return helper.JsonDeleted(c)
}
