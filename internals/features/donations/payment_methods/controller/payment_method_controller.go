package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azadi_backend/internals/features/donations/payment_methods/dto"
	"azadi_backend/internals/features/donations/payment_methods/model"
	"azadi_backend/internals/features/donations/payment_methods/repository"
	helper "azadi_backend/internals/helpers"
)

const entity = "payment method"

type PaymentMethodController struct {
	Repo     *repository.PaymentMethodRepository
	Validate *validator.Validate
}

func NewPaymentMethodController(db *gorm.DB) *PaymentMethodController {
	return &PaymentMethodController{
		Repo:     repository.NewPaymentMethodRepository(db),
		Validate: helper.NewValidator(),
	}
}

// GET /api/payment-methods (active only)
func (ctrl *PaymentMethodController) ListActive(c *fiber.Ctx) error {
	rows, err := ctrl.Repo.ListActive(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonList(c, rows, nil)
}

// GET /api/payment-methods/admin/all
func (ctrl *PaymentMethodController) ListAll(c *fiber.Ctx) error {
	return helper.RespondList[model.PaymentMethod](c, ctrl.Repo)
}

func (ctrl *PaymentMethodController) Create(c *fiber.Ctx) error {
	var body dto.CreatePaymentMethodRequest
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

func (ctrl *PaymentMethodController) Patch(c *fiber.Ctx) error {
	var body dto.PatchPaymentMethodRequest
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

func (ctrl *PaymentMethodController) Delete(c *fiber.Ctx) error {
	if err := ctrl.Repo.Delete(c.UserContext(), c.Params("id")); err != nil {
		return helper.StorageError(err, entity)
	}
	return helper.JsonDeleted(c)
}
