package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"azadi_backend/internals/storage"
)

// StorageError turns repository errors into HTTP errors.
func StorageError(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, entity+" not found")
	case storage.IsDuplicateKey(err):
		return fiber.NewError(fiber.StatusConflict, entity+" already exists")
	default:
		return err
	}
}

// ErrorHandler renders every error a handler returns; used as fiber.Config.ErrorHandler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return JsonValidationError(c, ve.Fields)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code >= fiber.StatusInternalServerError {
			logHandlerError(c, err)
		}
		return JsonError(c, fe.Code, fe.Message)
	}

	if mapped := StorageError(err, "record"); mapped != err {
		return ErrorHandler(c, mapped)
	}

	// raw driver errors stay in the log
	logHandlerError(c, err)
	return JsonError(c, fiber.StatusInternalServerError, "internal server error")
}

// StatusOf is the status ErrorHandler renders err with.
func StatusOf(err error) int {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return fiber.StatusBadRequest
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	if mapped := StorageError(err, "record"); mapped != err {
		return StatusOf(mapped)
	}
	return fiber.StatusInternalServerError
}

func logHandlerError(c *fiber.Ctx, err error) {
	reqID, _ := c.Locals("reqid").(string)
	log.Error().Err(err).
		Str("request_id", reqID).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("❌ request failed")
}
