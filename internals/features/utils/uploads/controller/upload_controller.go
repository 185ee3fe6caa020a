package controller

import (
	"bytes"
	"errors"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"azadi_backend/internals/configs"
	helper "azadi_backend/internals/helpers"
	"azadi_backend/internals/helpers/images"
	"azadi_backend/internals/helpers/oss"
)

type UploadController struct {
	Store  oss.Store
	Image  images.Options
	Prefix string
	Now    func() time.Time
}

func NewUploadController(store oss.Store, storageCfg configs.StorageConfig, imageCfg configs.ImageConfig) *UploadController {
	return &UploadController{
		Store: store,
		Image: images.Options{
			MaxWidth:  imageCfg.MaxWidth,
			MaxHeight: imageCfg.MaxHeight,
			Quality:   imageCfg.Quality,
			MaxSizeMB: imageCfg.MaxSizeMB,
		},
		Prefix: storageCfg.Prefix,
		Now:    time.Now,
	}
}

// POST /api/uploads (multipart "file") → {"url": "..."}
func (ctrl *UploadController) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}

	declared := fh.Header.Get("Content-Type")
	if res := images.ValidateImageFile(fh.Filename, declared, fh.Size); !res.Valid {
		return fiber.NewError(fiber.StatusBadRequest, res.Error)
	}

	src, err := fh.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cannot read file")
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cannot read file")
	}

	out, ct, err := images.Compress(data, declared, &ctrl.Image)
	if err != nil {
		if errors.Is(err, images.ErrNotImage) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return fiber.NewError(fiber.StatusBadRequest, "cannot process image")
	}

	key := oss.ObjectKey(ctrl.Prefix, ct, ctrl.Now())
	url, err := ctrl.Store.Put(c.UserContext(), key, ct, bytes.NewReader(out), int64(len(out)))
	if err != nil {
		return storeError(c, err)
	}

	log.Info().Str("store", ctrl.Store.Name()).Str("key", key).Int("bytes", len(out)).Msg("📤 upload stored")
	return helper.JsonOK(c, fiber.Map{"url": url})
}

// DELETE /api/uploads?url=
func (ctrl *UploadController) Delete(c *fiber.Ctx) error {
	url := c.Query("url")
	if url == "" {
		return fiber.NewError(fiber.StatusBadRequest, "url is required")
	}
	if err := ctrl.Store.Delete(c.UserContext(), url); err != nil {
		return storeError(c, err)
	}
	return helper.JsonDeleted(c)
}

func storeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, oss.ErrForeignURL):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, oss.ErrUnavailable):
		return fiber.NewError(fiber.StatusServiceUnavailable, "object store unavailable")
	}
	reqID, _ := c.Locals("reqid").(string)
	log.Error().Err(err).Str("request_id", reqID).Msg("object store failure")
	return fiber.NewError(fiber.StatusBadGateway, "object store failure")
}
