package helper

import (
	"github.com/gofiber/fiber/v2"

	"azadi_backend/internals/storage"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// RespondList writes {"data": [...]}; with ?page= it pages and adds "pagination".
func RespondList[T any](c *fiber.Ctx, repo storage.CRUD[T], scopes ...storage.Scope) error {
	ctx := c.UserContext()
	if !WantsPaging(c) {
		rows, err := repo.List(ctx, scopes...)
		if err != nil {
			return err
		}
		return JsonList(c, rows, nil)
	}

	p := ResolvePaging(c, defaultPerPage, maxPerPage)
	rows, total, err := repo.Page(ctx, p.Offset, p.Limit, scopes...)
	if err != nil {
		return err
	}
	pg := BuildPaginationFromPage(total, p.Page, p.PerPage)
	return JsonList(c, rows, &pg)
}
