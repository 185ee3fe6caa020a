// Package routetest wires feature routes into a throwaway fiber app for handler tests.
package routetest

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	helper "azadi_backend/internals/helpers"
)

// Open lets every request through where AdminOnly would sit.
func Open(c *fiber.Ctx) error { return c.Next() }

// NewApp returns an app configured like production (sonic codec, error handler).
func NewApp() (*fiber.App, fiber.Router) {
	app := fiber.New(fiber.Config{
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: helper.ErrorHandler,
	})
	return app, app.Group("/api")
}

// Do sends a JSON request and returns status and raw body.
func Do(t testing.TB, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, b
}

// DoJSON is Do plus decoding the response into out.
func DoJSON(t testing.TB, app *fiber.App, method, path, body string, out any) int {
	t.Helper()
	code, b := Do(t, app, method, path, body)
	if out != nil && len(b) > 0 {
		if err := sonic.Unmarshal(b, out); err != nil {
			t.Fatalf("%s %s: decode %q: %v", method, path, b, err)
		}
	}
	return code
}

// App bundles an app with the request helpers.
type App struct {
	*fiber.App
}

func (a *App) Do(t testing.TB, method, path, body string) (int, []byte) {
	t.Helper()
	return Do(t, a.App, method, path, body)
}

func (a *App) JSON(t testing.TB, method, path, body string, out any) int {
	t.Helper()
	return DoJSON(t, a.App, method, path, body, out)
}
