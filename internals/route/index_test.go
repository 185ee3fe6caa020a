package routes

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"azadi_backend/internals/configs"
	database "azadi_backend/internals/databases"
	"azadi_backend/internals/features/users/admin/dto"
	helper "azadi_backend/internals/helpers"
	"azadi_backend/internals/helpers/oss"
	"azadi_backend/internals/seeds/admin"
	"azadi_backend/internals/storage/storagetest"
)

func newServer(t *testing.T) *fiber.App {
	t.Helper()
	db := storagetest.NewDB(t, database.Models()...)
	cfg := &configs.Config{Auth: configs.AuthConfig{
		JWTSecret:     "test-secret-please-change",
		SessionTTL:    time.Hour,
		AdminUsername: "azadi",
		AdminPassword: "Azadi-123456",
	}}
	if err := admin.SeedAdminUser(context.Background(), db, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
		t.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: helper.ErrorHandler,
	})
	SetupRoutes(app, Deps{DB: db, Config: cfg, Store: oss.NewInlineStore()})
	return app
}

func send(t *testing.T, app *fiber.App, method, path, body, token string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b
}

func TestMutatingRoutesRequireAdmin(t *testing.T) {
	app := newServer(t)

	guarded := []struct{ method, path string }{
		{"POST", "/api/leaders"},
		{"PATCH", "/api/leaders/x"},
		{"DELETE", "/api/services/x"},
		{"POST", "/api/gallery"},
		{"POST", "/api/events"},
		{"DELETE", "/api/event-registrations/x"},
		{"GET", "/api/donations"},
		{"PATCH", "/api/donations/x/status"},
		{"GET", "/api/payment-methods/admin/all"},
		{"GET", "/api/messages"},
		{"GET", "/api/volunteers"},
		{"GET", "/api/members"},
		{"POST", "/api/about-page"},
		{"PATCH", "/api/home-page"},
		{"POST", "/api/social-media"},
		{"POST", "/api/uploads"},
		{"GET", "/api/admin/me"},
	}
	for _, g := range guarded {
		if code, _ := send(t, app, g.method, g.path, `{}`, ""); code != fiber.StatusUnauthorized {
			t.Errorf("%s %s without token = %d, want 401", g.method, g.path, code)
		}
	}

	public := []string{"/api/leaders", "/api/services", "/api/gallery", "/api/events", "/api/donations/approved", "/api/payment-methods", "/api/about-page", "/api/health", "/"}
	for _, p := range public {
		if code, _ := send(t, app, "GET", p, "", ""); code != fiber.StatusOK {
			t.Errorf("GET %s = %d, want 200", p, code)
		}
	}
}

func TestAdminSessionLifecycle(t *testing.T) {
	app := newServer(t)

	if code, _ := send(t, app, "POST", "/api/admin/login", `{"username":"azadi","password":"wrong"}`, ""); code != 401 {
		t.Fatalf("bad password = %d, want 401", code)
	}

	code, b := send(t, app, "POST", "/api/admin/login", `{"username":"azadi","password":"Azadi-123456"}`, "")
	if code != 200 {
		t.Fatalf("login = %d %s", code, b)
	}
	var login dto.LoginResponse
	if err := sonic.Unmarshal(b, &login); err != nil || login.Token == "" {
		t.Fatalf("login body %s: %v", b, err)
	}

	leader := `{"name":"নাজিব সালাম","nameEn":"Nazib Salam","position":"সমাজ কল্যাণ সম্পাদক","positionEn":"Social Welfare Secretary",
"quote":"সমাজের উন্নয়নই আমাদের লক্ষ্য","quoteEn":"Development of society is our goal","image":"data:image/png;base64,AAAA"}`
	if code, b := send(t, app, "POST", "/api/leaders", leader, login.Token); code != 200 {
		t.Fatalf("create with token = %d %s", code, b)
	}
	if code, b := send(t, app, "GET", "/api/admin/me", "", login.Token); code != 200 || !strings.Contains(string(b), `"azadi"`) {
		t.Errorf("me = %d %s", code, b)
	}

	if code, _ := send(t, app, "POST", "/api/admin/logout", "", login.Token); code != 200 {
		t.Fatalf("logout = %d", code)
	}
	if code, _ := send(t, app, "GET", "/api/admin/me", "", login.Token); code != 401 {
		t.Errorf("revoked token = %d, want 401", code)
	}
	if code, _ := send(t, app, "POST", "/api/leaders", leader, "not-a-jwt"); code != 401 {
		t.Errorf("garbage token = %d, want 401", code)
	}
}
