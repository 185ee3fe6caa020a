package route_test

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"azadi_backend/internals/features/users/admin/dto"
	"azadi_backend/internals/features/users/admin/model"
	"azadi_backend/internals/features/users/admin/repository"
	"azadi_backend/internals/features/users/admin/route"
	"azadi_backend/internals/features/users/admin/service"
	"azadi_backend/internals/middlewares/auth"
	"azadi_backend/internals/route/routetest"
	"azadi_backend/internals/storage/storagetest"
)

func setup(t *testing.T, storedPassword string) (*fiber.App, *repository.AdminRepository) {
	t.Helper()
	db := storagetest.NewDB(t, &model.User{}, &model.TokenBlacklist{})
	repo := repository.NewAdminRepository(db)
	if err := repo.Create(context.Background(), &model.User{Username: "azadi", Password: storedPassword}); err != nil {
		t.Fatal(err)
	}
	tokens := service.NewTokenService("route-test", time.Hour)

	app, api := routetest.NewApp()
	route.AdminRoutes(api, repo, tokens, auth.AdminOnly(tokens, repo), false)
	return app, repo
}

func call(t *testing.T, app *fiber.App, method, path, body, token string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
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

func login(t *testing.T, app *fiber.App, password string) (int, string) {
	t.Helper()
	code, b := call(t, app, "POST", "/api/admin/login", `{"username":"azadi","password":"`+password+`"}`, "")
	var out dto.LoginResponse
	_ = sonic.Unmarshal(b, &out)
	return code, out.Token
}

func TestLegacyPlaintextPasswordIsUpgraded(t *testing.T) {
	app, repo := setup(t, "Azadi passwor 123456")

	code, token := login(t, app, "Azadi passwor 123456")
	if code != 200 || token == "" {
		t.Fatalf("login = %d", code)
	}
	u, err := repo.FindByUsername(context.Background(), "azadi")
	if err != nil {
		t.Fatal(err)
	}
	if !service.IsHashed(u.Password) {
		t.Error("plaintext password was not rehashed")
	}
	if code, _ := login(t, app, "Azadi passwor 123456"); code != 200 {
		t.Errorf("login after rehash = %d", code)
	}
}

func TestChangePassword(t *testing.T) {
	hash, _ := service.HashPassword("first-pass")
	app, _ := setup(t, hash)
	_, token := login(t, app, "first-pass")

	if code, _ := call(t, app, "POST", "/api/admin/change-password", `{"currentPassword":"nope","newPassword":"second-pass"}`, token); code != 401 {
		t.Errorf("wrong current = %d, want 401", code)
	}
	if code, _ := call(t, app, "POST", "/api/admin/change-password", `{"currentPassword":"first-pass","newPassword":"123"}`, token); code != 400 {
		t.Errorf("short new password = %d, want 400", code)
	}
	if code, b := call(t, app, "POST", "/api/admin/change-password", `{"currentPassword":"first-pass","newPassword":"second-pass"}`, token); code != 200 {
		t.Fatalf("change = %d %s", code, b)
	}
	if code, _ := login(t, app, "first-pass"); code != 401 {
		t.Errorf("old password still works: %d", code)
	}
	if code, _ := login(t, app, "second-pass"); code != 200 {
		t.Errorf("new password rejected: %d", code)
	}
}

func TestDeletedAdminTokenIsRejected(t *testing.T) {
	db := storagetest.NewDB(t, &model.User{}, &model.TokenBlacklist{})
	repo := repository.NewAdminRepository(db)
	hash, err := service.HashPassword("strong-pass")
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(context.Background(), &model.User{Username: "azadi", Password: hash}); err != nil {
		t.Fatal(err)
	}
	tokens := service.NewTokenService("route-test", time.Hour)
	app, api := routetest.NewApp()
	route.AdminRoutes(api, repo, tokens, auth.AdminOnly(tokens, repo), false)

	code, token := login(t, app, "strong-pass")
	if code != 200 || token == "" {
		t.Fatalf("login = %d", code)
	}
	if code, _ := call(t, app, "GET", "/api/admin/me", "", token); code != 200 {
		t.Fatalf("me = %d", code)
	}

	if err := db.Where("username = ?", "azadi").Delete(&model.User{}).Error; err != nil {
		t.Fatal(err)
	}
	if code, _ := call(t, app, "GET", "/api/admin/me", "", token); code != 401 {
		t.Errorf("me after account removal = %d, want 401", code)
	}
}
