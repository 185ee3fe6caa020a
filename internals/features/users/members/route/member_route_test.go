package route_test

import (
	"strings"
	"testing"

	"azadi_backend/internals/features/users/admin/service"
	"azadi_backend/internals/features/users/members/model"
	"azadi_backend/internals/features/users/members/route"
	"azadi_backend/internals/route/routetest"
	"azadi_backend/internals/storage/storagetest"
)

func TestMemberRegisterAndLogin(t *testing.T) {
	db := storagetest.NewDB(t, &model.Member{})
	app, api := routetest.NewApp()
	route.MemberRoutes(api, db, routetest.Open)
	a := &routetest.App{App: app}

	reg := `{"username":"rahim","email":"Rahim@X.com","password":"secret1","fullName":"রহিম উদ্দিন","division":"সিলেট"}`
	code, raw := a.Do(t, "POST", "/api/members/register", reg)
	if code != 200 {
		t.Fatalf("register = %d %s", code, raw)
	}
	if strings.Contains(string(raw), "password") || strings.Contains(string(raw), "secret1") {
		t.Fatalf("password leaked: %s", raw)
	}

	var stored model.Member
	db.First(&stored, "username = ?", "rahim")
	if !strings.HasPrefix(stored.Password, "$2") || stored.Email != "rahim@x.com" {
		t.Errorf("stored = %+v", stored)
	}

	// same username is a 400 with a fixed message
	code, raw = a.Do(t, "POST", "/api/members/register", strings.Replace(reg, "Rahim@X.com", "other@x.com", 1))
	if code != 400 || !strings.Contains(string(raw), "Username already exists") {
		t.Errorf("duplicate username = %d %s", code, raw)
	}
	// same email, different username
	if code, _ := a.Do(t, "POST", "/api/members/register", strings.Replace(reg, `"rahim"`, `"rahim2"`, 1)); code != 409 {
		t.Errorf("duplicate email = %d, want 409", code)
	}

	var m model.Member
	if code := a.JSON(t, "POST", "/api/members/login", `{"username":"rahim","password":"secret1"}`, &m); code != 200 || m.ID != stored.ID {
		t.Fatalf("login = %d %+v", code, m)
	}
	if code, _ := a.Do(t, "POST", "/api/members/login", `{"username":"rahim","password":"wrong!"}`); code != 401 {
		t.Errorf("bad password = %d", code)
	}
	if code, _ := a.Do(t, "POST", "/api/members/login", `{"username":"rahim"}`); code != 400 {
		t.Errorf("missing password = %d", code)
	}

	if code := a.JSON(t, "GET", "/api/members/"+stored.ID, "", &m); code != 200 || m.FullName != "রহিম উদ্দিন" {
		t.Errorf("get = %d %+v", code, m)
	}
	if code, _ := a.Do(t, "GET", "/api/members/unknown", ""); code != 404 {
		t.Errorf("unknown member = %d", code)
	}
}

func TestMemberLegacyPlaintextPasswordIsUpgraded(t *testing.T) {
	db := storagetest.NewDB(t, &model.Member{})
	app, api := routetest.NewApp()
	route.MemberRoutes(api, db, routetest.Open)
	a := &routetest.App{App: app}

	legacy := model.Member{Username: "karim", Email: "karim@x.com", Password: "plain-old", FullName: "করিম"}
	if err := db.Create(&legacy).Error; err != nil {
		t.Fatal(err)
	}

	if code, _ := a.Do(t, "POST", "/api/members/login", `{"username":"karim","password":"plain-old"}`); code != 200 {
		t.Fatalf("legacy login = %d", code)
	}
	var stored model.Member
	db.First(&stored, "username = ?", "karim")
	if !service.IsHashed(stored.Password) {
		t.Fatalf("password still plaintext: %q", stored.Password)
	}
	if code, _ := a.Do(t, "POST", "/api/members/login", `{"username":"karim","password":"plain-old"}`); code != 200 {
		t.Errorf("login after rehash = %d", code)
	}
}
