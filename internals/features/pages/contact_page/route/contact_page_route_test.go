package route_test

import (
	"testing"

	"azadi_backend/internals/features/pages/contact_page/model"
	"azadi_backend/internals/features/pages/contact_page/route"
	"azadi_backend/internals/route/routetest"
	"azadi_backend/internals/storage/storagetest"
)

func TestContactPageDefaultsAndPartialUpsert(t *testing.T) {
	db := storagetest.NewDB(t, &model.ContactPage{})
	app, api := routetest.NewApp()
	route.ContactPageRoutes(api, db, routetest.Open)
	a := &routetest.App{App: app}

	var page model.ContactPage
	if code := a.JSON(t, "POST", "/api/contact-page", `{}`, &page); code != 200 {
		t.Fatalf("empty upsert = %d", code)
	}
	if page.FridayEn != "Friday\nClosed" || page.SundayThursdayBn != model.DefaultSundayThursdayBn {
		t.Errorf("defaults: %+v", page)
	}

	a.JSON(t, "POST", "/api/contact-page", `{"fridayEn":"Friday\n3:00 PM - 6:00 PM"}`, &page)
	if page.FridayEn != "Friday\n3:00 PM - 6:00 PM" || page.SaturdayEn != model.DefaultSaturdayEn {
		t.Errorf("partial upsert: %+v", page)
	}

	var n int64
	db.Model(&model.ContactPage{}).Count(&n)
	if n != 1 {
		t.Fatalf("rows = %d, want 1", n)
	}

	if code := a.JSON(t, "PATCH", "/api/contact-page", `{"saturdayBn":"শনিবার\nবন্ধ"}`, &page); code != 200 || page.SaturdayBn != "শনিবার\nবন্ধ" {
		t.Errorf("patch = %d %q", code, page.SaturdayBn)
	}
	if code, _ := a.Do(t, "PATCH", "/api/contact-page", `{"fridayBn":null}`); code != 400 {
		t.Errorf("null hours = %d, want 400", code)
	}
}
