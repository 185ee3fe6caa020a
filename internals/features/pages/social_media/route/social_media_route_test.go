package route_test

import (
	"testing"

	"azadi_backend/internals/features/pages/social_media/model"
	"azadi_backend/internals/features/pages/social_media/route"
	"azadi_backend/internals/route/routetest"
	"azadi_backend/internals/storage/storagetest"
)

func TestSocialMediaLinks(t *testing.T) {
	db := storagetest.NewDB(t, &model.SocialMedia{})
	app, api := routetest.NewApp()
	route.SocialMediaRoutes(api, db, routetest.Open)
	a := &routetest.App{App: app}

	var links model.SocialMedia
	body := `{"facebook":"https://facebook.com/azadi","youtube":"https://youtube.com/@azadi"}`
	if code := a.JSON(t, "POST", "/api/social-media", body, &links); code != 200 {
		t.Fatalf("upsert = %d", code)
	}
	if links.Instagram != nil || links.Facebook == nil {
		t.Errorf("links = %+v", links)
	}

	a.JSON(t, "POST", "/api/social-media", `{"instagram":"https://instagram.com/azadi"}`, &links)
	if links.Facebook == nil || links.Instagram == nil {
		t.Errorf("omitted link was cleared: %+v", links)
	}

	a.JSON(t, "POST", "/api/social-media", `{"facebook":""}`, &links)
	if links.Facebook != nil || links.Instagram == nil {
		t.Errorf("blank facebook on upsert: %+v", links)
	}
	a.JSON(t, "POST", "/api/social-media", `{"facebook":"https://facebook.com/azadi"}`, nil)
	a.JSON(t, "POST", "/api/social-media", `{"facebook":null}`, &links)
	if links.Facebook != nil {
		t.Errorf("null facebook on upsert kept %q", *links.Facebook)
	}

	if code := a.JSON(t, "PATCH", "/api/social-media", `{"youtube":null}`, &links); code != 200 || links.Youtube != nil {
		t.Errorf("clear youtube = %d %+v", code, links.Youtube)
	}
	if code, _ := a.Do(t, "PATCH", "/api/social-media/elsewhere", `{"youtube":null}`); code != 404 {
		t.Errorf("unknown id = %d, want 404", code)
	}

	var n int64
	db.Model(&model.SocialMedia{}).Count(&n)
	if n != 1 {
		t.Fatalf("rows = %d, want 1", n)
	}
}
