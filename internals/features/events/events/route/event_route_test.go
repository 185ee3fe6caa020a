package route_test

import (
	"strings"
	"testing"
	"time"

	"azadi_backend/internals/features/events/events/model"
	"azadi_backend/internals/features/events/events/route"
	"azadi_backend/internals/route/routetest"
	"azadi_backend/internals/storage/storagetest"
)

type listBody struct {
	Data []model.Event `json:"data"`
}

func newEventApp(t *testing.T) *routetest.App {
	t.Helper()
	db := storagetest.NewDB(t, &model.Event{})
	app, api := routetest.NewApp()
	route.EventRoutes(api, db, routetest.Open)
	return &routetest.App{App: app}
}

const eventBody = `{
	"title":"বার্ষিক ক্রীড়া","titleEn":"Annual Sports",
	"description":"বিবরণ","descriptionEn":"Details",
	"date":"2025-02-21T10:30",
	"location":"স্কুল মাঠ","locationEn":"School field",
	"image":"https://cdn.example/a.webp",
	"additionalImages":"[\"https://cdn.example/b.webp\"]"
}`

func TestEventCreateAcceptsLegacyImageListAndLocalDate(t *testing.T) {
	a := newEventApp(t)

	var ev model.Event
	if code := a.JSON(t, "POST", "/api/events", eventBody, &ev); code != 200 {
		t.Fatalf("create = %d", code)
	}
	want := time.Date(2025, 2, 21, 10, 30, 0, 0, time.UTC)
	if !ev.Date.Equal(want) {
		t.Errorf("date = %v, want %v", ev.Date, want)
	}
	if len(ev.AdditionalImages) != 1 || ev.AdditionalImages[0] != "https://cdn.example/b.webp" {
		t.Errorf("additionalImages = %v", ev.AdditionalImages)
	}

	var got model.Event
	if code := a.JSON(t, "GET", "/api/events/"+ev.ID, "", &got); code != 200 || got.TitleEn != "Annual Sports" {
		t.Fatalf("get = %d %+v", code, got)
	}
}

func TestEventPatchKeepsSiblingLanguage(t *testing.T) {
	a := newEventApp(t)
	var ev model.Event
	a.JSON(t, "POST", "/api/events", eventBody, &ev)

	var patched model.Event
	if code := a.JSON(t, "PATCH", "/api/events/"+ev.ID, `{"title":"নতুন শিরোনাম"}`, &patched); code != 200 {
		t.Fatalf("patch = %d", code)
	}
	if patched.Title != "নতুন শিরোনাম" || patched.TitleEn != "Annual Sports" {
		t.Errorf("title pair = %q / %q", patched.Title, patched.TitleEn)
	}

	a.JSON(t, "PATCH", "/api/events/"+ev.ID, `{"titleEn":"Sports Day"}`, &patched)
	if patched.Title != "নতুন শিরোনাম" || patched.TitleEn != "Sports Day" {
		t.Errorf("title pair = %q / %q", patched.Title, patched.TitleEn)
	}
	if len(patched.AdditionalImages) != 1 {
		t.Errorf("additionalImages lost: %v", patched.AdditionalImages)
	}
}

func TestEventRejectsBadInput(t *testing.T) {
	a := newEventApp(t)
	var ev model.Event
	a.JSON(t, "POST", "/api/events", eventBody, &ev)

	tooMany := strings.Replace(eventBody, `"[\"https://cdn.example/b.webp\"]"`, `["a","b","c","d"]`, 1)
	cases := []struct {
		name, method, path, body string
	}{
		{"four extra images", "POST", "/api/events", tooMany},
		{"unparseable date", "POST", "/api/events", strings.Replace(eventBody, "2025-02-21T10:30", "next friday", 1)},
		{"unknown patch field", "PATCH", "/api/events/" + ev.ID, `{"venue":"x"}`},
		{"null required field", "PATCH", "/api/events/" + ev.ID, `{"image":null}`},
		{"empty date", "PATCH", "/api/events/" + ev.ID, `{"date":""}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if code, body := a.Do(t, tc.method, tc.path, tc.body); code != 400 {
				t.Errorf("status = %d (%s)", code, body)
			}
		})
	}

	if code, _ := a.Do(t, "PATCH", "/api/events/nope", `{"title":"x"}`); code != 404 {
		t.Errorf("missing id = %d", code)
	}
}

func TestEventDelete(t *testing.T) {
	a := newEventApp(t)
	var ev model.Event
	a.JSON(t, "POST", "/api/events", eventBody, &ev)

	if code, _ := a.Do(t, "DELETE", "/api/events/"+ev.ID, ""); code != 200 {
		t.Fatalf("delete = %d", code)
	}
	var list listBody
	a.JSON(t, "GET", "/api/events", "", &list)
	if len(list.Data) != 0 {
		t.Fatalf("deleted event still listed")
	}
	if code, _ := a.Do(t, "GET", "/api/events/"+ev.ID, ""); code != 404 {
		t.Fatalf("get deleted = %d", code)
	}
}
