package route_test

import (
	"testing"

	"azadi_backend/internals/features/contact/messages/model"
	"azadi_backend/internals/features/contact/messages/route"
	"azadi_backend/internals/route/routetest"
	"azadi_backend/internals/storage/storagetest"
)

type listBody struct {
	Data []model.Message `json:"data"`
}

func TestMessageInbox(t *testing.T) {
	db := storagetest.NewDB(t, &model.Message{})
	app, api := routetest.NewApp()
	route.MessageRoutes(api, db, routetest.Open)
	a := &routetest.App{App: app}

	var msg model.Message
	body := `{"name":"সালমা","email":"s@x.com","phone":"01912345678","subject":"সাহায্য","message":"বিস্তারিত"}`
	if code := a.JSON(t, "POST", "/api/messages", body, &msg); code != 200 {
		t.Fatalf("create = %d", code)
	}
	if msg.Read {
		t.Fatal("new message must be unread")
	}

	var unread listBody
	a.JSON(t, "GET", "/api/messages?unread=true", "", &unread)
	if len(unread.Data) != 1 {
		t.Fatalf("unread = %d", len(unread.Data))
	}

	var read model.Message
	if code := a.JSON(t, "PATCH", "/api/messages/"+msg.ID, `{"read":true}`, &read); code != 200 || !read.Read {
		t.Fatalf("mark read = %d %+v", code, read)
	}
	if read.Subject != "সাহায্য" {
		t.Errorf("mark read touched subject: %q", read.Subject)
	}
	a.JSON(t, "GET", "/api/messages?unread=true", "", &unread)
	if len(unread.Data) != 0 {
		t.Fatalf("still unread: %+v", unread.Data)
	}

	if code, _ := a.Do(t, "PATCH", "/api/messages/"+msg.ID, `{"email":"not-an-email"}`); code != 400 {
		t.Errorf("bad email = %d", code)
	}
	if code, _ := a.Do(t, "POST", "/api/messages", `{"name":"x","email":"x@y.z","phone":"1","subject":"s","message":"m"}`); code != 400 {
		t.Errorf("short phone = %d", code)
	}
}

func TestMessagePaging(t *testing.T) {
	db := storagetest.NewDB(t, &model.Message{})
	app, api := routetest.NewApp()
	route.MessageRoutes(api, db, routetest.Open)
	a := &routetest.App{App: app}

	for i := 0; i < 5; i++ {
		a.JSON(t, "POST", "/api/messages", `{"name":"n","email":"n@x.com","phone":"01912345678","subject":"s","message":"m"}`, nil)
	}

	var page struct {
		Data       []model.Message `json:"data"`
		Pagination struct {
			Page       int   `json:"page"`
			Total      int64 `json:"total"`
			TotalPages int   `json:"total_pages"`
			HasNext    bool  `json:"has_next"`
			Count      int   `json:"count"`
		} `json:"pagination"`
	}
	a.JSON(t, "GET", "/api/messages?page=2&per_page=2", "", &page)
	if len(page.Data) != 2 || page.Pagination.Total != 5 || page.Pagination.TotalPages != 3 || !page.Pagination.HasNext || page.Pagination.Count != 2 {
		t.Fatalf("page = %+v", page.Pagination)
	}
}

func TestMessageLifecycle(t *testing.T) {
	db := storagetest.NewDB(t, &model.Message{})
	app, api := routetest.NewApp()
	route.MessageRoutes(api, db, routetest.Open)
	a := &routetest.App{App: app}

	var created model.Message
	if code := a.JSON(t, "POST", "/api/messages", `{"name":"সালমা","email":"s@x.com","phone":"01912345678","subject":"s","message":"m"}`, &created); code != 200 {
		t.Fatalf("create = %d", code)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("server fields missing: %+v", created)
	}

	var list listBody
	a.JSON(t, "GET", "/api/messages", "", &list)
	if len(list.Data) != 1 || list.Data[0].ID != created.ID {
		t.Fatalf("list after create = %+v", list.Data)
	}

	if code, _ := a.Do(t, "DELETE", "/api/messages/"+created.ID, ""); code != 200 {
		t.Fatalf("delete = %d", code)
	}
	a.JSON(t, "GET", "/api/messages", "", &list)
	if len(list.Data) != 0 {
		t.Errorf("deleted message still listed: %+v", list.Data)
	}
	if code, _ := a.Do(t, "DELETE", "/api/messages/"+created.ID, ""); code != 404 {
		t.Errorf("second delete = %d, want 404", code)
	}
	if code, _ := a.Do(t, "GET", "/api/messages/"+created.ID, ""); code != 404 {
		t.Errorf("get deleted = %d, want 404", code)
	}
}
