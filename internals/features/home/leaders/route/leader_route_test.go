package route_test

import (
	"testing"

	"azadi_backend/internals/features/home/leaders/model"
	"azadi_backend/internals/features/home/leaders/route"
	"azadi_backend/internals/route/routetest"
	"azadi_backend/internals/storage/storagetest"
)

type listBody struct {
	Data []model.Leader `json:"data"`
}

const leaderBody = `{"name":"টুটুল আহমদ","nameEn":"Tutul Ahmad","position":"সভাপতি","positionEn":"President",
"quote":"সমাজসেবায় আমাদের প্রতিশ্রুতি","quoteEn":"Our commitment","image":"data:image/png;base64,AAAA"}`

func TestLeaderCRUD(t *testing.T) {
	db := storagetest.NewDB(t, &model.Leader{})
	app, api := routetest.NewApp()
	route.LeaderRoutes(api, db, routetest.Open)
	a := &routetest.App{App: app}

	var created model.Leader
	if code := a.JSON(t, "POST", "/api/leaders", leaderBody, &created); code != 200 {
		t.Fatalf("create = %d", code)
	}

	var list listBody
	a.JSON(t, "GET", "/api/leaders", "", &list)
	if len(list.Data) != 1 || list.Data[0].ID != created.ID || list.Data[0].CreatedAt.IsZero() {
		t.Fatalf("list = %+v", list.Data)
	}

	// each language column moves on its own
	var p model.Leader
	a.JSON(t, "PATCH", "/api/leaders/"+created.ID, `{"position":"সহ-সভাপতি"}`, &p)
	if p.Position != "সহ-সভাপতি" || p.PositionEn != "President" {
		t.Errorf("after bn patch: %q / %q", p.Position, p.PositionEn)
	}
	a.JSON(t, "PATCH", "/api/leaders/"+created.ID, `{"positionEn":"Vice President"}`, &p)
	if p.Position != "সহ-সভাপতি" || p.PositionEn != "Vice President" {
		t.Errorf("after en patch: %q / %q", p.Position, p.PositionEn)
	}

	// echoed server fields are ignored
	body := `{"id":"other","createdAt":"2000-01-01T00:00:00Z","quoteEn":"Together"}`
	if code := a.JSON(t, "PATCH", "/api/leaders/"+created.ID, body, &p); code != 200 || p.ID != created.ID {
		t.Errorf("patch with server fields = %d, id %q", code, p.ID)
	}

	if code, _ := a.Do(t, "PATCH", "/api/leaders/"+created.ID, `{"name":""}`); code != 400 {
		t.Errorf("blank name accepted: %d", code)
	}
	if code, _ := a.Do(t, "POST", "/api/leaders", `{"name":"x"}`); code != 400 {
		t.Errorf("partial create accepted: %d", code)
	}

	if code, _ := a.Do(t, "DELETE", "/api/leaders/"+created.ID, ""); code != 200 {
		t.Fatalf("delete = %d", code)
	}
	if code, _ := a.Do(t, "DELETE", "/api/leaders/"+created.ID, ""); code != 404 {
		t.Fatalf("repeat delete = %d", code)
	}
}
