package route_test

import (
	"testing"

	"azadi_backend/internals/features/donations/donations/model"
	"azadi_backend/internals/features/donations/donations/route"
	"azadi_backend/internals/route/routetest"
	"azadi_backend/internals/storage/storagetest"
)

type listBody struct {
	Data []model.Donation `json:"data"`
}

const validDonation = `{"name":"রহিম","email":"r@x.com","phone":"01712345678","amount":500,"purpose":"শিক্ষা"}`

func TestDonationApprovalFlow(t *testing.T) {
	db := storagetest.NewDB(t, &model.Donation{})
	app, api := routetest.NewApp()
	route.DonationRoutes(api, db, routetest.Open)

	var created model.Donation
	if code := routetest.DoJSON(t, app, "POST", "/api/donations", validDonation, &created); code != 200 {
		t.Fatalf("create status = %d", code)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("missing server fields: %+v", created)
	}
	if created.Status != model.StatusPending {
		t.Fatalf("status = %q, want pending", created.Status)
	}

	var approved []model.Donation
	routetest.DoJSON(t, app, "GET", "/api/donations/approved", "", &approved)
	if len(approved) != 0 {
		t.Fatalf("pending donation listed as approved")
	}

	var patched model.Donation
	code := routetest.DoJSON(t, app, "PATCH", "/api/donations/"+created.ID+"/status", `{"status":"approved"}`, &patched)
	if code != 200 {
		t.Fatalf("patch status = %d", code)
	}
	if patched.Status != model.StatusApproved {
		t.Errorf("status = %q", patched.Status)
	}
	if patched.Name != created.Name || patched.Amount != created.Amount || *patched.Purpose != "শিক্ষা" {
		t.Errorf("status patch changed other fields: %+v", patched)
	}

	routetest.DoJSON(t, app, "GET", "/api/donations/approved", "", &approved)
	if len(approved) != 1 || approved[0].ID != created.ID {
		t.Fatalf("approved = %+v", approved)
	}
}

func TestDonationValidation(t *testing.T) {
	db := storagetest.NewDB(t, &model.Donation{})
	app, api := routetest.NewApp()
	route.DonationRoutes(api, db, routetest.Open)

	cases := []struct {
		name string
		body string
	}{
		{"amount below minimum", `{"name":"a","email":"a@b.co","phone":"01712345678","amount":50}`},
		{"bad email", `{"name":"a","email":"nope","phone":"01712345678","amount":500}`},
		{"short phone", `{"name":"a","email":"a@b.co","phone":"123","amount":500}`},
		{"missing name", `{"email":"a@b.co","phone":"01712345678","amount":500}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if code, body := routetest.Do(t, app, "POST", "/api/donations", tc.body); code != 400 {
				t.Errorf("status = %d (%s)", code, body)
			}
		})
	}

	var created model.Donation
	routetest.DoJSON(t, app, "POST", "/api/donations", validDonation, &created)
	if code, _ := routetest.Do(t, app, "PATCH", "/api/donations/"+created.ID+"/status", `{"status":"paid"}`); code != 400 {
		t.Errorf("unknown status accepted: %d", code)
	}
	if code, _ := routetest.Do(t, app, "PATCH", "/api/donations/"+created.ID+"/status", `{"status":"approved","amount":1}`); code != 400 {
		t.Errorf("extra field accepted: %d", code)
	}
	if code, _ := routetest.Do(t, app, "PATCH", "/api/donations/missing/status", `{"status":"approved"}`); code != 404 {
		t.Errorf("missing id: %d", code)
	}
}

func TestDonationListNewestFirstAndDelete(t *testing.T) {
	db := storagetest.NewDB(t, &model.Donation{})
	app, api := routetest.NewApp()
	route.DonationRoutes(api, db, routetest.Open)

	var first, second model.Donation
	routetest.DoJSON(t, app, "POST", "/api/donations", validDonation, &first)
	routetest.DoJSON(t, app, "POST", "/api/donations", validDonation, &second)
	// created_at resolution can tie; force a distinct order
	db.Model(&model.Donation{}).Where("id = ?", first.ID).Update("created_at", first.CreatedAt.Add(-1e9))

	var list listBody
	routetest.DoJSON(t, app, "GET", "/api/donations", "", &list)
	if len(list.Data) != 2 || list.Data[0].ID != second.ID {
		t.Fatalf("want newest first, got %+v", list.Data)
	}

	if code, _ := routetest.Do(t, app, "DELETE", "/api/donations/"+first.ID, ""); code != 200 {
		t.Fatalf("delete = %d", code)
	}
	if code, _ := routetest.Do(t, app, "DELETE", "/api/donations/"+first.ID, ""); code != 404 {
		t.Fatalf("second delete = %d", code)
	}
	routetest.DoJSON(t, app, "GET", "/api/donations", "", &list)
	if len(list.Data) != 1 || list.Data[0].ID != second.ID {
		t.Fatalf("after delete: %+v", list.Data)
	}
}
