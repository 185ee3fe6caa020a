package route_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/bytedance/sonic"

	"azadi_backend/internals/configs"
	"azadi_backend/internals/features/utils/uploads/route"
	"azadi_backend/internals/helpers/oss"
	"azadi_backend/internals/route/routetest"
)

type brokenStore struct{ err error }

func (brokenStore) Name() string { return "broken" }
func (b brokenStore) Put(context.Context, string, string, io.Reader, int64) (string, error) {
	return "", b.err
}
func (b brokenStore) Delete(context.Context, string) error { return b.err }

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{200, 10, 10, 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func multipartBody(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatal(err)
	}
	part.Write(data)
	w.Close()
	return &buf, w.FormDataContentType()
}

func upload(t *testing.T, store oss.Store, filename, contentType string, data []byte) (int, string) {
	t.Helper()
	cfg := &configs.Config{Storage: configs.StorageConfig{Driver: "inline", Prefix: "uploads"}}
	app, api := routetest.NewApp()
	route.UploadRoutes(api, store, cfg, routetest.Open)

	body, ct := multipartBody(t, filename, contentType, data)
	req := httptest.NewRequest("POST", "/api/uploads", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func TestUploadInlineReturnsDataURL(t *testing.T) {
	code, body := upload(t, oss.NewInlineStore(), "logo.png", "image/png", tinyPNG(t))
	if code != 200 {
		t.Fatalf("upload = %d %s", code, body)
	}
	var out struct {
		URL string `json:"url"`
	}
	if err := sonic.UnmarshalString(body, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.URL, "data:image/png;base64,") {
		t.Errorf("url = %.40q", out.URL)
	}
}

func TestUploadRejectsDisallowedExtension(t *testing.T) {
	code, body := upload(t, oss.NewInlineStore(), "notes.txt", "text/plain", []byte("hello"))
	if code != 400 || !strings.Contains(body, "JPG") {
		t.Errorf("upload txt = %d %s", code, body)
	}
}

func TestUploadStoreFailures(t *testing.T) {
	if code, _ := upload(t, brokenStore{err: errors.New("503 SlowDown")}, "a.png", "image/png", tinyPNG(t)); code != 502 {
		t.Errorf("store failure = %d, want 502", code)
	}
	if code, _ := upload(t, brokenStore{err: oss.ErrUnavailable}, "a.png", "image/png", tinyPNG(t)); code != 503 {
		t.Errorf("breaker open = %d, want 503", code)
	}
}

func TestDeleteUpload(t *testing.T) {
	cfg := &configs.Config{}
	app, api := routetest.NewApp()
	route.UploadRoutes(api, brokenStore{err: oss.ErrForeignURL}, cfg, routetest.Open)
	a := &routetest.App{App: app}

	if code, _ := a.Do(t, "DELETE", "/api/uploads", ""); code != 400 {
		t.Errorf("missing url = %d, want 400", code)
	}
	if code, _ := a.Do(t, "DELETE", "/api/uploads?url=https://elsewhere/x.png", ""); code != 400 {
		t.Errorf("foreign url = %d, want 400", code)
	}

	app2, api2 := routetest.NewApp()
	route.UploadRoutes(api2, oss.NewInlineStore(), cfg, routetest.Open)
	if code, _ := routetest.Do(t, app2, "DELETE", "/api/uploads?url=data:image/png;base64,AAAA", ""); code != 200 {
		t.Errorf("inline delete = %d, want 200", code)
	}
}
