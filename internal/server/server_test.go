package server

import (
	"net/http"
	"testing"

	"platewatch/internal/config"
	"platewatch/internal/storage"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		Env:        "test",
		ServerAddr: ":0",
		UploadDir:  t.TempDir(),
		SiteTitle:  "PlateWatch",
	}

	srv := New(cfg)
	// Routes that never reach the database are safe to exercise with a nil
	// pool: probes, static uploads and 404s.
	srv.RegisterRoutes(nil, storage.New(cfg.UploadDir))
	return srv
}

func TestLivenessProbe(t *testing.T) {
	srv := testServer(t)

	req, _ := http.NewRequest("GET", "/healthz", nil)
	resp, err := srv.App.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET /healthz status = %d, want 200", resp.StatusCode)
	}
}

func TestUploads_AbsentFile(t *testing.T) {
	srv := testServer(t)

	req, _ := http.NewRequest("GET", "/uploads/does_not_exist.jpg", nil)
	resp, err := srv.App.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("GET /uploads/does_not_exist.jpg status = %d, want 404", resp.StatusCode)
	}
}

func TestUploads_PathTraversalRejected(t *testing.T) {
	srv := testServer(t)

	req, _ := http.NewRequest("GET", "/uploads/..%2f..%2fetc%2fpasswd", nil)
	resp, err := srv.App.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode == http.StatusOK {
		t.Error("path traversal request returned 200")
	}
}

func TestUnknownRoute(t *testing.T) {
	srv := testServer(t)

	req, _ := http.NewRequest("GET", "/api/nope", nil)
	resp, err := srv.App.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("GET /api/nope status = %d, want 404", resp.StatusCode)
	}
}
