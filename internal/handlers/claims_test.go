package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestSubmitClaim_MissingRequiredFields(t *testing.T) {
	app := fiber.New()
	h := NewClaimHandler(nil, nil)
	app.Post("/api/claim/submit", h.Submit)

	// phone and message are optional; contactEmail is not
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	w.WriteField("restaurantName", "Gostilna Pri Marku")
	w.WriteField("contactName", "Marko Novak")
	w.WriteField("submitted_by_username", "owner1")
	fw, _ := w.CreateFormFile("proofImage", "proof.jpg")
	fw.Write([]byte("jpeg bytes"))
	w.Close()

	req, _ := http.NewRequest("POST", "/api/claim/submit", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Submit without contactEmail status = %d, want 400", resp.StatusCode)
	}
}

func TestSubmitClaim_MissingProofImage(t *testing.T) {
	app := fiber.New()
	h := NewClaimHandler(nil, nil)
	app.Post("/api/claim/submit", h.Submit)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	w.WriteField("restaurantName", "Gostilna Pri Marku")
	w.WriteField("contactName", "Marko Novak")
	w.WriteField("contactEmail", "marko@example.com")
	w.WriteField("submitted_by_username", "owner1")
	w.Close()

	req, _ := http.NewRequest("POST", "/api/claim/submit", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Submit without proofImage status = %d, want 400", resp.StatusCode)
	}
}
