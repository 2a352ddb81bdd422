package db

import (
	"context"
	"testing"

	"platewatch/internal/models"
)

func createClaimUser(t *testing.T, db *DB, username string) {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "h",
	}
	if err := db.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
}

func TestCreateClaimRequest(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	createClaimUser(t, db, "owner1")

	proofPath := "uploads/claim_Gostilna_0123456789abcdef.jpg"
	phone := "+386 40 123 456"
	claim := &models.ClaimRequest{
		RestaurantName:      "Gostilna Pri Marku",
		ContactName:         "Marko Novak",
		ContactEmail:        "marko@example.com",
		Phone:               &phone,
		SubmittedByUsername: "owner1",
		ProofImagePath:      &proofPath,
	}
	if err := db.CreateClaimRequest(ctx, claim); err != nil {
		t.Fatalf("CreateClaimRequest() error = %v", err)
	}

	if claim.Status != models.StatusPending {
		t.Errorf("CreateClaimRequest() status = %q, want %q", claim.Status, models.StatusPending)
	}
}

func TestCreateClaimRequest_UnknownSubmitter(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	claim := &models.ClaimRequest{
		RestaurantName:      "Gostilna Pri Marku",
		ContactName:         "Marko Novak",
		ContactEmail:        "marko@example.com",
		SubmittedByUsername: "ghost",
	}
	if err := db.CreateClaimRequest(ctx, claim); err != ErrUnknownSubmitter {
		t.Errorf("CreateClaimRequest() error = %v, want ErrUnknownSubmitter", err)
	}
}

func TestGetPendingClaimRequests(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	createClaimUser(t, db, "owner2")

	claim := &models.ClaimRequest{
		RestaurantName:      "Sushi Central",
		ContactName:         "Ana Kovac",
		ContactEmail:        "ana@example.com",
		SubmittedByUsername: "owner2",
	}
	if err := db.CreateClaimRequest(ctx, claim); err != nil {
		t.Fatalf("CreateClaimRequest() error = %v", err)
	}

	pending, err := db.GetPendingClaimRequests(ctx)
	if err != nil {
		t.Fatalf("GetPendingClaimRequests() error = %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("GetPendingClaimRequests() returned %d claims, want 1", len(pending))
	}
	if pending[0].ContactEmail != "ana@example.com" {
		t.Errorf("contact email = %q, want %q", pending[0].ContactEmail, "ana@example.com")
	}
	if pending[0].Phone != nil {
		t.Errorf("phone = %v, want nil", *pending[0].Phone)
	}
}
