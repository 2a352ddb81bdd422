package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"
	"golang.org/x/crypto/bcrypt"

	"platewatch/internal/db"
	"platewatch/internal/models"
)

// AuthHandler handles registration, login and role promotion.
//
// There are no sessions or tokens: login only verifies credentials and
// returns the username and role, which the client resubmits on later
// requests.
type AuthHandler struct {
	db *db.DB
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(database *db.DB) *AuthHandler {
	return &AuthHandler{db: database}
}

// Register creates a new user account with a bcrypt-hashed password.
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if body.Username == "" || body.Email == "" || body.Password == "" {
		return jsonError(c, fiber.StatusBadRequest, "username, email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return respondError(c, err)
	}

	user := &models.User{
		Username:     body.Username,
		Email:        body.Email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := h.db.CreateUser(c.Context(), user); err != nil {
		return respondError(c, err)
	}

	return jsonCreated(c, fiber.Map{
		"message": "user registered successfully",
	})
}

// Login verifies credentials by username or email. Unknown identifier and
// wrong password return the same generic 401.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var body struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if body.Identifier == "" || body.Password == "" {
		return jsonError(c, fiber.StatusBadRequest, "identifier and password are required")
	}

	user, err := h.db.GetUserByIdentifier(c.Context(), body.Identifier)
	if err == nil {
		err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password))
	}
	if err != nil {
		return jsonError(c, fiber.StatusUnauthorized, "invalid username/email or password")
	}

	return jsonSuccess(c, fiber.Map{
		"username": user.Username,
		"role":     user.Role,
	})
}

// MakeAdmin promotes a user to the admin role. Idempotent.
func (h *AuthHandler) MakeAdmin(c fiber.Ctx) error {
	var body struct {
		Username string `json:"username"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if body.Username == "" {
		return jsonError(c, fiber.StatusBadRequest, "username is required")
	}

	if err := h.db.PromoteToAdmin(c.Context(), body.Username); err != nil {
		return respondError(c, err)
	}

	return jsonSuccess(c, fiber.Map{
		"message": "user " + body.Username + " is now an admin",
	})
}
