package handler

import (
	"time"

	"mcq-quiz/internal/config"
	"mcq-quiz/internal/dto"
	"mcq-quiz/internal/middleware"
	"mcq-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
	cfg         config.AuthConfig
}

func NewAuthHandler(authService service.AuthService, cfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

// Register creates an account.
// @Summary Register
// @Description Creates a user with a unique username and email.
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.RegisterRequest true "Account details"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 409 {object} middleware.ErrorResponse "User already exists"
// @Router /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if _, err := h.authService.Register(c.UserContext(), req); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Message:  "Registration successful! Please login.",
		Redirect: "/login",
	})
}

// Login starts a session.
// @Summary Login
// @Description Authenticates by username or email and sets the session cookie.
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} middleware.ErrorResponse "Invalid credentials"
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	token, user, err := h.authService.Login(c.UserContext(), req.LoginIdentifier(), req.Password)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.SessionTTL),
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.LoginResponse{
		Message: "Logged in successfully!",
		Token:   token,
		User:    dto.UserResponse{ID: user.ID, Username: user.Username, Email: user.Email},
	})
}

// Logout ends the session; calling it without one is not an error.
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /logout [get]
// @Router /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.authService.Logout(c.UserContext(), middleware.TokenFromRequest(c, h.cfg.CookieName))
	c.ClearCookie(h.cfg.CookieName)
	return c.JSON(dto.MessageResponse{Message: "You have been logged out.", Redirect: "/login"})
}
