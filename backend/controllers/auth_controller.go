package controllers

import (
	"context"
	"strings"

	"coursereview/backend/apperrors"
	"coursereview/backend/config"
	"coursereview/backend/models"
	"coursereview/backend/stores"
	"coursereview/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type AuthController struct {
	Users stores.UserStore
	Cfg   *config.Config
	Log   zerolog.Logger
}

func NewAuthController(users stores.UserStore, cfg *config.Config, log zerolog.Logger) *AuthController {
	return &AuthController{Users: users, Cfg: cfg, Log: log}
}

type LoginRequest struct {
	Username   string `json:"username" form:"username" validate:"required"`
	Password   string `json:"password" form:"password" validate:"required"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
}

type RegisterRequest struct {
	Username  string `json:"username" form:"username" validate:"required,min=4,max=20"`
	Email     string `json:"email" form:"email" validate:"required,email,max=120"`
	Password  string `json:"password" form:"password" validate:"required,min=8"`
	Password2 string `json:"password2" form:"password2" validate:"required,eqfield=Password"`
}

// LoginForm describes the login form.
func (ac *AuthController) LoginForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title":  "Sign In",
		"fields": []string{"username", "password", "remember_me"},
		"next":   safeRedirect(c.Query("next")),
	})
}

// Login godoc
// @Summary Sign in
// @Description Checks credentials and issues a session token in the body and the token cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param input body LoginRequest true "Credentials"
// @Param next query string false "Local path to continue to"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse request body")
	}
	req.Username = strings.TrimSpace(req.Username)
	if errs := utils.Validate(req); errs != nil {
		return utils.ValidationError(c, errs)
	}

	user, err := ac.authenticate(c.UserContext(), req.Username, req.Password)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrInvalidCredentials) {
			ac.Log.Warn().Str("username", req.Username).Str("ip", c.IP()).Msg("failed login")
		}
		return respondError(c, ac.Log, err, "Failed to sign in")
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return serverError(c, ac.Log, err, "Could not generate token")
	}
	utils.SetSessionCookie(c, token, ac.Cfg, req.RememberMe)

	redirect := safeRedirect(c.Query("next"))
	if redirect == "" {
		redirect = "/index"
	}
	return utils.Success(c, "Logged in successfully", fiber.Map{
		"token":    token,
		"user":     user,
		"redirect": redirect,
	})
}

// authenticate returns the user whose credentials match. An unknown username
// and a wrong password yield the same ErrInvalidCredentials error.
func (ac *AuthController) authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := ac.Users.FindByUsername(ctx, username)
	if err != nil && !apperrors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, err
	}
	if err := verifyPassword(user, password); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout ends the browser session.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	utils.ClearSessionCookie(c)
	return c.Redirect("/index", fiber.StatusSeeOther)
}

// RegisterForm describes the registration form.
func (ac *AuthController) RegisterForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title":  "Register",
		"fields": []string{"username", "email", "password", "password2"},
	})
}

// Register godoc
// @Summary Register a new user
// @Description Creates a new user account
// @Tags auth
// @Accept json
// @Produce json
// @Param input body RegisterRequest true "User registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse request body")
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if errs := utils.Validate(req); errs != nil {
		return utils.ValidationError(c, errs)
	}

	user := models.User{Username: req.Username, Email: req.Email}
	if err := user.SetPassword(req.Password); err != nil {
		return serverError(c, ac.Log, err, "Could not hash password")
	}

	if err := ac.Users.Create(c.UserContext(), &user); err != nil {
		switch {
		case apperrors.Is(err, apperrors.ErrUsernameTaken):
			return utils.Fail(c, fiber.StatusConflict, apperrors.Message(err, ""), fiber.Map{
				"errors": fiber.Map{"username": apperrors.Message(err, "")},
			})
		case apperrors.Is(err, apperrors.ErrEmailTaken):
			return utils.Fail(c, fiber.StatusConflict, apperrors.Message(err, ""), fiber.Map{
				"errors": fiber.Map{"email": apperrors.Message(err, "")},
			})
		}
		return respondError(c, ac.Log, err, "Could not create user")
	}

	ac.Log.Info().Uint("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	return utils.Created(c, "Congratulations, you are now a registered user!", fiber.Map{
		"user":     user,
		"redirect": "/login",
	})
}
