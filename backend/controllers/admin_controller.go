package controllers

import (
	"strings"
	"unicode/utf8"

	"coursereview/backend/apperrors"
	"coursereview/backend/config"
	"coursereview/backend/middleware"
	"coursereview/backend/models"
	"coursereview/backend/stores"
	"coursereview/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

const minPasswordLength = 8

type AdminController struct {
	Stores *stores.Stores
	Cfg    *config.Config
	Log    zerolog.Logger
}

func NewAdminController(st *stores.Stores, cfg *config.Config, log zerolog.Logger) *AdminController {
	return &AdminController{Stores: st, Cfg: cfg, Log: log}
}

type AddCourseRequest struct {
	Code                string  `json:"code" validate:"required,max=20"`
	Name                string  `json:"name" validate:"required,max=200"`
	Department          string  `json:"department" validate:"required,max=100"`
	Category            string  `json:"category" validate:"required,max=50"`
	Subcategory         string  `json:"subcategory" validate:"max=50"`
	LanguageRequirement *string `json:"language_requirement" validate:"omitempty,max=50"`
	models.CourseExtras
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// check verifies the current password of u and the length of the new one.
func (r ChangePasswordRequest) check(u *models.User) error {
	if err := verifyPassword(u, r.CurrentPassword); err != nil {
		return apperrors.NewBadRequestError("Current password is incorrect")
	}
	if utf8.RuneCountInString(r.NewPassword) < minPasswordLength {
		return apperrors.NewBadRequestError("New password must be at least 8 characters long")
	}
	return nil
}

// Dashboard godoc
// @Summary Admin dashboard
// @Description Every course with the site counters
// @Tags admin
// @Produce json
// @Failure 403 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /admin [get]
func (ac *AdminController) Dashboard(c *fiber.Ctx) error {
	ctx := c.UserContext()

	courses, err := ac.Stores.Courses.All(ctx)
	if err != nil {
		return serverError(c, ac.Log, err, "Failed to fetch courses")
	}
	stats, err := siteStats(ctx, ac.Stores)
	if err != nil {
		return serverError(c, ac.Log, err, "Failed to load site statistics")
	}

	return c.JSON(fiber.Map{
		"title":      "Admin Panel",
		"courses":    courses,
		"stats":      stats,
		"categories": models.Categories(),
	})
}

// AddCourse godoc
// @Summary Create a course
// @Description Adds a course to the catalog. Extras outside the category are dropped.
// @Tags admin
// @Accept json
// @Produce json
// @Param input body AddCourseRequest true "Course"
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /add_course [post]
func (ac *AdminController) AddCourse(c *fiber.Ctx) error {
	var req AddCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	req.Code = strings.TrimSpace(req.Code)
	req.Name = strings.TrimSpace(req.Name)
	req.Department = strings.TrimSpace(req.Department)
	req.Category = strings.TrimSpace(req.Category)
	if errs := utils.Validate(req); errs != nil {
		return utils.ValidationError(c, errs)
	}

	course := models.Course{
		Code:                req.Code,
		Name:                req.Name,
		Department:          req.Department,
		Category:            req.Category,
		Subcategory:         req.Subcategory,
		LanguageRequirement: models.DefaultLanguageRequirement,
	}
	if req.LanguageRequirement != nil {
		course.LanguageRequirement = *req.LanguageRequirement
	}
	models.PolicyFor(course.Category).ApplyCourseExtras(&course, req.CourseExtras)

	if err := ac.Stores.Courses.Create(c.UserContext(), &course); err != nil {
		return respondError(c, ac.Log, err, "Failed to add course")
	}

	ac.Log.Info().Uint("course_id", course.ID).Str("code", course.Code).Msg("course added")
	return utils.Created(c, "Course added successfully", fiber.Map{"course_id": course.ID})
}

// ChangeAdminPassword godoc
// @Summary Change the admin password
// @Tags admin
// @Accept json
// @Produce json
// @Param input body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /change_admin_password [post]
func (ac *AdminController) ChangeAdminPassword(c *fiber.Ctx) error {
	admin := middleware.CurrentUser(c)
	if admin == nil || !admin.IsAdmin {
		return utils.HandleError(c, apperrors.NewForbiddenError("Permission denied"))
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := req.check(admin); err != nil {
		return utils.HandleError(c, err)
	}

	updated := *admin
	if err := updated.SetPassword(req.NewPassword); err != nil {
		return serverError(c, ac.Log, err, "Could not hash password")
	}
	if err := ac.Stores.Users.UpdatePassword(c.UserContext(), admin.ID, updated.PasswordHash); err != nil {
		return serverError(c, ac.Log, err, "Failed to change password")
	}

	ac.Log.Info().Uint("user_id", admin.ID).Msg("admin password changed")
	return utils.Success(c, "Password changed successfully")
}
