package controllers

import (
	"coursereview/backend/apperrors"
	"coursereview/backend/config"
	"coursereview/backend/models"
	"coursereview/backend/stores"
	"coursereview/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type CoursesController struct {
	Stores *stores.Stores
	Cfg    *config.Config
	Log    zerolog.Logger
}

func NewCoursesController(st *stores.Stores, cfg *config.Config, log zerolog.Logger) *CoursesController {
	return &CoursesController{Stores: st, Cfg: cfg, Log: log}
}

// listing renders one page of f with mean ratings attached.
func (cc *CoursesController) listing(c *fiber.Ctx, title string, f models.CourseFilter, extra fiber.Map) error {
	ctx := c.UserContext()

	page, err := cc.Stores.Courses.Search(ctx, f, utils.QueryPage(c), cc.Cfg.CoursesPerPage)
	if err != nil {
		return serverError(c, cc.Log, err, "Failed to fetch courses")
	}
	courses, err := withRatings(ctx, cc.Stores.Reviews, page.Items)
	if err != nil {
		return serverError(c, cc.Log, err, "Failed to fetch ratings")
	}

	body := fiber.Map{
		"title":      title,
		"courses":    courses,
		"pagination": page.Pagination,
	}
	for k, v := range extra {
		body[k] = v
	}
	return c.JSON(body)
}

// ListCourses godoc
// @Summary List courses
// @Description Paginated catalog with the mean rating of each course
// @Tags courses
// @Produce json
// @Param page query int false "Page number"
// @Router /courses [get]
func (cc *CoursesController) ListCourses(c *fiber.Ctx) error {
	return cc.listing(c, "All Courses", models.CourseFilter{}, nil)
}

// Search godoc
// @Summary Search courses
// @Description Faceted search over code, name, category, subcategory and language requirement
// @Tags courses
// @Produce json
// @Param query query string false "Substring of code or name"
// @Param category query string false "Category"
// @Param subcategory query string false "Subcategory"
// @Param language_requirement query string false "Language requirement"
// @Param page query int false "Page number"
// @Router /search [get]
func (cc *CoursesController) Search(c *fiber.Ctx) error {
	var f models.CourseFilter
	if err := c.QueryParser(&f); err != nil {
		return utils.BadRequest(c, "Invalid search parameters")
	}

	return cc.listing(c, "Search Results", f, fiber.Map{
		"query":                f.Query,
		"category":             f.Category,
		"subcategory":          f.Subcategory,
		"language_requirement": f.LanguageRequirement,
		"filters":              filterChoices(),
	})
}

// SelectCourseForReview lists the catalog for a signed-in user picking a
// course to review.
func (cc *CoursesController) SelectCourseForReview(c *fiber.Ctx) error {
	return cc.listing(c, "Select a Course to Review", models.CourseFilter{}, nil)
}

// CourseDetail godoc
// @Summary Course detail
// @Description Course, its reviews newest first and the grade and rating distributions
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Failure 404 {object} map[string]interface{}
// @Router /course/{id} [get]
func (cc *CoursesController) CourseDetail(c *fiber.Ctx) error {
	course, err := loadCourse(c, cc.Stores.Courses, "id")
	if err != nil {
		return respondError(c, cc.Log, err, "Failed to fetch course")
	}

	reviews, err := cc.Stores.Reviews.ListByCourse(c.UserContext(), course.ID)
	if err != nil {
		return serverError(c, cc.Log, err, "Failed to fetch reviews")
	}

	return c.JSON(fiber.Map{
		"title":   course.Name,
		"course":  course,
		"policy":  models.PolicyFor(course.Category),
		"reviews": reviews,
		"stats":   models.ComputeCourseStats(reviews),
	})
}

// loadCourse resolves the course named by the route parameter. A malformed
// id is reported as not found.
func loadCourse(c *fiber.Ctx, courses stores.CourseStore, param string) (*models.Course, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		return nil, apperrors.NewResourceNotFoundError("Course not found")
	}
	return courses.GetByID(c.UserContext(), uint(id))
}
