package controllers

import (
	"coursereview/backend/config"
	"coursereview/backend/models"
	"coursereview/backend/stores"
	"coursereview/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type OverviewController struct {
	Stores *stores.Stores
	Cfg    *config.Config
	Log    zerolog.Logger
}

func NewOverviewController(st *stores.Stores, cfg *config.Config, log zerolog.Logger) *OverviewController {
	return &OverviewController{Stores: st, Cfg: cfg, Log: log}
}

// Index godoc
// @Summary Landing page
// @Description Site counts, the requested course page and the filter choices
// @Tags overview
// @Produce json
// @Param page query int false "Page number"
// @Router / [get]
func (oc *OverviewController) Index(c *fiber.Ctx) error {
	ctx := c.UserContext()

	stats, err := siteStats(ctx, oc.Stores)
	if err != nil {
		return serverError(c, oc.Log, err, "Failed to load site statistics")
	}

	page, err := oc.Stores.Courses.Search(ctx, models.CourseFilter{}, utils.QueryPage(c), oc.Cfg.CoursesPerPage)
	if err != nil {
		return serverError(c, oc.Log, err, "Failed to fetch courses")
	}
	courses, err := withRatings(ctx, oc.Stores.Reviews, page.Items)
	if err != nil {
		return serverError(c, oc.Log, err, "Failed to fetch ratings")
	}

	return c.JSON(fiber.Map{
		"title":      "Home",
		"stats":      stats,
		"courses":    courses,
		"pagination": page.Pagination,
		"filters":    filterChoices(),
	})
}
