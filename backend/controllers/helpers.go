package controllers

import (
	"context"
	"net/url"
	"strings"

	"coursereview/backend/apperrors"
	"coursereview/backend/models"
	"coursereview/backend/stores"
	"coursereview/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// serverError logs err and answers with a generic 500.
func serverError(c *fiber.Ctx, log zerolog.Logger, err error, message string) error {
	log.Error().Err(err).Str("path", c.Path()).Msg(message)
	return utils.InternalServerError(c, message)
}

// respondError answers known application errors with their own status and
// anything else with a logged 500.
func respondError(c *fiber.Ctx, log zerolog.Logger, err error, message string) error {
	if _, ok := utils.ErrorStatus(err); ok {
		return utils.HandleError(c, err)
	}
	return serverError(c, log, err, message)
}

// verifyPassword reports ErrInvalidCredentials unless plain matches u.
func verifyPassword(u *models.User, plain string) error {
	if u == nil || !u.CheckPassword(plain) {
		return apperrors.NewInvalidCredentialsError("Invalid username or password")
	}
	return nil
}

func siteStats(ctx context.Context, st *stores.Stores) (models.SiteStats, error) {
	var stats models.SiteStats
	var err error
	if stats.CoursesCount, err = st.Courses.Count(ctx); err != nil {
		return stats, err
	}
	if stats.ReviewsCount, err = st.Reviews.Count(ctx); err != nil {
		return stats, err
	}
	if stats.UsersCount, err = st.Users.Count(ctx); err != nil {
		return stats, err
	}
	return stats, nil
}

// withRatings attaches the mean rating to each course. Unreviewed courses get 0.
func withRatings(ctx context.Context, reviews stores.ReviewStore, courses []models.Course) ([]models.CourseWithRating, error) {
	out := make([]models.CourseWithRating, 0, len(courses))
	if len(courses) == 0 {
		return out, nil
	}

	ids := make([]uint, len(courses))
	for i, course := range courses {
		ids[i] = course.ID
	}
	avg, err := reviews.AverageRatings(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, course := range courses {
		out = append(out, models.CourseWithRating{Course: course, AvgRating: avg[course.ID]})
	}
	return out, nil
}

func filterChoices() fiber.Map {
	categories := make([]models.Choice, 0, len(models.Categories()))
	for _, p := range models.Categories() {
		categories = append(categories, models.Choice{Value: p.Category, Label: p.Label})
	}
	return fiber.Map{
		"categories":            categories,
		"subcategories":         models.SubcategoryChoices,
		"language_requirements": models.LanguageRequirementChoices,
	}
}

// safeRedirect returns next when it is a local path, otherwise "".
func safeRedirect(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return ""
	}
	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" {
		return ""
	}
	return next
}
