package controllers

import (
	"strconv"
	"strings"

	"coursereview/backend/config"
	"coursereview/backend/middleware"
	"coursereview/backend/models"
	"coursereview/backend/stores"
	"coursereview/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type ReviewsController struct {
	Stores *stores.Stores
	Cfg    *config.Config
	Log    zerolog.Logger
}

func NewReviewsController(st *stores.Stores, cfg *config.Config, log zerolog.Logger) *ReviewsController {
	return &ReviewsController{Stores: st, Cfg: cfg, Log: log}
}

// ReviewRequest is the review form. Extras that do not apply to the course's
// category are discarded before saving.
type ReviewRequest struct {
	Grade                  string `json:"grade" form:"grade" validate:"required,grade"`
	Rating                 int    `json:"rating" form:"rating" validate:"required,min=1,max=5"`
	Content                string `json:"content" form:"content" validate:"required,min=10,max=500"`
	StudyLoad              string `json:"study_load" form:"study_load" validate:"required,min=10,max=300"`
	TeacherReview          string `json:"teacher_review" form:"teacher_review" validate:"required,min=10,max=300"`
	AlternativeTeacher     string `json:"alternative_teacher" form:"alternative_teacher" validate:"max=300"`
	ImprovementSuggestions string `json:"improvement_suggestions" form:"improvement_suggestions" validate:"max=300"`
	models.ReviewExtras
}

func (r *ReviewRequest) normalize() {
	r.Grade = strings.TrimSpace(r.Grade)
	r.Content = strings.TrimSpace(r.Content)
	r.StudyLoad = strings.TrimSpace(r.StudyLoad)
	r.TeacherReview = strings.TrimSpace(r.TeacherReview)
	r.AlternativeTeacher = strings.TrimSpace(r.AlternativeTeacher)
	r.ImprovementSuggestions = strings.TrimSpace(r.ImprovementSuggestions)
	r.Weather = strings.TrimSpace(r.Weather)
	r.LivingConditions = strings.TrimSpace(r.LivingConditions)
	r.ServiceExperience = strings.TrimSpace(r.ServiceExperience)
	r.BetterGradeTeachers = strings.TrimSpace(r.BetterGradeTeachers)
}

func (rc *ReviewsController) course(c *fiber.Ctx) (*models.Course, error) {
	course, err := loadCourse(c, rc.Stores.Courses, "course_id")
	if err != nil {
		return nil, respondError(c, rc.Log, err, "Failed to fetch course")
	}
	return course, nil
}

// ReviewForm describes the review form for a course: grade choices, the
// rating range and the extra fields its category asks for.
func (rc *ReviewsController) ReviewForm(c *fiber.Ctx) error {
	course, err := rc.course(c)
	if course == nil {
		return err
	}

	policy := models.PolicyFor(course.Category)
	return c.JSON(fiber.Map{
		"title":        "Review " + course.Code,
		"course":       course,
		"grades":       models.Grades,
		"rating":       fiber.Map{"min": models.MinRating, "max": models.MaxRating},
		"extra_fields": policy.ReviewFields,
	})
}

// SubmitReview godoc
// @Summary Submit a review
// @Description Stores a review by the signed-in user for the course
// @Tags reviews
// @Accept json
// @Produce json
// @Param course_id path int true "Course ID"
// @Param input body ReviewRequest true "Review"
// @Success 201 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /submit_review/{course_id} [post]
func (rc *ReviewsController) SubmitReview(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return utils.Unauthorized(c, "Please log in to access this page.")
	}

	course, err := rc.course(c)
	if course == nil {
		return err
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse request body")
	}
	req.normalize()
	if errs := utils.Validate(req); errs != nil {
		return utils.ValidationError(c, errs)
	}

	review := models.Review{
		CourseID:               course.ID,
		UserID:                 user.ID,
		Grade:                  req.Grade,
		Rating:                 req.Rating,
		Content:                req.Content,
		StudyLoad:              req.StudyLoad,
		TeacherReview:          req.TeacherReview,
		AlternativeTeacher:     req.AlternativeTeacher,
		ImprovementSuggestions: req.ImprovementSuggestions,
	}
	models.PolicyFor(course.Category).ApplyReviewExtras(&review, req.ReviewExtras)

	if err := rc.Stores.Reviews.Create(c.UserContext(), &review); err != nil {
		return respondError(c, rc.Log, err, "Failed to save review")
	}

	rc.Log.Info().Uint("course_id", course.ID).Uint("user_id", user.ID).Msg("review submitted")
	return utils.Created(c, "Your review has been submitted!", fiber.Map{
		"review_id": review.ID,
		"redirect":  "/course/" + strconv.FormatUint(uint64(course.ID), 10),
	})
}
