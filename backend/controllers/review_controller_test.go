package controllers_test

import (
	"testing"

	"coursereview/backend/apperrors"
	"coursereview/backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validReview() fiber.Map {
	return fiber.Map{
		"grade":          "A",
		"rating":         5,
		"content":        "Clear lectures and fair exams.",
		"study_load":     "About six hours a week.",
		"teacher_review": "Explains things patiently.",
	}
}

func TestReviewFormListsCategoryFields(t *testing.T) {
	h := newHarness(t)
	token := h.signIn(t, student())
	h.courses.On("GetByID", mock.Anything, uint(2)).Return(&hist101, nil)

	resp := h.do(t, "GET", "/submit_review/2", nil, token)
	require.Equal(t, fiber.StatusOK, resp.status)

	assert.Equal(t, []interface{}{"better_grade_teachers"}, resp.body["extra_fields"])
	assert.Len(t, resp.body["grades"], len(models.Grades))
	rating := resp.body["rating"].(map[string]interface{})
	assert.Equal(t, float64(1), rating["min"])
	assert.Equal(t, float64(5), rating["max"])
}

func TestSubmitReviewRequiresLogin(t *testing.T) {
	h := newHarness(t)

	resp := h.do(t, "POST", "/submit_review/1", validReview(), "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.status)
	h.reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitReviewKeepsOnlyApplicableExtras(t *testing.T) {
	h := newHarness(t)
	token := h.signIn(t, student())
	service := models.Course{ID: 3, Code: "SL100", Name: "Rural Service", Category: models.CategoryServiceLearning}
	h.courses.On("GetByID", mock.Anything, uint(3)).Return(&service, nil)
	h.reviews.On("Create", mock.Anything, mock.MatchedBy(func(r *models.Review) bool {
		return r.CourseID == 3 && r.UserID == 7 &&
			r.Weather != nil && *r.Weather == "Hot and humid" &&
			r.LivingConditions != nil && *r.LivingConditions == "" &&
			r.BetterGradeTeachers == nil
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Review).ID = 11
	}).Return(nil)

	payload := validReview()
	payload["weather"] = "Hot and humid"
	payload["better_grade_teachers"] = "Dr. Chan"

	resp := h.do(t, "POST", "/submit_review/3", payload, token)
	require.Equal(t, fiber.StatusCreated, resp.status)
	assert.Equal(t, "Your review has been submitted!", resp.body["message"])
	assert.Equal(t, float64(11), resp.body["review_id"])
	assert.Equal(t, "/course/3", resp.body["redirect"])
}

func TestSubmitReviewDropsExtrasForCAR(t *testing.T) {
	h := newHarness(t)
	token := h.signIn(t, student())
	h.courses.On("GetByID", mock.Anything, uint(1)).Return(&comp201, nil)
	h.reviews.On("Create", mock.Anything, mock.MatchedBy(func(r *models.Review) bool {
		return r.Weather == nil && r.LivingConditions == nil &&
			r.ServiceExperience == nil && r.BetterGradeTeachers == nil
	})).Return(nil)

	payload := validReview()
	payload["weather"] = "Sunny"
	payload["better_grade_teachers"] = "Dr. Chan"

	resp := h.do(t, "POST", "/submit_review/1", payload, token)
	assert.Equal(t, fiber.StatusCreated, resp.status)
}

func TestSubmitReviewValidation(t *testing.T) {
	h := newHarness(t)
	token := h.signIn(t, student())
	h.courses.On("GetByID", mock.Anything, uint(1)).Return(&comp201, nil)

	payload := validReview()
	payload["grade"] = "E"
	payload["rating"] = 6
	payload["content"] = "Too short"

	resp := h.do(t, "POST", "/submit_review/1", payload, token)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.status)
	errs := resp.body["errors"].(map[string]interface{})
	assert.Contains(t, errs, "grade")
	assert.Contains(t, errs, "rating")
	assert.Contains(t, errs, "content")
	assert.NotContains(t, errs, "study_load")
	h.reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitReviewUnknownCourse(t *testing.T) {
	h := newHarness(t)
	token := h.signIn(t, student())
	h.courses.On("GetByID", mock.Anything, uint(99)).Return(nil, apperrors.NewResourceNotFoundError("Course not found"))

	resp := h.do(t, "POST", "/submit_review/99", validReview(), token)
	assert.Equal(t, fiber.StatusNotFound, resp.status)
	assert.Equal(t, "Course not found", resp.body["message"])
}
