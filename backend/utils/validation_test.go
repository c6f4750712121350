package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signup struct {
	Username  string `json:"username" validate:"required,min=4,max=20"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Password2 string `json:"password2" validate:"required,eqfield=Password"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
}

func TestValidateOK(t *testing.T) {
	errs := Validate(signup{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "password123",
		Password2: "password123",
		Rating:    5,
	})
	assert.Nil(t, errs)
}

func TestValidateMessages(t *testing.T) {
	errs := Validate(signup{
		Username:  "al",
		Email:     "not-an-email",
		Password:  "short",
		Password2: "different",
		Rating:    9,
	})

	assert.Equal(t, "Field must be at least 4 characters long.", errs["username"])
	assert.Equal(t, "Invalid email address.", errs["email"])
	assert.Equal(t, "Field must be at least 8 characters long.", errs["password"])
	assert.Equal(t, "Field must be equal to password.", errs["password2"])
	assert.Equal(t, "Number must be at most 5.", errs["rating"])
}

func TestValidateRequired(t *testing.T) {
	errs := Validate(signup{})
	for _, field := range []string{"username", "email", "password", "password2", "rating"} {
		assert.Equal(t, "This field is required.", errs[field], field)
	}
}

func TestValidateGrade(t *testing.T) {
	type graded struct {
		Grade string `json:"grade" validate:"required,grade"`
	}

	for _, g := range []string{"A+", "B-", "F"} {
		assert.Nil(t, Validate(graded{Grade: g}), g)
	}
	for _, g := range []string{"E", "a", "A++"} {
		errs := Validate(graded{Grade: g})
		assert.Equal(t, "Grade must be one of A+, A, A-, B+, B, B-, C+, C, C-, D+, D, F.", errs["grade"], g)
	}
	assert.Equal(t, "This field is required.", Validate(graded{})["grade"])
}
