package models

import (
	"time"

	"gorm.io/gorm"
)

// Grades lists the accepted grade labels, best first.
var Grades = []string{"A+", "A", "A-", "B+", "B", "B-", "C+", "C", "C-", "D+", "D", "F"}

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CourseID  uint      `gorm:"not null;index" json:"course_id"`
	Course    *Course   `json:"-"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      *User     `json:"author,omitempty"`
	Timestamp time.Time `gorm:"<-:create;not null;index" json:"timestamp"`

	Grade  string `gorm:"size:5;not null" json:"grade"`
	Rating int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`

	Content                string `gorm:"type:text;not null" json:"content"`
	StudyLoad              string `gorm:"type:text;not null" json:"study_load"`
	TeacherReview          string `gorm:"type:text;not null" json:"teacher_review"`
	AlternativeTeacher     string `gorm:"type:text" json:"alternative_teacher"`
	ImprovementSuggestions string `gorm:"type:text" json:"improvement_suggestions"`

	// Service Learning only.
	Weather           *string `gorm:"type:text" json:"weather,omitempty"`
	LivingConditions  *string `gorm:"type:text" json:"living_conditions,omitempty"`
	ServiceExperience *string `gorm:"type:text" json:"service_experience,omitempty"`

	// Leadership and Language only.
	BetterGradeTeachers *string `gorm:"type:text" json:"better_grade_teachers,omitempty"`
}

// BeforeCreate stamps the review with the server clock.
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	r.Timestamp = time.Now().UTC()
	return nil
}

// IsValidGrade reports whether grade is one of Grades.
func IsValidGrade(grade string) bool {
	for _, g := range Grades {
		if g == grade {
			return true
		}
	}
	return false
}
