package models

import "time"

type Course struct {
	ID                  uint   `gorm:"primaryKey" json:"id"`
	Code                string `gorm:"size:20;unique;not null" json:"code"`
	Name                string `gorm:"size:200;not null" json:"name"`
	Department          string `gorm:"size:100" json:"department"`
	Category            string `gorm:"size:50;index" json:"category"`
	Subcategory         string `gorm:"size:50;index" json:"subcategory"`
	LanguageRequirement string `gorm:"size:50;index" json:"language_requirement"`

	// Category extras. Only the one matching Category is ever set.
	CARCategory     *string `gorm:"size:10" json:"car_category,omitempty"`
	ServiceLocation *string `gorm:"size:100" json:"service_location,omitempty"`
	LeadershipType  *string `gorm:"size:50" json:"leadership_type,omitempty"`
	LanguageType    *string `gorm:"size:50" json:"language_type,omitempty"`

	Reviews   []Review  `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// CourseFilter holds the catalog facets. Empty fields do not filter.
type CourseFilter struct {
	Query               string `query:"query"`
	Category            string `query:"category"`
	Subcategory         string `query:"subcategory"`
	LanguageRequirement string `query:"language_requirement"`
}

// Pagination describes where a page sits in a listing.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
	PrevPage   int   `json:"prev_page,omitempty"`
	NextPage   int   `json:"next_page,omitempty"`
}

// CoursePage is one page of a catalog listing.
type CoursePage struct {
	Items []Course `json:"items"`
	Pagination
}

// CourseWithRating pairs a listed course with its mean rating.
type CourseWithRating struct {
	Course    Course  `json:"course"`
	AvgRating float64 `json:"avg_rating"`
}

// Choice is a value/label pair offered by a select input.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var SubcategoryChoices = []Choice{
	{"A", "A: Human Nature, relation and development"},
	{"M", "M: Chinese culture and history"},
	{"N", "N: Culture, Organization, society, and globalization"},
	{"D", "D: Science, technology and environment"},
	{"English", "English"},
	{"Chinese", "Chinese"},
	{"Tomorrow's Leaders", "Tomorrow's Leaders"},
	{"Tango", "Tango"},
}

var LanguageRequirementChoices = []Choice{
	{"EW/ER", "English Reading/Writing"},
	{"CW/CR", "Chinese Reading/Writing"},
	{"None", "None"},
}

// DefaultLanguageRequirement is stored when a course is created without one.
const DefaultLanguageRequirement = "None"
