package models

import "slices"

// Course categories.
const (
	CategoryCAR             = "CAR"
	CategoryServiceLearning = "Service Learning"
	CategoryLeadership      = "Leadership"
	CategoryLanguage        = "Language"
)

// CourseField names a category-specific Course attribute.
type CourseField string

const (
	FieldCARCategory     CourseField = "car_category"
	FieldServiceLocation CourseField = "service_location"
	FieldLeadershipType  CourseField = "leadership_type"
	FieldLanguageType    CourseField = "language_type"
)

// ReviewField names a category-specific Review attribute.
type ReviewField string

const (
	FieldWeather             ReviewField = "weather"
	FieldLivingConditions    ReviewField = "living_conditions"
	FieldServiceExperience   ReviewField = "service_experience"
	FieldBetterGradeTeachers ReviewField = "better_grade_teachers"
)

// CategoryPolicy lists the extra fields a category carries.
type CategoryPolicy struct {
	Category     string        `json:"category"`
	Label        string        `json:"label"`
	CourseFields []CourseField `json:"course_fields"`
	ReviewFields []ReviewField `json:"review_fields"`
}

var categoryPolicies = []CategoryPolicy{
	{
		Category:     CategoryCAR,
		Label:        "Cluster Area Requirement",
		CourseFields: []CourseField{FieldCARCategory},
		ReviewFields: []ReviewField{},
	},
	{
		Category:     CategoryServiceLearning,
		Label:        "Service Learning",
		CourseFields: []CourseField{FieldServiceLocation},
		ReviewFields: []ReviewField{FieldWeather, FieldLivingConditions, FieldServiceExperience},
	},
	{
		Category:     CategoryLeadership,
		Label:        "Leadership",
		CourseFields: []CourseField{FieldLeadershipType},
		ReviewFields: []ReviewField{FieldBetterGradeTeachers},
	},
	{
		Category:     CategoryLanguage,
		Label:        "Language and Communication",
		CourseFields: []CourseField{FieldLanguageType},
		ReviewFields: []ReviewField{FieldBetterGradeTeachers},
	},
}

// Categories returns the policies of every known category in display order.
func Categories() []CategoryPolicy {
	out := make([]CategoryPolicy, len(categoryPolicies))
	for i, p := range categoryPolicies {
		out[i] = p.clone()
	}
	return out
}

// PolicyFor returns the policy of category. An unknown category yields a
// policy with no extra fields.
func PolicyFor(category string) CategoryPolicy {
	for _, p := range categoryPolicies {
		if p.Category == category {
			return p.clone()
		}
	}
	return CategoryPolicy{Category: category, CourseFields: []CourseField{}, ReviewFields: []ReviewField{}}
}

// clone copies the field lists so callers cannot reach the shared table.
func (p CategoryPolicy) clone() CategoryPolicy {
	p.CourseFields = slices.Clone(p.CourseFields)
	p.ReviewFields = slices.Clone(p.ReviewFields)
	return p
}

func (p CategoryPolicy) AppliesToCourse(field CourseField) bool {
	for _, f := range p.CourseFields {
		if f == field {
			return true
		}
	}
	return false
}

func (p CategoryPolicy) AppliesToReview(field ReviewField) bool {
	for _, f := range p.ReviewFields {
		if f == field {
			return true
		}
	}
	return false
}

// CourseExtras carries the submitted category-specific course values.
type CourseExtras struct {
	CARCategory     string `json:"car_category"`
	ServiceLocation string `json:"service_location"`
	LeadershipType  string `json:"leadership_type"`
	LanguageType    string `json:"language_type"`
}

// ReviewExtras carries the submitted category-specific review values.
type ReviewExtras struct {
	Weather             string `json:"weather" form:"weather" validate:"max=200"`
	LivingConditions    string `json:"living_conditions" form:"living_conditions" validate:"max=300"`
	ServiceExperience   string `json:"service_experience" form:"service_experience" validate:"max=300"`
	BetterGradeTeachers string `json:"better_grade_teachers" form:"better_grade_teachers" validate:"max=300"`
}

// ApplyCourseExtras copies the applicable extras onto c and clears the rest.
func (p CategoryPolicy) ApplyCourseExtras(c *Course, extras CourseExtras) {
	c.CARCategory = pick(p.AppliesToCourse(FieldCARCategory), extras.CARCategory)
	c.ServiceLocation = pick(p.AppliesToCourse(FieldServiceLocation), extras.ServiceLocation)
	c.LeadershipType = pick(p.AppliesToCourse(FieldLeadershipType), extras.LeadershipType)
	c.LanguageType = pick(p.AppliesToCourse(FieldLanguageType), extras.LanguageType)
}

// ApplyReviewExtras copies the applicable extras onto r and clears the rest.
func (p CategoryPolicy) ApplyReviewExtras(r *Review, extras ReviewExtras) {
	r.Weather = pick(p.AppliesToReview(FieldWeather), extras.Weather)
	r.LivingConditions = pick(p.AppliesToReview(FieldLivingConditions), extras.LivingConditions)
	r.ServiceExperience = pick(p.AppliesToReview(FieldServiceExperience), extras.ServiceExperience)
	r.BetterGradeTeachers = pick(p.AppliesToReview(FieldBetterGradeTeachers), extras.BetterGradeTeachers)
}

func pick(applies bool, value string) *string {
	if !applies {
		return nil
	}
	return &value
}
