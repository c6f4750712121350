package models

import "strconv"

// Bucket is one bar of a histogram.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Histogram is an ordered set of labelled counters.
type Histogram []Bucket

func newHistogram(labels []string) Histogram {
	h := make(Histogram, len(labels))
	for i, l := range labels {
		h[i] = Bucket{Label: l}
	}
	return h
}

// add increments label and reports whether it was known.
func (h Histogram) add(label string) bool {
	for i := range h {
		if h[i].Label == label {
			h[i].Count++
			return true
		}
	}
	return false
}

// Count returns the counter for label, zero when label is unknown.
func (h Histogram) Count(label string) int {
	for _, b := range h {
		if b.Label == label {
			return b.Count
		}
	}
	return 0
}

func (h Histogram) Total() int {
	total := 0
	for _, b := range h {
		total += b.Count
	}
	return total
}

// RatingLabels are the histogram labels for ratings 1..5.
var RatingLabels = func() []string {
	labels := make([]string, 0, MaxRating-MinRating+1)
	for r := MinRating; r <= MaxRating; r++ {
		labels = append(labels, strconv.Itoa(r))
	}
	return labels
}()

// CourseStats is derived from a course's reviews on every request.
type CourseStats struct {
	ReviewCount        int       `json:"review_count"`
	AverageRating      float64   `json:"avg_rating"`
	GradeDistribution  Histogram `json:"grade_distribution"`
	RatingDistribution Histogram `json:"rating_distribution"`
}

// ComputeCourseStats aggregates reviews. The average covers every review and
// is 0 when there are none; grades and ratings outside the known labels are
// left out of the distributions.
func ComputeCourseStats(reviews []Review) CourseStats {
	stats := CourseStats{
		ReviewCount:        len(reviews),
		GradeDistribution:  newHistogram(Grades),
		RatingDistribution: newHistogram(RatingLabels),
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
		stats.GradeDistribution.add(r.Grade)
		stats.RatingDistribution.add(strconv.Itoa(r.Rating))
	}

	if len(reviews) > 0 {
		stats.AverageRating = float64(sum) / float64(len(reviews))
	}

	return stats
}

// SiteStats are the catalog-wide counters shown on the landing and admin pages.
type SiteStats struct {
	CoursesCount int64 `json:"courses_count"`
	ReviewsCount int64 `json:"reviews_count"`
	UsersCount   int64 `json:"users_count"`
}
