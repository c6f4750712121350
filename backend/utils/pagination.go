package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const DefaultPage = 1

// PageWindow returns the offset of a 1-based page. ok is false when the page
// is below 1 or past the last item, in which case the page is empty.
func PageWindow(page, size int, total int64) (offset int, ok bool) {
	if page < 1 || size < 1 {
		return 0, false
	}
	// Compare page numbers first so (page-1)*size cannot overflow.
	if page > TotalPages(total, size) {
		return 0, false
	}
	return (page - 1) * size, true
}

// TotalPages returns the number of pages needed for total items.
func TotalPages(total int64, size int) int {
	if size < 1 || total <= 0 {
		return 0
	}
	return int((total-1)/int64(size) + 1)
}

// QueryPage reads the "page" query parameter. Non-numeric values fall back
// to the first page; out-of-range numbers are passed through unchanged.
func QueryPage(c *fiber.Ctx) int {
	page, err := strconv.Atoi(c.Query("page", strconv.Itoa(DefaultPage)))
	if err != nil {
		return DefaultPage
	}
	return page
}
