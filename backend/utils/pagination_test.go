package utils

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageWindow(t *testing.T) {
	cases := []struct {
		name       string
		page, size int
		total      int64
		wantOffset int
		wantOK     bool
	}{
		{"first page", 1, 9, 20, 0, true},
		{"last partial page", 3, 9, 20, 18, true},
		{"past the end", 4, 9, 20, 0, false},
		{"far past the end", 999, 9, 5, 0, false},
		{"zero page", 0, 9, 20, 0, false},
		{"negative page", -2, 9, 20, 0, false},
		{"empty catalog", 1, 9, 0, 0, false},
		{"exact boundary", 2, 10, 10, 0, false},
		{"max int page", math.MaxInt, 9, 5, 0, false},
		{"page whose offset wraps negative", 1024819115206086202, 9, 5, 0, false},
		{"huge page in large catalog", math.MaxInt, 9, math.MaxInt64, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			offset, ok := PageWindow(tc.page, tc.size, tc.total)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantOffset, offset)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 9))
	assert.Equal(t, 1, TotalPages(9, 9))
	assert.Equal(t, 2, TotalPages(10, 9))
	assert.Equal(t, 0, TotalPages(10, 0))
	assert.Equal(t, int(math.MaxInt64/9+1), TotalPages(math.MaxInt64, 9))
}

func TestQueryPage(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"page": QueryPage(c)})
	})

	for query, want := range map[string]float64{
		"":           1,
		"?page=3":    3,
		"?page=-1":   -1,
		"?page=nope": 1,
	} {
		resp, err := app.Test(httptest.NewRequest("GET", "/"+query, nil))
		require.NoError(t, err)

		var body map[string]float64
		require.NoError(t, decodeJSON(resp.Body, &body))
		assert.Equal(t, want, body["page"], query)
	}
}
