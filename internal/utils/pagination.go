package utils

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// Pagination holds pagination parameters.
type Pagination struct {
	Page   int
	Limit  int
	Offset int
}

// ParsePagination reads page and limit query params with sane defaults.
func ParsePagination(c *fiber.Ctx) Pagination {
	page := parseInt(c.Query("page", "1"), 1)
	limit := parseInt(c.Query("limit", strconv.Itoa(defaultPageLimit)), defaultPageLimit)
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if page <= 0 {
		page = 1
	}
	// keeps page*limit, and so the window end, within int
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}

	return Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// Paginate returns the window of items selected by pg. Offsets outside the
// slice give an empty window.
func Paginate[T any](items []T, pg Pagination) []T {
	if pg.Offset < 0 || pg.Offset >= len(items) || pg.Limit <= 0 {
		return []T{}
	}
	end := len(items)
	if pg.Limit < end-pg.Offset {
		end = pg.Offset + pg.Limit
	}
	return items[pg.Offset:end]
}

func parseInt(value string, fallback int) int {
	if parsed, err := strconv.Atoi(value); err == nil {
		return parsed
	}
	return fallback
}
