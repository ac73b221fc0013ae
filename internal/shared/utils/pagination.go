package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"labdesk/internal/shared/constants"
)

// Pagination holds parsed pagination parameters. Pages are zero-based.
type Pagination struct {
	Page     int
	PageSize int
}

// ParsePagination parses pagination parameters from the query string,
// applying defaults when absent. Bounds are validated by the use cases,
// not here: an explicit out-of-range value must surface as an
// invalid-argument error rather than being silently clamped.
func ParsePagination(c *gin.Context) Pagination {
	return Pagination{
		Page:     parseQueryInt(c, "page", constants.DefaultPage),
		PageSize: parseQueryInt(c, "size", constants.DefaultPageSize),
	}
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

// TotalPages calculates total pages for a given total count.
func TotalPages(total int64, pageSize int) int {
	if total == 0 || pageSize == 0 {
		return 1
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages == 0 {
		return 1
	}
	return pages
}
