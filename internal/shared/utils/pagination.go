package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tcworld/magadmin/internal/shared/constants"
)

// Pagination is a normalized page request.
type Pagination struct {
	Page     int
	PageSize int
}

// ValidatePagination clamps page to at least 1 and page size into
// [1, MaxPageSize], substituting defaults for non-positive values.
func ValidatePagination(page, pageSize int) Pagination {
	p := Pagination{Page: page, PageSize: pageSize}
	if p.Page < 1 {
		p.Page = constants.DefaultPage
	}
	switch {
	case p.PageSize < 1:
		p.PageSize = constants.DefaultPageSize
	case p.PageSize > constants.MaxPageSize:
		p.PageSize = constants.MaxPageSize
	}
	return p
}

// ParsePagination reads page and page_size from the query string.
// Unparseable values fall back to defaults rather than failing the request.
func ParsePagination(c *gin.Context) Pagination {
	return ValidatePagination(queryInt(c, "page"), queryInt(c, "page_size"))
}

func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return n
}

// TotalPages is never below 1 so an empty list still reports one page.
func TotalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
