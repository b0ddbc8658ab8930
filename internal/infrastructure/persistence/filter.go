package persistence

import (
	"strings"

	"github.com/flowstock/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// applyPagination applies page-based offset and limit to the query.
// A zero filter (non-positive page or page size) means no pagination:
// callers that need every row pass shared.Filter{}.
func applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	return query
}

// applyOrdering applies ordering from the filter, falling back to the
// given default order clause. OrderBy values are matched against the
// allowed column list to keep user input out of the ORDER BY clause.
func applyOrdering(query *gorm.DB, filter shared.Filter, allowed []string, defaultOrder string) *gorm.DB {
	if filter.OrderBy != "" && isAllowedColumn(filter.OrderBy, allowed) {
		dir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			dir = "DESC"
		}
		return query.Order(filter.OrderBy + " " + dir)
	}
	if defaultOrder != "" {
		return query.Order(defaultOrder)
	}
	return query
}

func isAllowedColumn(column string, allowed []string) bool {
	for _, a := range allowed {
		if a == column {
			return true
		}
	}
	return false
}
