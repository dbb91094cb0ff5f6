package repositories

import (
	"strings"

	"gorm.io/gorm"
)

// ListParams narrows a list query. Filters maps column names to exact
// values; Search is matched case-insensitively against the repository's
// search columns.
type ListParams struct {
	Search  string
	Filters map[string]interface{}
	Limit   int
	Offset  int
}

func (p ListParams) apply(q *gorm.DB, searchColumns []string) *gorm.DB {
	for column, value := range p.Filters {
		q = q.Where(column+" = ?", value)
	}

	if search := strings.TrimSpace(p.Search); search != "" && len(searchColumns) > 0 {
		pattern := "%" + strings.ToLower(search) + "%"
		parts := make([]string, len(searchColumns))
		args := make([]interface{}, len(searchColumns))
		for i, column := range searchColumns {
			parts[i] = "LOWER(" + column + ") LIKE ?"
			args[i] = pattern
		}
		q = q.Where("("+strings.Join(parts, " OR ")+")", args...)
	}

	if p.Limit > 0 {
		q = q.Limit(p.Limit)
	}
	if p.Offset > 0 {
		q = q.Offset(p.Offset)
	}
	return q
}
