package db

import (
	"database/sql"
	"fmt"
)

// PagedResult holds one page of results along with the totals the
// pagination controls need.
type PagedResult[T any] struct {
	Items      []T
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

const (
	DefaultPageSize = 25
	MaxPageSize     = 200
)

// NormalizePageSize clamps size to a valid range.
func NormalizePageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

// TotalPages computes how many pages a result set spans. Zero rows is
// still one (empty) page.
func TotalPages(total, pageSize int) int {
	if total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// ClampPage keeps a requested page within [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// pagedQuery runs countQuery to size the result set, clamps the requested
// page, then fetches that page via baseQuery with LIMIT/OFFSET appended.
// baseQuery must already carry its ORDER BY clause.
func pagedQuery[T any](
	conn *sql.DB,
	countQuery string,
	baseQuery string,
	args []any,
	page, pageSize int,
	scanRow func(*sql.Rows) (T, error),
) (*PagedResult[T], error) {
	pageSize = NormalizePageSize(pageSize)

	var total int
	if err := conn.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count query: %w", err)
	}

	totalPages := TotalPages(total, pageSize)
	page = ClampPage(page, totalPages)
	offset := (page - 1) * pageSize

	query := fmt.Sprintf("%s LIMIT %d OFFSET %d", baseQuery, pageSize, offset)
	rows, err := conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("page query: %w", err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return &PagedResult[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
