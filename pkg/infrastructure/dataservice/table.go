package dataservice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Query builds one table operation in the service's filter syntax
// (col=eq.value, col=ilike.*term*, order=col.desc).
type Query struct {
	client *Client
	table  string
	params url.Values
}

func (c *Client) Table(name string) *Query {
	return &Query{client: c, table: name, params: url.Values{}}
}

func (q *Query) Select(columns string) *Query {
	q.params.Set("select", columns)
	return q
}

func (q *Query) Eq(column string, value any) *Query {
	q.params.Set(column, "eq."+fmt.Sprint(value))
	return q
}

// Ilike accepts %-wildcards and rewrites them to the service's * syntax.
func (q *Query) Ilike(column, pattern string) *Query {
	q.params.Set(column, "ilike."+strings.ReplaceAll(pattern, "%", "*"))
	return q
}

func (q *Query) OrderBy(column string, descending bool) *Query {
	direction := "asc"
	if descending {
		direction = "desc"
	}
	q.params.Set("order", column+"."+direction)
	return q
}

func (q *Query) path() string {
	return "/rest/v1/" + q.table
}

// Get fetches the matching rows into out, which must unmarshal from a JSON
// array.
func (q *Query) Get(ctx context.Context, out any) error {
	return q.client.do(ctx, http.MethodGet, q.path(), q.params, nil, nil, out)
}

// GetSingle fetches the first matching row into out, or ErrNoRows.
func (q *Query) GetSingle(ctx context.Context, out any) error {
	var rows []json.RawMessage
	if err := q.Get(ctx, &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return ErrNoRows
	}
	return json.Unmarshal(rows[0], out)
}

// Insert writes rows; when returning is non-nil the inserted representation
// is decoded into it (a pointer to a slice).
func (q *Query) Insert(ctx context.Context, rows, returning any) error {
	headers := http.Header{}
	if returning != nil {
		headers.Set("Prefer", "return=representation")
	} else {
		headers.Set("Prefer", "return=minimal")
	}
	return q.client.do(ctx, http.MethodPost, q.path(), q.params, headers, rows, returning)
}

// Update patches the rows selected by the query's filters.
func (q *Query) Update(ctx context.Context, patch any) error {
	return q.client.do(ctx, http.MethodPatch, q.path(), q.params, nil, patch, nil)
}

// Delete removes the rows selected by the query's filters.
func (q *Query) Delete(ctx context.Context) error {
	return q.client.do(ctx, http.MethodDelete, q.path(), q.params, nil, nil, nil)
}
