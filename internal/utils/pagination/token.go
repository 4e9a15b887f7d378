package pagination

import (
	"encoding/base64"
	"fmt"
	"slices"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// Cursor marks the last row of a returned page.
type Cursor struct {
	Date time.Time
	ID   string
}

// EncodeCursor creates an opaque token from the last row's date and id.
func EncodeCursor(c Cursor) string {
	tokenStr := fmt.Sprintf("%s|%s", c.Date.Format(timeFormat), c.ID)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeCursor parses a token produced by EncodeCursor.
func DecodeCursor(token string) (Cursor, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	date, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}

	return Cursor{Date: date, ID: parts[1]}, nil
}

// precedes reports whether c sorts before o in newest-first order. Rows with
// the same date are ordered by id.
func (c Cursor) precedes(o Cursor) bool {
	if !c.Date.Equal(o.Date) {
		return c.Date.After(o.Date)
	}
	return c.ID < o.ID
}

// SortNewestFirst orders rows by date descending, then id ascending, the order
// Page expects.
func SortNewestFirst[T any](rows []T, key func(T) Cursor) {
	slices.SortStableFunc(rows, func(a, b T) int {
		ka, kb := key(a), key(b)
		switch {
		case ka.precedes(kb):
			return -1
		case kb.precedes(ka):
			return 1
		}
		return 0
	})
}

// Page returns at most limit rows that sort after the cursor, with the cursor
// for the following page. rows must already be sorted by SortNewestFirst. key
// extracts a row's cursor.
func Page[T any](rows []T, limit int, after *Cursor, key func(T) Cursor) ([]T, *Cursor) {
	start := 0
	if after != nil {
		start = len(rows)
		for i, row := range rows {
			if after.precedes(key(row)) {
				start = i
				break
			}
		}
	}

	end := min(start+limit, len(rows))
	page := rows[start:end]
	if end == len(rows) || len(page) == 0 {
		return page, nil
	}
	next := key(page[len(page)-1])
	return page, &next
}
