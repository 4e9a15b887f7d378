package pagination

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCursor(t *testing.T) {
	// Test case 1: Standard values
	c := Cursor{Date: time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC), ID: "txn|with|pipes"}

	token := EncodeCursor(c)
	assert.NotEmpty(t, token, "Token should not be empty")

	decoded, err := DecodeCursor(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, c, decoded, "Cursor should match after decode")

	// Test case 2: Zero time value
	zero := Cursor{ID: "t1"}
	decodedZero, err := DecodeCursor(EncodeCursor(zero))
	assert.NoError(t, err, "Decoding zero time should not return an error")
	assert.Equal(t, zero, decodedZero, "Zero cursor should match after decode")
}

func TestDecodeCursorError(t *testing.T) {
	// Test invalid base64
	_, err := DecodeCursor("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Test invalid format (missing separator)
	_, err = DecodeCursor("MjAyMy0wNS0xNVQwMDowMDowMFo=") // "2023-05-15T00:00:00Z"
	assert.Error(t, err, "Should return an error for invalid token format")
	assert.Contains(t, err.Error(), "split", "Error should mention splitting issue")

	// Test invalid date format
	_, err = DecodeCursor("bm90YWRhdGV8dDE=") // "notadate|t1"
	assert.Error(t, err, "Should return an error for invalid date format")
	assert.Contains(t, err.Error(), "date parse", "Error should mention date parsing issue")
}

type row struct {
	id   string
	date time.Time
}

func rowKey(r row) Cursor { return Cursor{Date: r.date, ID: r.id} }

func TestPage(t *testing.T) {
	base := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]row, 5)
	for i := range rows {
		rows[i] = row{id: "t" + strconv.Itoa(i), date: base.AddDate(0, 0, -i)}
	}

	first, next := Page(rows, 2, nil, rowKey)
	assert.Equal(t, rows[:2], first)
	require.NotNil(t, next)
	assert.Equal(t, "t1", next.ID)

	second, next := Page(rows, 2, next, rowKey)
	assert.Equal(t, rows[2:4], second)
	require.NotNil(t, next)

	last, next := Page(rows, 2, next, rowKey)
	assert.Equal(t, rows[4:], last)
	assert.Nil(t, next, "last page should not have a next token")

	exact, next := Page(rows, 5, nil, rowKey)
	assert.Len(t, exact, 5)
	assert.Nil(t, next)

	// A cursor for a row that is gone still resumes from its position.
	resumed, _ := Page(rows, 2, &Cursor{Date: base.AddDate(0, 0, -1).Add(time.Hour), ID: "gone"}, rowKey)
	assert.Equal(t, rows[1:3], resumed)

	empty, next := Page(rows, 2, &Cursor{ID: "missing"}, rowKey)
	assert.Empty(t, empty)
	assert.Nil(t, next)
}

func TestSortNewestFirst(t *testing.T) {
	base := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	rows := []row{
		{id: "b", date: base.AddDate(-1, 0, 0)},
		{id: "d", date: base},
		{id: "c", date: base},
		{id: "a", date: base.AddDate(0, 0, 3)},
	}

	SortNewestFirst(rows, rowKey)

	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.id
	}
	assert.Equal(t, []string{"a", "c", "d", "b"}, ids)
}
