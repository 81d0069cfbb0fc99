package model

// Cursor identifies the next page to fetch. A nil cursor means there are
// no further pages.
type Cursor *int

// InitialCursor returns the cursor of the first page.
func InitialCursor() Cursor {
	page := 0
	return &page
}

// PageCursor returns a cursor pointing at page n.
func PageCursor(n int) Cursor {
	return &n
}

// Page is one slice of a paginated result.
type Page[T any] struct {
	Data     []T
	NextPage Cursor
}

// HasMore reports whether another page follows this one.
func (p Page[T]) HasMore() bool {
	return p.NextPage != nil
}
