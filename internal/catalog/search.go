package catalog

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/yigit/grantsphere/internal/app/models"
)

// DefaultSearchLimit caps the number of search suggestions
const DefaultSearchLimit = 5

// Search returns up to limit records whose name contains query, ignoring
// case, in source order. A blank query yields no results.
func Search(records []*models.Scholarship, query string, limit int) []*models.Scholarship {
	out := make([]*models.Scholarship, 0, DefaultSearchLimit)
	if strings.TrimSpace(query) == "" {
		return out
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	fold := cases.Fold()
	needle := fold.String(query)
	for _, rec := range records {
		if rec == nil {
			continue
		}
		if strings.Contains(fold.String(rec.Name), needle) {
			out = append(out, rec)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// Key is a keyboard key understood by the search dropdown
type Key string

// Dropdown keys
const (
	KeyArrowDown Key = "ArrowDown"
	KeyArrowUp   Key = "ArrowUp"
	KeyEnter     Key = "Enter"
	KeyEscape    Key = "Escape"
)

// IsValid reports whether k is a handled key
func (k Key) IsValid() bool {
	switch k {
	case KeyArrowDown, KeyArrowUp, KeyEnter, KeyEscape:
		return true
	}
	return false
}

// SearchBox is the state of the search input and its suggestion dropdown.
// Highlight is -1 when nothing is highlighted.
type SearchBox struct {
	Query     string
	Results   []*models.Scholarship
	Open      bool
	Highlight int
	limit     int
}

// NewSearchBox creates an empty search box
func NewSearchBox(limit int) *SearchBox {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	return &SearchBox{Results: []*models.Scholarship{}, Highlight: -1, limit: limit}
}

// SetQuery recomputes suggestions for a new query and resets the highlight
func (b *SearchBox) SetQuery(records []*models.Scholarship, query string) {
	b.Query = query
	b.Results = Search(records, query, b.limit)
	b.Open = len(b.Results) > 0
	b.Highlight = -1
}

// NotFound reports whether a non-empty query matched nothing
func (b *SearchBox) NotFound() bool {
	return b.Query != "" && len(b.Results) == 0
}

// Focus reopens the dropdown when there are suggestions to show
func (b *SearchBox) Focus() {
	if len(b.Results) > 0 {
		b.Open = true
	}
}

// Dismiss closes the dropdown without touching the query or selection
func (b *SearchBox) Dismiss() {
	b.Open = false
}

// Press applies a key to the dropdown. It returns the committed record when
// Enter is pressed on a highlighted suggestion, otherwise nil. Keys are
// ignored while the dropdown is closed.
func (b *SearchBox) Press(k Key) *models.Scholarship {
	if !b.Open || len(b.Results) == 0 {
		return nil
	}

	n := len(b.Results)
	switch k {
	case KeyArrowDown:
		if b.Highlight < n-1 {
			b.Highlight++
		} else {
			b.Highlight = 0
		}
	case KeyArrowUp:
		if b.Highlight > 0 {
			b.Highlight--
		} else {
			b.Highlight = n - 1
		}
	case KeyEnter:
		if b.Highlight >= 0 && b.Highlight < n {
			rec := b.Results[b.Highlight]
			b.Commit(rec)
			return rec
		}
	case KeyEscape:
		b.Dismiss()
	}
	return nil
}

// Commit puts the chosen record's name into the input and closes the dropdown
func (b *SearchBox) Commit(rec *models.Scholarship) {
	if rec == nil {
		return
	}
	b.Query = rec.Name
	b.Open = false
	b.Highlight = -1
}
