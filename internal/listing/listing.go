// Package listing implements the client-side list behaviors shared by the
// candidate and job screens: free-text filtering, stable sorting with
// locale-aware name comparison, and fixed-size pagination. All operations
// work on view models already fetched from the backend.
package listing

import (
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/talentpipe/talentpipe/pkg/models"
)

// DefaultPageSize is the number of rows shown per page.
const DefaultPageSize = 10

// SortOrder names a supported candidate list ordering.
type SortOrder string

const (
	SortNameAsc    SortOrder = "name_asc"
	SortNameDesc   SortOrder = "name_desc"
	SortNewest     SortOrder = "newest"
	SortOldest     SortOrder = "oldest"
	SortStatusAsc  SortOrder = "status_asc"
	SortStatusDesc SortOrder = "status_desc"
)

// collator compares names case-insensitively with diacritics folded, so
// "Álvaro" sorts next to "Alvaro" rather than after "Zoe".
var collator = collate.New(language.Und, collate.IgnoreCase, collate.IgnoreDiacritics)

// SortCandidates orders the slice in place. The sort is stable: rows that
// compare equal keep their incoming relative order, so repeated re-sorts do
// not shuffle ties.
func SortCandidates(views []*models.CandidateView, order SortOrder) {
	var less func(a, b *models.CandidateView) bool
	switch order {
	case SortNameDesc:
		less = func(a, b *models.CandidateView) bool { return collator.CompareString(a.Name, b.Name) > 0 }
	case SortNewest:
		less = func(a, b *models.CandidateView) bool { return a.CreatedAt.After(b.CreatedAt) }
	case SortOldest:
		less = func(a, b *models.CandidateView) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortStatusAsc:
		less = func(a, b *models.CandidateView) bool { return a.Status < b.Status }
	case SortStatusDesc:
		less = func(a, b *models.CandidateView) bool { return a.Status > b.Status }
	default:
		less = func(a, b *models.CandidateView) bool { return collator.CompareString(a.Name, b.Name) < 0 }
	}
	sort.SliceStable(views, func(i, j int) bool { return less(views[i], views[j]) })
}

// Filter describes the candidate list filter controls.
type Filter struct {
	// Query matches case-insensitively against name, email and position.
	Query string
	// Status restricts to one display status when non-empty.
	Status models.CandidateStatus
}

// FilterCandidates returns the rows matching the filter, preserving order.
func FilterCandidates(views []*models.CandidateView, f Filter) []*models.CandidateView {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]*models.CandidateView, 0, len(views))
	for _, v := range views {
		if f.Status != "" && v.Status != f.Status {
			continue
		}
		if query != "" && !matchesQuery(v, query) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func matchesQuery(v *models.CandidateView, query string) bool {
	return strings.Contains(strings.ToLower(v.Name), query) ||
		strings.Contains(strings.ToLower(v.Email), query) ||
		strings.Contains(strings.ToLower(v.Position), query)
}

// Page is one window of a paginated list.
type Page[T any] struct {
	Items      []T
	Number     int
	TotalPages int
	TotalItems int
}

// Paginate slices out the requested 1-indexed page. Pages beyond the last
// come back empty rather than erroring, so a filter change that shrinks the
// list cannot fault the caller.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	total := len(items)
	totalPages := (total + size - 1) / size
	start := (page - 1) * size
	if start >= total {
		return Page[T]{Number: page, TotalPages: totalPages, TotalItems: total}
	}
	end := start + size
	if end > total {
		end = total
	}
	return Page[T]{Items: items[start:end], Number: page, TotalPages: totalPages, TotalItems: total}
}

// Debouncer coalesces bursts of calls into one, firing only after the input
// has been quiet for the configured delay. Used to hold back search requests
// while the user is still typing.
type Debouncer struct {
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer returns a debouncer with the given quiet period.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the quiet period, cancelling any pending call.
func (d *Debouncer) Trigger(fn func()) {
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending call.
func (d *Debouncer) Stop() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Generation guards against out-of-order responses: each new request takes a
// ticket, and a response is applied only if its ticket is still current.
// Safe for concurrent use, so the requesting goroutine and the response
// handler need no shared lock.
type Generation struct {
	current atomic.Uint64
}

// Next invalidates all outstanding tickets and issues a fresh one.
func (g *Generation) Next() uint64 {
	return g.current.Add(1)
}

// Current reports whether the ticket is still the latest issued.
func (g *Generation) Current(ticket uint64) bool {
	return ticket == g.current.Load()
}
