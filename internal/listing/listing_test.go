package listing

import (
	"fmt"
	"testing"
	"time"

	"github.com/talentpipe/talentpipe/pkg/models"
)

func makeCandidates(n int) []*models.CandidateView {
	views := make([]*models.CandidateView, 0, n)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		views = append(views, &models.CandidateView{
			ID:        fmt.Sprintf("%d", i+1),
			Name:      fmt.Sprintf("Candidate %02d", i+1),
			Email:     fmt.Sprintf("c%02d@example.com", i+1),
			Status:    models.CandidatePending,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	return views
}

func TestPaginate(t *testing.T) {
	items := makeCandidates(25)
	tests := []struct {
		page       int
		wantLen    int
		wantPages  int
		wantFirst  string
	}{
		{1, 10, 3, "1"},
		{2, 10, 3, "11"},
		{3, 5, 3, "21"},
		{4, 0, 3, ""},
		{0, 10, 3, "1"},
	}
	for _, tt := range tests {
		p := Paginate(items, tt.page, 10)
		if len(p.Items) != tt.wantLen {
			t.Errorf("page %d: got %d items, want %d", tt.page, len(p.Items), tt.wantLen)
		}
		if p.TotalPages != tt.wantPages {
			t.Errorf("page %d: total pages = %d, want %d", tt.page, p.TotalPages, tt.wantPages)
		}
		if tt.wantLen > 0 && p.Items[0].ID != tt.wantFirst {
			t.Errorf("page %d: first item = %q, want %q", tt.page, p.Items[0].ID, tt.wantFirst)
		}
		if p.TotalItems != 25 {
			t.Errorf("page %d: total items = %d", tt.page, p.TotalItems)
		}
	}
}

func TestPaginateEmpty(t *testing.T) {
	p := Paginate([]*models.CandidateView{}, 1, 10)
	if len(p.Items) != 0 || p.TotalPages != 0 || p.TotalItems != 0 {
		t.Errorf("unexpected page: %+v", p)
	}
}

func TestSortNameOrders(t *testing.T) {
	views := []*models.CandidateView{
		{ID: "1", Name: "Zoe Santos"},
		{ID: "2", Name: "Álvaro Costa"},
		{ID: "3", Name: "alice Martins"},
	}
	SortCandidates(views, SortNameAsc)
	asc := []string{views[0].ID, views[1].ID, views[2].ID}
	if asc[0] != "3" || asc[1] != "2" || asc[2] != "1" {
		t.Errorf("name_asc order = %v", asc)
	}
	SortCandidates(views, SortNameDesc)
	if views[0].ID != "1" || views[2].ID != "3" {
		t.Errorf("name_desc did not reverse name_asc: %s %s %s", views[0].ID, views[1].ID, views[2].ID)
	}
}

func TestSortStableOnTies(t *testing.T) {
	views := []*models.CandidateView{
		{ID: "a", Name: "Same Name"},
		{ID: "b", Name: "Same Name"},
		{ID: "c", Name: "Same Name"},
	}
	SortCandidates(views, SortNameAsc)
	if views[0].ID != "a" || views[1].ID != "b" || views[2].ID != "c" {
		t.Errorf("tie order changed: %s %s %s", views[0].ID, views[1].ID, views[2].ID)
	}
}

func TestSortByDate(t *testing.T) {
	views := makeCandidates(3)
	SortCandidates(views, SortNewest)
	if views[0].ID != "3" {
		t.Errorf("newest first = %s", views[0].ID)
	}
	SortCandidates(views, SortOldest)
	if views[0].ID != "1" {
		t.Errorf("oldest first = %s", views[0].ID)
	}
}

func TestFilterCandidates(t *testing.T) {
	views := []*models.CandidateView{
		{ID: "1", Name: "Ada Lovelace", Email: "ada@example.com", Position: "Developer", Status: models.CandidatePending},
		{ID: "2", Name: "Grace Hopper", Email: "grace@example.com", Position: "Manager", Status: models.CandidateApproved},
		{ID: "3", Name: "Alan Turing", Email: "alan@example.com", Position: "Developer", Status: models.CandidateRejected},
	}
	got := FilterCandidates(views, Filter{Query: "developer"})
	if len(got) != 2 {
		t.Fatalf("position query matched %d rows", len(got))
	}
	got = FilterCandidates(views, Filter{Query: "GRACE"})
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("case-insensitive name query failed: %v", got)
	}
	got = FilterCandidates(views, Filter{Status: models.CandidateRejected})
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("status filter failed")
	}
	got = FilterCandidates(views, Filter{Query: "developer", Status: models.CandidatePending})
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("combined filter failed")
	}
	got = FilterCandidates(views, Filter{Query: "nobody"})
	if len(got) != 0 {
		t.Fatalf("no-match query returned rows")
	}
}

func TestDebouncerCoalesces(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()
	fired := make(chan int, 10)
	for i := 0; i < 5; i++ {
		n := i
		d.Trigger(func() { fired <- n })
		time.Sleep(5 * time.Millisecond)
	}
	select {
	case n := <-fired:
		if n != 4 {
			t.Errorf("fired with %d, want the last trigger", n)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("debounced call never fired")
	}
	select {
	case n := <-fired:
		t.Errorf("extra fire %d", n)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestGenerationDiscardsStale(t *testing.T) {
	var g Generation
	first := g.Next()
	second := g.Next()
	if g.Current(first) {
		t.Error("stale ticket still current")
	}
	if !g.Current(second) {
		t.Error("latest ticket not current")
	}
}

func TestGenerationConcurrent(t *testing.T) {
	// The issuing goroutine and the response handler check tickets without
	// any shared lock, so Next and Current must be safe to call together.
	var g Generation
	stale := g.Next()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			g.Next()
		}
	}()
	for i := 0; i < 1000; i++ {
		g.Current(stale)
	}
	<-done
	if g.Current(stale) {
		t.Error("ticket issued before later Next calls still current")
	}
}
