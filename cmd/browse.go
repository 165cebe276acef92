package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/talentpipe/talentpipe/internal/app"
	"github.com/talentpipe/talentpipe/internal/listing"
	"github.com/talentpipe/talentpipe/internal/mapping"
	"github.com/talentpipe/talentpipe/pkg/models"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse candidates interactively",
	Long:  "Interactive candidate list with search, status filter, and paging",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireLogin(cmd)
		if err != nil {
			return err
		}
		return runBrowser(cmd, application)
	},
}

// browserState is the interactive list: the full fetched set plus the
// current filter, sort, and page.
type browserState struct {
	all    []*models.CandidateView
	filter listing.Filter
	order  listing.SortOrder
	page   int
	gen    listing.Generation
}

// searchResult pairs a response with the ticket of the request that produced
// it, so the loop can reject sets a newer search has superseded.
type searchResult struct {
	ticket uint64
	views  []*models.CandidateView
}

func (s *browserState) visible() listing.Page[*models.CandidateView] {
	views := listing.FilterCandidates(s.all, s.filter)
	listing.SortCandidates(views, s.order)
	return listing.Paginate(views, s.page, listing.DefaultPageSize)
}

func runBrowser(cmd *cobra.Command, application *app.App) error {
	records, err := application.API.ListCandidates(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetch candidates: %w", err)
	}
	state := &browserState{
		all:   mapping.CandidatesToView(records),
		order: listing.SortNameAsc,
		page:  1,
	}

	// Typed searches go through the backend after a quiet period, so a
	// burst of edits costs one request. Responses for superseded queries
	// are discarded.
	debouncer := listing.NewDebouncer(300 * time.Millisecond)
	defer debouncer.Stop()
	results := make(chan searchResult, 1)

	for {
		page := state.visible()
		fmt.Println(titleStyle.Render("Candidate Browser"))
		if state.filter.Query != "" {
			fmt.Printf("%s %q\n", labelStyle.Render("Search:"), state.filter.Query)
		}
		if state.filter.Status != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Status:"), renderStatus(string(state.filter.Status)))
		}
		if page.TotalItems == 0 {
			fmt.Println("No candidates match.")
		}
		for i, v := range page.Items {
			fmt.Printf("%2d. %-30s %-24s %s\n", i+1, v.Name, v.Position, renderStatus(string(v.Status)))
		}
		fmt.Println(dimStyle.Render(fmt.Sprintf("Page %d of %d (%d candidates)", page.Number, page.TotalPages, page.TotalItems)))
		fmt.Println("\n[n]ext [p]rev page, [/text] search, [s status] filter, [number] view, [c]lear, [q]uit")
		fmt.Print("> ")

		input, _ := stdin.ReadString('\n')
		input = strings.TrimSpace(input)

		switch {
		case input == "q" || input == "Q":
			return nil
		case input == "n":
			if page.Number < page.TotalPages {
				state.page++
			}
		case input == "p":
			if state.page > 1 {
				state.page--
			}
		case input == "c":
			state.filter = listing.Filter{}
			state.page = 1
		case strings.HasPrefix(input, "/"):
			query := strings.TrimPrefix(input, "/")
			state.filter.Query = query
			state.page = 1
			ticket := state.gen.Next()
			debouncer.Trigger(func() {
				found, err := application.API.SearchCandidates(cmd.Context(), query, "")
				if err != nil || !state.gen.Current(ticket) {
					return
				}
				select {
				case results <- searchResult{ticket: ticket, views: mapping.CandidatesToView(found)}:
				default:
				}
			})
			select {
			case res := <-results:
				if state.gen.Current(res.ticket) {
					state.all = res.views
				}
			case <-time.After(2 * time.Second):
			}
		case strings.HasPrefix(input, "s "):
			state.filter.Status = models.CandidateStatus(strings.TrimSpace(strings.TrimPrefix(input, "s ")))
			state.page = 1
		default:
			n, err := strconv.Atoi(input)
			if err != nil || n < 1 || n > len(page.Items) {
				fmt.Println("Invalid selection")
				continue
			}
			showCandidateDetails(page.Items[n-1])
		}
	}
}

func showCandidateDetails(v *models.CandidateView) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println(titleStyle.Render(v.Name))
	fmt.Printf("%s %s\n", labelStyle.Render("Status:"), renderStatus(string(v.Status)))
	fmt.Printf("%s %s\n", labelStyle.Render("Position:"), v.Position)
	fmt.Printf("%s %s\n", labelStyle.Render("Email:"), v.Email)
	if v.Phone != "" {
		fmt.Printf("%s %s\n", labelStyle.Render("Phone:"), v.Phone)
	}
	if v.Summary != "" {
		fmt.Printf("%s %s\n", labelStyle.Render("Summary:"), v.Summary)
	}
	fmt.Println(strings.Repeat("=", 60))
}

func init() {
	candidateCmd.AddCommand(browseCmd)
}
