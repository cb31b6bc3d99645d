package handler

import (
	"context"
	"net/http"

	"github.com/iho/matchedbet/internal/adapter/http/dto"
)

// DashboardTitle is the title of the landing page.
const DashboardTitle = "Matched Betting | Dashboard"

// DashboardStats defines the counters shown on the dashboard.
type DashboardStats interface {
	CountBookmakers(ctx context.Context) (int64, error)
	CountOpenBets(ctx context.Context) (int64, error)
}

// DashboardHandler serves the landing page.
type DashboardHandler struct {
	balances BalanceService
	stats    DashboardStats
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(balances BalanceService, stats DashboardStats) *DashboardHandler {
	return &DashboardHandler{balances: balances, stats: stats}
}

// Index returns the balances and headline counts.
func (h *DashboardHandler) Index(w http.ResponseWriter, r *http.Request) {
	ledger, err := h.balances.Balances(r.Context())
	if err != nil {
		writeDomainError(w, "failed to read balances", err)
		return
	}

	bookmakers, err := h.stats.CountBookmakers(r.Context())
	if err != nil {
		writeDomainError(w, "failed to count bookmakers", err)
		return
	}

	openBets, err := h.stats.CountOpenBets(r.Context())
	if err != nil {
		writeDomainError(w, "failed to count bets", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.DashboardResponse{
		Title:      DashboardTitle,
		Balances:   dto.BalancesFromDomain(ledger),
		Bookmakers: bookmakers,
		OpenBets:   openBets,
	})
}

// RedirectHome sends unknown paths to the dashboard.
func RedirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusFound)
}

// BookmakerCounter counts bookmakers.
type BookmakerCounter interface {
	CountBookmakers(ctx context.Context) (int64, error)
}

// OpenBetCounter counts unsettled single bets.
type OpenBetCounter interface {
	CountOpenBets(ctx context.Context) (int64, error)
}

type dashboardCounts struct {
	BookmakerCounter
	OpenBetCounter
}

// NewDashboardStats combines the bookmaker and bet counters.
func NewDashboardStats(bookmakers BookmakerCounter, bets OpenBetCounter) DashboardStats {
	return dashboardCounts{BookmakerCounter: bookmakers, OpenBetCounter: bets}
}
