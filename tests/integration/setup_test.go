package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/iho/matchedbet/internal/adapter/http/dto"
	"github.com/iho/matchedbet/tests/testutil"
)

func newIntegrationApp(t *testing.T, commission string) (*testutil.App, *testutil.TestDB) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := testutil.NewTestDB(t)
	t.Cleanup(testDB.Cleanup)
	testDB.TruncateAll(context.Background())

	return testutil.NewApp(t, testDB, decimal.RequireFromString(commission)), testDB
}

func createBookmaker(t *testing.T, app *testutil.App, name string, initialBalance string) *dto.BookmakerResponse {
	t.Helper()

	body := map[string]any{"name": name, "url": "https://" + name + ".example.com"}
	if initialBalance != "" {
		body["initial_balance"] = initialBalance
	}

	rec := app.Do(t, http.MethodPost, "/api/v1/bookmakers", body, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return testutil.Decode[*dto.BookmakerResponse](t, rec)
}

func createOffer(t *testing.T, app *testutil.App, bookmakerID string) *dto.OfferResponse {
	t.Helper()

	rec := app.Do(t, http.MethodPost, "/api/v1/offers", map[string]any{
		"bookmaker_id":          bookmakerID,
		"description":           "Bet 10 get 10",
		"qualifying_bet_amount": "10",
		"free_bet_amount":       "10",
		"expires_in_days":       7,
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return testutil.Decode[*dto.OfferResponse](t, rec)
}

func createMatch(t *testing.T, app *testutil.App, home, away string) *dto.MatchResponse {
	t.Helper()

	rec := app.Do(t, http.MethodPost, "/api/v1/matches", map[string]any{
		"home_team":  home,
		"away_team":  away,
		"match_date": time.Date(2026, 5, 2, 15, 0, 0, 0, time.UTC),
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return testutil.Decode[*dto.MatchResponse](t, rec)
}

func setOutcome(t *testing.T, app *testutil.App, matchID, outcome string) {
	t.Helper()

	rec := app.Do(t, http.MethodPut, "/api/v1/matches/"+matchID+"/outcome", map[string]any{"outcome": outcome}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func balances(t *testing.T, app *testutil.App) *dto.BalancesResponse {
	t.Helper()

	rec := app.Do(t, http.MethodGet, "/api/v1/balances", nil, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return testutil.Decode[*dto.BalancesResponse](t, rec)
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}
