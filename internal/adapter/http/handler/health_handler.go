package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/matchedbet/internal/domain"
)

// DBPinger is satisfied by *pgxpool.Pool.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// RedisPinger is satisfied by *redis.Client.
type RedisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

// LedgerReader reports whether the balance ledger loop is serving requests.
type LedgerReader interface {
	Balances(ctx context.Context) (domain.Ledger, error)
}

// PublisherStatus reports the state of the settlement event publisher.
type PublisherStatus interface {
	Status() string
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	pool        DBPinger
	redisClient RedisPinger
	ledger      LedgerReader
	events      PublisherStatus
}

// NewHealthHandler creates a new HealthHandler. events may be nil when
// settlement events are only logged.
func NewHealthHandler(pool DBPinger, redisClient RedisPinger, ledger LedgerReader, events PublisherStatus) *HealthHandler {
	return &HealthHandler{
		pool:        pool,
		redisClient: redisClient,
		ledger:      ledger,
		events:      events,
	}
}

// Liveness returns 200 if the service is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness returns 200 if the service is ready to accept traffic.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Check PostgreSQL
	if err := h.pool.Ping(ctx); err != nil {
		writeError(w, http.StatusServiceUnavailable, "postgres unhealthy", err.Error())
		return
	}

	// Check Redis
	if err := h.redisClient.Ping(ctx).Err(); err != nil {
		writeError(w, http.StatusServiceUnavailable, "redis unhealthy", err.Error())
		return
	}

	// Check the ledger loop
	if _, err := h.ledger.Balances(ctx); err != nil {
		writeError(w, http.StatusServiceUnavailable, "ledger unavailable", err.Error())
		return
	}

	// An open breaker does not fail readiness: events wait in the outbox.
	events := "log"
	if h.events != nil {
		events = h.events.Status()
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ready",
		"postgres": "ok",
		"redis":    "ok",
		"ledger":   "ok",
		"events":   events,
	})
}
