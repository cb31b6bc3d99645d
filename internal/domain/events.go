package domain

import "time"

// Event types
const (
	EventTypeBetSettled         = "bet.settled"
	EventTypeAccumulatorSettled = "accumulator.settled"
)

// Aggregate types
const (
	AggregateTypeBet         = "bet"
	AggregateTypeAccumulator = "accumulator"
)

// OutboxEvent represents an event to be published
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// SettlementEvent payload
type SettlementEvent struct {
	SubjectID string `json:"subject_id"`
	Type      string `json:"type"`
	Category  string `json:"category"`
	Winner    string `json:"winner"`
	Bookmaker string `json:"bookmaker"`
	Exchange  string `json:"exchange"`
	Profit    string `json:"profit"`
	SettledAt string `json:"settled_at"`
}

// NewSettlementEvent builds the payload published for a settlement.
func NewSettlementEvent(s Settlement) SettlementEvent {
	return SettlementEvent{
		SubjectID: s.SubjectID,
		Type:      string(s.Type),
		Category:  string(s.Category),
		Winner:    string(s.Winner),
		Bookmaker: s.Bookmaker.String(),
		Exchange:  s.Exchange.String(),
		Profit:    s.Profit.String(),
		SettledAt: s.SettledAt.UTC().Format(time.RFC3339),
	}
}

// ToMap flattens the payload for outbox storage.
func (e SettlementEvent) ToMap() map[string]any {
	return map[string]any{
		"subject_id": e.SubjectID,
		"type":       e.Type,
		"category":   e.Category,
		"winner":     e.Winner,
		"bookmaker":  e.Bookmaker,
		"exchange":   e.Exchange,
		"profit":     e.Profit,
		"settled_at": e.SettledAt,
	}
}
