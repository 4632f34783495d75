package models

import "time"

// Event types written to the plan log.
const (
	EventScheduleChange   = "SCHEDULE_CHANGE"
	EventSimulationChange = "SIMULATION_CHANGE"
	EventProductChange    = "PRODUCT_CHANGE"
	EventBatchChange      = "BATCH_CHANGE"
	EventBatchReady       = "BATCH_READY"
	EventSolve            = "SOLVE"
)

// EventTypes lists every type the log accepts, in the order the API documents them.
var EventTypes = []string{
	EventScheduleChange,
	EventSimulationChange,
	EventProductChange,
	EventBatchChange,
	EventBatchReady,
	EventSolve,
}

// IsEventType reports whether s is one of EventTypes.
func IsEventType(s string) bool {
	for _, t := range EventTypes {
		if t == s {
			return true
		}
	}
	return false
}

// PlanEvent is a single log entry.
// BatchID and ProductKey are indexed so the log can be filtered per dough or per product.
type PlanEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`
	BatchID     string    `json:"batch_id,omitempty"`
	ProductKey  string    `json:"product_key,omitempty"`
	Description string    `json:"description"`
	Metadata    any       `json:"metadata,omitempty"`
}
