package events

import "time"

const AbsenceChangedTopic = "workforce.absence.changed"

// Absence ledger actions.
const (
	AbsenceCreated = "created"
	AbsenceUpdated = "updated"
	AbsenceDeleted = "deleted"
)

type AbsenceChangedEvent struct {
	WorkerID   string    `json:"worker_id"`
	EventID    string    `json:"event_id"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}
