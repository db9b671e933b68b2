package events

import "time"

const WorkerCreatedTopic = "workforce.worker.created"

type WorkerCreatedEvent struct {
	WorkerID   string    `json:"worker_id"`
	Title      string    `json:"title"`
	Department string    `json:"department"`
	OccurredAt time.Time `json:"occurred_at"`
}
