package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	EventApplicationsUpdated = "applications_updated"
	EventProfileUpdated      = "profile_updated"
)

// RefreshEvent tells subscribed UI regions to refetch derived data. WorkerID
// lets a client ignore events for other accounts.
type RefreshEvent struct {
	Type      string `json:"type"`
	WorkerID  string `json:"worker_id,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Notifier publishes refresh events to every connected client through the
// hub. Publishing is non-blocking; a full buffer drops the event.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyApplicationsUpdated(workerID uuid.UUID) {
	n.publish(EventApplicationsUpdated, workerID)
}

func (n *Notifier) NotifyProfileUpdated(workerID uuid.UUID) {
	n.publish(EventProfileUpdated, workerID)
}

func (n *Notifier) publish(eventType string, workerID uuid.UUID) {
	if n == nil || n.hub == nil {
		return
	}

	evt := RefreshEvent{
		Type:      eventType,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if workerID != uuid.Nil {
		evt.WorkerID = workerID.String()
	}

	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
