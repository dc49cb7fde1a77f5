package ports

import "time"

type EventType string

const (
	EventAdd    EventType = "add"
	EventRemove EventType = "remove"
	EventClear  EventType = "clear"
)

type Event struct {
	Type EventType `json:"type"`
	From string    `json:"from,omitempty"`
	To   string    `json:"to,omitempty"`
	At   time.Time `json:"at"`
}

type EventsPort interface {
	Publish(event Event)
	Subscribers() int
}
