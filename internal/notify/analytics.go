package notify

import (
	"github.com/sirupsen/logrus"

	"github.com/casaflow/property-service/internal/utils"
)

// Event is a fire-and-forget analytics notification.
type Event struct {
	Name   string
	Fields map[string]any
}

/*
Analytics decouples event emission from the request path: Track never
blocks and never fails. Events land on a buffered channel drained by a
single goroutine; when the buffer is full the event is dropped, which
is acceptable for analytics.
*/
type Analytics struct {
	events chan Event
	done   chan struct{}
}

func NewAnalytics(buffer int) *Analytics {
	a := &Analytics{
		events: make(chan Event, buffer),
		done:   make(chan struct{}),
	}
	go a.drain()
	return a
}

// Track enqueues the event, dropping it if the buffer is full.
func (a *Analytics) Track(name string, fields map[string]any) {
	select {
	case a.events <- Event{Name: name, Fields: fields}:
	default:
	}
}

// Close stops the drain loop after flushing queued events.
func (a *Analytics) Close() {
	close(a.events)
	<-a.done
}

func (a *Analytics) drain() {
	defer close(a.done)
	for ev := range a.events {
		utils.Logger.WithFields(logrus.Fields(ev.Fields)).Debugf("analytics: %s", ev.Name)
	}
}
