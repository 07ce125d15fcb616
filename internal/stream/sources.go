package stream

import (
	"encoding/json"

	"github.com/MKhiriev/tootline/internal/logger"
	"github.com/MKhiriev/tootline/internal/timeline"
	"github.com/MKhiriev/tootline/models"
)

// Subscriber is the part of [Client] the sources need.
type Subscriber interface {
	On(event string, handler func(payload []byte)) (off func())
}

// StatusSource is a live source of statuses decoded from event payloads.
// Use it with models.EventUpdate for new statuses and
// models.EventStatusUpdate for edits.
type StatusSource struct {
	sub   Subscriber
	event string
	log   *logger.Logger
}

var _ timeline.LiveSource[models.Status] = (*StatusSource)(nil)

func NewStatusSource(sub Subscriber, event string, log *logger.Logger) *StatusSource {
	if log == nil {
		log = logger.Nop()
	}
	return &StatusSource{sub: sub, event: event, log: log}
}

// Subscribe registers handler and returns its unsubscribe function.
// Payloads that do not decode are logged and skipped.
func (s *StatusSource) Subscribe(handler func(models.Status)) func() {
	return s.sub.On(s.event, func(payload []byte) {
		var status models.Status
		if err := json.Unmarshal(payload, &status); err != nil {
			s.log.Warn().Err(err).Str("event", s.event).Msg("undecodable status payload")
			return
		}
		if status.ID == "" {
			return
		}
		handler(status)
	})
}

// DeleteSource yields the ids carried by "delete" events.
type DeleteSource struct {
	sub Subscriber
}

var _ timeline.LiveSource[string] = (*DeleteSource)(nil)

func NewDeleteSource(sub Subscriber) *DeleteSource {
	return &DeleteSource{sub: sub}
}

func (s *DeleteSource) Subscribe(handler func(id string)) func() {
	return s.sub.On(models.EventDelete, func(payload []byte) {
		if len(payload) == 0 {
			return
		}
		handler(string(payload))
	})
}
