package event

import (
	log "github.com/sirupsen/logrus"

	"storefront/pkg/domain/service"
)

// LogDispatcher publishes domain events to the structured log. There is no
// broker behind this storefront; the event stream exists for operators.
type LogDispatcher struct{}

func NewLogDispatcher() LogDispatcher {
	return LogDispatcher{}
}

func (LogDispatcher) Dispatch(event service.Event) error {
	log.WithFields(log.Fields{
		"event":   event.Type(),
		"payload": event,
	}).Info("Domain event")
	return nil
}
