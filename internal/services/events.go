package services

import (
	"encoding/json"
	"log"
)

// activityQueue is the broker queue carrying the audit side channel.
const activityQueue = "activity_queue"

// publishEvent sends a JSON activity event. Publishing is best-effort: a nil
// publisher or a broker failure never fails the originating operation.
func publishEvent(events EventPublisher, event string, payload map[string]interface{}) {
	if events == nil {
		return
	}
	payload["event"] = event
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", event, err)
		return
	}
	if err := events.Publish("", activityQueue, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}
