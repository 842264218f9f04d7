package common

import (
	"context"
	"log"

	"github.com/william000000/team-odd-bn-backend/src/lib"
)

const TRIP_REQUESTS_GROUP = "barefoot-notifications"

// TripRequestConsumer makes sure the trip-requests topic exists and feeds
// every message to handler until ctx is cancelled.
func TripRequestConsumer(ctx context.Context, handler lib.EventHandler) {
	if _, err := lib.KafkaCreateTopics(lib.TRIP_REQUESTS_TOPIC); err != nil {
		log.Printf("[Consumer] create topic %s: %s\n", lib.TRIP_REQUESTS_TOPIC, err.Error())
	}
	if err := lib.KafkaConsume(ctx, TRIP_REQUESTS_GROUP, lib.TRIP_REQUESTS_TOPIC, handler); err != nil {
		log.Printf("[Consumer] %s: %s\n", lib.TRIP_REQUESTS_TOPIC, err.Error())
	}
}
