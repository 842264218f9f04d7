package boot

import (
	"context"
	"log"

	"github.com/william000000/team-odd-bn-backend/src/common"
	"github.com/william000000/team-odd-bn-backend/src/config"
	"github.com/william000000/team-odd-bn-backend/src/db"
	"github.com/william000000/team-odd-bn-backend/src/lib"
	"github.com/william000000/team-odd-bn-backend/src/models"
	"github.com/william000000/team-odd-bn-backend/src/services"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	if err := db.AutoMigrate(models.All()...); err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}
	if err := Seed(db); err != nil {
		log.Fatalf("error seeding: %s", err.Error())
	}

	return db
}

// Seed inserts the fixed lookup rows. Existing rows are left untouched.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, rows := range []any{&models.DefaultRoles, &models.DefaultTripTypes, &models.DefaultStatuses} {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// InitBroker wires trip request events to handler. With a Kafka broker
// configured, events go through the trip-requests topic; otherwise they are
// dispatched in-process.
func InitBroker(ctx context.Context, handler lib.EventHandler) (lib.EventPublisher, func()) {
	if config.KAFKA_BROKER == "" {
		log.Println("[Broker] KAFKA_BROKER not set, dispatching events in-process")
		return lib.NewLocalPublisher(handler), func() {}
	}
	publisher, err := lib.NewKafkaPublisher("barefoot-api", lib.TRIP_REQUESTS_TOPIC)
	if err != nil {
		log.Printf("[Broker] producer unavailable, dispatching events in-process: %s\n", err.Error())
		return lib.NewLocalPublisher(handler), func() {}
	}
	go common.TripRequestConsumer(ctx, handler)
	return publisher, publisher.Close
}

// InitScheduler registers the pending approvals digest on DIGEST_CRON.
func InitScheduler(digest *services.DigestService) {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	_, err = lib.CreateCronJob("pending-approvals-digest", config.DIGEST_CRON, func() {
		sent, err := digest.SendPendingApprovalsDigest(context.Background())
		if err != nil {
			log.Printf("[Digest] error: %s\n", err.Error())
			return
		}
		log.Printf("[Digest] sent %d digests\n", sent)
	})
	if err != nil {
		return
	}
	log.Println("Jobs in queue:", len(sched.Jobs()))
	sched.Start()
}

func StopScheduler() {
	lib.StopScheduler()
}
