package boot

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/william000000/team-odd-bn-backend/src/config"
	"github.com/william000000/team-odd-bn-backend/src/db"
	"github.com/william000000/team-odd-bn-backend/src/lib"
	"github.com/william000000/team-odd-bn-backend/src/types"
)

func TestSeedInsertsLookupRowsIgnoringConflicts(t *testing.T) {
	gdb, mock := db.NewMockDB()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "roles"`) + `.*ON CONFLICT DO NOTHING`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "trip_types"`) + `.*ON CONFLICT DO NOTHING`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "statuses"`) + `.*ON CONFLICT DO NOTHING`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectCommit()

	assert.NoError(t, Seed(gdb))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitBrokerWithoutKafkaDispatchesLocally(t *testing.T) {
	config.KAFKA_BROKER = ""
	got := make(chan string, 1)

	publisher, stop := InitBroker(context.Background(), func(ctx context.Context, payload string) {
		got <- payload
	})
	defer stop()

	_, ok := publisher.(*lib.LocalPublisher)
	assert.True(t, ok)
	assert.NoError(t, publisher.Publish(context.Background(), types.TripRequestEvent{Type: types.EVENT_TRIP_REQUEST_CREATED, TripRequestID: 4}))
	assert.Contains(t, <-got, `"tripRequestId":4`)
}

func TestSeedStopsOnFailedInsert(t *testing.T) {
	gdb, mock := db.NewMockDB()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "roles"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "trip_types"`)).
		WillReturnError(errors.New("relation does not exist"))
	mock.ExpectRollback()

	assert.EqualError(t, Seed(gdb), "relation does not exist")
	assert.NoError(t, mock.ExpectationsWereMet())
}
