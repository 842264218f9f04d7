package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCronJob(t *testing.T) {
	defer StopScheduler()

	id, err := CreateCronJob("digest", "0 8 * * *", func() {})
	require.NoError(t, err)
	require.NotNil(t, id)

	sched, err := GetScheduler()
	require.NoError(t, err)
	require.Len(t, sched.Jobs(), 1)
	assert.Equal(t, "digest", sched.Jobs()[0].Name())
}

func TestCreateCronJobRejectsBadCrontab(t *testing.T) {
	defer StopScheduler()

	_, err := CreateCronJob("bad", "not a crontab", func() {})
	assert.Error(t, err)
}
