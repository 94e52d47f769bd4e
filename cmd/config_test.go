package cmd

import (
	"testing"
	"time"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DSN(t *testing.T) {
	c := Config{DBHost: "db", DBPort: "5432", DBUser: "app", DBPassword: "secret", DBName: "fulfillment"}

	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=fulfillment sslmode=disable", c.DSN())

	c.DBSslMode = "require"
	assert.Contains(t, c.DSN(), "sslmode=require")
}

func TestConfig_KafkaBrokers(t *testing.T) {
	assert.Empty(t, Config{}.KafkaBrokers())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, Config{KafkaHost: " k1:9092, ,k2:9092"}.KafkaBrokers())
}

func TestConfig_StalledChecklist(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		d, err := Config{}.StalledThreshold()

		require.NoError(t, err)
		assert.Equal(t, DefaultStalledChecklistAfter, d)
		assert.Equal(t, DefaultStalledChecklistSchedule, Config{}.StalledSchedule())
	})

	t.Run("parses duration", func(t *testing.T) {
		d, err := Config{StalledChecklistAfter: "2h"}.StalledThreshold()

		require.NoError(t, err)
		assert.Equal(t, 2*time.Hour, d)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := Config{StalledChecklistAfter: "soon"}.StalledThreshold()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects non-positive", func(t *testing.T) {
		_, err := Config{StalledChecklistAfter: "-5m"}.StalledThreshold()

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
