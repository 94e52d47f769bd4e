package cmd

import (
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/pkg/errs"
)

const (
	DefaultStalledChecklistSchedule = "0 */15 * * * *"
	DefaultStalledChecklistAfter    = 30 * time.Minute
)

type Config struct {
	HTTPPort                    string
	DBHost                      string
	DBPort                      string
	DBUser                      string
	DBPassword                  string
	DBName                      string
	DBSslMode                   string
	KafkaHost                   string
	KafkaConsumerGroup          string
	KafkaPaymentConfirmedTopic  string
	KafkaResourcesUploadedTopic string
	DefaultChecklistPath        string
	StalledChecklistSchedule    string
	StalledChecklistAfter       string
	LogLevel                    string
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode)
}

// KafkaBrokers splits KafkaHost on commas. An empty host disables the consumer.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func (c Config) StalledSchedule() string {
	if c.StalledChecklistSchedule == "" {
		return DefaultStalledChecklistSchedule
	}
	return c.StalledChecklistSchedule
}

func (c Config) StalledThreshold() (time.Duration, error) {
	if c.StalledChecklistAfter == "" {
		return DefaultStalledChecklistAfter, nil
	}
	d, err := time.ParseDuration(c.StalledChecklistAfter)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("STALLED_CHECKLIST_AFTER", err)
	}
	if d <= 0 {
		return 0, errs.NewValueIsOutOfRangeError("STALLED_CHECKLIST_AFTER", d, "1s", "unbounded")
	}
	return d, nil
}
