package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"fulfillment/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	root := newRootCommand(getConfigs)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                    goDotEnvVariable("HTTP_PORT"),
		DBHost:                      goDotEnvVariable("DB_HOST"),
		DBPort:                      goDotEnvVariable("DB_PORT"),
		DBUser:                      goDotEnvVariable("DB_USER"),
		DBPassword:                  goDotEnvVariable("DB_PASSWORD"),
		DBName:                      goDotEnvVariable("DB_NAME"),
		DBSslMode:                   goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:                   goDotEnvVariable("KAFKA_HOST"),
		KafkaConsumerGroup:          goDotEnvVariable("KAFKA_CONSUMER_GROUP"),
		KafkaPaymentConfirmedTopic:  goDotEnvVariable("KAFKA_PAYMENT_CONFIRMED_TOPIC"),
		KafkaResourcesUploadedTopic: goDotEnvVariable("KAFKA_RESOURCES_UPLOADED_TOPIC"),
		DefaultChecklistPath:        goDotEnvVariable("DEFAULT_CHECKLIST_PATH"),
		StalledChecklistSchedule:    goDotEnvVariable("STALLED_CHECKLIST_SCHEDULE"),
		StalledChecklistAfter:       goDotEnvVariable("STALLED_CHECKLIST_AFTER"),
		LogLevel:                    goDotEnvVariable("LOG_LEVEL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}
