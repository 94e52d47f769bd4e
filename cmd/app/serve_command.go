package main

import (
	"context"
	"fmt"
	"time"

	"fulfillment/api"
	httpin "fulfillment/internal/adapters/in/http"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

func newServeCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, the Kafka consumer and the scheduled jobs",
		RunE: func(command *cobra.Command, _ []string) error {
			root, err := app.compositionRoot()
			if err != nil {
				log.Fatalf("failed to start: %v", err)
			}
			ctx, cancel := context.WithCancel(command.Context())
			defer cancel()

			loadCtx, loadCancel := context.WithTimeout(ctx, 10*time.Second)
			doc, err := api.Load(loadCtx)
			loadCancel()
			if err != nil {
				log.Fatalf("failed to load OpenAPI document: %v", err)
			}
			if err = api.Register(doc); err != nil {
				log.Fatalf("failed to register OpenAPI document: %v", err)
			}

			consumer, err := root.CreateKafkaConsumer()
			if err != nil {
				log.Fatalf("failed to create Kafka consumer: %v", err)
			}
			if consumer != nil {
				defer consumer.Close()
				go consumer.Run(ctx)
			} else {
				app.logger.Warn("KAFKA_HOST is empty, collaborator events are accepted over HTTP only")
			}

			jobManager, err := root.CreateJobManager()
			if err != nil {
				log.Fatalf("failed to create jobs: %v", err)
			}
			if err = jobManager.StartAll(); err != nil {
				log.Fatalf("failed to start jobs: %v", err)
			}
			defer jobManager.StopAll()

			server, err := root.CreateHTTPServer(serviceName)
			if err != nil {
				log.Fatalf("failed to create HTTP server: %v", err)
			}
			e := httpin.NewEcho(server, api.NewRequestBodyValidator(doc), app.logger)
			e.Logger.SetLevel(log.INFO)

			e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", app.configs.HTTPPort)))
			return nil
		},
	}
}

func newMigrateCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(command *cobra.Command, _ []string) error {
			if _, err := app.compositionRoot(); err != nil {
				return err
			}
			fmt.Fprintln(command.OutOrStdout(), "Schema is up to date")
			return nil
		},
	}
}
