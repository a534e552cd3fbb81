package main

import (
	"commute-monitor/internal/adapters/google"
	"commute-monitor/internal/adapters/repositories"
	"commute-monitor/internal/config"
	"commute-monitor/internal/domain"
	"commute-monitor/internal/logging"
	"commute-monitor/internal/platform/db"
	"commute-monitor/internal/services"
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// main is the sampler composition root. One invocation takes one batch of
// travel-time samples and exits; an external scheduler (cron, systemd timer)
// provides the cadence.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if err := logging.Init(config.Get("APP_ENV", "development")); err != nil {
		log.Fatal(err)
	}
	defer logging.Close()

	if err := run(cfg); err != nil {
		logging.Error("sampler run failed", "error", err.Error())
		logging.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	conn, err := db.Open(cfg.Storage)
	if err != nil {
		return err
	}
	defer conn.Close()

	dialect := repositories.DialectSQLite
	if db.IsPostgres(cfg.Storage) {
		dialect = repositories.DialectPostgres
	}
	if err := repositories.InitSchema(conn, dialect); err != nil {
		return err
	}

	client, err := google.NewClient(cfg.APIKey)
	if err != nil {
		return err
	}

	resolver := services.NewLocationResolver(repositories.NewSqliteLocationStore(conn), client)
	writer := services.NewBatchWriter(repositories.NewSqliteSampleStore(conn))

	pipeline := services.NewPipeline(
		services.Endpoint{Label: cfg.HomeLabel, Address: cfg.HomeAddress},
		services.Endpoint{Label: cfg.WorkLabel, Address: cfg.WorkAddress},
		cfg.Local,
		cfg.Forced,
		resolver,
		client,
		writer,
	)

	res, err := pipeline.Run(context.Background())
	if err != nil {
		return err
	}

	if res.Direction == domain.Skip {
		logging.Info("outside sampling windows, nothing to do")
		return nil
	}

	logging.Info("batch committed",
		"direction", res.Direction.String(),
		"batch_id", res.BatchID,
		"origin", res.OriginLabel,
		"dest", res.DestLabel,
		"alternatives", len(res.Metrics),
	)
	for _, m := range res.Metrics {
		logging.Info("route alternative",
			"description", m.Description,
			"traffic_minutes", m.TrafficMinutes,
			"static_minutes", m.StaticMinutes,
			"km", float64(m.Meters)/1000,
			"miles", m.Miles,
		)
	}

	return nil
}
