package main

import (
	"commute-monitor/internal/adapters/repositories"
	"commute-monitor/internal/api"
	"commute-monitor/internal/config"
	"commute-monitor/internal/logging"
	"commute-monitor/internal/metrics"
	"commute-monitor/internal/platform/db"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// main is the read API composition root. It serves collected samples over
// HTTP; it never calls the Google APIs itself.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	if err := logging.Init(config.Get("APP_ENV", "development")); err != nil {
		log.Fatal(err)
	}
	defer logging.Close()

	storage := config.Get("DB_PATH", "commute.db")
	conn, err := db.Open(storage)
	if err != nil {
		logging.Fatal("open database failed", "error", err.Error())
	}
	defer conn.Close()

	dialect := repositories.DialectSQLite
	if db.IsPostgres(storage) {
		dialect = repositories.DialectPostgres
	}
	if err := repositories.InitSchema(conn, dialect); err != nil {
		logging.Fatal("init schema failed", "error", err.Error())
	}

	tz := config.Get("LOCAL_TZ", "America/New_York")
	local, err := time.LoadLocation(tz)
	if err != nil {
		logging.Fatal("invalid LOCAL_TZ", "tz", tz, "error", err.Error())
	}

	reg := metrics.NewRegistry()
	router := api.NewRouter(repositories.NewSqliteSampleStore(conn), local, reg)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	port := config.Get("PORT", "8080")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logging.Info("server listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		logging.Fatal("server exited", "error", err.Error())
	}
}
