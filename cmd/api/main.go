package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"example.com/exerciselog/internal/api"
	"example.com/exerciselog/internal/calorie"
	"example.com/exerciselog/internal/config"
	"example.com/exerciselog/internal/domain"
	"example.com/exerciselog/internal/journal"
	"example.com/exerciselog/internal/logging"
	"example.com/exerciselog/internal/progress"
	httptransport "example.com/exerciselog/internal/transport/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.Log.File,
		LogToStdout:   cfg.Log.ToStdout,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.JSON,
	})

	service := domain.NewService(
		calorie.NewEstimator(cfg.Estimator.Coefficients, cfg.Estimator.DefaultWeightKg),
		progress.New(cfg.Progress.WeeklyTargetMinutes),
		progress.NewAnnouncer(cfg.NotifyPolicy()),
		journal.New(),
	)

	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	api.NewHandler(service).RegisterRoutes(router)

	handler := httptransport.RequestLogger(log.StandardLogger())(httptransport.CORS(cfg.CORSOrigin)(router))
	server := httptransport.NewServer(httptransport.DefaultServerConfig(cfg.HTTPAddress), handler)

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Infof("exercise log api listening on %s (weekly target %.0f min, notify policy %s)",
			cfg.HTTPAddress, cfg.Progress.WeeklyTargetMinutes, cfg.NotifyPolicy())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-shutdownCh
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("graceful shutdown failed: %v", err)
	}
}
