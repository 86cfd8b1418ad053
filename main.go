package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"horatime-api/internal/config"
	httpapi "horatime-api/internal/http"
	"horatime-api/internal/logger"
	"horatime-api/internal/queue"
	"horatime-api/internal/timezone"
	"horatime-api/internal/ws"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	resolver := timezone.NewResolver(timezone.DefaultAliases)
	svc := timezone.NewService(resolver, log)
	log.Info("location table loaded", zap.Int("aliases", len(resolver.AvailableLocations())))

	var events *queue.LookupEvents
	if cfg.RabbitMQURL != "" {
		qc, err := queue.New(cfg.RabbitMQURL)
		if err == nil {
			if err = qc.EnsureExchange(cfg.EventsExchange); err != nil {
				_ = qc.Close()
			}
		}
		if err != nil {
			if cfg.IsProduction() {
				log.Fatal("rabbitmq setup failed", zap.Error(err))
			}
			log.Warn("rabbitmq setup failed; lookup events disabled", zap.Error(err))
		} else {
			defer qc.Close()
			events = queue.NewLookupEvents(qc, cfg.EventsExchange, log)
			log.Info("lookup events enabled", zap.String("exchange", cfg.EventsExchange))
		}
	} else {
		log.Info("lookup events disabled (RABBITMQ_URL is empty)")
	}

	wsServer := ws.New(svc, log, cfg)
	apiServer := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(log, cfg, svc, events, wsServer),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("timezone api ready", zap.String("base", "/api/timezone"))
		log.Info("clock stream ready", zap.String("base", "/ws/timezone"))
		log.Info("horatime listening", zap.String("addr", cfg.HTTPAddr))
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctxShutdown); err != nil {
		log.Error("http server shutdown failed", zap.Error(err))
	}
	if err := events.Close(ctxShutdown); err != nil {
		log.Warn("lookup events not drained", zap.Error(err))
	}
}
