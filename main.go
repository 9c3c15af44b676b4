package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := LoadConfig()
	log := NewLogger(cfg.LogLevel, cfg.LogFormat)

	// 1) DB
	db, err := OpenDB(cfg.DBPath)
	if err != nil {
		log.WithError(err).Fatal("open db")
	}
	if err := AutoMigrate(db); err != nil {
		log.WithError(err).Fatal("migrate")
	}

	// 2) Seed (if empty)
	if isEmpty, err := IsQuestionTableEmpty(db); err != nil {
		log.WithError(err).Fatal("count questions")
	} else if isEmpty {
		if _, err := os.Stat(cfg.SeedPath); err == nil {
			if err := SeedFromJSON(db, cfg.SeedPath); err != nil {
				log.WithError(err).Fatal("seed")
			}
			log.WithField("path", cfg.SeedPath).Info("Seeded questions from file")
		} else {
			if err := SeedCatalog(db, DefaultCatalog()); err != nil {
				log.WithError(err).Fatal("seed default catalog")
			}
			log.WithField("path", cfg.SeedPath).Info("No seed file, seeded built-in catalog")
		}
	}

	// 3) Catalog is read once and shared by every session
	catalog, err := LoadCatalog(db)
	if err != nil {
		log.WithError(err).Fatal("load catalog")
	}
	if len(catalog) == 0 {
		log.WithError(ErrEmptyCatalog).Fatal("load catalog")
	}

	animator, err := NewAnimator(cfg.AnimationMode, cfg.LaunchDuration)
	if err != nil {
		log.WithError(err).Fatal("animator")
	}

	store := NewSessionStore(
		catalog,
		SessionConfig{Length: cfg.SessionLength, TransitionTimeout: cfg.TransitionTimeout},
		NewRandomizer(cfg.RandomSeed),
		animator,
		NewDBResultRecorder(db),
		log,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if cfg.SessionIdleTTL > 0 {
		go store.RunSweeper(ctx, time.Minute, cfg.SessionIdleTTL)
	}

	// 4) Router
	r := NewRouter(cfg, db, store, log)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("shutdown")
		}
	}()

	log.WithFields(logrus.Fields{
		"port":           cfg.Port,
		"questions":      len(catalog),
		"session_length": cfg.SessionLength,
		"animation":      cfg.AnimationMode,
	}).Info("Listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("run")
	}
}
