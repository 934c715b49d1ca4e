package main

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/dezgeg/shenzen-solitaire/config"
	"github.com/dezgeg/shenzen-solitaire/server"
	"github.com/dezgeg/shenzen-solitaire/store"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("could not load config")
	}

	log := cfg.NewLogger()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	accessLog := log.Writer()
	defer accessLog.Close()

	s := server.NewServer(server.ServerOpts{
		Store:          store.NewInMemoryGameStore(cfg.Rules(), cfg.MaxGames, log),
		Rules:          cfg.Rules(),
		Rand:           rand.New(rand.NewSource(seed)),
		Logger:         log,
		AllowedOrigins: cfg.Origins(),
		AccessLog:      accessLog,
	})
	s.Addr = cfg.Addr()
	s.ReadTimeout = cfg.ReadTimeout
	s.WriteTimeout = cfg.WriteTimeout

	log.WithFields(logrus.Fields{
		"addr":                cfg.Addr(),
		"seed":                seed,
		"empty_pile_any_rank": cfg.EmptyPileAnyRank,
	}).Info("listening")

	if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server stopped")
	}
}
