package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/dezgeg/shenzen-solitaire/cli"
	"github.com/dezgeg/shenzen-solitaire/config"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("could not load config")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session := cli.NewSession(cfg.Rules(), rand.New(rand.NewSource(seed)), os.Stdin, os.Stdout)
	if err := session.Run(); err != nil {
		logrus.WithError(err).Fatal("could not read input")
	}
}
