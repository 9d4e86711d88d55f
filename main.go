package main

import (
	"errors"
	"os"
	"time"

	"ataxx/config"
	"ataxx/metrics"
	"ataxx/simulator"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	flags := config.Flags()
	err := flags.Parse(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	path, _ := flags.GetString("config")
	cfg, err := config.Load(path, flags)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)

	sim := simulator.New(cfg)

	var summary *metrics.Summary
	if cfg.Autoplay {
		s, err := sim.Autoplay()
		if err != nil {
			log.Fatal().Err(err).Msg("autoplay failed")
		}
		summary = &s
	} else {
		_, err := sim.Run(false, sim.BoardSize())
		if err != nil {
			log.Fatal().Err(err).Msg("game failed")
		}
	}

	_, err = sim.Save(summary)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to store results")
	}
}
