package main

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	container "github.com/thehyperflames/dicontainer-go"

	"github.com/hxuan190/split-engine/internal/common"
	"github.com/hxuan190/split-engine/internal/config"
	"github.com/hxuan190/split-engine/internal/http"
	"github.com/hxuan190/split-engine/internal/services"
)

// @title Split Engine API
// @version 1.0
// @description Overflow-safe 30/10/60 splitting of 256-bit unsigned amounts.
// @description
// @description ## - Guarantees
// @description - thirty + ten + remaining == amount for every amount in [0, 2^256-1]
// @description - Truncating division only; no intermediate value exceeds 256 bits
// @description
// @description ## - Usage Tips
// @description - Amounts are strings: decimal or 0x-prefixed hex
// @description - Responses carry amounts as decimal strings
// @BasePath /
// @schemes http https
// @tag.name split
// @tag.description Split amounts into 30% and 10% shares plus the remainder

func main() {
	// load env; a missing .env is fine when the environment is set directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Error().Err(err).Msg("failed to load env")
		return
	}

	generalConf := &config.GeneralConfig{}
	if err := generalConf.Load(); err != nil {
		log.Error().Err(err).Msg("invalid general config")
		return
	}
	common.SetupLogger(generalConf.LogLevel, generalConf.Env)
	common.InitRuntime()

	// di container config
	conf := container.NewConf(
		generalConf,
		&config.SplitterConfig{},
	)

	// di container
	dic, err := container.New(
		conf,

		&services.SplitService{},
		&http.HTTPService{},
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to create di container")
		return
	}

	// blocks until SIGINT/SIGTERM
	if err := dic.Run(); err != nil {
		log.Error().Err(err).Msg("failed to run di container")
		return
	}

	log.Info().Msg("Shutting down services...")
	if err := dic.Stop(); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	log.Info().Msg("Shutdown complete")
}
