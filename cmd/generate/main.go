package main

import (
	"context"
	"os"

	"hotelgen/config"
	"hotelgen/di"
	"hotelgen/shared/failure"
	"hotelgen/shared/logger"
	"hotelgen/shared/timezone"
	"hotelgen/shared/validator"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.InitLogger()

	if err := config.Init(); err != nil {
		logger.ErrorWithStack(err)
		os.Exit(failure.GetCode(err))
	}

	cfg := config.Get()

	logger.SetLogLevel(cfg)
	timezone.Init(cfg.App.Timezone)

	if err := validator.ValidateConfig(cfg); err != nil {
		logger.ErrorWithStack(err)
		os.Exit(failure.GetCode(err))
	}

	ctx := context.Background()
	generator := di.InitializeGenerator()

	_, err := generator.Run(ctx)

	if cerr := generator.Close(ctx); cerr != nil {
		log.Warn().Err(cerr).Msg("Failed to flush traces")
	}

	if err != nil {
		logger.ErrorWithStack(err)
		os.Exit(failure.GetCode(err))
	}
}
