// The localapi command runs the config API as a plain HTTP server for
// local development, typically against DynamoDB Local (point the SDK at
// it with AWS_ENDPOINT_URL). Admin endpoints accept any well-formed
// bearer JWT carrying role=admin; signatures are not verified here.
package main

import (
	"context"
	"net/http"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/mealhub/remote-config/internal/api"
	"github.com/mealhub/remote-config/internal/config"
	"github.com/mealhub/remote-config/internal/devproxy"
	"github.com/mealhub/remote-config/internal/logging"
	"github.com/mealhub/remote-config/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logging.New("remote-config-local", "info")
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}
	logger := logging.New("remote-config-local", cfg.LogLevel)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load AWS configuration")
	}

	st := store.New(dynamodb.NewFromConfig(awsCfg), store.Config{
		Table:       cfg.TableName,
		Environment: cfg.Environment,
	})

	proxy := devproxy.New(api.New(st, logger).Handle, logger)

	logger.Info().Str("addr", cfg.ListenAddr).Msg("local config API listening")
	if err := http.ListenAndServe(cfg.ListenAddr, proxy.Routes()); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
