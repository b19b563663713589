// The lambda command is the production entrypoint: an API Gateway proxy
// integration handler serving the remote config API.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/mealhub/remote-config/internal/api"
	"github.com/mealhub/remote-config/internal/config"
	"github.com/mealhub/remote-config/internal/logging"
	"github.com/mealhub/remote-config/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logging.New("remote-config", "info")
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}
	logger := logging.New("remote-config", cfg.LogLevel)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load AWS configuration")
	}

	st := store.New(dynamodb.NewFromConfig(awsCfg), store.Config{
		Table:       cfg.TableName,
		Environment: cfg.Environment,
	})

	lambda.Start(api.New(st, logger).Handle)
}
