package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/Philanthropists/daily-briefing/internal/briefing"
	briefingtypes "github.com/Philanthropists/daily-briefing/internal/briefing/types"
	"github.com/Philanthropists/daily-briefing/internal/logging"
)

const (
	credentialsFile = "credentials.json"
	versionFile     = "version"
)

func getVersion() (string, error) {
	f, err := os.Open(versionFile)
	if err != nil {
		return "", err
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(raw)), nil
}

func getConfig() (briefingtypes.Config, error) {
	credFile, err := os.Open(credentialsFile)
	if err != nil {
		return briefingtypes.Config{}, err
	}
	defer credFile.Close()

	raw, err := io.ReadAll(credFile)
	if err != nil {
		return briefingtypes.Config{}, err
	}

	var config briefingtypes.Config
	err = json.Unmarshal(raw, &config)
	if err != nil {
		return briefingtypes.Config{}, err
	}

	return config, nil
}

func configureLogger() error {
	config := zap.NewProductionConfig()

	logger, err := config.Build()
	if err != nil {
		return err
	}

	version := "dev"
	if v, err := getVersion(); err == nil {
		version = v
	}

	logger = logger.With(zap.String("version", version))
	logging.SetCustomGlobalLogger(logger)

	return nil
}

func HandleRequest(ctx context.Context) error {
	config, err := getConfig()
	if err != nil {
		return err
	}

	if err := configureLogger(); err != nil {
		return fmt.Errorf("could not configure logger: %w", err)
	}

	brief := briefing.Briefing{
		Config: config,
		DryRun: false,
	}

	const awsLambdaTimeout = 140 * time.Second
	ctx, cancel := context.WithTimeout(ctx, awsLambdaTimeout)
	defer cancel()

	return brief.Run(ctx)
}

func main() {
	lambda.Start(HandleRequest)
}
