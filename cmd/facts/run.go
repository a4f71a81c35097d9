package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Philanthropists/daily-briefing/internal/localize"
	"github.com/Philanthropists/daily-briefing/internal/repository/factsrepo"
)

func getLogger() (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	return config.Build()
}

func main() {
	language := flag.String("language", "en", "language of the requested fact")
	locale := flag.String("locale", "en", "locale used to render output")
	timeout := flag.Uint("timeout", 10, "timeout in seconds for the request")
	flag.Parse()

	logger, err := getLogger()
	if err != nil {
		log.Panicf("could not create logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(*timeout)*time.Second)
	defer cancel()

	renderer := localize.NewRenderer(*locale)
	repo := factsrepo.FactsRepository{}

	fact, err := repo.GetRandomFact(ctx, *language)
	if err != nil {
		logger.Error("could not fetch fact", zap.Error(err))
		fmt.Println(renderer.Error(err))
		os.Exit(1)
	}

	fmt.Println(renderer.Fact(fact))
	if fact.Source != "" {
		fmt.Printf("(%s)\n", fact.Source)
	}
}
