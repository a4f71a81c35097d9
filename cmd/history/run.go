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
	"github.com/Philanthropists/daily-briefing/internal/repository/historyrepo"
	"github.com/Philanthropists/daily-briefing/internal/store/nosql/dynamodb"
)

func getLogger() (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	return config.Build()
}

func main() {
	table := flag.String("table", "rate-history", "history table to read")
	region := flag.String("region", "us-east-1", "AWS region of the table")
	locale := flag.String("locale", "en", "locale used to render output")
	timeout := flag.Uint("timeout", 30, "timeout in seconds for the scan")
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

	store, err := dynamodb.NewDynamoDBClient(ctx, *region)
	if err != nil {
		logger.Error("could not create store", zap.Error(err))
		os.Exit(1)
	}

	repo := historyrepo.HistoryRepository{
		Store: store,
		Table: *table,
	}

	rates, err := repo.ListRates(ctx)
	if err != nil {
		logger.Error("could not read rate history", zap.Error(err))
		fmt.Println(renderer.Error(err))
		os.Exit(1)
	}

	logger.Info("rate history", zap.String("table", *table), zap.Int("observations", len(rates)))
	for _, rate := range rates {
		fmt.Printf("%s  %s\n", rate.AsOf.Format("2006-01-02"), renderer.Rate(rate))
	}
}
