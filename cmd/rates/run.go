package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Philanthropists/daily-briefing/internal/localize"
	"github.com/Philanthropists/daily-briefing/internal/repository/ratesrepo"
	"github.com/Philanthropists/daily-briefing/internal/services/rateserv"
)

func getLogger() (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	return config.Build()
}

func main() {
	base := flag.String("base", "USD", "base currency code")
	quotes := flag.String("quotes", "EUR,COP", "comma separated quote currency codes")
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

	serv := rateserv.Service{
		Repo: ratesrepo.RatesRepository{},
	}

	rates, err := serv.GetRates(ctx, *base, strings.Split(*quotes, ","))
	if err != nil {
		logger.Error("could not fetch rates", zap.Error(err))
		fmt.Println(renderer.Error(err))
		os.Exit(1)
	}

	for _, rate := range rates {
		fmt.Println(renderer.Rate(rate))
	}
}
