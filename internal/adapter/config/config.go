package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	House *House
	App   *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
}

// House carries the settlement terms applied when a lot sells.
type House struct {
	BuyerPremium float64 `env:"BUYER_PREMIUM"`
	Commission   float64 `env:"COMMISSION"`
	Account      string  `env:"HOUSE_ACCOUNT"`
	AuthCode     string  `env:"HOUSE_AUTH_CODE"`
}

func NewConfig() (*Config, error) {
	var house House
	var app App

	flag.Float64Var(&house.BuyerPremium, "p", 10.0, "Buyer premium percent")
	flag.Float64Var(&house.Commission, "c", 15.0, "Seller commission percent")
	flag.StringVar(&house.Account, "A", `AH A/C`, "House bank account")
	flag.StringVar(&house.AuthCode, "K", `AH-auth`, "House bank auth code")
	flag.StringVar(&app.LogLevel, "l", `info`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&house)
	if err != nil {
		return nil, fmt.Errorf("error parsing house config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		House: &house,
		App:   &app,
	}

	return &config, nil
}
