package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/metinatakli/cinema-booking-system/internal/service"
	"github.com/shopspring/decimal"
)

func envString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func envInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return value
}

func envDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return value
}

// parseTicketPrices reads the configured prices. An empty value leaves the
// kind unpriced so purchases of it fail instead of defaulting.
func parseTicketPrices(simple, gold string) (service.TicketPrices, error) {
	var prices service.TicketPrices

	simplePrice, err := parsePrice("ticket-price-simple", simple)
	if err != nil {
		return prices, err
	}

	goldPrice, err := parsePrice("ticket-price-gold", gold)
	if err != nil {
		return prices, err
	}

	prices.Simple = simplePrice
	prices.Gold = goldPrice

	return prices, nil
}

func parsePrice(name, value string) (*decimal.Decimal, error) {
	if value == "" {
		return nil, nil
	}

	price, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}

	if price.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("invalid %s %q: must be greater than zero", name, value)
	}

	return &price, nil
}
