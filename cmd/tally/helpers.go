package main

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/config"
	"github.com/tallyhq/tally/internal/storage"
	"github.com/tallyhq/tally/internal/store"
)

// openStore opens the configured database and rehydrates the store.
// The returned cleanup closes the underlying connection.
func openStore(ctx context.Context) (*store.Store, func(), error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}
	dbPath = config.ExpandPath(dbPath)

	kv, err := storage.NewSQLiteKV(dbPath)
	if err != nil {
		return nil, nil, common.NewUserError(fmt.Sprintf("failed to open database at %s", dbPath), err)
	}

	s, err := store.New(ctx, kv, store.DefaultKey)
	if err != nil {
		_ = kv.Close()
		return nil, nil, err
	}

	return s, func() { _ = kv.Close() }, nil
}

// parseAmount converts a major-unit amount like "12.34" into minor
// units, rounding to the nearest cent. The store only ever sees whole
// cents.
func parseAmount(s string) (int64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return int64(math.Round(f * 100)), nil
}

// currencySymbol returns the configured display currency symbol.
func currencySymbol() string {
	return viper.GetString("currency.symbol")
}

// resolveMonth turns CLI month/year flags into the store's zero-based
// month key. A zero flag value means "current". Months are accepted
// 1-12 on the command line.
func resolveMonth(monthFlag, yearFlag int) (int, int, error) {
	now := time.Now()
	month := int(now.Month()) - 1
	year := now.Year()

	if monthFlag != 0 {
		if monthFlag < 1 || monthFlag > 12 {
			return 0, 0, fmt.Errorf("invalid month %d: must be 1-12", monthFlag)
		}
		month = monthFlag - 1
	}
	if yearFlag != 0 {
		year = yearFlag
	}
	return month, year, nil
}

// formatMonth renders a zero-based month and year as "January 2026".
func formatMonth(month, year int) string {
	return fmt.Sprintf("%s %d", time.Month(month+1).String(), year)
}
