package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "major units with cents", input: "12.34", want: 1234},
		{name: "whole units", input: "500", want: 50000},
		{name: "rounds to nearest cent", input: "0.005", want: 1},
		{name: "rounds trailing precision", input: "19.999", want: 2000},
		{name: "zero", input: "0", want: 0},
		{name: "not a number", input: "lots", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAmount(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveMonth(t *testing.T) {
	t.Run("explicit flags convert to zero-based month", func(t *testing.T) {
		month, year, err := resolveMonth(3, 2024)
		require.NoError(t, err)
		assert.Equal(t, 2, month)
		assert.Equal(t, 2024, year)
	})

	t.Run("month out of range", func(t *testing.T) {
		_, _, err := resolveMonth(13, 2024)
		assert.Error(t, err)

		_, _, err = resolveMonth(-1, 2024)
		assert.Error(t, err)
	})

	t.Run("zero flags default to the current month", func(t *testing.T) {
		month, year, err := resolveMonth(0, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, month, 0)
		assert.LessOrEqual(t, month, 11)
		assert.GreaterOrEqual(t, year, 2024)
	})
}

func TestFormatMonth(t *testing.T) {
	assert.Equal(t, "March 2024", formatMonth(2, 2024))
	assert.Equal(t, "January 2025", formatMonth(0, 2025))
	assert.Equal(t, "December 2023", formatMonth(11, 2023))
}
