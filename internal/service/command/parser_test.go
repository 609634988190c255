package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/models"
)

func amount(t *testing.T, s string) *models.Money {
	t.Helper()
	m, err := models.ParseNaira(s)
	require.NoError(t, err)
	return &m
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected models.ParsedCommand
	}{
		{
			name: "main debit",
			raw:  "2348011234567 MAIN -100",
			expected: models.ParsedCommand{
				Msisdn:    "2348011234567",
				DebitMain: amount(t, "100"),
			},
		},
		{
			name: "main and bonus debit",
			raw:  "2348011234567 MAIN -500 BONUS -200",
			expected: models.ParsedCommand{
				Msisdn:     "2348011234567",
				DebitMain:  amount(t, "500"),
				DebitBonus: amount(t, "200"),
			},
		},
		{
			name: "credits with decimals",
			raw:  "2348011234567 MAIN +10.50 BONUS +3.25 MAA",
			expected: models.ParsedCommand{
				Msisdn:      "2348011234567",
				CreditMain:  amount(t, "10.50"),
				CreditBonus: amount(t, "3.25"),
			},
		},
		{
			name: "country prefix added",
			raw:  "8011234567 main -25",
			expected: models.ParsedCommand{
				Msisdn:    "2348011234567",
				DebitMain: amount(t, "25"),
			},
		},
		{
			name: "mixed separators normalised",
			raw:  "2348011234567;MAIN, -40:\tBONUS -5",
			expected: models.ParsedCommand{
				Msisdn:     "2348011234567",
				DebitMain:  amount(t, "40"),
				DebitBonus: amount(t, "5"),
			},
		},
		{
			name:     "identifier only",
			raw:      "2348011234567",
			expected: models.ParsedCommand{Msisdn: "2348011234567"},
		},
		{
			name: "lowercase markers",
			raw:  "2348011234567 main -1 bonus +2",
			expected: models.ParsedCommand{
				Msisdn:      "2348011234567",
				DebitMain:   amount(t, "1"),
				CreditBonus: amount(t, "2"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseBonusAmountsScaled(t *testing.T) {
	cmd, err := Parse("2348011234567 BONUS -50")
	require.NoError(t, err)
	require.NotNil(t, cmd.DebitBonus)
	// 50 naira in counter units.
	assert.Equal(t, models.Money(500000), *cmd.DebitBonus)
}

func TestParseNoIdentifier(t *testing.T) {
	_, err := Parse("   \t  ")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrorMalformedCommand)
}

func TestCountMarkers(t *testing.T) {
	tests := []struct {
		raw             string
		debits, credits int
	}{
		{raw: "234 MAIN -100", debits: 1, credits: 0},
		{raw: "234 MAIN +100", debits: 0, credits: 1},
		{raw: "234 MAIN -100 BONUS +5", debits: 1, credits: 1},
		{raw: "234", debits: 0, credits: 0},
	}
	for _, tt := range tests {
		debits, credits := CountMarkers(tt.raw)
		assert.Equal(t, tt.debits, debits, tt.raw)
		assert.Equal(t, tt.credits, credits, tt.raw)
	}
}
