package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "Dot", input: "12.50", want: "12.5"},
		{name: "Comma", input: "12,50", want: "12.5"},
		{name: "Currency", input: "19 zł", want: "19"},
		{name: "ThousandsAndCurrency", input: "1 234,50 zł", want: "1234.5"},
		{name: "DottedThousands", input: "1.234,50", want: "1234.5"},
		{name: "NonBreakingSpace", input: "2 000,00", want: "2000"},
		{name: "Negative", input: "-45,10", want: "-45.1"},
		{name: "PLN", input: "10 PLN", want: "10"},
		{name: "Empty", input: "  ", wantErr: true},
		{name: "Garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ledger.ParseAmount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "19.00", ledger.FormatAmount(dec("19")))
	assert.Equal(t, "-0.50", ledger.FormatAmount(dec("-0.5")))
}
