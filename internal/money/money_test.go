package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arand/kharcha/internal/money"
)

func TestParse(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}

	tests := []testCase{
		{name: "Plain", input: "1234.56", want: 123456},
		{name: "ThousandsSeparators", input: "1,234.56", want: 123456},
		{name: "IndianGrouping", input: "12,34,567.89", want: 123456789},
		{name: "WholeRupees", input: "500", want: 50000},
		{name: "Negative", input: "-588.74", want: -58874},
		{name: "Whitespace", input: "  42.00  ", want: 4200},
		{name: "Empty", input: "", wantErr: true},
		{name: "Garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "₹12,34,567.89", money.Format(123456789))
	assert.Equal(t, "₹0.50", money.Format(50))
	assert.Equal(t, "-₹1,500.00", money.Format(-150000))
	assert.Equal(t, "₹0.00", money.Format(0))
}

func TestRupees(t *testing.T) {
	assert.Equal(t, int64(1234), money.Rupees(123456))
	assert.Equal(t, int64(-12), money.Rupees(-1250))
}

func TestString(t *testing.T) {
	assert.Equal(t, "1234.56", money.String(123456))
	assert.Equal(t, "-1500.00", money.String(-150000))
	assert.Equal(t, "0.05", money.String(5))
}
