package kernel_test

import (
	"testing"

	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantityFromString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		positive bool
		wantErr  error
	}{
		{name: "integer", input: "1000", want: "1000", positive: true},
		{name: "fraction with spaces", input: " 12.5 ", want: "12.5", positive: true},
		{name: "zero", input: "0", want: "0", positive: false},
		{name: "negative", input: "-3", wantErr: errs.ErrValueIsOutOfRange},
		{name: "garbage", input: "lots", wantErr: errs.ErrValueIsInvalid},
		{name: "empty", input: "", wantErr: errs.ErrValueIsInvalid},
		{name: "three decimals", input: "0.125", want: "0.125", positive: true},
		{name: "trailing zeros beyond three decimals", input: "2.50000", want: "2.5", positive: true},
		{name: "four decimals", input: "0.0004", wantErr: errs.ErrValueIsInvalid},
		{name: "five decimals", input: "0.00001", wantErr: errs.ErrValueIsInvalid},
		{name: "largest storable", input: "99999999999.999", want: "99999999999.999", positive: true},
		{name: "too large", input: "1e15", wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := kernel.QuantityFromString(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, q.String())
			assert.Equal(t, tt.positive, q.IsPositive())
		})
	}
}

func TestQuantity_IsEqual(t *testing.T) {
	assert.True(t, kernel.MustQuantity("20").IsEqual(kernel.MustQuantity("20.00")))
	assert.False(t, kernel.MustQuantity("20").IsEqual(kernel.MustQuantity("21")))
}
