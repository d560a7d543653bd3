package money_test

import (
	"testing"

	"github.com/hudsor01/tenantflow/business/types/money"
	"github.com/stretchr/testify/require"
)

func Test_Parse(t *testing.T) {
	tests := []struct {
		name    string
		cents   int64
		wantErr bool
	}{
		{name: "zero is accepted", cents: 0},
		{name: "typical rent", cents: 250_000},
		{name: "provider maximum", cents: 99_999_999},
		{name: "one over provider maximum", cents: 100_000_000, wantErr: true},
		{name: "negative", cents: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := money.Parse(tt.cents)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.cents, amount.Value())
		})
	}
}
