package money_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkasala/badmintongo-storefront/money"
)

func TestFormatIDR(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{90000, "Rp 90.000"},
		{180000, "Rp 180.000"},
		{1250000, "Rp 1.250.000"},
		{-90000, "-Rp 90.000"},
	}

	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			require.Equal(t, c.want, money.FormatIDR(c.in))
		})
	}
}
