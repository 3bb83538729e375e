package money_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vincent-oy/GrocerEase/internal/money"
)

func TestParseCents(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want int64
	}{
		{"", 0},
		{"NT$", 0},
		{"  ", 0},
		{"12", 1200},
		{"NT$12.34", 1234},
		{"NT$12.345", 1235},
		{"0.005", 1},
		{"1,200", 120000},
		{"1 200.50", 120050},
		{"-45", 4500}, // minus sign is stripped with the rest
	}
	for _, tc := range cases {
		got, err := money.ParseCents(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseCentsRejectsMalformedRemainder(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"1.2.3", "..", "1..5"} {
		_, err := money.ParseCents(in)
		require.Error(t, err, in)
	}
}

func TestFormatCents(t *testing.T) {
	t.Parallel()

	require.Equal(t, "NT$12.35", money.FormatCents(1235))
	require.Equal(t, "NT$0.00", money.FormatCents(0))
	require.Equal(t, "NT$0.05", money.FormatCents(5))
	require.Equal(t, "NT$1200.00", money.FormatCents(120000))
}

func TestParseFormatRoundTrip(t *testing.T) {
	t.Parallel()

	for _, c := range []int64{0, 1, 99, 100, 1235, 987654} {
		parsed, err := money.ParseCents(money.FormatCents(c))
		require.NoError(t, err)
		require.Equal(t, c, parsed)
	}
}
