package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLamportsToSOL(t *testing.T) {
	cases := map[uint64]string{
		0:             "0.000000000",
		1:             "0.000000001",
		5000:          "0.000005000",
		24981836:      "0.024981836",
		1_000_000_000: "1.000000000",
		1_500_000_000: "1.500000000",
	}
	for lamports, want := range cases {
		assert.Equal(t, want, LamportsToSOL(lamports))
	}
}

func TestSOLToLamports(t *testing.T) {
	cases := map[string]uint64{
		"1":           1_000_000_000,
		"0.5":         500_000_000,
		".5":          500_000_000,
		"2.":          2_000_000_000,
		" 0.000005 ":  5000,
		"0.024981836": 24981836,
	}
	for in, want := range cases {
		got, err := SOLToLamports(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestSOLToLamports_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", ".", "abc", "1.2.3", "-1", "+1", "0.0000000001", "1e3"} {
		_, err := SOLToLamports(in)
		assert.Error(t, err, in)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 7, 123456789, 98_765_432_100} {
		got, err := SOLToLamports(LamportsToSOL(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}
