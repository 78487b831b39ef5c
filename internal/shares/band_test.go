package shares

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBand(t *testing.T) {
	testCases := []struct {
		input string
		want  Band
	}{
		{input: "5% most deprived", want: MostDeprived5},
		{input: "most-5", want: MostDeprived5},
		{input: "40% most deprived", want: MostDeprived40},
		{input: "least-20", want: LeastDeprived20},
		{input: "20% least deprived", want: LeastDeprived20},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			band, err := ParseBand(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, band)
		})
	}

	for _, bad := range []string{"", "25% most deprived", "abc% most deprived", "most-7", "5%"} {
		_, err := ParseBand(bad)
		assert.ErrorIs(t, err, ErrInvalidBand, bad)
	}
}

func TestBandPercentage(t *testing.T) {
	expected := []int{20, 5, 10, 15, 20, 30, 40}
	for i, band := range Bands {
		pct, err := band.Percentage()
		require.NoError(t, err)
		assert.Equal(t, expected[i], pct, band)
	}

	_, err := Band("abc% most deprived").Percentage()
	assert.ErrorIs(t, err, ErrInvalidBand)

	_, err = Band("0% most deprived").Percentage()
	assert.ErrorIs(t, err, ErrInvalidBand)

	_, err = Band("5% somewhat deprived").Percentage()
	assert.ErrorIs(t, err, ErrInvalidBand)
}

func TestBandValid(t *testing.T) {
	for _, band := range Bands {
		assert.True(t, band.Valid(), band)
	}
	// Well formed but not offered.
	assert.False(t, Band("7% most deprived").Valid())
	assert.Equal(t, "most-7", Band("7% most deprived").ID())
}

func TestBandDirection(t *testing.T) {
	assert.True(t, LeastDeprived20.LeastDeprived())
	for _, band := range Bands[1:] {
		assert.False(t, band.LeastDeprived(), band)
	}
}

func TestBandID(t *testing.T) {
	assert.Equal(t, "least-20", LeastDeprived20.ID())
	assert.Equal(t, "most-15", MostDeprived15.ID())
	assert.Equal(t, "", Band("nonsense").ID())
}

func TestParseShareKind(t *testing.T) {
	kind, err := ParseShareKind("national_share")
	require.NoError(t, err)
	assert.Equal(t, NationalShare, kind)
	assert.Equal(t, "national share", kind.Label())

	_, err = ParseShareKind("Local_Share")
	assert.ErrorIs(t, err, ErrInvalidShareKind)
}

func TestRoundHalfEven(t *testing.T) {
	testCases := []struct {
		num, den, want int
	}{
		{num: 50, den: 100, want: 0},
		{num: 150, den: 100, want: 2},
		{num: 250, den: 100, want: 2},
		{num: 34880, den: 100, want: 349},
		{num: 104640, den: 100, want: 1046},
		{num: 400, den: 100, want: 4},
		{num: 0, den: 100, want: 0},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, roundHalfEven(tc.num, tc.den), "%d/%d", tc.num, tc.den)
	}
}
