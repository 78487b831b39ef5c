package shares

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Band is a deprivation band as offered in the dashboard selector.
type Band string

const (
	LeastDeprived20 Band = "20% least deprived"
	MostDeprived5   Band = "5% most deprived"
	MostDeprived10  Band = "10% most deprived"
	MostDeprived15  Band = "15% most deprived"
	MostDeprived20  Band = "20% most deprived"
	MostDeprived30  Band = "30% most deprived"
	MostDeprived40  Band = "40% most deprived"
)

// Bands lists every band in selector order.
var Bands = []Band{
	LeastDeprived20,
	MostDeprived5,
	MostDeprived10,
	MostDeprived15,
	MostDeprived20,
	MostDeprived30,
	MostDeprived40,
}

var (
	ErrInvalidBand      = errors.New("invalid deprivation band")
	ErrInvalidShareKind = errors.New("invalid share kind")
)

const (
	leastSuffix = "% least deprived"
	mostSuffix  = "% most deprived"
)

// ParseBand accepts either the band label ("5% most deprived") or its short id ("most-5").
func ParseBand(value string) (Band, error) {
	for _, band := range Bands {
		if value == string(band) || value == band.ID() {
			return band, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidBand, value)
}

// Valid reports whether b is one of the enumerated bands.
func (b Band) Valid() bool {
	for _, band := range Bands {
		if b == band {
			return true
		}
	}
	return false
}

// LeastDeprived reports whether the band selects the highest ranks.
func (b Band) LeastDeprived() bool {
	return strings.HasSuffix(string(b), leastSuffix)
}

// Percentage returns the share of all data zones the band covers, e.g. 5 for "5% most deprived".
func (b Band) Percentage() (int, error) {
	label := string(b)
	cut := strings.Index(label, "%")
	if cut <= 0 || (!strings.HasSuffix(label, leastSuffix) && !strings.HasSuffix(label, mostSuffix)) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBand, label)
	}
	pct, err := strconv.Atoi(label[:cut])
	if err != nil || pct <= 0 || pct > 100 {
		return 0, fmt.Errorf("%w: bad percentage in %q", ErrInvalidBand, label)
	}
	return pct, nil
}

// ID is the URL friendly form of the band, e.g. "most-5" or "least-20".
func (b Band) ID() string {
	pct, err := b.Percentage()
	if err != nil {
		return ""
	}
	if b.LeastDeprived() {
		return "least-" + strconv.Itoa(pct)
	}
	return "most-" + strconv.Itoa(pct)
}

// ShareKind selects which percentage the result is ordered by.
type ShareKind string

const (
	LocalShare    ShareKind = "local_share"
	NationalShare ShareKind = "national_share"
)

var ShareKinds = []ShareKind{LocalShare, NationalShare}

func ParseShareKind(value string) (ShareKind, error) {
	switch ShareKind(value) {
	case LocalShare, NationalShare:
		return ShareKind(value), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidShareKind, value)
}

// Label is the human readable form, "local share" or "national share".
func (k ShareKind) Label() string {
	return strings.ReplaceAll(string(k), "_", " ")
}
