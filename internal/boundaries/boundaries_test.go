package boundaries

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-polyline"
	"simdshare.ubdc.ac.uk/internal/models"
)

func loadFixture(t *testing.T) *Set {
	t.Helper()

	f, err := os.Open(models.GetFixturePath(t, "councils.geojson"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	set, err := Load(f, DefaultNameProperty)
	require.NoError(t, err)
	return set
}

func TestLoad(t *testing.T) {
	set := loadFixture(t)

	assert.Equal(t, 4, set.Len())
	assert.Equal(t, []string{"Aberdeen City", "Dundee City", "Glasgow City", "Orkney Islands"}, set.Names())
	assert.Equal(t, "Name", set.NameProperty())

	aberdeen, ok := set.Lookup("Aberdeen City")
	require.True(t, ok)
	assert.Equal(t, "S12000033", aberdeen.Properties["Code"])
	assert.InDelta(t, -2.1, aberdeen.Centroid.X(), 1e-9)
	assert.InDelta(t, 57.15, aberdeen.Centroid.Y(), 1e-9)
	assert.InDelta(t, -2.2, aberdeen.Bounds.Min(0), 1e-9)
	assert.InDelta(t, 57.2, aberdeen.Bounds.Max(1), 1e-9)

	_, ok = set.Lookup("aberdeen city")
	assert.False(t, ok, "lookup is case-sensitive")
}

func TestLoad_MultiPolygonCentroidIsAreaWeighted(t *testing.T) {
	set := loadFixture(t)

	orkney, ok := set.Lookup("Orkney Islands")
	require.True(t, ok)
	assert.InDelta(t, -3.0667, orkney.Centroid.X(), 1e-4)
	assert.InDelta(t, 59.0667, orkney.Centroid.Y(), 1e-4)
}

func TestBoundsAndCenter(t *testing.T) {
	set := loadFixture(t)

	bounds := set.Bounds()
	assert.InDelta(t, -4.4, bounds.Min(0), 1e-9)
	assert.InDelta(t, -2.0, bounds.Max(0), 1e-9)
	assert.InDelta(t, 55.8, bounds.Min(1), 1e-9)
	assert.InDelta(t, 59.3, bounds.Max(1), 1e-9)

	lat, lon := set.Center()
	assert.InDelta(t, 57.55, lat, 1e-9)
	assert.InDelta(t, -3.2, lon, 1e-9)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "no features",
			input:   `{"type":"FeatureCollection","features":[]}`,
			wantErr: ErrNoFeatures,
		},
		{
			name: "missing name",
			input: `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"Code":"S1"},
				"geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}}]}`,
			wantErr: ErrMissingName,
		},
		{
			name: "duplicate name",
			input: `{"type":"FeatureCollection","features":[
				{"type":"Feature","properties":{"Name":"Fife"},"geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}},
				{"type":"Feature","properties":{"Name":"Fife"},"geometry":{"type":"Polygon","coordinates":[[[2,2],[3,2],[3,3],[2,2]]]}}]}`,
			wantErr: ErrDuplicateName,
		},
		{
			name: "point geometry",
			input: `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"Name":"Fife"},
				"geometry":{"type":"Point","coordinates":[0,0]}}]}`,
			wantErr: ErrUnsupportedGeometry,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			set, err := Load(strings.NewReader(tc.input), DefaultNameProperty)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, set)
		})
	}

	_, err := Load(strings.NewReader("not json"), DefaultNameProperty)
	assert.Error(t, err)
}

func TestJoin(t *testing.T) {
	set := loadFixture(t)

	result := Join(set, []string{"Glasgow City", "Na h-Eileanan Siar", "Aberdeen City", "Dundee City"})
	assert.Equal(t, []string{"Aberdeen City", "Dundee City", "Glasgow City"}, result.Matched)
	assert.Equal(t, []string{"Na h-Eileanan Siar"}, result.Unmapped)
	assert.Equal(t, []string{"Orkney Islands"}, result.BoundaryOnly)
}

func TestJoin_NilSet(t *testing.T) {
	result := Join(nil, []string{"Fife", "Angus"})
	assert.Empty(t, result.Matched)
	assert.Equal(t, []string{"Angus", "Fife"}, result.Unmapped)
	assert.Empty(t, result.BoundaryOnly)
}

func TestEncodeOutlines(t *testing.T) {
	set := loadFixture(t)

	outlines := set.EncodeOutlines()
	require.Len(t, outlines, 4)

	aberdeen := outlines[0]
	assert.Equal(t, "Aberdeen City", aberdeen.Council)
	require.Len(t, aberdeen.Polylines, 1)
	assert.InDelta(t, 57.15, aberdeen.Centroid[0], 1e-9)
	assert.InDelta(t, -2.1, aberdeen.Centroid[1], 1e-9)
	assert.InDelta(t, 57.1, aberdeen.BBox[0], 1e-9)
	assert.InDelta(t, -2.2, aberdeen.BBox[1], 1e-9)

	coords, rest, err := polyline.DecodeCoords([]byte(aberdeen.Polylines[0]))
	require.NoError(t, err)
	assert.Empty(t, rest)
	require.Len(t, coords, 5)
	assert.InDelta(t, 57.1, coords[0][0], 1e-5, "points are encoded lat first")
	assert.InDelta(t, -2.2, coords[0][1], 1e-5)

	orkney := outlines[3]
	assert.Equal(t, "Orkney Islands", orkney.Council)
	assert.Len(t, orkney.Polylines, 2, "one polyline per island polygon")
}
