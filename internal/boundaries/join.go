package boundaries

import (
	"sort"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-polyline"
)

// JoinResult is the outcome of matching data councils against boundary names.
type JoinResult struct {
	// Matched councils appear in both the data and the boundaries.
	Matched []string `json:"matched"`
	// Unmapped councils have data but no boundary and cannot be drawn.
	Unmapped []string `json:"unmapped"`
	// BoundaryOnly councils have a boundary but no data.
	BoundaryOnly []string `json:"boundaryOnly"`
}

// Join matches council names exactly. A nil set leaves every council unmapped.
func Join(set *Set, councils []string) JoinResult {
	result := JoinResult{
		Matched:      []string{},
		Unmapped:     []string{},
		BoundaryOnly: []string{},
	}

	seen := make(map[string]bool, len(councils))
	for _, name := range councils {
		seen[name] = true
		if set == nil {
			result.Unmapped = append(result.Unmapped, name)
			continue
		}
		if _, ok := set.Lookup(name); ok {
			result.Matched = append(result.Matched, name)
		} else {
			result.Unmapped = append(result.Unmapped, name)
		}
	}

	if set != nil {
		for _, c := range set.councils {
			if !seen[c.Name] {
				result.BoundaryOnly = append(result.BoundaryOnly, c.Name)
			}
		}
	}

	sort.Strings(result.Matched)
	sort.Strings(result.Unmapped)
	sort.Strings(result.BoundaryOnly)
	return result
}

// Outline is the compact form of one council boundary sent to map clients.
type Outline struct {
	Council string `json:"council"`
	// Polylines holds one Google encoded polyline per outer ring, in (lat, lon) order.
	Polylines []string   `json:"polylines"`
	Centroid  [2]float64 `json:"centroid"`
	// BBox is [minLat, minLon, maxLat, maxLon].
	BBox [4]float64 `json:"bbox"`
}

// EncodeOutlines returns the outer rings of every council as encoded polylines, in name order.
func (s *Set) EncodeOutlines() []Outline {
	outlines := make([]Outline, 0, len(s.councils))
	for _, c := range s.councils {
		outlines = append(outlines, Outline{
			Council:   c.Name,
			Polylines: encodeOuterRings(c.Geometry),
			Centroid:  [2]float64{c.Centroid.Y(), c.Centroid.X()},
			BBox:      [4]float64{c.Bounds.Min(1), c.Bounds.Min(0), c.Bounds.Max(1), c.Bounds.Max(0)},
		})
	}
	return outlines
}

func encodeOuterRings(g geom.T) []string {
	var rings []*geom.LinearRing
	switch g := g.(type) {
	case *geom.Polygon:
		if g.NumLinearRings() > 0 {
			rings = append(rings, g.LinearRing(0))
		}
	case *geom.MultiPolygon:
		for i := 0; i < g.NumPolygons(); i++ {
			if p := g.Polygon(i); p.NumLinearRings() > 0 {
				rings = append(rings, p.LinearRing(0))
			}
		}
	}

	var encoded []string
	for _, ring := range rings {
		var coords [][]float64
		for _, c := range ring.Coords() {
			coords = append(coords, []float64{c.Y(), c.X()})
		}
		if len(coords) > 1 {
			encoded = append(encoded, string(polyline.EncodeCoords(coords)))
		}
	}
	return encoded
}
