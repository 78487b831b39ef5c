package boundaries

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/xy"
)

// DefaultNameProperty is the feature property holding the council name in the Scottish
// local authority boundaries file.
const DefaultNameProperty = "Name"

var (
	ErrMissingName         = errors.New("feature has no council name")
	ErrDuplicateName       = errors.New("duplicate council boundary")
	ErrUnsupportedGeometry = errors.New("unsupported boundary geometry")
	ErrNoFeatures          = errors.New("boundary collection has no features")
)

// Council is the boundary of one council area.
type Council struct {
	Name       string
	Properties map[string]interface{}
	Geometry   geom.T
	Bounds     *geom.Bounds
	// Centroid is in (lon, lat) order.
	Centroid geom.Coord
}

// Set holds council boundaries keyed by name. It is read-only after Load.
type Set struct {
	nameProperty string
	councils     []*Council
	index        map[string]*Council
	bounds       *geom.Bounds
}

// Load decodes a GeoJSON FeatureCollection of Polygon and MultiPolygon features.
func Load(r io.Reader, nameProperty string) (*Set, error) {
	if nameProperty == "" {
		nameProperty = DefaultNameProperty
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read boundaries: %w", err)
	}

	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("decode boundaries: %w", err)
	}
	if len(fc.Features) == 0 {
		return nil, ErrNoFeatures
	}

	set := &Set{
		nameProperty: nameProperty,
		index:        make(map[string]*Council, len(fc.Features)),
		bounds:       geom.NewBounds(geom.XY),
	}

	for i, feature := range fc.Features {
		name, _ := feature.Properties[nameProperty].(string)
		if name == "" {
			return nil, fmt.Errorf("feature %d: %w (property %q)", i, ErrMissingName, nameProperty)
		}
		if _, exists := set.index[name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}

		var centroid geom.Coord
		switch g := feature.Geometry.(type) {
		case *geom.Polygon:
			centroid = xy.PolygonsCentroid(g)
		case *geom.MultiPolygon:
			centroid = xy.MultiPolygonCentroid(g)
		default:
			return nil, fmt.Errorf("council %q: %w %T", name, ErrUnsupportedGeometry, feature.Geometry)
		}

		council := &Council{
			Name:       name,
			Properties: feature.Properties,
			Geometry:   feature.Geometry,
			Bounds:     feature.Geometry.Bounds(),
			Centroid:   centroid,
		}
		set.councils = append(set.councils, council)
		set.index[name] = council
		set.bounds.Extend(feature.Geometry)
	}

	sort.Slice(set.councils, func(i, j int) bool {
		return set.councils[i].Name < set.councils[j].Name
	})

	return set, nil
}

// NameProperty is the feature property councils are keyed by, used as the map's feature id key.
func (s *Set) NameProperty() string {
	return s.nameProperty
}

func (s *Set) Len() int {
	return len(s.councils)
}

// Names returns the council names in alphabetical order.
func (s *Set) Names() []string {
	names := make([]string, len(s.councils))
	for i, c := range s.councils {
		names[i] = c.Name
	}
	return names
}

// Lookup matches by exact, case-sensitive name.
func (s *Set) Lookup(name string) (*Council, bool) {
	c, ok := s.index[name]
	return c, ok
}

// Councils returns the boundaries in name order.
func (s *Set) Councils() []*Council {
	out := make([]*Council, len(s.councils))
	copy(out, s.councils)
	return out
}

// Bounds covers every boundary in the set.
func (s *Set) Bounds() *geom.Bounds {
	return s.bounds.Clone()
}

// Center returns the middle of the overall bounding box as (lat, lon).
func (s *Set) Center() (lat, lon float64) {
	return (s.bounds.Min(1) + s.bounds.Max(1)) / 2, (s.bounds.Min(0) + s.bounds.Max(0)) / 2
}
