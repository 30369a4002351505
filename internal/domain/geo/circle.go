package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// DefaultCircleSegments is the vertex count used when approximating a zone as a polygon.
const DefaultCircleSegments = 64

// CirclePolygon approximates a circle of radius meters around center as a closed ring.
func CirclePolygon(center Point, radius float64, segments int) orb.Polygon {
	if segments < 3 {
		segments = DefaultCircleSegments
	}

	ring := make(orb.Ring, 0, segments+1)
	for i := 0; i < segments; i++ {
		bearing := float64(i) * 360 / float64(segments)
		ring = append(ring, Destination(center, bearing, radius).Orb())
	}
	ring = append(ring, ring[0])

	return orb.Polygon{ring}
}

// CircleFeature wraps CirclePolygon in a GeoJSON feature carrying the given properties.
func CircleFeature(center Point, radius float64, props map[string]any) *geojson.Feature {
	feature := geojson.NewFeature(CirclePolygon(center, radius, DefaultCircleSegments))
	for k, v := range props {
		feature.Properties[k] = v
	}
	feature.Properties["radius"] = radius
	feature.Properties["center"] = []float64{center.Lng, center.Lat}

	return feature
}
