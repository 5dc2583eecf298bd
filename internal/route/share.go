package route

import (
	"encoding/json"
	"fmt"
	"strconv"

	"backend-runtracker/internal/shared/geo"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

const appleMapsURL = "http://maps.apple.com/maps?saddr=%s,%s&daddr=%s,%s"

// ShareURL links the first and last samples of a route. It needs at least
// two samples.
func ShareURL(samples []Sample) (string, bool) {
	if len(samples) < 2 {
		return "", false
	}
	start, end := samples[0], samples[len(samples)-1]
	return fmt.Sprintf(appleMapsURL, coord(start.Lat), coord(start.Lng), coord(end.Lat), coord(end.Lng)), true
}

func ShareMessage(url string) string {
	return "Hey, this is the route I jogged: " + url
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Annotations returns the start and end markers of a route, or nil for
// routes shorter than two samples.
func Annotations(samples []Sample) []Annotation {
	if len(samples) < 2 {
		return nil
	}
	start, end := samples[0], samples[len(samples)-1]
	return []Annotation{
		{
			Kind:     "start",
			Title:    "Starting Point",
			Subtitle: "This is where you started",
			Lat:      start.Lat,
			Lng:      start.Lng,
			Cell:     geo.Cell(start.Lat, start.Lng),
		},
		{
			Kind:     "end",
			Title:    "Ending Point",
			Subtitle: "This is where you ended",
			Lat:      end.Lat,
			Lng:      end.Lng,
			Cell:     geo.Cell(end.Lat, end.Lng),
		},
	}
}

// GeoJSON renders the route as a LineString plus its start/end markers.
// The collection bbox is the route bound.
func GeoJSON(samples []Sample) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if len(samples) == 0 {
		return fc
	}

	line := make(orb.LineString, 0, len(samples))
	for _, s := range samples {
		line = append(line, orb.Point{s.Lng, s.Lat})
	}
	path := geojson.NewFeature(line)
	path.Properties["kind"] = "route"
	path.Properties["distance_m"] = TotalDistance(samples)
	fc.Append(path)

	for _, a := range Annotations(samples) {
		f := geojson.NewFeature(orb.Point{a.Lng, a.Lat})
		f.Properties["kind"] = a.Kind
		f.Properties["title"] = a.Title
		f.Properties["subtitle"] = a.Subtitle
		f.Properties["cell"] = a.Cell
		fc.Append(f)
	}

	fc.BBox = geojson.NewBBox(line.Bound())
	return fc
}

func MarshalGeoJSON(samples []Sample) ([]byte, error) {
	return json.Marshal(GeoJSON(samples))
}
