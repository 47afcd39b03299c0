package main

import "fan-survey/templates"

const (
	fanLocationCount = 100

	minFanLat = -6.5
	maxFanLat = 6.5
	minFanLon = 95.0
	maxFanLon = 141.0
)

// RandomFanLocation is a made-up point on the map. It is not tied to any
// survey response.
type RandomFanLocation struct {
	Lat float64
	Lon float64
}

// randomFanLocations samples n points with independent uniform latitude and
// longitude. u must return values in [0, 1).
func randomFanLocations(n int, u func() float64) []RandomFanLocation {
	locations := make([]RandomFanLocation, n)
	for i := range locations {
		locations[i] = RandomFanLocation{
			Lat: minFanLat + (maxFanLat-minFanLat)*u(),
			Lon: minFanLon + (maxFanLon-minFanLon)*u(),
		}
	}
	return locations
}

func fanMapData(locations []RandomFanLocation) templates.MapData {
	points := make([]templates.MapPoint, len(locations))
	for i, l := range locations {
		points[i] = templates.MapPoint{Lat: l.Lat, Lon: l.Lon}
	}
	return templates.MapData{
		Points:      points,
		CenterLat:   0,
		CenterLon:   120,
		Zoom:        3,
		Color:       "rgb(0, 255, 0)",
		Opacity:     160.0 / 255.0,
		Radius:      4,
		TileURL:     "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
		Attribution: "&copy; OpenStreetMap contributors",
	}
}
