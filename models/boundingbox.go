package models

// BoundingBox is a map viewport rectangle.
type BoundingBox struct {
	LatMin float64 `json:"lat_min"`
	LatMax float64 `json:"lat_max"`
	LngMin float64 `json:"lng_min"`
	LngMax float64 `json:"lng_max"`
}

// Contains reports whether the point falls inside the box, edges included.
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.LatMin && lat <= b.LatMax &&
		lon >= b.LngMin && lon <= b.LngMax
}
