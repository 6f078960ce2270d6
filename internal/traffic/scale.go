package traffic

import "math"

// Marker radius ranges in pixels. The range widens when a time filter is
// active so sparse filtered data stays legible.
const (
	unfilteredRadiusMin = 0.0
	unfilteredRadiusMax = 25.0
	filteredRadiusMin   = 3.0
	filteredRadiusMax   = 50.0
)

// RadiusScale maps total traffic onto a marker radius with a square-root
// scale, so marker area grows linearly with traffic.
type RadiusScale struct {
	sqrtMax  float64
	rangeMin float64
	rangeMax float64
}

// NewRadiusScale builds a scale over the domain [0, maxTotal]. Pass the
// maximum TotalTraffic of the currently filtered station set; a zero or
// negative maxTotal yields a collapsed scale that maps everything to 0.
func NewRadiusScale(maxTotal int, filtered bool) RadiusScale {
	scale := RadiusScale{
		rangeMin: unfilteredRadiusMin,
		rangeMax: unfilteredRadiusMax,
	}
	if filtered {
		scale.rangeMin = filteredRadiusMin
		scale.rangeMax = filteredRadiusMax
	}
	if maxTotal > 0 {
		scale.sqrtMax = math.Sqrt(float64(maxTotal))
	}
	return scale
}

// Radius maps a total-traffic value into the pixel range.
func (s RadiusScale) Radius(totalTraffic int) float64 {
	if s.sqrtMax == 0 {
		return 0
	}
	if totalTraffic < 0 {
		totalTraffic = 0
	}
	t := math.Sqrt(float64(totalTraffic)) / s.sqrtMax
	return s.rangeMin + t*(s.rangeMax-s.rangeMin)
}

// FlowBucket quantizes the departure share of a station's traffic into three
// style levels: 0 (mostly arrivals), 0.5 (balanced), 1 (mostly departures).
// The ratio is defined as 0 when totalTraffic is 0. Thresholds sit at 1/3
// and 2/3 and are inclusive on the upper side, so a ratio of exactly 1/3
// lands in the middle bucket.
func FlowBucket(departures, totalTraffic int) float64 {
	var ratio float64
	if totalTraffic > 0 {
		ratio = float64(departures) / float64(totalTraffic)
	}
	switch {
	case ratio < 1.0/3.0:
		return 0
	case ratio < 2.0/3.0:
		return 0.5
	default:
		return 1
	}
}
