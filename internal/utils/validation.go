package utils

import (
	"errors"
	"regexp"
)

// Allow alphanumeric, underscore, hyphen, dot - common in station IDs
var validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// ValidateID validates that a station ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateLatitude validates latitude values
func ValidateLatitude(lat float64) error {
	if lat < -90.0 || lat > 90.0 {
		return errors.New("latitude must be between -90 and 90")
	}
	return nil
}

// ValidateLongitude validates longitude values
func ValidateLongitude(lon float64) error {
	if lon < -180.0 || lon > 180.0 {
		return errors.New("longitude must be between -180 and 180")
	}
	return nil
}

// ValidateRadius validates radius values for location searches. The maximum
// keeps a single query from scanning a whole region.
func ValidateRadius(radius float64) error {
	if radius < 0 {
		return errors.New("radius must be non-negative")
	}
	if radius > 10000 {
		return errors.New("radius too large (max 10000 meters)")
	}
	return nil
}

// ValidateLocationParams validates a lat/lon/radius triple and returns
// per-field errors in the shape the HTTP layer reports.
func ValidateLocationParams(lat, lon, radius float64) map[string][]string {
	fieldErrors := make(map[string][]string)

	if err := ValidateLatitude(lat); err != nil {
		fieldErrors["lat"] = append(fieldErrors["lat"], err.Error())
	}
	if err := ValidateLongitude(lon); err != nil {
		fieldErrors["lon"] = append(fieldErrors["lon"], err.Error())
	}
	if err := ValidateRadius(radius); err != nil {
		fieldErrors["radius"] = append(fieldErrors["radius"], err.Error())
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}
