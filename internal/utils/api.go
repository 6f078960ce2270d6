package utils

import (
	"fmt"
	"net/url"
	"strconv"

	"bikeflow.urbandata.org/internal/traffic"
)

// ParseFloatParam retrieves a float64 value from the provided URL query parameters.
// If the key is not present or the value is invalid, it returns 0 and updates the fieldErrors map.
func ParseFloatParam(params url.Values, key string, fieldErrors map[string][]string) (float64, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return 0, fieldErrors
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
	}
	return f, fieldErrors
}

// ParseIntParam retrieves an int value from the provided URL query parameters,
// collecting an error into fieldErrors when the value does not parse.
func ParseIntParam(params url.Values, key string, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return 0, fieldErrors
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
	}
	return n, fieldErrors
}

// ParseMinutesParam reads a minutes-since-midnight filter value from the
// query parameters. An absent parameter means the filter is inactive. The
// sentinel -1 is accepted explicitly; anything else outside [0, 1439] is a
// field error.
func ParseMinutesParam(params url.Values, key string, fieldErrors map[string][]string) (traffic.Minutes, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return traffic.NoFilter, fieldErrors
	}

	n, err := strconv.Atoi(val)
	minutes := traffic.Minutes(n)
	if err != nil || !minutes.Valid() {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return traffic.NoFilter, fieldErrors
	}
	return minutes, fieldErrors
}
