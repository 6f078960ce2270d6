package bikeshare

import "time"

// Config describes where the station and trip datasets come from. Either
// source can be an http(s) URL or a local file path.
type Config struct {
	StationsURL     string
	TripsURL        string
	RefreshInterval time.Duration
	Verbose         bool
}

func (config Config) refreshEnabled() bool {
	return config.RefreshInterval > 0
}
