package bikeshare

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"bikeflow.urbandata.org/internal/logging"
	"bikeflow.urbandata.org/internal/models"
	"bikeflow.urbandata.org/internal/utils"
)

// Metrics is the subset of instrumentation the manager reports into. A nil
// Metrics disables reporting.
type Metrics interface {
	SetDatasetSize(stations, trips int)
	RefreshSucceeded()
	RefreshFailed()
}

// Snapshot is one immutable load of the two datasets. The manager swaps
// whole snapshots so readers never observe a half-refreshed state.
type Snapshot struct {
	Stations []models.Station
	Trips    []models.Trip
}

// Manager loads the bike-share datasets and serves them to the HTTP layer.
type Manager struct {
	config      Config
	logger      *slog.Logger
	metrics     Metrics
	isLocalOnly bool

	mu           sync.RWMutex
	snapshot     *Snapshot
	stationsByID map[string]models.Station
	lastUpdated  time.Time

	shutdownChan chan struct{}
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// InitManager loads both datasets from the configured sources and, when at
// least one source is a URL and a refresh interval is set, starts a
// background reload loop. A failure to load either dataset is terminal.
func InitManager(config Config, logger *slog.Logger, metrics Metrics) (*Manager, error) {
	manager := &Manager{
		config:       config,
		logger:       logger,
		metrics:      metrics,
		isLocalOnly:  isLocalPath(config.StationsURL) && isLocalPath(config.TripsURL),
		shutdownChan: make(chan struct{}),
	}

	snapshot, err := loadSnapshot(config, logger)
	if err != nil {
		return nil, err
	}
	manager.setSnapshot(snapshot)

	if !manager.isLocalOnly && config.refreshEnabled() {
		manager.wg.Add(1)
		go manager.refreshPeriodically()
	}

	return manager, nil
}

// Shutdown stops the refresh loop and waits for it to exit.
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		close(manager.shutdownChan)
		manager.wg.Wait()
	})
}

func (manager *Manager) setSnapshot(snapshot *Snapshot) {
	byID := make(map[string]models.Station, len(snapshot.Stations))
	for _, station := range snapshot.Stations {
		byID[station.ID] = station
	}

	manager.mu.Lock()
	manager.snapshot = snapshot
	manager.stationsByID = byID
	manager.lastUpdated = time.Now()
	manager.mu.Unlock()

	if manager.metrics != nil {
		manager.metrics.SetDatasetSize(len(snapshot.Stations), len(snapshot.Trips))
	}
	if manager.config.Verbose {
		logging.LogOperation(manager.logger, "datasets updated",
			slog.Int("stations", len(snapshot.Stations)),
			slog.Int("trips", len(snapshot.Trips)))
	}
}

// GetStations returns the current station identity records. Callers must
// treat the slice as read-only; aggregation produces its own enriched copies.
func (manager *Manager) GetStations() []models.Station {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.snapshot.Stations
}

// GetTrips returns the current trip records. Read-only for callers.
func (manager *Manager) GetTrips() []models.Trip {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.snapshot.Trips
}

// StationByID looks up one station identity record.
func (manager *Manager) StationByID(id string) (models.Station, bool) {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	station, ok := manager.stationsByID[id]
	return station, ok
}

// LastUpdated reports when the current snapshot was installed.
func (manager *Manager) LastUpdated() time.Time {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.lastUpdated
}

type stationWithDistance struct {
	station  models.Station
	distance float64
}

// StationsForLocation returns up to maxCount stations within radius meters
// of the given point, closest first. A zero radius defaults to 1000m.
func (manager *Manager) StationsForLocation(lat, lon, radius float64, maxCount int) []models.Station {
	if radius == 0 {
		radius = 1000
	}

	var candidates []stationWithDistance
	for _, station := range manager.GetStations() {
		distance := utils.Haversine(lat, lon, station.Lat, station.Lon)
		if distance <= radius {
			candidates = append(candidates, stationWithDistance{station, distance})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	stations := make([]models.Station, 0, len(candidates))
	for i := 0; i < len(candidates) && i < maxCount; i++ {
		stations = append(stations, candidates[i].station)
	}
	return stations
}

// LogStatistics logs a one-line summary of the loaded datasets.
func (manager *Manager) LogStatistics() {
	manager.mu.RLock()
	snapshot := manager.snapshot
	lastUpdated := manager.lastUpdated
	manager.mu.RUnlock()

	logging.LogOperation(manager.logger, "bikeshare datasets loaded",
		slog.String("stations_source", manager.config.StationsURL),
		slog.String("trips_source", manager.config.TripsURL),
		slog.Bool("local_only", manager.isLocalOnly),
		slog.Int("stations", len(snapshot.Stations)),
		slog.Int("trips", len(snapshot.Trips)),
		slog.Time("last_updated", lastUpdated))
}

// refreshPeriodically reloads URL-backed datasets on the configured
// interval. A failed reload keeps the previous snapshot.
func (manager *Manager) refreshPeriodically() {
	defer manager.wg.Done()

	ticker := time.NewTicker(manager.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			snapshot, err := loadSnapshot(manager.config, manager.logger)
			if err != nil {
				logging.LogError(manager.logger, "dataset refresh failed", err)
				if manager.metrics != nil {
					manager.metrics.RefreshFailed()
				}
				continue
			}
			manager.setSnapshot(snapshot)
			if manager.metrics != nil {
				manager.metrics.RefreshSucceeded()
			}
		case <-manager.shutdownChan:
			logging.LogOperation(manager.logger, "stopping dataset refresh")
			return
		}
	}
}

// loadSnapshot fetches and parses both datasets. Either failure aborts the
// whole load; no partial snapshot is ever returned.
func loadSnapshot(config Config, logger *slog.Logger) (*Snapshot, error) {
	stations, err := loadStations(config.StationsURL)
	if err != nil {
		return nil, fmt.Errorf("loading stations: %w", err)
	}

	trips, skipped, err := loadTrips(config.TripsURL)
	if err != nil {
		return nil, fmt.Errorf("loading trips: %w", err)
	}
	if skipped > 0 {
		logging.LogOperation(logger, "skipped malformed trip rows",
			slog.Int("skipped", skipped),
			slog.String("source", config.TripsURL))
	}

	return &Snapshot{Stations: stations, Trips: trips}, nil
}
