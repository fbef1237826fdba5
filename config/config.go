package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Mic source config
const MIC_SOURCE_ENDPOINT_BASE = "https://micfinder.nyc/data"
const MIC_SOURCE_CSV_PATH = "/coordinates_new_8_11.csv"

// Mics Refresher config
const MICS_REFRESHER_SERVICE_SCHEDULE_MINUTES = 60

// Local document store keys (mirror the original localStorage keys)
const FILTER_STORAGE_KEY = "micFinderFilters"
const FAVORITES_STORAGE_KEY = "micFinderFavorites"
const MICS_BACKUP_STORAGE_KEY = "micfinderBackup"

// Filter pipeline defaults, substituted when no custom window is set
const DEFAULT_TIME_WINDOW_START = "10:00 AM"
const DEFAULT_TIME_WINDOW_END = "11:45 PM"

// GRACE_WINDOW_MINUTES is how long after its start time a mic is still surfaced.
const GRACE_WINDOW_MINUTES = 30

// Sentinel selections that mean "no restriction".
const ANY_DAY_SENTINEL = "any day"
const ALL_SENTINEL = "all"

// UNKNOWN_COST_SENTINEL makes mics with an unparseable cost sort last.
const UNKNOWN_COST_SENTINEL = 999

// Fuzzy search tuning
const SEARCH_MIN_MATCH_LENGTH = 2
const SEARCH_MAX_DISTANCE_RATIO_PCT = 38
const SEARCH_PREFIX_LENGTH = 1

// Render trigger pacing
const RENDER_MIN_INTERVAL_MS = 300

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const MICS_STATIC_RESOURCE = "mics_static.csv"

// Env var overrides
const REDIS_ADDR_ENV = "REDIS_ADDR"
const REDIS_PASSWORD_ENV = "REDIS_PASSWORD"

// RedisAddress returns the Redis address, honoring the env override.
func RedisAddress() string {
	if addr := os.Getenv(REDIS_ADDR_ENV); addr != "" {
		return addr
	}
	return REDIS_DB_ADDRESS
}

// RedisPassword returns the Redis password, honoring the env override.
func RedisPassword() string {
	if pw := os.Getenv(REDIS_PASSWORD_ENV); pw != "" {
		return pw
	}
	return REDIS_DB_PASSWORD
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
