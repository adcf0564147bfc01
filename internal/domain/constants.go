package domain

import "time"

// Time format constants
const (
	DateFormat     = "2006-01-02" // YYYY-MM-DD
	DateTimeFormat = time.RFC3339
)

// Money format constants
const (
	MoneyPlaces = 2
)

// Check-in defaults
const (
	DefaultSessionTTL    = 2 * time.Hour
	DefaultSweepInterval = 5 * time.Minute
	DefaultNightLocale   = "es"
	DefaultCatalogTTL    = 60 // секунды
)
