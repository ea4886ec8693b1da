package timezone

import (
	"time"
	_ "time/tzdata"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

// Init loads the application location, falling back to UTC when the name is
// empty or unknown.
func Init(name string) *time.Location {
	if name == "" {
		log.Debug().Msg("No timezone configured, using UTC as default")
		appLocation = time.UTC

		return appLocation
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warn().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC")
		appLocation = time.UTC

		return appLocation
	}

	appLocation = loc
	log.Debug().
		Str("timezone", name).
		Msg("Application timezone initialized")

	return appLocation
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return t.In(GetLocation()).Format(layout)
}
