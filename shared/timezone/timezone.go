package timezone

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"friendlydate/config"
	"friendlydate/shared/datefmt"

	"github.com/rs/zerolog/log"
)

const (
	defaultTimezone = "Asia/Seoul"

	layoutLocalDateTime = "2006-01-02T15:04:05"
	layoutLocalMinute   = "2006-01-02T15:04"
	layoutDate          = "2006-01-02"
)

var (
	appLocation *time.Location

	ErrEmptyInstant = errors.New("instant is empty")
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Str("timezone", defaultTimezone).Msg("No timezone configured, using default")
		cfg.App.Timezone = defaultTimezone
	}

	SetLocation(cfg.App.Timezone)
}

// SetLocation replaces the device timezone, falling back to UTC when name is unknown.
func SetLocation(name string) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Seoul', 'UTC', 'America/New_York'")
		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", name).
		Str("location", loc.String()).
		Msg("Device timezone initialized")
}

// Now returns the current time in the device timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// ToAppTime converts a time to the device timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// GetLocation returns the device timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, returning UTC")

		return time.UTC
	}

	return appLocation
}

// OffsetMinutes returns the device timezone offset east of UTC at t.
func OffsetMinutes(t time.Time) int {
	return datefmt.OffsetMinutes(ToAppTime(t))
}

// Parse parses a time string in the device timezone
func Parse(layout, value string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, value, GetLocation())
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse time: %w", err)
	}

	return t, nil
}

// ParseInstant reads an RFC 3339 timestamp, a zone-less date-time or date, or
// unix seconds, and returns it in the device timezone.
func ParseInstant(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrEmptyInstant
	}

	if seconds, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Unix(seconds, 0).In(GetLocation()), nil
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return ToAppTime(t), nil
	}

	for _, layout := range []string{layoutLocalDateTime, layoutLocalMinute, layoutDate} {
		if t, err := Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported instant %q", value)
}

// Format formats a time in the device timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
