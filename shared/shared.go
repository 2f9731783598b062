package shared

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// ConvertStringToInt returns nil for an empty value and an error for anything unparsable.
func ConvertStringToInt(value string) (*int, error) {
	if value == "" {
		return nil, nil //nolint:nilnil
	}

	intValue, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		log.Error().Err(err).Str("value", value).Msg("failed to convert string to int")

		return nil, err //nolint:wrapcheck
	}

	return &intValue, nil
}

// BuildCacheKey joins a prefix and its parts into a single namespaced key.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}
