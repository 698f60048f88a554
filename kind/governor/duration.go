package governor

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

var durationPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?) +(second|minute|hour|day|week|month|year)s?$`)

const (
	minute = 60
	hour   = 60 * minute
	day    = 24 * hour
)

var unitSeconds = map[string]float64{
	"second": 1,
	"minute": minute,
	"hour":   hour,
	"day":    day,
	"week":   7 * day,
	"month":  30 * day,
	"year":   365 * day,
}

// durationToBlocks converts a duration such as "1 week" into a number of
// blocks produced every blockTime seconds, rounded down.
func durationToBlocks(duration string, blockTime int) (int64, error) {
	m := durationPattern.FindStringSubmatch(duration)
	if m == nil {
		return 0, fmt.Errorf("cannot parse duration %q", duration)
	}
	if blockTime <= 0 {
		return 0, fmt.Errorf("block time must be positive")
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("cannot parse duration %q: %w", duration, err)
	}
	blocks := value * unitSeconds[m[2]] / float64(blockTime)
	if blocks >= math.MaxInt64 {
		return 0, fmt.Errorf("duration %q is too long", duration)
	}
	return int64(blocks), nil
}
