package theory

import (
	"fmt"
	"strconv"
	"strings"
)

var validBeatUnits = map[int]bool{1: true, 2: true, 4: true, 8: true, 16: true}

// ParseTimeSignature parses "N/M" into beats per measure and beat unit.
// Only N drives generation; M is validated and handed to renderers.
func ParseTimeSignature(ts string) (beats int, unit int, err error) {
	parts := strings.Split(strings.TrimSpace(ts), "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time signature %q: expected N/M", ts)
	}

	beats, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid beats in time signature %q: %w", ts, err)
	}
	unit, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid beat unit in time signature %q: %w", ts, err)
	}

	if beats <= 0 {
		return 0, 0, fmt.Errorf("invalid time signature %q: beats must be positive", ts)
	}
	if !validBeatUnits[unit] {
		return 0, 0, fmt.Errorf("invalid time signature %q: beat unit must be 1, 2, 4, 8 or 16", ts)
	}
	return beats, unit, nil
}
