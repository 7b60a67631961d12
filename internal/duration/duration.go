// Package duration implements the canonical elapsed-time text format used for
// race finish times: "HH:MM:SS.mmm", hours of unbounded width, minutes and
// seconds two digits, milliseconds three digits, all zero-padded.
package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	millisPerSecond = 1000
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
)

// Zero is the canonical rendering of a zero elapsed time. It is also what an
// absent time renders to, the two are indistinguishable on purpose.
const Zero = "00:00:00.000"

var canonicalPattern = regexp.MustCompile(`^\d{2,}:[0-5]\d:[0-5]\d\.\d{3}$`)

// Valid reports whether text is in strict canonical form. Only canonical text
// may be compared lexicographically, so callers must validate operator input
// before it reaches ranking or aggregation.
func Valid(text string) bool {
	return canonicalPattern.MatchString(text)
}

// Parse converts elapsed-time text into a millisecond count. The millisecond
// fraction may be omitted, in which case it defaults to zero; every other
// component is required and range-checked.
func Parse(text string) (int64, error) {
	parts := strings.Split(text, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("malformed duration %q: expected HH:MM:SS.mmm", text)
	}

	hours, err := parseComponent(text, "hours", parts[0])
	if err != nil {
		return 0, err
	}

	minutes, err := parseComponent(text, "minutes", parts[1])
	if err != nil {
		return 0, err
	}
	if minutes > 59 {
		return 0, fmt.Errorf("malformed duration %q: minutes out of range", text)
	}

	secText, msText, hasFraction := strings.Cut(parts[2], ".")

	seconds, err := parseComponent(text, "seconds", secText)
	if err != nil {
		return 0, err
	}
	if seconds > 59 {
		return 0, fmt.Errorf("malformed duration %q: seconds out of range", text)
	}

	var millis int64
	if hasFraction {
		if len(msText) != 3 {
			return 0, fmt.Errorf("malformed duration %q: milliseconds must be three digits", text)
		}
		millis, err = parseComponent(text, "milliseconds", msText)
		if err != nil {
			return 0, err
		}
	}

	return hours*millisPerHour + minutes*millisPerMinute + seconds*millisPerSecond + millis, nil
}

// Format renders a millisecond count in canonical form. Hours grow beyond two
// digits when needed; Format(0) yields Zero.
func Format(ms int64) string {
	if ms < 0 {
		ms = 0
	}

	hours := ms / millisPerHour
	minutes := (ms % millisPerHour) / millisPerMinute
	seconds := (ms % millisPerMinute) / millisPerSecond
	millis := ms % millisPerSecond

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}

// Compare orders two canonical duration texts. Canonical text is zero-padded
// everywhere except the hour field, which widens past two digits as needed,
// so a longer text always encodes the larger duration and equal-length texts
// compare lexicographically.
func Compare(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func parseComponent(text, name, raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("malformed duration %q: empty %s component", text, name)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed duration %q: non-numeric %s component", text, name)
	}
	if v < 0 {
		return 0, fmt.Errorf("malformed duration %q: negative %s component", text, name)
	}
	return v, nil
}
