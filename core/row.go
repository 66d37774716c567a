package core

import (
	"errors"
	"strconv"
	"strings"
)

const headerPrefix = "TripID"

// Trip is the part of a CSV row that the tallies consume.
type Trip struct {
	Zone string
	Hour int
}

// ParseRow extracts the pickup zone and hour-of-day from one CSV line with
// its line terminator already removed. Two layouts are recognised:
//
//	TripID,PickupZoneID,<any>,PickupTimestamp,<number>,<number>[,...]
//	TripID,PickupZoneID,PickupTimestamp
//
// Header lines (prefix "TripID") and anything else are rejected with ok=false.
func ParseRow(line string) (trip Trip, ok bool) {
	if strings.HasPrefix(line, headerPrefix) {
		return Trip{Hour: -1}, false
	}

	fields := strings.Split(line, ",")

	var rawZone, rawDate string
	switch {
	case len(fields) >= 6:
		rawZone = fields[1]
		rawDate = fields[3]
		if !isValidNum(fields[4]) || !isValidNum(fields[5]) {
			return Trip{Hour: -1}, false
		}
	case len(fields) == 3:
		rawZone = fields[1]
		rawDate = fields[2]
	default:
		return Trip{Hour: -1}, false
	}
	if rawZone == "" || rawDate == "" {
		return Trip{Hour: -1}, false
	}

	hour, ok := parseHour(rawDate)
	if !ok || hour < 0 || hour >= HoursPerDay {
		return Trip{Hour: -1}, false
	}
	return Trip{Zone: rawZone, Hour: hour}, true
}

// parseHour reads the hour token between the first space and the next colon.
// Trailing characters after the leading digits are ignored.
func parseHour(rawDate string) (int, bool) {
	spacePos := strings.IndexByte(rawDate, ' ')
	if spacePos < 0 {
		return -1, false
	}
	timeStart := spacePos + 1
	if timeStart >= len(rawDate) {
		return -1, false
	}
	colonPos := strings.IndexByte(rawDate[timeStart:], ':')
	if colonPos < 0 {
		return -1, false
	}
	return leadingInt(rawDate[timeStart : timeStart+colonPos])
}

// leadingInt parses an optionally signed decimal prefix of s after leading
// whitespace. Values beyond the int32 range saturate.
func leadingInt(s string) (int, bool) {
	i := skipSpace(s, 0)
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	start := i
	value := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if value < 1<<31 {
			value = value*10 + int(s[i]-'0')
		}
	}
	if i == start {
		return -1, false
	}
	if neg {
		value = -value
	}
	return value, true
}

// isValidNum reports whether the whole of s, after leading whitespace, is a
// floating point literal. Out-of-range magnitudes still count as numbers.
func isValidNum(s string) bool {
	rest := s[skipSpace(s, 0):]
	if rest == "" {
		return false
	}
	_, err := strconv.ParseFloat(rest, 32)
	if err == nil {
		return true
	}
	var numErr *strconv.NumError
	return errors.As(err, &numErr) && numErr.Err == strconv.ErrRange
}

func skipSpace(s string, i int) int {
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			i++
		default:
			return i
		}
	}
	return i
}
