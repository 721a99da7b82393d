// README: Parsers for the government jCal feed and the simple fallback document.
package holiday

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	isoDate     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	compactDate = regexp.MustCompile(`^\d{8}$`)
)

// ParseJCal extracts holiday dates from a jCal calendar document, shaped as
// ["vcalendar", [...], [["vevent", [...], [["dtstart", {...}, "date", "20250101"], ...]], ...]].
// Every vevent dtstart value whose first eight non-dash characters form an
// 8-digit date is normalized to YYYY-MM-DD; everything else is discarded.
func ParseJCal(data []byte) []string {
	var dates []string
	var root []json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil || len(root) < 3 {
		return dates
	}
	if name := rawString(root[0]); name != "vcalendar" {
		return dates
	}
	var components []json.RawMessage
	if err := json.Unmarshal(root[2], &components); err != nil {
		return dates
	}
	for _, comp := range components {
		var parts []json.RawMessage
		if err := json.Unmarshal(comp, &parts); err != nil || len(parts) < 3 {
			continue
		}
		if rawString(parts[0]) != "vevent" {
			continue
		}
		var props []json.RawMessage
		if err := json.Unmarshal(parts[2], &props); err != nil {
			continue
		}
		for _, prop := range props {
			var fields []json.RawMessage
			if err := json.Unmarshal(prop, &fields); err != nil || len(fields) < 4 {
				continue
			}
			if rawString(fields[0]) != "dtstart" {
				continue
			}
			val := rawString(fields[3])
			if val == "" {
				continue
			}
			normalized := strings.ReplaceAll(val, "-", "")
			if len(normalized) > 8 {
				normalized = normalized[:8]
			}
			if !compactDate.MatchString(normalized) {
				continue
			}
			dates = append(dates, normalized[:4]+"-"+normalized[4:6]+"-"+normalized[6:8])
		}
	}
	return dates
}

// ParseSimple extracts holiday dates from the fallback document. Accepted
// shapes: a plain array of "YYYY-MM-DD" strings or {date: ...} objects, a
// {"holidays": [...]} wrapper of {date: ...} objects, or a {"dates": [...]}
// wrapper of strings. Strings not matching YYYY-MM-DD are discarded.
func ParseSimple(data []byte) []string {
	var dates []string

	var arr []json.RawMessage
	if err := json.Unmarshal(data, &arr); err == nil {
		for _, e := range arr {
			if d := entryDate(e); isoDate.MatchString(d) {
				dates = append(dates, d)
			}
		}
		return dates
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return dates
	}
	if raw, ok := obj["holidays"]; ok {
		var entries []struct {
			Date string `json:"date"`
		}
		if err := json.Unmarshal(raw, &entries); err == nil {
			for _, e := range entries {
				if isoDate.MatchString(e.Date) {
					dates = append(dates, e.Date)
				}
			}
		}
		return dates
	}
	if raw, ok := obj["dates"]; ok {
		var entries []string
		if err := json.Unmarshal(raw, &entries); err == nil {
			for _, d := range entries {
				if isoDate.MatchString(d) {
					dates = append(dates, d)
				}
			}
		}
		return dates
	}
	return dates
}

// entryDate pulls the date out of a fallback array element, which may be a
// bare string or an object with a date field.
func entryDate(raw json.RawMessage) string {
	var obj struct {
		Date string `json:"date"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Date != "" {
		return obj.Date
	}
	return rawString(raw)
}

func rawString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// IsHoliday reports whether date (YYYY-MM-DD) is in the holiday list. Pure
// membership: Sundays are the caller's concern, not the oracle's.
func IsHoliday(date string, dates []string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}
