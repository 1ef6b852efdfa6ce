package model

import "time"

// DateLayout is the wire format for all dates on a draft return.
const DateLayout = "2006-01-02"

// ParseDate parses "YYYY-MM-DD" without going through time.Parse's layout
// machinery, which shows up in profiles when validating whole returns.
// Returns zero time and false on invalid input.
func ParseDate(s string) (time.Time, bool) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return time.Time{}, false
	}
	for i, c := range []byte(s) {
		if i == 4 || i == 7 {
			continue
		}
		if c < '0' || c > '9' {
			return time.Time{}, false
		}
	}
	y := int(s[0]-'0')*1000 + int(s[1]-'0')*100 + int(s[2]-'0')*10 + int(s[3]-'0')
	m := time.Month(int(s[5]-'0')*10 + int(s[6]-'0'))
	d := int(s[8]-'0')*10 + int(s[9]-'0')
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
}

// IsFutureDate reports whether s parses and lies after the current day.
func IsFutureDate(s string) bool {
	t, ok := ParseDate(s)
	if !ok {
		return false
	}
	return t.After(time.Now().UTC())
}
