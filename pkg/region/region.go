// Package region resolves free-form location input to two-letter region
// codes (US states plus DC).
package region

import (
	"strings"
)

// Code is a canonical two-letter region code such as "TX".
type Code string

func (c Code) String() string {
	return string(c)
}

// IsZero reports whether the code is empty.
func (c Code) IsZero() bool {
	return c == ""
}

var namesToCodes = map[string]Code{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
	"california": "CA", "colorado": "CO", "connecticut": "CT", "delaware": "DE",
	"florida": "FL", "georgia": "GA", "hawaii": "HI", "idaho": "ID",
	"illinois": "IL", "indiana": "IN", "iowa": "IA", "kansas": "KS",
	"kentucky": "KY", "louisiana": "LA", "maine": "ME", "maryland": "MD",
	"massachusetts": "MA", "michigan": "MI", "minnesota": "MN", "mississippi": "MS",
	"missouri": "MO", "montana": "MT", "nebraska": "NE", "nevada": "NV",
	"new hampshire": "NH", "new jersey": "NJ", "new mexico": "NM", "new york": "NY",
	"north carolina": "NC", "north dakota": "ND", "ohio": "OH", "oklahoma": "OK",
	"oregon": "OR", "pennsylvania": "PA", "rhode island": "RI", "south carolina": "SC",
	"south dakota": "SD", "tennessee": "TN", "texas": "TX", "utah": "UT",
	"vermont": "VT", "virginia": "VA", "washington": "WA", "west virginia": "WV",
	"wisconsin": "WI", "wyoming": "WY", "district of columbia": "DC",
}

// Normalize maps raw input to a region code. Two-letter input is uppercased
// and passed through, full names are looked up case-insensitively, and
// anything else comes back uppercased unchanged. It never fails.
func Normalize(raw string) Code {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) == 2 {
		return Code(strings.ToUpper(trimmed))
	}
	if code, ok := namesToCodes[strings.ToLower(strings.Join(strings.Fields(trimmed), " "))]; ok {
		return code
	}
	return Code(strings.ToUpper(trimmed))
}

// IsKnown reports whether c is one of the fifty states or DC.
func IsKnown(c Code) bool {
	for _, known := range namesToCodes {
		if known == c {
			return true
		}
	}
	return false
}
