package datemath

import (
	"regexp"
	"sort"
	"strings"
	"time"
	_ "time/tzdata" // zone rules must not depend on the host's zoneinfo
)

// zoneAbbreviations maps recognised abbreviations to the IANA zone whose
// rules are applied. Daylight and standard variants share a zone: "PST" in
// July still yields Pacific daylight time.
var zoneAbbreviations = map[string]string{
	"PST":  "America/Los_Angeles",
	"PDT":  "America/Los_Angeles",
	"PT":   "America/Los_Angeles",
	"MST":  "America/Denver",
	"MDT":  "America/Denver",
	"MT":   "America/Denver",
	"CST":  "America/Chicago",
	"CDT":  "America/Chicago",
	"CT":   "America/Chicago",
	"EST":  "America/New_York",
	"EDT":  "America/New_York",
	"ET":   "America/New_York",
	"AKST": "America/Anchorage",
	"AKDT": "America/Anchorage",
	"HST":  "Pacific/Honolulu",
	"UTC":  "UTC",
	"GMT":  "UTC",
	"BST":  "Europe/London",
	"CET":  "Europe/Paris",
	"CEST": "Europe/Paris",
	"JST":  "Asia/Tokyo",
	"ICT":  "Asia/Ho_Chi_Minh",
	"AEST": "Australia/Sydney",
	"AEDT": "Australia/Sydney",
}

var (
	zoneRe    = buildZoneRegexp()
	zoneCache = loadZones()
)

func buildZoneRegexp() *regexp.Regexp {
	abbrs := ZoneAbbreviations()
	// longest first so AKST wins over a shorter overlapping token
	sort.Slice(abbrs, func(i, j int) bool { return len(abbrs[i]) > len(abbrs[j]) })
	return regexp.MustCompile(`\b(` + strings.Join(abbrs, "|") + `)\b`)
}

func loadZones() map[string]*time.Location {
	zones := make(map[string]*time.Location, len(zoneAbbreviations))
	for abbr, name := range zoneAbbreviations {
		loc, err := time.LoadLocation(name)
		if err != nil {
			panic("datemath: cannot load zone " + name + ": " + err.Error())
		}
		zones[abbr] = loc
	}
	return zones
}

// DetectZone returns the zone named by the first upper-case abbreviation in
// text, e.g. "Call 3pm PST" yields America/Los_Angeles.
func DetectZone(text string) (*time.Location, string, bool) {
	m := zoneRe.FindString(text)
	if m == "" {
		return nil, "", false
	}
	return zoneCache[m], m, true
}

// ZoneAbbreviations lists the recognised abbreviations in alphabetical order.
func ZoneAbbreviations() []string {
	abbrs := make([]string, 0, len(zoneAbbreviations))
	for abbr := range zoneAbbreviations {
		abbrs = append(abbrs, abbr)
	}
	sort.Strings(abbrs)
	return abbrs
}

// ZoneName returns the IANA zone for a recognised abbreviation.
func ZoneName(abbr string) (string, bool) {
	name, ok := zoneAbbreviations[abbr]
	return name, ok
}
