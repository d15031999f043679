package fixtures

import (
	"encoding/json"
	"strconv"
	"strings"
)

type fixturesResponse struct {
	Response []fixtureItem   `json:"response"`
	Errors   json.RawMessage `json:"errors"`
}

type fixtureItem struct {
	Fixture struct {
		ID    int64  `json:"id"`
		Date  string `json:"date"` // RFC 3339 kickoff timestamp
		Venue struct {
			Name string `json:"name"`
			City string `json:"city"`
		} `json:"venue"`
	} `json:"fixture"`
	League struct {
		Name string `json:"name"`
	} `json:"league"`
	Teams struct {
		Home struct {
			Name string `json:"name"`
		} `json:"home"`
		Away struct {
			Name string `json:"name"`
		} `json:"away"`
	} `json:"teams"`
}

// MatchSearchResult is one fixture row handed to the caller.
type MatchSearchResult struct {
	ID       string `json:"id"`
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location"`
	League   string `json:"league"`
}

// matches applies the loose city search: venue city or either team name
// contains the needle.
func (f fixtureItem) matches(needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(f.Fixture.Venue.City), needle) ||
		strings.Contains(strings.ToLower(f.Teams.Home.Name), needle) ||
		strings.Contains(strings.ToLower(f.Teams.Away.Name), needle)
}

func (f fixtureItem) toResult() MatchSearchResult {
	date, clock := splitKickoff(f.Fixture.Date)
	location := f.Fixture.Venue.Name
	if f.Fixture.Venue.City != "" {
		location += ", " + f.Fixture.Venue.City
	}
	return MatchSearchResult{
		ID:       strconv.FormatInt(f.Fixture.ID, 10),
		HomeTeam: f.Teams.Home.Name,
		AwayTeam: f.Teams.Away.Name,
		Date:     date,
		Time:     clock,
		Location: location,
		League:   f.League.Name,
	}
}

// splitKickoff separates an RFC 3339 kickoff timestamp into a date and
// an HH:MM clock.
func splitKickoff(ts string) (string, string) {
	date, rest, found := strings.Cut(ts, "T")
	if !found {
		return ts, ""
	}
	if len(rest) < 5 {
		return date, rest
	}
	return date, rest[:5]
}
