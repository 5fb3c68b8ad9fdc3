package sportapi

import "fmt"

var baseURL = "https://www.biathlonresults.com/modules/sportapi/api"

// AnalyticsURL builds the URL for one type of analytical results of a race.
// Known type IDs include "STTM" (shooting times) and "CRST" (course times).
func AnalyticsURL(raceID, typeID string) string {
	return baseURL + "/AnalyticResults?RaceId=" + raceID + "&TypeId=" + typeID
}

// ResultsURL builds the URL for the results of a race.
func ResultsURL(raceID string) string {
	return baseURL + "/Results?RT=385698&RaceId=" + raceID
}

// CalendarURL builds the URL for the event calendar of a season. The season
// uses the two-digit year span format, e.g. "2425" for the 2024-2025 season.
func CalendarURL(season string) string {
	return baseURL + "/Events?RT=385698&SeasonId=" + season + "&Level=-1"
}

// EventURL builds the URL for the competitions held during an event.
func EventURL(eventID string) string {
	return baseURL + "/Competitions?RT=385698&EventId=" + eventID
}

// SeasonID returns the season code for the season starting in the given year,
// e.g. 2024 -> "2425".
func SeasonID(startYear int) string {
	return fmt.Sprintf("%02d%02d", startYear%100, (startYear+1)%100)
}
