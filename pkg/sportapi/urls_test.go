package sportapi

import "testing"

func TestAnalyticsURL(t *testing.T) {
	got := AnalyticsURL("BT2425SWRLCP01SMSP", "STTM")
	want := "https://www.biathlonresults.com/modules/sportapi/api/AnalyticResults?RaceId=BT2425SWRLCP01SMSP&TypeId=STTM"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestResultsURL(t *testing.T) {
	got := ResultsURL("BT2425SWRLCP01SMSP")
	want := "https://www.biathlonresults.com/modules/sportapi/api/Results?RT=385698&RaceId=BT2425SWRLCP01SMSP"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestCalendarURL(t *testing.T) {
	got := CalendarURL("2425")
	want := "https://www.biathlonresults.com/modules/sportapi/api/Events?RT=385698&SeasonId=2425&Level=-1"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestEventURL(t *testing.T) {
	got := EventURL("BT2425SWRLCP01")
	want := "https://www.biathlonresults.com/modules/sportapi/api/Competitions?RT=385698&EventId=BT2425SWRLCP01"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestSeasonID(t *testing.T) {
	if got := SeasonID(2024); got != "2425" {
		t.Errorf("expected 2425, got %s", got)
	}
	if got := SeasonID(1999); got != "9900" {
		t.Errorf("expected 9900, got %s", got)
	}
	if got := SeasonID(2009); got != "0910" {
		t.Errorf("expected 0910, got %s", got)
	}
}
