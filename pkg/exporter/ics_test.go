package exporter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/KML-Style/Biathlon-data/pkg/sportapi"
)

func TestGenerateICS(t *testing.T) {
	events := []sportapi.Event{
		{
			EventID:     "BT2425SWRLCP01",
			SeasonID:    "2425",
			StartDate:   "2024-11-30T00:00:00",
			EndDate:     "2024-12-08T00:00:00",
			Description: "BMW IBU World Cup Biathlon",
			Organizer:   "Kontiolahti",
			Nat:         "FIN",
		},
	}

	var buf bytes.Buffer
	err := GenerateICS(events, &buf)
	if err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "SUMMARY:BMW IBU World Cup Biathlon") {
		t.Errorf("Expected ICS to contain event summary, got: \n%s", output)
	}

	if !strings.Contains(output, "LOCATION:Kontiolahti (FIN)") {
		t.Errorf("Expected ICS to contain organizer location")
	}

	if !strings.Contains(output, "BT2425SWRLCP01") {
		t.Errorf("Expected ICS to contain the event id")
	}
}

func TestGenerateICS_SkipsMalformedDates(t *testing.T) {
	events := []sportapi.Event{
		{
			EventID:     "BT2425SWRLCP01",
			StartDate:   "not a date",
			EndDate:     "2024-12-08T00:00:00",
			Description: "Broken Event",
		},
		{
			EventID:     "BT2425SWRLCP02",
			SeasonID:    "2425",
			StartDate:   "2024-12-13T00:00:00",
			EndDate:     "2024-12-15T00:00:00",
			Description: "BMW IBU World Cup Biathlon",
			Organizer:   "Hochfilzen",
			Nat:         "AUT",
		},
	}

	var buf bytes.Buffer
	err := GenerateICS(events, &buf)
	if err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	output := buf.String()

	if strings.Contains(output, "Broken Event") {
		t.Errorf("Expected event with malformed dates to be skipped")
	}

	if !strings.Contains(output, "LOCATION:Hochfilzen (AUT)") {
		t.Errorf("Expected well-formed event to be exported")
	}
}
