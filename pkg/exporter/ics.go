package exporter

import (
	"fmt"
	"io"
	"time"

	"github.com/KML-Style/Biathlon-data/pkg/sportapi"

	ics "github.com/arran4/golang-ical"
)

// sportapi dates carry no timezone, e.g. "2024-11-30T00:00:00"
const dateLayout = "2006-01-02T15:04:05"

// GenerateICS creates an ICS feed from a season calendar and writes it to the
// provided writer. Events with malformed dates are skipped.
func GenerateICS(events []sportapi.Event, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	for i, e := range events {
		startTime, err := time.Parse(dateLayout, e.StartDate)
		if err != nil {
			continue
		}

		endTime, err := time.Parse(dateLayout, e.EndDate)
		if err != nil {
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("%s-%d", e.EventID, i))
		event.SetCreatedTime(time.Now())
		event.SetDtStampTime(time.Now())
		event.SetModifiedAt(time.Now())
		event.SetStartAt(startTime)
		event.SetEndAt(endTime)
		event.SetSummary(e.Description)
		event.SetLocation(fmt.Sprintf("%s (%s)", e.Organizer, e.Nat))

		description := fmt.Sprintf("Season: %s\nEvent: %s", e.SeasonID, e.EventID)
		event.SetDescription(description)
	}

	return cal.SerializeTo(w)
}
