package ics

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
)

const ProductID = "-//ai-scheduler//EN"

// Event is the data rendered into a VEVENT.
type Event struct {
	UID         string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Attendees   []string
	Organizer   string
}

// Encode writes a VCALENDAR holding one VEVENT per event.
func Encode(w io.Writer, now time.Time, events ...Event) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)
	cal.Props.SetText(ical.PropMethod, "REQUEST")

	for _, e := range events {
		cal.Children = append(cal.Children, toVEvent(e, now))
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}

// Marshal is Encode into a byte slice.
func Marshal(now time.Time, events ...Event) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, now, events...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// toVEvent converts an Event to an ical.Component. Times keep their zone
// through a TZID parameter.
func toVEvent(e Event, now time.Time) *ical.Component {
	uid := e.UID
	if uid == "" {
		uid = uuid.NewString()
	}

	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, uid)
	ve.Props.SetText(ical.PropSummary, e.Summary)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	ve.Props.SetDateTime(ical.PropDateTimeStart, e.Start)
	ve.Props.SetDateTime(ical.PropDateTimeEnd, e.End)

	if e.Description != "" {
		ve.Props.SetText(ical.PropDescription, e.Description)
	}
	if e.Organizer != "" {
		p := ical.NewProp(ical.PropOrganizer)
		p.Value = "mailto:" + e.Organizer
		ve.Props.Add(p)
	}
	for _, attendee := range e.Attendees {
		p := ical.NewProp(ical.PropAttendee)
		p.Value = "mailto:" + attendee
		p.Params.Set(ical.ParamRSVP, "TRUE")
		ve.Props.Add(p)
	}
	return ve
}
