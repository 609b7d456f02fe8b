package service

import (
	"bytes"
	"regexp"
	"strings"
	"time"

	"meeting-scheduler-api/modules/meeting/entity"

	"github.com/emersion/go-ical"
)

const icsProductID = "-//Meeting Scheduler//Meeting Scheduler API//EN"

var nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]+`)

// ExportICS renders a meeting as an RFC 5545 iCalendar document with a
// single VEVENT. Attendees are emitted in the meeting's insertion order.
func ExportICS(meeting *entity.Meeting) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropProductID, icsProductID)
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")
	cal.Props.SetText(ical.PropMethod, "PUBLISH")

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, meeting.ID.String())
	event.Props.SetText(ical.PropSummary, meeting.Title)
	if meeting.Description != nil && *meeting.Description != "" {
		event.Props.SetText(ical.PropDescription, *meeting.Description)
	}
	event.Props.SetDateTime(ical.PropDateTimeStart, meeting.StartTime.UTC())
	event.Props.SetDateTime(ical.PropDateTimeEnd, meeting.EndTime.UTC())
	event.Props.SetDateTime(ical.PropDateTimeStamp, time.Now().UTC())
	event.Props.SetDateTime(ical.PropCreated, meeting.CreatedAt.UTC())
	event.Props.SetDateTime(ical.PropLastModified, meeting.UpdatedAt.UTC())

	for _, p := range meeting.Participants {
		attendee := ical.NewProp(ical.PropAttendee)
		attendee.Params.Set(ical.ParamCommonName, p.Name)
		attendee.Params.Set(ical.ParamRole, "REQ-PARTICIPANT")
		attendee.Params.Set(ical.ParamRSVP, "TRUE")
		attendee.Value = "mailto:" + p.Email
		event.Props.Add(attendee)
	}

	cal.Children = append(cal.Children, event.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ICSFilename derives a download filename from a meeting title. Runs of
// non-alphanumeric characters collapse to a single underscore; an empty
// result falls back to "meeting".
func ICSFilename(title string) string {
	name := nonAlphanumeric.ReplaceAllString(title, "_")
	name = strings.Trim(name, "_")
	if name == "" {
		name = "meeting"
	}
	return name + ".ics"
}
