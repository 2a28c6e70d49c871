// internal/app/system/ical/ical.go

// Package ical renders a single event as an iCalendar (RFC 5545) document.
// It is a pure projection: nothing here reads or mutates state.
package ical

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/redlight/internal/domain/models"
)

const timestampLayout = "20060102T150405Z"

// Render produces a text/calendar document for one event. The scheduled
// time is exported in UTC as both DTSTART and DTEND, matching how the
// events are published (a single instant, no declared duration).
func Render(ev models.Event, now time.Time) []byte {
	var buf bytes.Buffer

	writeLine(&buf, "BEGIN:VCALENDAR")
	writeLine(&buf, "VERSION:2.0")
	writeLine(&buf, "PRODID:-//Redlight//Events//EN")
	writeLine(&buf, "BEGIN:VEVENT")
	writeLine(&buf, "UID:"+ev.ID.Hex()+"@redlight")
	writeLine(&buf, "DTSTAMP:"+now.UTC().Format(timestampLayout))
	writeLine(&buf, "DTSTART:"+ev.ScheduledAt.UTC().Format(timestampLayout))
	writeLine(&buf, "DTEND:"+ev.ScheduledAt.UTC().Format(timestampLayout))
	writeLine(&buf, "SUMMARY:"+escape(ev.Title))
	writeLine(&buf, "LOCATION:"+escape(ev.Location))
	if ev.Description != "" {
		writeLine(&buf, "DESCRIPTION:"+escape(ev.Description))
	}
	writeLine(&buf, "END:VEVENT")
	writeLine(&buf, "END:VCALENDAR")

	return buf.Bytes()
}

// Filename returns the attachment filename for an event export.
func Filename(ev models.Event) string {
	return fmt.Sprintf("event_%s.ics", ev.ID.Hex())
}

// escape applies RFC 5545 TEXT escaping.
func escape(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\r\n", `\n`,
		"\n", `\n`,
	)
	return r.Replace(s)
}

// writeLine emits one content line with CRLF, folding lines longer than 75
// octets as the RFC requires.
func writeLine(buf *bytes.Buffer, line string) {
	const limit = 75
	for len(line) > limit {
		buf.WriteString(line[:limit])
		buf.WriteString("\r\n ")
		line = line[limit:]
	}
	buf.WriteString(line)
	buf.WriteString("\r\n")
}
