package api

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/zapponejosh/veckoplan/internal/calendar"
)

const (
	icsProductID = "-//veckoplan//Svenska helgdagar//SV"
	icsTimezone  = "Europe/Stockholm"
	icsDate      = "20060102"
	icsStamp     = "20060102T150405Z"
)

// icsEscape escapes TEXT values per RFC 5545.
var icsEscape = strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\n", `\n`)

// WriteHolidaysICS writes the holidays of year as an iCalendar document of
// all-day events. Lines end in CRLF.
func WriteHolidaysICS(w io.Writer, year int, holidays []calendar.Holiday, stamp time.Time) error {
	var b strings.Builder
	line := func(format string, args ...interface{}) {
		fmt.Fprintf(&b, format, args...)
		b.WriteString("\r\n")
	}

	line("BEGIN:VCALENDAR")
	line("VERSION:2.0")
	line("PRODID:%s", icsProductID)
	line("X-WR-CALNAME:Svenska helgdagar %d", year)
	line("X-WR-TIMEZONE:%s", icsTimezone)
	line("CALSCALE:GREGORIAN")

	dtstamp := stamp.UTC().Format(icsStamp)
	for _, h := range holidays {
		start := h.Date.Time()
		line("BEGIN:VEVENT")
		line("UID:%s-helgdag@veckoplan", start.Format(icsDate))
		line("DTSTAMP:%s", dtstamp)
		line("DTSTART;VALUE=DATE:%s", start.Format(icsDate))
		line("DTEND;VALUE=DATE:%s", h.Date.AddDays(1).Time().Format(icsDate))
		line("SUMMARY:%s", icsEscape.Replace(h.Name))
		line("TRANSP:TRANSPARENT")
		line("END:VEVENT")
	}

	line("END:VCALENDAR")

	_, err := io.WriteString(w, b.String())
	return err
}
