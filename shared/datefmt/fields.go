package datefmt

import (
	"fmt"
	"strconv"
	"time"
)

var (
	koreanWeekdays  = [...]string{"일", "월", "화", "수", "목", "금", "토"}
	englishWeekdays = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	monthAbbrs      = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
)

// fields are the wall clock values of one instant, read in the zone it carries.
type fields struct {
	year int

	month     int
	month2    string
	monthAbbr string

	day  int
	day2 string

	weekday string

	hour  int
	hour2 string

	minute  int
	minute2 string

	monthDateDay string
}

func extractFields(t time.Time, locale Locale) fields {
	month := int(t.Month())
	day := t.Day()
	hour := t.Hour()
	minute := t.Minute()

	f := fields{
		year:      t.Year(),
		month:     month,
		month2:    pad2(month),
		monthAbbr: monthAbbrs[month-1],
		day:       day,
		day2:      pad2(day),
		hour:      hour,
		hour2:     pad2(hour),
		minute:    minute,
		minute2:   pad2(minute),
	}

	if locale == LocaleKorean {
		f.weekday = koreanWeekdays[t.Weekday()]
		f.monthDateDay = fmt.Sprintf("%d/%d(%s)", f.month, f.day, f.weekday)
	} else {
		f.weekday = englishWeekdays[t.Weekday()]
		f.monthDateDay = fmt.Sprintf("%s %d %s", f.monthAbbr, f.day, f.weekday)
	}

	return f
}

// pad2 prefixes a single 0 to values under 10.
func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}

	return strconv.Itoa(n)
}
