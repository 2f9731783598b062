package datefmt

import (
	"fmt"
	"time"
)

// measuredLag is how far the measurement precedes its publication.
const measuredLag = time.Hour

const (
	labelPublishedKo = "발표"
	labelAverageKo   = "평균"
	labelPublishedEn = "Published"
	labelAverageEn   = "Average"
)

// FormatFriendly renders t using the template selected by code.
// It returns an empty string when t is the zero time or code is not supported.
func FormatFriendly(t time.Time, code string, opts ...Option) string {
	return FormatFriendlyWith(t, code, NewOptions(opts...))
}

// FormatFriendlyWith is FormatFriendly with an explicit Options record.
func FormatFriendlyWith(t time.Time, code string, opts Options) string {
	if t.IsZero() {
		return ""
	}

	formatCode, ok := ParseFormatCode(code)
	if !ok {
		return ""
	}

	s := opts.settings()

	resolved := resolveTimezone(t, s.timezone)
	current := extractFields(resolved, s.locale)
	measured := extractFields(resolved.Add(-measuredLag), s.locale)

	return selectTemplate(current, measured, formatCode, s.locale, s.published)
}

// Formatter binds a fixed set of options for repeated formatting.
type Formatter struct {
	opts Options
}

func NewFormatter(opts ...Option) *Formatter {
	return NewFormatterWith(NewOptions(opts...))
}

func NewFormatterWith(opts Options) *Formatter {
	return &Formatter{opts: opts}
}

func (f *Formatter) Format(t time.Time, code FormatCode) string {
	return FormatFriendlyWith(t, string(code), f.opts)
}

// FormatAll renders t with every code, keyed by code.
func (f *Formatter) FormatAll(t time.Time) map[FormatCode]string {
	res := make(map[FormatCode]string, len(formatCodes))
	for _, code := range formatCodes {
		res[code] = f.Format(t, code)
	}

	return res
}

func selectTemplate(cur, measured fields, code FormatCode, locale Locale, published bool) string {
	korean := locale == LocaleKorean

	switch code {
	case FormatA1:
		return fmt.Sprintf("%s %s:00", cur.monthDateDay, cur.hour2)
	case FormatA2:
		if korean {
			return fmt.Sprintf("%s %s:%s", cur.monthDateDay, cur.hour2, cur.minute2)
		}

		return fmt.Sprintf("%d-%s-%s %s %s:%s", cur.year, cur.month2, cur.day2, cur.weekday, cur.hour2, cur.minute2)
	case FormatA3:
		if korean {
			return fmt.Sprintf("%s %d시", cur.monthDateDay, cur.hour)
		}

		return fmt.Sprintf("%s %dH", cur.monthDateDay, cur.hour)
	case FormatA4:
		if korean {
			return fmt.Sprintf("%s %d시 %s (%d시 %s)", cur.monthDateDay, cur.hour, labelPublishedKo, measured.hour, labelAverageKo)
		}

		// English A4 always shows the publication hour.
		return fmt.Sprintf("%s: %d-%s-%s %s %s:00", label(locale, published), cur.year, cur.month2, cur.day2, cur.weekday, cur.hour2)
	case FormatB1:
		if korean {
			return fmt.Sprintf("%d년 %d/%d(%s) %s:00", cur.year, cur.month, cur.day, cur.weekday, cur.hour2)
		}

		// Day is unpadded here, unlike every other English template.
		return fmt.Sprintf("%d-%s-%d %s %s:00", cur.year, cur.month2, cur.day, cur.weekday, cur.hour2)
	case FormatB2:
		if korean {
			return fmt.Sprintf("%d년 %s", cur.year, cur.monthDateDay)
		}

		return fmt.Sprintf("%d-%s-%s %s", cur.year, cur.month2, cur.day2, cur.weekday)
	case FormatB3, FormatB4:
		return measuredTemplate(cur, measured, code, locale, published)
	case FormatC1:
		return fmt.Sprintf("%d:00", cur.hour)
	default:
		return ""
	}
}

func measuredTemplate(cur, measured fields, code FormatCode, locale Locale, published bool) string {
	lbl := label(locale, published)

	if published {
		if locale == LocaleKorean {
			return fmt.Sprintf("%d년 %d/%d(%s) %d시 %s", cur.year, cur.month, cur.day, cur.weekday, cur.hour, lbl)
		}

		return fmt.Sprintf("%s: %d-%s-%s %s %s:00", lbl, cur.year, cur.month2, cur.day2, cur.weekday, cur.hour2)
	}

	m := measured
	if locale == LocaleKorean {
		return fmt.Sprintf("%d년 %d/%d(%s) %d시 %s", m.year, m.month, m.day, m.weekday, m.hour, lbl)
	}

	tail := ":00~59"
	if code == FormatB3 {
		tail = "H"
	}

	return fmt.Sprintf("%s: %d-%s-%s %s %s%s", lbl, m.year, m.month2, m.day2, m.weekday, m.hour2, tail)
}

func label(locale Locale, published bool) string {
	switch {
	case locale == LocaleKorean && published:
		return labelPublishedKo
	case locale == LocaleKorean:
		return labelAverageKo
	case published:
		return labelPublishedEn
	default:
		return labelAverageEn
	}
}
