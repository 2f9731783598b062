package datefmt

// FormatCode selects one of the friendly templates.
type FormatCode string

const (
	FormatA1 FormatCode = "A1"
	FormatA2 FormatCode = "A2"
	FormatA3 FormatCode = "A3"
	FormatA4 FormatCode = "A4"
	FormatB1 FormatCode = "B1"
	FormatB2 FormatCode = "B2"
	FormatB3 FormatCode = "B3"
	FormatB4 FormatCode = "B4"
	FormatC1 FormatCode = "C1"
)

const formatCodeLength = 2

var formatCodes = []FormatCode{
	FormatA1, FormatA2, FormatA3, FormatA4,
	FormatB1, FormatB2, FormatB3, FormatB4,
	FormatC1,
}

// FormatCodes returns every supported format code in declaration order.
func FormatCodes() []FormatCode {
	codes := make([]FormatCode, len(formatCodes))
	copy(codes, formatCodes)

	return codes
}

// ParseFormatCode reports whether s is exactly one of the supported codes.
func ParseFormatCode(s string) (FormatCode, bool) {
	if len(s) != formatCodeLength {
		return "", false
	}

	for _, code := range formatCodes {
		if string(code) == s {
			return code, true
		}
	}

	return "", false
}

// Locale picks the language of the rendered labels.
type Locale int

const (
	LocaleKorean Locale = iota
	LocaleEnglish
)

const LocaleTagKorean = "ko"

// ParseLocale maps "ko" to LocaleKorean and any other tag to LocaleEnglish.
func ParseLocale(tag string) Locale {
	if tag == LocaleTagKorean {
		return LocaleKorean
	}

	return LocaleEnglish
}

func (l Locale) String() string {
	if l == LocaleKorean {
		return LocaleTagKorean
	}

	return "en"
}

// TimezoneMode decides which wall clock the labels are rendered in.
type TimezoneMode string

const (
	TimezoneDevice TimezoneMode = "device"
	TimezoneUTC    TimezoneMode = "utc"
	TimezoneLocal  TimezoneMode = "local"
)

// Timezone pairs a mode with an optional offset in minutes east of UTC.
// GMTOffset is only consulted in TimezoneLocal mode.
type Timezone struct {
	Mode      TimezoneMode
	GMTOffset *int
}

// Options holds caller overrides. A nil field keeps its default.
type Options struct {
	Locale      *Locale
	Timezone    *Timezone
	IsPublished *bool
}

// Option mutates Options.
type Option func(*Options)

func WithLocale(locale Locale) Option {
	return func(o *Options) {
		o.Locale = &locale
	}
}

func WithLocaleTag(tag string) Option {
	return WithLocale(ParseLocale(tag))
}

func WithTimezone(tz Timezone) Option {
	return func(o *Options) {
		o.Timezone = &tz
	}
}

func WithUTC() Option {
	return WithTimezone(Timezone{Mode: TimezoneUTC})
}

// WithGMTOffset renders the wall clock of a fixed zone offsetMinutes east of UTC.
func WithGMTOffset(offsetMinutes int) Option {
	return WithTimezone(Timezone{Mode: TimezoneLocal, GMTOffset: &offsetMinutes})
}

func WithPublished(published bool) Option {
	return func(o *Options) {
		o.IsPublished = &published
	}
}

// NewOptions applies opts over an empty Options.
func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

type settings struct {
	locale    Locale
	timezone  Timezone
	published bool
}

func defaultSettings() settings {
	return settings{
		locale:    LocaleKorean,
		timezone:  Timezone{Mode: TimezoneDevice},
		published: true,
	}
}

func (o Options) settings() settings {
	s := defaultSettings()

	if o.Locale != nil {
		s.locale = *o.Locale
	}

	if o.Timezone != nil {
		s.timezone = *o.Timezone
	}

	if o.IsPublished != nil {
		s.published = *o.IsPublished
	}

	return s
}
