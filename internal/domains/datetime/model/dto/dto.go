package dto

import (
	"net/http"
	"time"

	"friendlydate/shared"
	"friendlydate/shared/constant"
	"friendlydate/shared/datefmt"
	"friendlydate/shared/failure"

	"golang.org/x/text/language"
)

var localeMatcher = language.NewMatcher([]language.Tag{language.Korean, language.English})

// Options carries the caller's formatting overrides shared by every friendly request.
type Options struct {
	Locale    string `json:"locale" validate:"omitempty,max=16"`
	Timezone  string `json:"tz" validate:"omitempty,tzmode"`
	GMTOffset *int   `json:"gmt_offset" validate:"omitempty,gte=-720,lte=840"`
	Published *bool  `json:"published"`
}

// ToOptions fills in defaultLocale when no locale was sent. A GMT offset without
// an explicit mode selects the local mode.
func (o *Options) ToOptions(defaultLocale string) datefmt.Options {
	locale := o.Locale
	if locale == "" {
		locale = defaultLocale
	}

	opts := []datefmt.Option{datefmt.WithLocaleTag(locale)}

	mode := datefmt.TimezoneMode(o.Timezone)
	if mode == "" && o.GMTOffset != nil {
		mode = datefmt.TimezoneLocal
	}

	if mode != "" {
		opts = append(opts, datefmt.WithTimezone(datefmt.Timezone{Mode: mode, GMTOffset: o.GMTOffset}))
	}

	if o.Published != nil {
		opts = append(opts, datefmt.WithPublished(*o.Published))
	}

	return datefmt.NewOptions(opts...)
}

// NegotiateLocale fills an unset locale from an Accept-Language header.
// Headers that match neither Korean nor English leave it unset.
func (o *Options) NegotiateLocale(acceptLanguage string) {
	if o.Locale != "" || acceptLanguage == "" {
		return
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return
	}

	tag, _, confidence := localeMatcher.Match(tags...)
	if confidence == language.No {
		return
	}

	base, _ := tag.Base()
	o.Locale = base.String()
}

func (o *Options) fromRequest(r *http.Request) error {
	query := r.URL.Query()

	o.Locale = query.Get(constant.RequestParamLocale)
	o.NegotiateLocale(r.Header.Get(constant.RequestHeaderAcceptLanguage))
	o.Timezone = query.Get(constant.RequestParamTimezone)
	o.Published = shared.ConvertStringToBool(query.Get(constant.RequestParamPublished))

	offset, err := shared.ConvertStringToInt(query.Get(constant.RequestParamGMTOffset))
	if err != nil {
		return failure.InvalidGMTOffset
	}

	o.GMTOffset = offset

	return nil
}

type FriendlyRequest struct {
	Timestamp string `json:"ts"`
	Format    string `json:"format" validate:"required,formatcode"`
	Options
}

func (f *FriendlyRequest) FromRequest(r *http.Request) error {
	f.Timestamp = r.URL.Query().Get(constant.RequestParamTimestamp)
	f.Format = r.URL.Query().Get(constant.RequestParamFormat)

	return f.Options.fromRequest(r)
}

type BatchFriendlyRequest struct {
	Timestamp string   `json:"ts"`
	Formats   []string `json:"formats" validate:"required,min=1,dive,formatcode"`
	Options
}

type CompactRequest struct {
	Timestamp string `json:"ts"`
	Layout    string `json:"layout" validate:"required,oneof=ymd ymdh ym"`
	Separator string `json:"sep" validate:"separator"`
}

func (c *CompactRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	c.Timestamp = query.Get(constant.RequestParamTimestamp)
	c.Layout = query.Get(constant.RequestParamLayout)
	c.Separator = query.Get(constant.RequestParamSeparator)
}

type FriendlyResponse struct {
	Timestamp string `json:"ts"`
	Format    string `json:"format"`
	Locale    string `json:"locale"`
	Text      string `json:"text"`
}

type FriendlyItem struct {
	Format string `json:"format"`
	Text   string `json:"text"`
}

type BatchFriendlyResponse struct {
	Timestamp string         `json:"ts"`
	Locale    string         `json:"locale"`
	Items     []FriendlyItem `json:"items"`
}

type CompactResponse struct {
	Timestamp string `json:"ts"`
	Layout    string `json:"layout"`
	Text      string `json:"text"`
}

type FormatsResponse struct {
	Formats []string `json:"formats"`
}

func (r *FormatsResponse) FromCodes(codes []datefmt.FormatCode) {
	r.Formats = make([]string, len(codes))
	for i, code := range codes {
		r.Formats[i] = string(code)
	}
}

// FormatInstant renders the resolved instant echoed back in responses.
func FormatInstant(t time.Time) string {
	return t.Format(time.RFC3339)
}
