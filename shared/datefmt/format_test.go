package datefmt_test

import (
	"testing"
	"time"

	"friendlydate/shared/datefmt"

	"github.com/stretchr/testify/assert"
)

var (
	kst = time.FixedZone("KST", 9*60*60)
	est = time.FixedZone("EST", -5*60*60)
)

func TestFormatFriendly_Korean(t *testing.T) {
	ts := time.Date(2024, 3, 5, 9, 30, 0, 0, kst)

	tests := []struct {
		name      string
		code      string
		published bool
		expected  string
	}{
		{name: "A1", code: "A1", published: true, expected: "3/5(화) 09:00"},
		{name: "A2", code: "A2", published: true, expected: "3/5(화) 09:30"},
		{name: "A3", code: "A3", published: true, expected: "3/5(화) 9시"},
		{name: "A4", code: "A4", published: true, expected: "3/5(화) 9시 발표 (8시 평균)"},
		{name: "A4 ignores published flag", code: "A4", published: false, expected: "3/5(화) 9시 발표 (8시 평균)"},
		{name: "B1", code: "B1", published: true, expected: "2024년 3/5(화) 09:00"},
		{name: "B2", code: "B2", published: true, expected: "2024년 3/5(화)"},
		{name: "B3 published", code: "B3", published: true, expected: "2024년 3/5(화) 9시 발표"},
		{name: "B4 published", code: "B4", published: true, expected: "2024년 3/5(화) 9시 발표"},
		{name: "B3 average", code: "B3", published: false, expected: "2024년 3/5(화) 8시 평균"},
		{name: "B4 average", code: "B4", published: false, expected: "2024년 3/5(화) 8시 평균"},
		{name: "C1", code: "C1", published: true, expected: "9:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := datefmt.FormatFriendly(ts, tt.code, datefmt.WithLocaleTag("ko"), datefmt.WithPublished(tt.published))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatFriendly_English(t *testing.T) {
	ts := time.Date(2024, 3, 5, 9, 30, 0, 0, kst)

	tests := []struct {
		name      string
		code      string
		published bool
		expected  string
	}{
		{name: "A1", code: "A1", published: true, expected: "Mar 5 Tue 09:00"},
		{name: "A2", code: "A2", published: true, expected: "2024-03-05 Tue 09:30"},
		{name: "A3", code: "A3", published: true, expected: "Mar 5 Tue 9H"},
		{name: "A4 published", code: "A4", published: true, expected: "Published: 2024-03-05 Tue 09:00"},
		{name: "A4 average keeps current hour", code: "A4", published: false, expected: "Average: 2024-03-05 Tue 09:00"},
		{name: "B1 unpadded day", code: "B1", published: true, expected: "2024-03-5 Tue 09:00"},
		{name: "B2", code: "B2", published: true, expected: "2024-03-05 Tue"},
		{name: "B3 published", code: "B3", published: true, expected: "Published: 2024-03-05 Tue 09:00"},
		{name: "B4 published", code: "B4", published: true, expected: "Published: 2024-03-05 Tue 09:00"},
		{name: "B3 average", code: "B3", published: false, expected: "Average: 2024-03-05 Tue 08H"},
		{name: "B4 average", code: "B4", published: false, expected: "Average: 2024-03-05 Tue 08:00~59"},
		{name: "C1", code: "C1", published: true, expected: "9:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := datefmt.FormatFriendly(ts, tt.code, datefmt.WithLocaleTag("en"), datefmt.WithPublished(tt.published))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatFriendly_Defaults(t *testing.T) {
	ts := time.Date(2024, 3, 5, 9, 30, 0, 0, kst)

	assert.Equal(t, "3/5(화) 09:30", datefmt.FormatFriendly(ts, "A2"))
	assert.Equal(t, "2024년 3/5(화) 9시 발표", datefmt.FormatFriendly(ts, "B3"))
	assert.Equal(t, "3/5(화) 09:30", datefmt.FormatFriendlyWith(ts, "A2", datefmt.Options{}))
	assert.Equal(t, "3/5(화) 09:30", datefmt.FormatFriendly(ts, "A2", nil))
}

func TestFormatFriendly_NonKoreanTagsRenderEnglish(t *testing.T) {
	ts := time.Date(2024, 3, 5, 9, 30, 0, 0, kst)

	for _, tag := range []string{"en", "", "KO", "ko-KR", "ja"} {
		t.Run("tag "+tag, func(t *testing.T) {
			assert.Equal(t, "2024-03-05 Tue 09:30", datefmt.FormatFriendly(ts, "A2", datefmt.WithLocaleTag(tag)))
		})
	}
}

func TestFormatFriendly_InvalidInput(t *testing.T) {
	ts := time.Date(2024, 3, 5, 9, 30, 0, 0, kst)

	tests := []struct {
		name string
		ts   time.Time
		code string
	}{
		{name: "unknown code", ts: ts, code: "Z9"},
		{name: "empty code", ts: ts, code: ""},
		{name: "short code", ts: ts, code: "A"},
		{name: "long code", ts: ts, code: "A12"},
		{name: "lowercase code", ts: ts, code: "a1"},
		{name: "code outside set", ts: ts, code: "C2"},
		{name: "zero time", ts: time.Time{}, code: "A1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, datefmt.FormatFriendly(tt.ts, tt.code))
			assert.Empty(t, datefmt.FormatFriendly(tt.ts, tt.code, datefmt.WithLocaleTag("en")))
		})
	}
}

func TestFormatFriendly_MeasuredCrossesMidnight(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 15, 0, 0, kst)

	assert.Equal(t, "1/1(월) 0시 발표 (23시 평균)", datefmt.FormatFriendly(ts, "A4"))
	assert.Equal(t, "2023년 12/31(일) 23시 평균", datefmt.FormatFriendly(ts, "B3", datefmt.WithPublished(false)))
	assert.Equal(t, "Average: 2023-12-31 Sun 23:00~59",
		datefmt.FormatFriendly(ts, "B4", datefmt.WithLocaleTag("en"), datefmt.WithPublished(false)))
	assert.Equal(t, "Average: 2023-12-31 Sun 23H",
		datefmt.FormatFriendly(ts, "B3", datefmt.WithLocaleTag("en"), datefmt.WithPublished(false)))
}

func TestFormatFriendly_Timezone(t *testing.T) {
	instant := time.Date(2024, 3, 5, 0, 30, 0, 0, time.UTC)

	t.Run("device leaves wall clock untouched", func(t *testing.T) {
		assert.Equal(t, "9:00", datefmt.FormatFriendly(instant.In(kst), "C1"))
		assert.Equal(t, "19:00", datefmt.FormatFriendly(instant.In(est), "C1"))
	})

	t.Run("utc is independent of device offset", func(t *testing.T) {
		for _, loc := range []*time.Location{kst, est, time.UTC} {
			got := datefmt.FormatFriendly(instant.In(loc), "A2", datefmt.WithUTC())
			assert.Equal(t, "3/5(화) 00:30", got, loc.String())
		}
	})

	t.Run("local with offset shifts by offset minus device offset", func(t *testing.T) {
		got := datefmt.FormatFriendly(instant.In(kst), "A2", datefmt.WithGMTOffset(60))
		assert.Equal(t, "3/5(화) 01:30", got)

		got = datefmt.FormatFriendly(instant.In(est), "B1", datefmt.WithGMTOffset(330), datefmt.WithLocaleTag("en"))
		assert.Equal(t, "2024-03-5 Tue 06:00", got)
	})

	t.Run("local without offset behaves like device", func(t *testing.T) {
		got := datefmt.FormatFriendly(instant.In(kst), "A2", datefmt.WithTimezone(datefmt.Timezone{Mode: datefmt.TimezoneLocal}))
		assert.Equal(t, "3/5(화) 09:30", got)
	})

	t.Run("unknown mode behaves like device", func(t *testing.T) {
		got := datefmt.FormatFriendly(instant.In(kst), "A2", datefmt.WithTimezone(datefmt.Timezone{Mode: "mars"}))
		assert.Equal(t, "3/5(화) 09:30", got)
	})

	t.Run("measured fields follow the shifted clock", func(t *testing.T) {
		got := datefmt.FormatFriendly(instant.In(kst), "B3", datefmt.WithUTC(), datefmt.WithPublished(false))
		assert.Equal(t, "2024년 3/4(월) 23시 평균", got)
	})
}

func TestFormatFriendly_AllCodesNonEmptyAndDeterministic(t *testing.T) {
	ts := time.Date(2024, 11, 23, 17, 4, 0, 0, kst)

	for _, code := range datefmt.FormatCodes() {
		for _, locale := range []datefmt.Locale{datefmt.LocaleKorean, datefmt.LocaleEnglish} {
			for _, published := range []bool{true, false} {
				opts := []datefmt.Option{datefmt.WithLocale(locale), datefmt.WithPublished(published)}

				first := datefmt.FormatFriendly(ts, string(code), opts...)
				second := datefmt.FormatFriendly(ts, string(code), opts...)

				assert.NotEmpty(t, first, "code %s locale %s", code, locale)
				assert.Equal(t, first, second, "code %s locale %s", code, locale)
			}
		}
	}
}

func TestFormatFriendly_DoesNotMutateInput(t *testing.T) {
	ts := time.Date(2024, 3, 5, 9, 30, 0, 0, kst)
	original := ts

	_ = datefmt.FormatFriendly(ts, "B4", datefmt.WithUTC(), datefmt.WithPublished(false))

	assert.True(t, original.Equal(ts))
	assert.Equal(t, original.Location(), ts.Location())
}

func TestFormatter(t *testing.T) {
	ts := time.Date(2024, 3, 5, 9, 30, 0, 0, kst)
	formatter := datefmt.NewFormatter(datefmt.WithLocaleTag("en"))

	assert.Equal(t, "2024-03-05 Tue 09:30", formatter.Format(ts, datefmt.FormatA2))
	assert.Equal(t, "9:00", formatter.Format(ts, datefmt.FormatC1))

	all := formatter.FormatAll(ts)
	assert.Len(t, all, len(datefmt.FormatCodes()))
	assert.Equal(t, "2024-03-5 Tue 09:00", all[datefmt.FormatB1])
}

func TestParseFormatCode(t *testing.T) {
	code, ok := datefmt.ParseFormatCode("B4")
	assert.True(t, ok)
	assert.Equal(t, datefmt.FormatB4, code)

	_, ok = datefmt.ParseFormatCode("B5")
	assert.False(t, ok)

	_, ok = datefmt.ParseFormatCode(" B4")
	assert.False(t, ok)
}

func TestFormatCodesReturnsCopy(t *testing.T) {
	codes := datefmt.FormatCodes()
	codes[0] = "ZZ"

	assert.Equal(t, datefmt.FormatA1, datefmt.FormatCodes()[0])
}

func TestLocale(t *testing.T) {
	assert.Equal(t, datefmt.LocaleKorean, datefmt.ParseLocale("ko"))
	assert.Equal(t, datefmt.LocaleEnglish, datefmt.ParseLocale("en"))
	assert.Equal(t, "ko", datefmt.LocaleKorean.String())
	assert.Equal(t, "en", datefmt.LocaleEnglish.String())
}

func TestOffsetMinutes(t *testing.T) {
	assert.Equal(t, 540, datefmt.OffsetMinutes(time.Date(2024, 3, 5, 0, 0, 0, 0, kst)))
	assert.Equal(t, -300, datefmt.OffsetMinutes(time.Date(2024, 3, 5, 0, 0, 0, 0, est)))
	assert.Equal(t, 0, datefmt.OffsetMinutes(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
}
