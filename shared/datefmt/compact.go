package datefmt

import (
	"strconv"
	"strings"
	"time"
)

// ToCompactYMD returns YYYY<sep>MM<sep>DD in t's own location.
// Only the first separator is used; none means "".
func ToCompactYMD(t time.Time, sep ...string) string {
	return joinCompact(separator(sep), year(t), pad2(int(t.Month())), pad2(t.Day()))
}

// ToCompactYMDH returns YYYY<sep>MM<sep>DD<sep>HH in t's own location.
func ToCompactYMDH(t time.Time, sep ...string) string {
	return joinCompact(separator(sep), year(t), pad2(int(t.Month())), pad2(t.Day()), pad2(t.Hour()))
}

// ToCompactYM returns YYYY<sep>MM in t's own location.
func ToCompactYM(t time.Time, sep ...string) string {
	return joinCompact(separator(sep), year(t), pad2(int(t.Month())))
}

func year(t time.Time) string {
	return strconv.Itoa(t.Year())
}

func separator(sep []string) string {
	if len(sep) == 0 {
		return ""
	}

	return sep[0]
}

func joinCompact(sep string, parts ...string) string {
	return strings.Join(parts, sep)
}
