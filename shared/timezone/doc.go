// Package timezone holds the device timezone of the service.
//
// Every instant that reaches the formatter is first placed in this location,
// so the "device" timezone mode of the friendly formats renders the wall
// clock configured here rather than the host clock.
//
// Usage Examples:
//
//  1. Current time in the device timezone:
//     now := timezone.Now()
//
//  2. Reading a request timestamp (RFC 3339, date-time without zone, or unix seconds):
//     t, err := timezone.ParseInstant("2024-03-05T09:30:00+09:00")
//
//  3. Offset of the device timezone at an instant:
//     minutes := timezone.OffsetMinutes(t)
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is initialized when the package is imported. Use IANA names such as
// "Asia/Seoul", "UTC" or "America/New_York".
package timezone
