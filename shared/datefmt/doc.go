// Package datefmt renders instants as short, human-readable date/time labels.
//
// Usage Examples:
//
//  1. Friendly labels selected by a two character format code:
//     datefmt.FormatFriendly(t, "A2")                                // "3/5(화) 09:30"
//     datefmt.FormatFriendly(t, "A2", datefmt.WithLocaleTag("en"))   // "2024-03-05 Tue 09:30"
//
//  2. Shifting the wall clock before formatting:
//     datefmt.FormatFriendly(t, "B1", datefmt.WithUTC())
//     datefmt.FormatFriendly(t, "B1", datefmt.WithGMTOffset(540))
//
//  3. Measured vs published labels (data measured at H-1, published at H):
//     datefmt.FormatFriendly(t, "B3", datefmt.WithPublished(false))  // "2024년 3/5(화) 8시 평균"
//
//  4. Compact numeric dates:
//     datefmt.ToCompactYMD(t, "-")                                   // "2024-03-05"
//
// Supported format codes: A1 A2 A3 A4 B1 B2 B3 B4 C1.
// Supported locales: "ko" and everything else, which renders in English.
//
// Every function is pure. An invalid instant or format code yields an empty
// string instead of an error.
package datefmt
