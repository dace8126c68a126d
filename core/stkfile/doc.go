// Package stkfile renders STK data files (attitude, ephemeris, interval
// list, sensor pointing) from in-memory time series.
//
// Design:
//   - Validation runs to completion before any byte is written; a hard
//     failure produces no output at all.
//   - Numerically invalid rows (non-unit quaternions, out-of-range angles)
//     are dropped with caller-visible warnings unless FileSpec.Strict is set.
//   - Every BEGIN keyword is closed by a matching END in reverse order.
package stkfile
