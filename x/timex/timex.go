package timex

import "time"

// NowMs returns Unix milliseconds as int64.
func NowMs() int64 { return time.Now().UnixMilli() }

// CyclesFor converts a nanosecond interval into CPU cycles at cpuHz,
// rounding up so short pulses never collapse to zero.
func CyclesFor(ns uint32, cpuHz uint32) uint32 {
	c := (uint64(ns)*uint64(cpuHz) + 999_999_999) / 1_000_000_000
	return uint32(c)
}
