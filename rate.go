package wmediumd

//
// Rate ladder data model
//

// MaxRates is the maximum number of rungs in a multi-rate-retry ladder.
const MaxRates = 4

// NumRates is the size of the fixed rate table.
const NumRates = 8

// RateIndex identifies a rung of the rate table, or RateAbsent if the
// ladder entry is unused.
type RateIndex int8

// RateAbsent marks "no further rate in the ladder."
const RateAbsent RateIndex = -1

// rateTable maps a RateIndex to a rate expressed in hundreds of kbit/s.
// It serves two roles, intentionally: the nominal rate for a ladder rung
// (rateTable[rung.Idx]), and the fixed rate-0 lookup used to compute the
// ACK duration (rateTable[0]).
var rateTable = [NumRates]int{60, 90, 120, 180, 240, 360, 480, 540}

// RateInHundredKbps returns the nominal bitrate for idx, in hundreds of
// kbit/s. It panics if idx is out of [0, NumRates); callers only ever
// pass indices that came from a ladder rung that was checked against
// RateAbsent first.
func RateInHundredKbps(idx RateIndex) int {
	return rateTable[idx]
}

// TxRate is one rung of a multi-rate-retry ladder: a rate index (or
// RateAbsent) and the number of attempts made, or requested, at that
// rate.
type TxRate struct {
	Idx   RateIndex
	Count uint8
}

// ceilDiv computes ceil(a/b) for positive integers, matching the C
// source's div_round helper.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// PktDuration returns the on-air transmission time, in microseconds, of
// an len-byte frame at rate (hundreds of kbit/s): preamble + signal
// field + OFDM symbol time rounded up to whole symbols.
//
// It is strictly increasing in len for fixed rate, and strictly
// decreasing in rate for fixed len >= 1.
func PktDuration(lenBytes int, rateHundredKbps int) int {
	return 16 + 4 + 4*ceilDiv((16+8*lenBytes+6)*10, 4*rateHundredKbps)
}
