package wmediumd

//
// In-flight frame model
//

import (
	"errors"
	"time"
)

// FrameFlagACK marks a frame as acknowledged: the rate ladder succeeded
// at some rung and the frame was (or, for a no-ack frame, is treated as)
// delivered.
const FrameFlagACK uint32 = 1 << 0

// minFrame80211Size is the minimum length of an 802.11 MAC header:
// frame control (2) + duration (2) + three addresses (18) + sequence
// control (2).
const minFrame80211Size = 24

// ErrFrameTooShort indicates a payload shorter than an 802.11 header.
var ErrFrameTooShort = errors.New("wmediumd: frame payload shorter than minimum 802.11 header")

// Frame is the in-flight unit the engine schedules and delivers. A Frame
// belongs to exactly one Queue between the time it is enqueued and the
// time it is delivered.
type Frame struct {
	// Sender is a back-reference to the owning Station's address. The
	// Station itself outlives the Frame, but the Frame does not hold a
	// pointer to it, only its address, so ownership stays strictly
	// with the Station's queues.
	Sender MacAddr

	// Payload is the opaque 802.11 frame. The engine reads only
	// Payload[0] (frame control, low byte) and the addr1 field at
	// offset 4.
	Payload []byte

	// Expires is the absolute monotonic time at which this frame is
	// due for delivery.
	Expires time.Time

	// Flags carries the ACK bit once the rate ladder has succeeded.
	Flags uint32

	// Cookie is an opaque, kernel-assigned identifier echoed verbatim
	// in the tx-info status report.
	Cookie uint64

	// TxRates is the multi-rate-retry ladder, mutated in place by the
	// send-time computation to reflect the attempts that "happened."
	TxRates [MaxRates]TxRate
}

// NewFrame validates payload and constructs a Frame owned by sender,
// carrying ladder as its initial (caller-supplied) rate ladder.
func NewFrame(sender MacAddr, payload []byte, cookie uint64, ladder [MaxRates]TxRate) (*Frame, error) {
	if len(payload) < minFrame80211Size {
		return nil, ErrFrameTooShort
	}
	return &Frame{
		Sender:  sender,
		Payload: payload,
		Cookie:  cookie,
		TxRates: ladder,
	}, nil
}

// IsManagement reports whether frame is an 802.11 management frame:
// bit-exact, the two bits 0x0c of payload[0] are zero.
func IsManagement(payload []byte) bool {
	return payload[0]&0x0c == 0
}

// Addr1 extracts the 6-byte receiver-address field (addr1) at its fixed
// offset in the 802.11 header.
func Addr1(payload []byte) MacAddr {
	var addr MacAddr
	copy(addr[:], payload[4:10])
	return addr
}

// Acked reports whether the ACK flag is set.
func (f *Frame) Acked() bool {
	return f.Flags&FrameFlagACK != 0
}
