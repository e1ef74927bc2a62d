package wmediumd

//
// MAC address type
//

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MacAddr is a 6-byte IEEE 802 MAC address. The zero value is the
// all-zeroes address.
type MacAddr [6]byte

// ErrMacAddrSyntax indicates a MAC address string could not be parsed.
var ErrMacAddrSyntax = errors.New("wmediumd: invalid MAC address syntax")

// ParseMacAddr parses a colon-separated hex MAC address such as
// "02:00:00:00:00:01".
func ParseMacAddr(s string) (MacAddr, error) {
	var addr MacAddr
	parts := strings.Split(s, ":")
	if len(parts) != 6 {
		return addr, ErrMacAddrSyntax
	}
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return addr, fmt.Errorf("%w: %s", ErrMacAddrSyntax, s)
		}
		addr[i] = byte(v)
	}
	return addr, nil
}

// String formats the address as colon-separated hex.
func (m MacAddr) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
		m[0], m[1], m[2], m[3], m[4], m[5])
}

// Equal reports whether two addresses are identical.
func (m MacAddr) Equal(other MacAddr) bool {
	return m == other
}

// IsZero reports whether this is the all-zeroes address.
func (m MacAddr) IsZero() bool {
	return m == MacAddr{}
}

// IsMulticast reports whether the low bit of the first octet is set,
// which covers both true multicast addresses and the broadcast address.
func IsMulticast(addr MacAddr) bool {
	return addr[0]&0x01 == 1
}
