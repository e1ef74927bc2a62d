package wmediumd

//
// Debug-only frame dissector, for the CLI's "-v" logging
//
// Parses with gopacket into layers.Dot11 and summarizes; the result
// never feeds back into the decision path.
//

import (
	"errors"
	"fmt"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// ErrDissectShortFrame indicates the frame is too short to contain a
// valid 802.11 header.
var ErrDissectShortFrame = errors.New("wmediumd: dissect: frame too short")

// DissectedFrame is a parsed 802.11 MAC header, kept only for
// human-readable logging; the engine's own decision path reads
// Addr1/IsManagement directly off the raw payload (frame.go) and never
// depends on this type.
type DissectedFrame struct {
	Packet gopacket.Packet
	Dot11  *layers.Dot11
}

// DissectFrame parses the 802.11 MAC header out of a raw frame
// payload.
func DissectFrame(payload []byte) (*DissectedFrame, error) {
	if len(payload) < minFrame80211Size {
		return nil, ErrDissectShortFrame
	}
	packet := gopacket.NewPacket(payload, layers.LayerTypeDot11, gopacket.Lazy)
	layer := packet.Layer(layers.LayerTypeDot11)
	if layer == nil {
		return nil, ErrDissectShortFrame
	}
	return &DissectedFrame{Packet: packet, Dot11: layer.(*layers.Dot11)}, nil
}

// Summary renders a one-line human-readable description of the frame,
// for use behind the CLI's -v flag.
func (df *DissectedFrame) Summary() string {
	d := df.Dot11
	return fmt.Sprintf("dot11 type=%s addr1=%s addr2=%s addr3=%s",
		d.Type, d.Address1, d.Address2, d.Address3)
}
