package wmediumd

//
// MAC80211_HWSIM attribute codec
//
// The kernel's mac80211_hwsim generic-netlink family carries its
// payloads as a flat, ordered stream of type-length-value attributes.
// This file is the TLV layer; transport.go builds the generic-netlink
// messages around it.
//

import (
	"errors"
	"fmt"

	"github.com/mdlayher/netlink"
)

// hwsimFamilyName is the generic-netlink family name the kernel
// registers for mac80211_hwsim.
const hwsimFamilyName = "MAC80211_HWSIM"

// hwsimVersion is the protocol version number sent in the generic
// netlink header of every request.
const hwsimVersion = 1

// HWSIM generic-netlink commands.
const (
	hwsimCmdRegister  = 1
	hwsimCmdFrame     = 2
	hwsimCmdTxInfo    = 3
)

// HWSIM attribute identifiers.
const (
	attrAddrTransmitter = 1
	attrAddrReceiver    = 2
	attrFrame           = 3
	attrFlags           = 4
	attrRxRate          = 5
	attrSignal          = 6
	attrTxInfo          = 7
	attrCookie          = 8
)

// ErrAttrMissing indicates a mandatory attribute was absent.
var ErrAttrMissing = errors.New("wmediumd: missing mandatory attribute")

// ErrAttrLength indicates an attribute had the wrong length.
var ErrAttrLength = errors.New("wmediumd: attribute has wrong length")

// encodeTxRates packs a MaxRates-long ladder into the fixed-length blob
// the TX_INFO attribute carries: one (idx int8, count uint8) pair per
// rung, in order.
func encodeTxRates(ladder [MaxRates]TxRate) []byte {
	b := make([]byte, 0, MaxRates*2)
	for _, r := range ladder {
		b = append(b, byte(int8(r.Idx)), r.Count)
	}
	return b
}

// decodeTxRates unpacks the fixed-length TX_INFO blob into a ladder. It
// returns ErrAttrLength if b is not exactly MaxRates*2 bytes.
func decodeTxRates(b []byte) ([MaxRates]TxRate, error) {
	var ladder [MaxRates]TxRate
	if len(b) != MaxRates*2 {
		return ladder, fmt.Errorf("%w: tx_info", ErrAttrLength)
	}
	for i := 0; i < MaxRates; i++ {
		ladder[i] = TxRate{
			Idx:   RateIndex(int8(b[i*2])),
			Count: b[i*2+1],
		}
	}
	return ladder, nil
}

// encodeIncomingFrame builds the attribute-order-preserving payload of
// an incoming-frame message.
func encodeIncomingFrame(msg IncomingFrameMsg) ([]byte, error) {
	ae := netlink.NewAttributeEncoder()
	ae.Bytes(attrAddrTransmitter, msg.TransmitterAddr[:])
	ae.Bytes(attrFrame, msg.Payload)
	ae.Uint32(attrFlags, msg.Flags)
	ae.Bytes(attrTxInfo, encodeTxRates(msg.TxRates))
	ae.Uint64(attrCookie, msg.Cookie)
	return ae.Encode()
}

// decodeIncomingFrame parses an incoming-frame message payload,
// returning an error for anything malformed.
func decodeIncomingFrame(b []byte) (IncomingFrameMsg, error) {
	var msg IncomingFrameMsg
	var haveAddr, haveFrame, haveFlags, haveTxInfo, haveCookie bool

	ad, err := netlink.NewAttributeDecoder(b)
	if err != nil {
		return msg, err
	}
	for ad.Next() {
		switch ad.Type() {
		case attrAddrTransmitter:
			data := ad.Bytes()
			if len(data) != 6 {
				return msg, fmt.Errorf("%w: addr_transmitter", ErrAttrLength)
			}
			copy(msg.TransmitterAddr[:], data)
			haveAddr = true
		case attrFrame:
			msg.Payload = append([]byte(nil), ad.Bytes()...)
			haveFrame = true
		case attrFlags:
			msg.Flags = ad.Uint32()
			haveFlags = true
		case attrTxInfo:
			ladder, lerr := decodeTxRates(ad.Bytes())
			if lerr != nil {
				return msg, lerr
			}
			msg.TxRates = ladder
			haveTxInfo = true
		case attrCookie:
			msg.Cookie = ad.Uint64()
			haveCookie = true
		}
	}
	if err := ad.Err(); err != nil {
		return msg, err
	}
	if !haveAddr || !haveFrame || !haveFlags || !haveTxInfo || !haveCookie {
		return msg, ErrAttrMissing
	}
	return msg, nil
}

// encodeClonedFrame builds the attribute payload of a cloned-frame
// message.
func encodeClonedFrame(msg ClonedFrameMsg) ([]byte, error) {
	ae := netlink.NewAttributeEncoder()
	ae.Bytes(attrAddrReceiver, msg.ReceiverAddr[:])
	ae.Bytes(attrFrame, msg.Payload)
	ae.Uint32(attrRxRate, msg.RxRateIdx)
	ae.Uint32(attrSignal, uint32(msg.SignalDBm))
	return ae.Encode()
}

// encodeTxInfo builds the attribute payload of a tx-info message.
func encodeTxInfo(msg TxInfoMsg) ([]byte, error) {
	ae := netlink.NewAttributeEncoder()
	ae.Bytes(attrAddrTransmitter, msg.TransmitterAddr[:])
	ae.Uint32(attrFlags, msg.Flags)
	ae.Uint32(attrSignal, uint32(msg.SignalDBm))
	ae.Bytes(attrTxInfo, encodeTxRates(msg.TxRates))
	ae.Uint64(attrCookie, msg.Cookie)
	return ae.Encode()
}
