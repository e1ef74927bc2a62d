package wmediumd

//
// Wire message types
//

// IncomingFrameMsg is "a station just transmitted": kernel -> engine.
type IncomingFrameMsg struct {
	TransmitterAddr MacAddr
	Payload         []byte
	Flags           uint32
	TxRates         [MaxRates]TxRate
	Cookie          uint64
}

// ClonedFrameMsg delivers a received copy to one station: engine -> kernel.
type ClonedFrameMsg struct {
	ReceiverAddr MacAddr
	Payload      []byte
	RxRateIdx    uint32
	SignalDBm    int32
}

// TxInfoMsg reports per-attempt status to the sender: engine -> kernel.
type TxInfoMsg struct {
	TransmitterAddr MacAddr
	Flags           uint32
	SignalDBm       int32
	TxRates         [MaxRates]TxRate
	Cookie          uint64
}

// deliveredRxRateIdx is the fixed rx-rate index advertised on cloned
// frames.
const deliveredRxRateIdx = 1

// deliveredSignalDBm is the fixed advertised signal strength on
// delivered (cloned) frames.
const deliveredSignalDBm = -50

// txInfoSignalDBm is the signal strength reported back to the sender in
// a tx-info message.
const txInfoSignalDBm = 35
