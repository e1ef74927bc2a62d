package wmediumd

//
// Station bookkeeping
//

// Management and data queue contention-window bounds, per spec.
const (
	mgmtCwMin = 3
	mgmtCwMax = 7
	dataCwMin = 15
	dataCwMax = 1023
)

// Station is a radio endpoint identified by a MAC address. It
// exclusively owns two Queues (management and data) and every frame
// currently inside them.
type Station struct {
	Addr  MacAddr
	MgmtQ *Queue
	DataQ *Queue
}

// NewStation constructs a Station with freshly initialized management
// and data queues.
func NewStation(addr MacAddr) *Station {
	return &Station{
		Addr:  addr,
		MgmtQ: NewQueue(mgmtCwMin, mgmtCwMax),
		DataQ: NewQueue(dataCwMin, dataCwMax),
	}
}

// QueueFor selects the management or data queue for payload, per
// IsManagement.
func (s *Station) QueueFor(payload []byte) *Queue {
	if IsManagement(payload) {
		return s.MgmtQ
	}
	return s.DataQ
}

// Queues returns the station's two queues, management first, for code
// that needs to iterate both in a fixed order when draining expired
// frames.
func (s *Station) Queues() [2]*Queue {
	return [2]*Queue{s.MgmtQ, s.DataQ}
}
