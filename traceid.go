package wmediumd

//
// Per-delivery trace IDs, for correlating the tx-info and cloned-frame
// log lines a single delivery produces. Uses github.com/rs/xid for
// compact, sortable, allocation-free IDs.
//

import "github.com/rs/xid"

// newTraceID returns a new short trace identifier.
func newTraceID() string {
	return xid.New().String()
}
