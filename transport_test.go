package wmediumd

// fakeTransport is an in-memory Transport for tests: Register and the
// Send* methods just record their arguments, and tests push synthetic
// IncomingFrameMsg values directly onto the incoming channel.
type fakeTransport struct {
	incoming     chan IncomingFrameMsg
	registered   int
	cloned       []ClonedFrameMsg
	txInfos      []TxInfoMsg
	sendClonedFn func(ClonedFrameMsg) error
	sendTxInfoFn func(TxInfoMsg) error
}

var _ Transport = &fakeTransport{}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{incoming: make(chan IncomingFrameMsg, 64)}
}

func (f *fakeTransport) Register() error {
	f.registered++
	return nil
}

func (f *fakeTransport) Incoming() <-chan IncomingFrameMsg {
	return f.incoming
}

func (f *fakeTransport) SendCloned(msg ClonedFrameMsg) error {
	f.cloned = append(f.cloned, msg)
	if f.sendClonedFn != nil {
		return f.sendClonedFn(msg)
	}
	return nil
}

func (f *fakeTransport) SendTxInfo(msg TxInfoMsg) error {
	f.txInfos = append(f.txInfos, msg)
	if f.sendTxInfoFn != nil {
		return f.sendTxInfoFn(msg)
	}
	return nil
}

func (f *fakeTransport) Close() error {
	close(f.incoming)
	return nil
}
