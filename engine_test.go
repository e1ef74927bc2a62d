package wmediumd

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func testPayload(receiver MacAddr, management bool) []byte {
	p := make([]byte, minFrame80211Size)
	if !management {
		p[0] = 0x08 // data frame
	}
	copy(p[4:10], receiver[:])
	return p
}

func newTestEngine(t *testing.T, transport Transport, errModel ErrorModel) (*Engine, *fakeClock) {
	t.Helper()
	e := NewEngine(transport, errModel, DefaultSNR, fixedUniform(0.99), &logRecorder{})
	clock := &fakeClock{now: time.Now()}
	e.Clock = clock
	e.Timer = NewTimer(clock)
	return e, clock
}

// logRecorder is a Logger that discards everything but never panics,
// usable wherever a test needs a Logger but does not assert on it.
type logRecorder struct{}

func (l *logRecorder) Debugf(string, ...any) {}
func (l *logRecorder) Debug(string)          {}
func (l *logRecorder) Infof(string, ...any)  {}
func (l *logRecorder) Info(string)           {}
func (l *logRecorder) Warnf(string, ...any)  {}
func (l *logRecorder) Warn(string)           {}

var _ Logger = &logRecorder{}

func TestEngineDropsFrameFromUnknownSender(t *testing.T) {
	transport := newFakeTransport()
	e, _ := newTestEngine(t, transport, fixedProb(0))

	e.OnIncomingFrame(IncomingFrameMsg{
		TransmitterAddr: MacAddr{0x02, 0, 0, 0, 0, 9},
		Payload:         testPayload(MacAddr{0x02, 0, 0, 0, 0, 2}, false),
		TxRates:         fullLadder(),
	})

	if len(transport.txInfos) != 0 || len(transport.cloned) != 0 {
		t.Fatalf("expected no delivery for an unregistered sender")
	}
}

func TestEngineDropsMalformedFrame(t *testing.T) {
	transport := newFakeTransport()
	e, _ := newTestEngine(t, transport, fixedProb(0))
	sender := MacAddr{0x02, 0, 0, 0, 0, 1}
	e.AddStation(sender)

	e.OnIncomingFrame(IncomingFrameMsg{
		TransmitterAddr: sender,
		Payload:         []byte{0x01, 0x02},
		TxRates:         fullLadder(),
	})

	if len(transport.txInfos) != 0 {
		t.Fatalf("expected malformed frame to produce no tx-info")
	}
}

func TestEngineUnicastDeliveryEndToEnd(t *testing.T) {
	transport := newFakeTransport()
	e, clock := newTestEngine(t, transport, fixedProb(0))

	sender := MacAddr{0x02, 0, 0, 0, 0, 1}
	receiver := MacAddr{0x02, 0, 0, 0, 0, 2}
	bystander := MacAddr{0x02, 0, 0, 0, 0, 3}
	e.AddStation(sender)
	e.AddStation(receiver)
	e.AddStation(bystander)

	e.OnIncomingFrame(IncomingFrameMsg{
		TransmitterAddr: sender,
		Payload:         testPayload(receiver, false),
		TxRates:         fullLadder(),
	})

	// advance the fake clock past the computed expiry and fire the timer
	clock.now = clock.now.Add(time.Second)
	e.OnTimerFire()

	if len(transport.txInfos) != 1 {
		t.Fatalf("expected exactly one tx-info report, got %d", len(transport.txInfos))
	}
	if transport.txInfos[0].TransmitterAddr != sender {
		t.Fatalf("tx-info reported to wrong sender: %v", transport.txInfos[0].TransmitterAddr)
	}
	if len(transport.cloned) != 1 {
		t.Fatalf("expected exactly one cloned delivery, got %d", len(transport.cloned))
	}
	if transport.cloned[0].ReceiverAddr != receiver {
		t.Fatalf("expected delivery to %v, got %v", receiver, transport.cloned[0].ReceiverAddr)
	}
}

func TestEngineMulticastFansOutToEveryOtherStation(t *testing.T) {
	transport := newFakeTransport()
	e, clock := newTestEngine(t, transport, fixedProb(0))

	sender := MacAddr{0x02, 0, 0, 0, 0, 1}
	b := MacAddr{0x02, 0, 0, 0, 0, 2}
	c := MacAddr{0x02, 0, 0, 0, 0, 3}
	broadcast := MacAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	e.AddStation(sender)
	e.AddStation(b)
	e.AddStation(c)

	e.OnIncomingFrame(IncomingFrameMsg{
		TransmitterAddr: sender,
		Payload:         testPayload(broadcast, false),
		TxRates:         fullLadder(),
	})

	clock.now = clock.now.Add(time.Second)
	e.OnTimerFire()

	if len(transport.cloned) != 2 {
		t.Fatalf("expected a cloned delivery to every other station, got %d", len(transport.cloned))
	}
	got := map[MacAddr]bool{}
	for _, m := range transport.cloned {
		got[m.ReceiverAddr] = true
	}
	want := map[MacAddr]bool{b: true, c: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected fanout set (-want +got):\n%s", diff)
	}
}

func TestEngineManagementFrameNeverWaitsForAck(t *testing.T) {
	transport := newFakeTransport()
	// a probability of 1 would normally guarantee loss, but management
	// frames must be delivered unconditionally.
	e, clock := newTestEngine(t, transport, fixedProb(1))

	sender := MacAddr{0x02, 0, 0, 0, 0, 1}
	receiver := MacAddr{0x02, 0, 0, 0, 0, 2}
	e.AddStation(sender)
	e.AddStation(receiver)

	e.OnIncomingFrame(IncomingFrameMsg{
		TransmitterAddr: sender,
		Payload:         testPayload(receiver, true),
		TxRates:         fullLadder(),
	})

	clock.now = clock.now.Add(time.Second)
	e.OnTimerFire()

	if len(transport.cloned) != 1 {
		t.Fatalf("expected management frame delivered despite p=1, got %d cloned", len(transport.cloned))
	}
}

func TestEngineExhaustedLadderProducesNoClonedFrame(t *testing.T) {
	transport := newFakeTransport()
	e, clock := newTestEngine(t, transport, fixedProb(1))

	sender := MacAddr{0x02, 0, 0, 0, 0, 1}
	receiver := MacAddr{0x02, 0, 0, 0, 0, 2}
	e.AddStation(sender)
	e.AddStation(receiver)

	e.OnIncomingFrame(IncomingFrameMsg{
		TransmitterAddr: sender,
		Payload:         testPayload(receiver, false),
		TxRates:         fullLadder(),
	})

	clock.now = clock.now.Add(time.Second)
	e.OnTimerFire()

	if len(transport.cloned) != 0 {
		t.Fatalf("expected no cloned frame when the ladder is exhausted, got %d", len(transport.cloned))
	}
	if len(transport.txInfos) != 1 {
		t.Fatalf("expected exactly one tx-info report even on failure, got %d", len(transport.txInfos))
	}
}

func TestEngineQueueDepthMonotonicBeforeDrain(t *testing.T) {
	transport := newFakeTransport()
	e, clock := newTestEngine(t, transport, fixedProb(0))

	sender := MacAddr{0x02, 0, 0, 0, 0, 1}
	receiver := MacAddr{0x02, 0, 0, 0, 0, 2}
	e.AddStation(sender)
	e.AddStation(receiver)

	st := e.Registry.Lookup(sender)
	for i := 0; i < 3; i++ {
		e.OnIncomingFrame(IncomingFrameMsg{
			TransmitterAddr: sender,
			Payload:         testPayload(receiver, false),
			TxRates:         fullLadder(),
		})
	}
	if got := st.DataQ.Len(); got != 3 {
		t.Fatalf("expected 3 queued frames before any drain, got %d", got)
	}

	clock.now = clock.now.Add(time.Hour)
	e.OnTimerFire()
	if got := st.DataQ.Len(); got != 0 {
		t.Fatalf("expected queue drained after timer fire, got %d remaining", got)
	}
}
