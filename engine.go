package wmediumd

//
// Scheduler / Engine: the core of the medium simulator.
//
// A single-threaded event loop draining all expired frames from every
// queue of every registered Station on each timer fire, generalized
// from a point-to-point link between two endpoints to a broadcast
// medium shared by every station.
//

import (
	"fmt"
	"time"
)

// Engine owns every piece of state the medium engine needs: the
// station registry, the clock and its single timer, the transport, and
// the pluggable error model / SNR source / RNG, in place of
// process-scope globals; event-loop callbacks hold it by reference.
//
// Engine is not safe for concurrent use: all mutation happens from a
// single, goroutine-confined event loop.
type Engine struct {
	Registry   *Registry
	Clock      Clock
	Timer      *Timer
	Transport  Transport
	ErrorModel ErrorModel
	SNR        SNRSource
	RNG        UniformSource
	Logger     Logger

	// Metrics and Stats are optional instrumentation; both are
	// nil-safe (their methods tolerate a nil receiver), so the engine
	// behaves identically whether or not they are wired in.
	Metrics *Metrics
	Stats   *SendTimeStats

	// Verbose enables per-delivery 802.11 header dissection in the
	// debug log, for the CLI's -v flag.
	Verbose bool

	// dropLimiter caps the rate of identical drop-reason log lines.
	dropLimiter *dropRateLimiter
}

// NewEngine constructs an Engine ready to process frames. logger must
// not be nil; errModel, snr, and rng default to sensible production
// values if nil.
func NewEngine(transport Transport, errModel ErrorModel, snr SNRSource, rng UniformSource, logger Logger) *Engine {
	if snr == nil {
		snr = DefaultSNR
	}
	if rng == nil {
		rng = NewSystemUniformSource()
	}
	if errModel == nil {
		errModel = FuncErrorModel(func(float64, RateIndex, int) float64 { return 0 })
	}
	clock := Clock(SystemClock{})
	return &Engine{
		Registry:    NewRegistry(),
		Clock:       clock,
		Timer:       NewTimer(clock),
		Transport:   transport,
		ErrorModel:  errModel,
		SNR:         snr,
		RNG:         rng,
		Logger:      logger,
		dropLimiter: newDropRateLimiter(),
	}
}

// AddStation registers a new station. Stations are created at
// initialization and live for the process lifetime.
func (e *Engine) AddStation(addr MacAddr) *Station {
	return e.Registry.Add(addr)
}

// OnIncomingFrame is the engine's only ingress entry point; the event
// loop calls it once per decoded incoming-frame message.
func (e *Engine) OnIncomingFrame(msg IncomingFrameMsg) {
	sender := e.Registry.Lookup(msg.TransmitterAddr)
	if sender == nil {
		if e.dropLimiter.Allow("unknown-sender") {
			e.Logger.Warnf("wmediumd: dropping frame from unknown sender %s", msg.TransmitterAddr)
		}
		e.Metrics.IncDroppedUnknownSender()
		return
	}

	frame, err := NewFrame(sender.Addr, msg.Payload, msg.Cookie, msg.TxRates)
	if err != nil {
		if e.dropLimiter.Allow("malformed-frame") {
			e.Logger.Warnf("wmediumd: dropping malformed frame from %s: %s", msg.TransmitterAddr, err.Error())
		}
		e.Metrics.IncDroppedMalformed()
		return
	}
	frame.Flags = msg.Flags

	queue := sender.QueueFor(frame.Payload)
	noack := IsManagement(frame.Payload) || IsMulticast(Addr1(frame.Payload))
	snrDB := e.SNR.SNRdB(sender.Addr, Addr1(frame.Payload))

	result := computeSendTime(frame.TxRates, len(frame.Payload), queue.CwMin, queue.CwMax, noack, snrDB, e.ErrorModel, e.RNG)
	frame.TxRates = result.Ladder
	if result.Acked {
		frame.Flags |= FrameFlagACK
	}

	now := e.Clock.Now()
	frame.Expires = now.Add(sendTimeDuration(result.SendTimeUsec))
	// never fall due before the frame queued ahead, so the queue stays
	// time-ordered
	if n := queue.Len(); n > 0 && frame.Expires.Before(queue.frames[n-1].Expires) {
		frame.Expires = queue.frames[n-1].Expires
	}

	queue.PushBack(frame)
	e.Metrics.SetQueueDepth(sender.Addr.String(), sender.MgmtQ.Len()+sender.DataQ.Len())
	e.Metrics.AddRetries(ladderRetries(result.Ladder))
	e.Stats.Observe(result.SendTimeUsec)

	e.rearm()
}

// OnTimerFire drains every currently-expired frame from every queue, in
// station-then-queue order, then re-arms. Draining *all* expired frames
// in one fire (not just the earliest) avoids a repeated-wake-up trap
// where each fire only handles one frame and immediately schedules
// another fire for the next.
func (e *Engine) OnTimerFire() {
	now := e.Clock.Now()
	for _, st := range e.Registry.Stations() {
		for _, q := range st.Queues() {
			for {
				frame, ok := q.PopIfExpired(now)
				if !ok {
					break
				}
				e.deliver(frame)
			}
		}
		e.Metrics.SetQueueDepth(st.Addr.String(), st.MgmtQ.Len()+st.DataQ.Len())
	}
	e.rearm()
}

// deliver runs a frame's state machine to completion:
// EXPIRED -> DELIVERED(+ACK?) -> RELEASED. A frame contributes at most
// one tx-info report and at most one cloned-frame burst.
func (e *Engine) deliver(frame *Frame) {
	traceID := newTraceID()
	dest := Addr1(frame.Payload)
	multicast := IsMulticast(dest)
	e.Logger.Debugf("wmediumd: [%s] delivering %s", traceID, frameSummary(frame))
	if e.Verbose {
		if dissected, err := DissectFrame(frame.Payload); err == nil {
			e.Logger.Infof("wmediumd: [%s] %s", traceID, dissected.Summary())
		}
	}

	if frame.Acked() {
		for _, st := range e.Registry.Stations() {
			if st.Addr.Equal(frame.Sender) {
				continue
			}
			if !multicast && !st.Addr.Equal(dest) {
				continue
			}
			err := e.Transport.SendCloned(ClonedFrameMsg{
				ReceiverAddr: st.Addr,
				Payload:      frame.Payload,
				RxRateIdx:    deliveredRxRateIdx,
				SignalDBm:    deliveredSignalDBm,
			})
			if err != nil {
				e.Logger.Warnf("wmediumd: [%s] SendCloned to %s: %s", traceID, st.Addr, err.Error())
				e.Metrics.IncTransportSendErrors()
				continue
			}
			e.Metrics.IncFramesDelivered()
		}
	}

	err := e.Transport.SendTxInfo(TxInfoMsg{
		TransmitterAddr: frame.Sender,
		Flags:           frame.Flags,
		SignalDBm:       txInfoSignalDBm,
		TxRates:         frame.TxRates,
		Cookie:          frame.Cookie,
	})
	if err != nil {
		e.Logger.Warnf("wmediumd: [%s] SendTxInfo to %s: %s", traceID, frame.Sender, err.Error())
		e.Metrics.IncTransportSendErrors()
	}
	// frame is released: it is no longer referenced by any queue and
	// goes out of scope here.
}

// rearm re-arms the engine's timer to the minimum head-expiry across
// every queue of every station, or disarms it if all queues are empty.
func (e *Engine) rearm() {
	var min time.Time
	found := false
	for _, st := range e.Registry.Stations() {
		for _, q := range st.Queues() {
			if f := q.PeekHead(); f != nil {
				if !found || f.Expires.Before(min) {
					min = f.Expires
					found = true
				}
			}
		}
	}
	if !found {
		e.Timer.Disarm()
		return
	}
	e.Timer.Arm(min)
}

// ladderRetries counts the total number of attempts recorded across a
// ladder's rungs, for the retriesTotal metric.
func ladderRetries(ladder [MaxRates]TxRate) int {
	n := 0
	for _, r := range ladder {
		if r.Idx == RateAbsent {
			continue
		}
		n += int(r.Count)
	}
	return n
}

// String-formats a frame for error-path logging without pulling in the
// debug dissector.
func frameSummary(f *Frame) string {
	return fmt.Sprintf("frame(sender=%s len=%d cookie=%d)", f.Sender, len(f.Payload), f.Cookie)
}
