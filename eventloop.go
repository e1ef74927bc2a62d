package wmediumd

//
// Event loop
//
// One select over a readable-frame channel, a timer-fire channel, and
// a shutdown signal. There is exactly one event loop per Engine, since
// the medium is shared by every station rather than split per link.
//

import "context"

// Run drives the engine until ctx is cancelled or the transport's
// incoming channel closes (meaning the transport itself shut down). It
// is the only goroutine that ever touches Engine state: the engine's
// concurrency model is single-threaded by construction.
func (e *Engine) Run(ctx context.Context) error {
	e.Logger.Infof("wmediumd: event loop starting")
	defer e.Logger.Infof("wmediumd: event loop stopped")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case msg, ok := <-e.Transport.Incoming():
			if !ok {
				e.Logger.Warnf("wmediumd: transport incoming channel closed")
				return nil
			}
			e.OnIncomingFrame(msg)

		case <-e.Timer.C():
			e.OnTimerFire()
		}
	}
}
