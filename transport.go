package wmediumd

//
// Transport: generic-netlink client for MAC80211_HWSIM
//
// One narrow interface the engine depends on, one production
// implementation, one in-memory fake for tests. Built on
// github.com/mdlayher/netlink and github.com/mdlayher/genetlink, the
// standard Go libraries for talking to a kernel generic-netlink family.
//

import (
	"fmt"

	"github.com/mdlayher/genetlink"
	"github.com/mdlayher/netlink"
)

// Transport is the narrow interface the engine depends on to exchange
// control messages with the kernel's mac80211_hwsim facility.
type Transport interface {
	// Register declares the engine as the medium arbiter, once at
	// startup.
	Register() error

	// Incoming returns the channel of successfully decoded incoming
	// frames. Malformed messages are dropped and logged by the
	// transport itself and never appear here.
	Incoming() <-chan IncomingFrameMsg

	// SendCloned delivers a received copy to one station.
	SendCloned(msg ClonedFrameMsg) error

	// SendTxInfo reports per-attempt status back to a sender.
	SendTxInfo(msg TxInfoMsg) error

	// Close releases the underlying socket.
	Close() error
}

// GenetlinkTransport is the production Transport, backed by a
// genetlink.Conn bound to the MAC80211_HWSIM family.
type GenetlinkTransport struct {
	conn     *genetlink.Conn
	family   genetlink.Family
	logger   Logger
	incoming chan IncomingFrameMsg
	done     chan struct{}
}

var _ Transport = &GenetlinkTransport{}

// NewGenetlinkTransport dials generic netlink, resolves the
// MAC80211_HWSIM family, and starts the background reader goroutine
// that feeds Incoming().
func NewGenetlinkTransport(logger Logger) (*GenetlinkTransport, error) {
	conn, err := genetlink.Dial(nil)
	if err != nil {
		return nil, fmt.Errorf("wmediumd: genetlink.Dial: %w", err)
	}
	family, err := conn.GetFamily(hwsimFamilyName)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("wmediumd: family %s not registered: %w", hwsimFamilyName, err)
	}
	t := &GenetlinkTransport{
		conn:     conn,
		family:   family,
		logger:   logger,
		incoming: make(chan IncomingFrameMsg, 64),
		done:     make(chan struct{}),
	}
	go t.readLoop()
	return t, nil
}

// Register implements Transport.
func (t *GenetlinkTransport) Register() error {
	req := genetlink.Message{
		Header: genetlink.Header{
			Command: hwsimCmdRegister,
			Version: hwsimVersion,
		},
	}
	_, err := t.conn.Send(req, t.family.ID, netlink.Request)
	return err
}

// readLoop drains messages from the kernel and decodes incoming-frame
// commands, dropping anything else or anything malformed.
func (t *GenetlinkTransport) readLoop() {
	defer close(t.incoming)
	for {
		msgs, _, err := t.conn.Receive()
		if err != nil {
			select {
			case <-t.done:
				return
			default:
			}
			t.logger.Warnf("wmediumd: transport.Receive: %s", err.Error())
			continue
		}
		for _, m := range msgs {
			if m.Header.Command != hwsimCmdFrame {
				continue
			}
			in, derr := decodeIncomingFrame(m.Data)
			if derr != nil {
				t.logger.Warnf("wmediumd: malformed incoming frame: %s", derr.Error())
				continue
			}
			select {
			case t.incoming <- in:
			case <-t.done:
				return
			}
		}
	}
}

// Incoming implements Transport.
func (t *GenetlinkTransport) Incoming() <-chan IncomingFrameMsg {
	return t.incoming
}

// SendCloned implements Transport.
func (t *GenetlinkTransport) SendCloned(msg ClonedFrameMsg) error {
	data, err := encodeClonedFrame(msg)
	if err != nil {
		return err
	}
	m := genetlink.Message{
		Header: genetlink.Header{Command: hwsimCmdFrame, Version: hwsimVersion},
		Data:   data,
	}
	_, err = t.conn.Send(m, t.family.ID, netlink.Request)
	return err
}

// SendTxInfo implements Transport.
func (t *GenetlinkTransport) SendTxInfo(msg TxInfoMsg) error {
	data, err := encodeTxInfo(msg)
	if err != nil {
		return err
	}
	m := genetlink.Message{
		Header: genetlink.Header{Command: hwsimCmdTxInfo, Version: hwsimVersion},
		Data:   data,
	}
	_, err = t.conn.Send(m, t.family.ID, netlink.Request)
	return err
}

// Close implements Transport.
func (t *GenetlinkTransport) Close() error {
	close(t.done)
	return t.conn.Close()
}
