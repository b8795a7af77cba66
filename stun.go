// Package stun implements the Session Traversal Utilities for NAT (STUN)
// wire codec defined by RFC 5389, together with the ICE extension
// attributes from RFC 8445 Section 7.1.
//
// The package is a pure encode/decode/verify library: it turns a
// structured Message into the exact byte sequence a UDP transport should
// send, and turns received bytes back into a validated Message. It owns
// no sockets, no timers and no transaction state; retransmission and
// retry policy belong to the layer calling it. Every call is synchronous,
// allocates only local state and is safe to run concurrently on disjoint
// inputs.
package stun

import (
	"crypto/rand"
	"encoding/binary"
)

// bin is shorthand to binary.BigEndian.
var bin = binary.BigEndian

const (
	// magicCookie is the fixed value that aids in distinguishing STUN
	// packets from packets of other protocols when STUN is multiplexed
	// with those other protocols on the same port.
	//
	// The magic cookie field MUST contain the fixed value 0x2112A442 in
	// network byte order.
	//
	// Defined in "STUN Message Structure", section 6.
	magicCookie         = 0x2112A442
	attributeHeaderSize = 4
	messageHeaderSize   = 20

	// TransactionIDSize is the length of a transaction ID in bytes (96 bits).
	TransactionIDSize = 12
)

// DefaultPort is the IANA assigned port for the "stun" protocol.
const DefaultPort = 3478

// NewTransactionID returns a new random transaction ID using crypto/rand
// as source. The codec never picks IDs on its own; callers pass the ID
// into the message constructors, which keeps encoding deterministic.
func NewTransactionID() (b [TransactionIDSize]byte) {
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return b
}

// IsMessage returns true if b looks like a STUN message. Useful for
// multiplexing. IsMessage does not guarantee that decoding will be
// successful.
func IsMessage(b []byte) bool {
	return len(b) >= messageHeaderSize && bin.Uint32(b[4:8]) == magicCookie
}
