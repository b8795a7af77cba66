package stun

import (
	"encoding/base64"
	"fmt"
	"strconv"
)

// Message represents a single STUN packet: a 14-bit message type, a
// 96-bit transaction ID and an ordered attribute list. It is built
// incrementally with Add and consumed by Encode; Decode returns a fully
// populated Message that should not be mutated afterwards.
type Message struct {
	Type          MessageType
	TransactionID [TransactionIDSize]byte
	Attributes    []Attribute

	// Raw holds the wire bytes after a successful Encode or Decode.
	Raw []byte

	// IntegrityCheck and FingerprintCheck report the outcome of the
	// MESSAGE-INTEGRITY and FINGERPRINT verification performed by
	// Decode. A mismatch is a status, not a decode failure: the caller
	// usually still needs the transaction ID to answer the peer.
	IntegrityCheck   VerifyStatus
	FingerprintCheck VerifyStatus
}

// New returns a Message of the given type with the given transaction ID.
func New(t MessageType, id [TransactionIDSize]byte) *Message {
	return &Message{Type: t, TransactionID: id}
}

// NewRequest returns a Binding request.
func NewRequest(id [TransactionIDSize]byte) *Message {
	return New(MessageType{Class: ClassRequest, Method: MethodBinding}, id)
}

// NewIndication returns a Binding indication.
func NewIndication(id [TransactionIDSize]byte) *Message {
	return New(MessageType{Class: ClassIndication, Method: MethodBinding}, id)
}

// NewSuccessResponse returns a Binding success response. The transaction
// ID must be the one from the request being answered.
func NewSuccessResponse(id [TransactionIDSize]byte) *Message {
	return New(MessageType{Class: ClassSuccessResponse, Method: MethodBinding}, id)
}

// NewErrorResponse returns a Binding error response. The transaction ID
// must be the one from the request being answered.
func NewErrorResponse(id [TransactionIDSize]byte) *Message {
	return New(MessageType{Class: ClassErrorResponse, Method: MethodBinding}, id)
}

// Add appends an attribute, keeping MESSAGE-INTEGRITY and FINGERPRINT in
// their mandated trailing positions: whatever order the caller requests
// attributes in, MESSAGE-INTEGRITY stays before FINGERPRINT and both
// stay after everything else.
func (m *Message) Add(a Attribute) {
	pos := len(m.Attributes)
	switch a.Type() {
	case AttrFingerprint:
		// Always last.
	case AttrMessageIntegrity:
		for i, prev := range m.Attributes {
			if prev.Type() == AttrFingerprint {
				pos = i
				break
			}
		}
	default:
		for i, prev := range m.Attributes {
			if t := prev.Type(); t == AttrMessageIntegrity || t == AttrFingerprint {
				pos = i
				break
			}
		}
	}
	m.Attributes = append(m.Attributes, nil)
	copy(m.Attributes[pos+1:], m.Attributes[pos:])
	m.Attributes[pos] = a
}

// AddMessageIntegrity requests a MESSAGE-INTEGRITY attribute. The HMAC
// is computed during Encode from the credentials passed to it.
func (m *Message) AddMessageIntegrity() {
	m.Add(MessageIntegrity(nil))
}

// AddFingerprint requests a FINGERPRINT attribute. The CRC is computed
// during Encode.
func (m *Message) AddFingerprint() {
	m.Add(Fingerprint(0))
}

// Get returns the first attribute of type t and whether one was found.
func (m *Message) Get(t AttrType) (Attribute, bool) {
	for _, a := range m.Attributes {
		if a.Type() == t {
			return a, true
		}
	}
	return nil, false
}

// UnknownComprehensionRequired returns the type codes of attributes that
// were preserved as RawAttribute but are comprehension-required
// (type < 0x8000). RFC 5389 Section 7.3.1 tells servers to reject
// requests carrying such attributes with error 420; whether to do so is
// the caller's policy, the codec only reports them.
func (m *Message) UnknownComprehensionRequired() []AttrType {
	var ts []AttrType
	for _, a := range m.Attributes {
		raw, ok := a.(RawAttribute)
		if ok && raw.AttrType.Required() && !raw.AttrType.Known() {
			ts = append(ts, raw.AttrType)
		}
	}
	return ts
}

func (m Message) String() string {
	return fmt.Sprintf("%s attrs=%d id=%s",
		m.Type,
		len(m.Attributes),
		base64.StdEncoding.EncodeToString(m.TransactionID[:]),
	)
}

// MessageClass is 8-bit representation of 2-bit class of STUN Message Class.
type MessageClass byte

// Possible values for message class in STUN Message Type.
const (
	ClassRequest         MessageClass = 0x00 // 0b00
	ClassIndication      MessageClass = 0x01 // 0b01
	ClassSuccessResponse MessageClass = 0x02 // 0b10
	ClassErrorResponse   MessageClass = 0x03 // 0b11
)

func (c MessageClass) String() string {
	switch c {
	case ClassRequest:
		return "request"
	case ClassIndication:
		return "indication"
	case ClassSuccessResponse:
		return "success response"
	case ClassErrorResponse:
		return "error response"
	default:
		return "unknown class"
	}
}

// Method is uint16 representation of 12-bit STUN method.
type Method uint16

// MethodBinding is the only method RFC 5389 itself defines.
const MethodBinding Method = 0x001

func (m Method) String() string {
	if m == MethodBinding {
		return "binding"
	}
	return "0x" + strconv.FormatUint(uint64(m), 16)
}

// MessageType is STUN Message Type Field.
type MessageType struct {
	Class  MessageClass
	Method Method
}

const (
	methodABits = 0xf   // 0b0000000000001111
	methodBBits = 0x70  // 0b0000000001110000
	methodDBits = 0xf80 // 0b0000111110000000

	methodBShift = 1
	methodDShift = 2

	c0Bit = 0x1
	c1Bit = 0x2

	classC0Shift = 4
	classC1Shift = 7
)

// Value returns bit representation of messageType.
func (t MessageType) Value() uint16 {
	//	 0                 1
	//	 2  3  4 5 6 7 8 9 0 1 2 3 4 5
	//	+--+--+-+-+-+-+-+-+-+-+-+-+-+-+
	//	|M |M |M|M|M|C|M|M|M|C|M|M|M|M|
	//	|11|10|9|8|7|1|6|5|4|0|3|2|1|0|
	//	+--+--+-+-+-+-+-+-+-+-+-+-+-+-+
	// Figure 3: Format of STUN Message Type Field

	// Splitting M into A(M0-M3), B(M4-M6), D(M7-M11), then shifting
	// B and D left to make room for the C0 (bit 4) and C1 (bit 8)
	// class bits.
	m := uint16(t.Method)
	a := m & methodABits
	b := m & methodBBits
	d := m & methodDBits
	m = a + (b << methodBShift) + (d << methodDShift)

	c := uint16(t.Class)
	class := (c&c0Bit)<<classC0Shift + (c&c1Bit)<<classC1Shift

	return m + class
}

// ReadValue decodes uint16 into MessageType.
func (t *MessageType) ReadValue(v uint16) {
	// Class bits sit at positions 4 and 8 of v.
	c0 := (v >> classC0Shift) & c0Bit
	c1 := (v >> classC1Shift) & c1Bit
	t.Class = MessageClass(c0 + c1)

	// Method bits are everything else, compacted back together.
	a := v & methodABits
	b := (v >> methodBShift) & methodBBits
	d := (v >> methodDShift) & methodDBits
	t.Method = Method(a + b + d)
}

func (t MessageType) String() string {
	return fmt.Sprintf("%s %s", t.Method, t.Class)
}
