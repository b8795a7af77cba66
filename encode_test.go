package stun

import (
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// attrLength reads the header length field of an encoded message.
func attrLength(raw []byte) int {
	return int(bin.Uint16(raw[2:4]))
}

func TestEncode_HeaderLengthInvariant(t *testing.T) {
	id := NewTransactionID()
	m := NewRequest(id)
	m.Add(Software("rust-stun-coder")) // 15 bytes, padded to 16
	m.AddMessageIntegrity()
	m.AddFingerprint()

	raw, err := m.Encode(ShortTermCredential{Password: "TEST_PASS"})
	assert.NoError(t, err)

	// SOFTWARE TLV 20 + MESSAGE-INTEGRITY TLV 24 + FINGERPRINT TLV 8.
	assert.Equal(t, 52, attrLength(raw))
	assert.Equal(t, len(raw)-messageHeaderSize, attrLength(raw))

	decoded, err := Decode(raw, ShortTermCredential{Password: "TEST_PASS"})
	assert.NoError(t, err)
	assert.Equal(t, VerifyPassed, decoded.IntegrityCheck)
	assert.Equal(t, VerifyPassed, decoded.FingerprintCheck)

	software, ok := decoded.Get(AttrSoftware)
	assert.True(t, ok)
	assert.Equal(t, Software("rust-stun-coder"), software)
	assert.Equal(t, id, decoded.TransactionID)
}

func TestEncode_TrailingOrderInvariant(t *testing.T) {
	// Whatever order the caller requests attributes in, the wire always
	// carries MESSAGE-INTEGRITY immediately before FINGERPRINT, last.
	id := NewTransactionID()
	orders := [][]func(m *Message){
		{
			func(m *Message) { m.AddFingerprint() },
			func(m *Message) { m.AddMessageIntegrity() },
			func(m *Message) { m.Add(Software("x")) },
		},
		{
			func(m *Message) { m.AddMessageIntegrity() },
			func(m *Message) { m.Add(Software("x")) },
			func(m *Message) { m.AddFingerprint() },
		},
		{
			func(m *Message) { m.Add(Software("x")) },
			func(m *Message) { m.AddFingerprint() },
			func(m *Message) { m.AddMessageIntegrity() },
		},
	}
	for i, steps := range orders {
		m := NewRequest(id)
		for _, step := range steps {
			step(m)
		}
		raw, err := m.Encode(ShortTermCredential{Password: "pw"})
		assert.NoError(t, err, "[%d]", i)

		decoded, err := Decode(raw, nil)
		assert.NoError(t, err, "[%d]", i)
		n := len(decoded.Attributes)
		assert.Equal(t, AttrFingerprint, decoded.Attributes[n-1].Type(), "[%d]", i)
		assert.Equal(t, AttrMessageIntegrity, decoded.Attributes[n-2].Type(), "[%d]", i)
	}
}

func TestEncode_InvalidAttributeOrder(t *testing.T) {
	id := NewTransactionID()
	t.Run("FingerprintBeforeIntegrity", func(t *testing.T) {
		m := NewRequest(id)
		// Bypassing Add to build an invalid list by hand.
		m.Attributes = []Attribute{Fingerprint(0), MessageIntegrity(nil)}
		_, err := m.Encode(ShortTermCredential{Password: "pw"})
		assert.ErrorIs(t, err, ErrInvalidAttributeOrder)
	})
	t.Run("AttributeAfterIntegrity", func(t *testing.T) {
		m := NewRequest(id)
		m.Attributes = []Attribute{MessageIntegrity(nil), Software("late")}
		_, err := m.Encode(ShortTermCredential{Password: "pw"})
		assert.ErrorIs(t, err, ErrInvalidAttributeOrder)
	})
	t.Run("AttributeAfterFingerprint", func(t *testing.T) {
		m := NewRequest(id)
		m.Attributes = []Attribute{Fingerprint(0), Software("late")}
		_, err := m.Encode(nil)
		assert.ErrorIs(t, err, ErrInvalidAttributeOrder)
	})
}

func TestEncode_AttributeErrors(t *testing.T) {
	id := NewTransactionID()
	t.Run("OversizedText", func(t *testing.T) {
		m := NewRequest(id)
		m.Add(Software(strings.Repeat("a", maxTextValueB+1)))
		_, err := m.Encode(nil)
		assert.ErrorIs(t, err, ErrAttributeTooBig)
	})
	t.Run("BadAddressFamily", func(t *testing.T) {
		m := NewRequest(id)
		m.Add(XORMappedAddress{IP: net.IP{1, 2}, Port: 1})
		_, err := m.Encode(nil)
		assert.ErrorIs(t, err, ErrUnsupportedFamily)
	})
}

func TestEncode_AllClasses(t *testing.T) {
	id := NewTransactionID()
	for _, m := range []*Message{
		NewRequest(id),
		NewIndication(id),
		NewSuccessResponse(id),
		NewErrorResponse(id),
	} {
		raw, err := m.Encode(nil)
		assert.NoError(t, err)
		decoded, err := Decode(raw, nil)
		assert.NoError(t, err)
		assert.Equal(t, m.Type, decoded.Type)
		assert.Equal(t, id, decoded.TransactionID)
	}
}

func TestEncode_PrecomputedIntegrity(t *testing.T) {
	// A digest carried over from a decoded message is emitted verbatim.
	id := NewTransactionID()
	m := NewRequest(id)
	m.Add(Software("software"))
	m.AddMessageIntegrity()
	raw, err := m.Encode(ShortTermCredential{Password: "pw"})
	assert.NoError(t, err)

	decoded, err := Decode(raw, nil)
	assert.NoError(t, err)
	reencoded, err := decoded.Encode(nil) // no credentials needed
	assert.NoError(t, err)
	assert.Equal(t, raw, reencoded)
}
