package stun

import (
	"math"

	"github.com/pkg/errors"
)

const (
	messageIntegrityTLVSize = attributeHeaderSize + messageIntegritySize
	fingerprintTLVSize      = attributeHeaderSize + fingerprintSize
)

// Encode serializes the message and returns the wire bytes, which are
// also kept in m.Raw. Credentials are only consulted when a
// MESSAGE-INTEGRITY attribute was requested; cred may be nil otherwise.
//
// Serialization is two-pass over a single buffer: the header goes out
// with a zero length, attributes are appended in order, and the length
// field is patched in place whenever MESSAGE-INTEGRITY or FINGERPRINT
// needs the message "as if it were the last attribute", then patched
// once more with the final value.
func (m *Message) Encode(cred Credential) ([]byte, error) {
	if err := m.checkTrailingOrder(); err != nil {
		return nil, err
	}

	raw := make([]byte, messageHeaderSize, messageHeaderSize+128)
	bin.PutUint16(raw[0:2], m.Type.Value())
	bin.PutUint32(raw[4:8], magicCookie)
	copy(raw[8:messageHeaderSize], m.TransactionID[:])

	for _, a := range m.Attributes {
		switch v := a.(type) {
		case MessageIntegrity:
			if len(v) != 0 {
				break // pre-computed digest, emitted like any value
			}
			if cred == nil {
				return nil, errors.Wrapf(ErrMissingCredentials, "%s requested", AttrMessageIntegrity)
			}
			key, err := cred.integrityKey(m)
			if err != nil {
				return nil, err
			}
			writeLength(raw, len(raw)-messageHeaderSize+messageIntegrityTLVSize)
			raw = appendTLV(raw, AttrMessageIntegrity, integritySum(key, raw))
			continue
		case Fingerprint:
			if v != 0 {
				break
			}
			writeLength(raw, len(raw)-messageHeaderSize+fingerprintTLVSize)
			fp := make([]byte, fingerprintSize)
			bin.PutUint32(fp, fingerprintValue(raw))
			raw = appendTLV(raw, AttrFingerprint, fp)
			continue
		}
		value, err := a.marshalValue(m.TransactionID)
		if err != nil {
			return nil, err
		}
		if len(value) > math.MaxUint16 {
			return nil, errors.Wrapf(ErrAttributeTooBig, "%s: %d bytes", a.Type(), len(value))
		}
		raw = appendTLV(raw, a.Type(), value)
	}

	length := len(raw) - messageHeaderSize
	if length > math.MaxUint16 {
		return nil, errors.Wrapf(ErrMessageTooBig, "%d attribute bytes", length)
	}
	writeLength(raw, length)
	m.Raw = raw
	return raw, nil
}

// checkTrailingOrder enforces that MESSAGE-INTEGRITY is followed only
// by FINGERPRINT and that FINGERPRINT is last. Messages built through
// Add never trip it; it guards manually constructed attribute lists.
func (m *Message) checkTrailingOrder() error {
	var seenIntegrity, seenFingerprint bool
	for _, a := range m.Attributes {
		switch a.Type() {
		case AttrFingerprint:
			seenFingerprint = true
		case AttrMessageIntegrity:
			if seenFingerprint {
				return errors.Wrap(ErrInvalidAttributeOrder, "FINGERPRINT before MESSAGE-INTEGRITY")
			}
			seenIntegrity = true
		default:
			if seenIntegrity || seenFingerprint {
				return errors.Wrapf(ErrInvalidAttributeOrder, "%s after trailing attributes", a.Type())
			}
		}
	}
	return nil
}

// appendTLV frames value as 16-bit type, 16-bit length, value bytes and
// zero padding to the next 32-bit boundary.
func appendTLV(raw []byte, t AttrType, value []byte) []byte {
	var tl [attributeHeaderSize]byte
	bin.PutUint16(tl[0:2], uint16(t))
	bin.PutUint16(tl[2:4], uint16(len(value)))
	raw = append(raw, tl[:]...)
	raw = append(raw, value...)
	for n := nearestPaddedValueLength(len(value)) - len(value); n > 0; n-- {
		raw = append(raw, 0)
	}
	return raw
}

// writeLength patches the header length field in place.
func writeLength(raw []byte, length int) {
	bin.PutUint16(raw[2:4], uint16(length))
}
