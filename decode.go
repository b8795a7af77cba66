package stun

import "github.com/pkg/errors"

// VerifyStatus is the outcome of a MESSAGE-INTEGRITY or FINGERPRINT
// check performed during Decode.
type VerifyStatus uint8

// Possible verification outcomes.
const (
	VerifyAbsent  VerifyStatus = iota // attribute not present
	VerifySkipped                     // present, but no credentials were supplied
	VerifyPassed
	VerifyFailed
)

func (s VerifyStatus) String() string {
	switch s {
	case VerifyAbsent:
		return "absent"
	case VerifySkipped:
		return "skipped"
	case VerifyPassed:
		return "passed"
	case VerifyFailed:
		return "failed"
	default:
		return "unknown status"
	}
}

// Verify converts failed check statuses into errors, for callers that
// want fatal semantics instead of inspecting the statuses themselves.
func (m *Message) Verify() error {
	if m.IntegrityCheck == VerifyFailed {
		return ErrIntegrityMismatch
	}
	if m.FingerprintCheck == VerifyFailed {
		return ErrFingerprintMismatch
	}
	return nil
}

// Decode parses data into a Message, verifying any MESSAGE-INTEGRITY
// and FINGERPRINT attributes against cred. cred may be nil, which skips
// integrity verification.
//
// A verification mismatch is not a decode failure: the message is
// returned fully parsed with IntegrityCheck or FingerprintCheck set to
// VerifyFailed, because the caller usually still needs the transaction
// ID and attributes to answer the peer. Decode fails only when the byte
// stream itself is unparseable, or when cred cannot derive a key for
// the message (Password against a REALM without a USERNAME).
//
// data is only read; the returned Message keeps its own copy.
func Decode(data []byte, cred Credential) (*Message, error) {
	if len(data) < messageHeaderSize {
		return nil, errors.Wrapf(ErrMalformedHeader,
			"message of %d bytes, header needs %d", len(data), messageHeaderSize,
		)
	}
	// The cookie is the primary discriminator from legacy STUN, checked
	// before anything else in the header is trusted.
	if cookie := bin.Uint32(data[4:8]); cookie != magicCookie {
		return nil, errors.Wrapf(ErrMalformedHeader,
			"magic cookie %#08x, want %#08x", cookie, uint32(magicCookie),
		)
	}
	if data[0]&0xC0 != 0 {
		return nil, errors.Wrap(ErrMalformedHeader, "first two bits not zero")
	}
	size := int(bin.Uint16(data[2:4]))
	if size%padding != 0 {
		return nil, errors.Wrapf(ErrMalformedHeader, "length %d not a multiple of 4", size)
	}
	if len(data) > messageHeaderSize+size {
		return nil, errors.Wrapf(ErrLengthMismatch,
			"header declares %d attribute bytes, %d present",
			size, len(data)-messageHeaderSize,
		)
	}

	raw := cloneBytes(data)
	msg := new(Message)
	msg.Type.ReadValue(bin.Uint16(raw[0:2]))
	copy(msg.TransactionID[:], raw[8:messageHeaderSize])

	var (
		b                = raw[messageHeaderSize:]
		offset           = 0
		integrityStart   = -1 // offset of the first MESSAGE-INTEGRITY TLV in raw
		fingerprintStart = -1 // offset of the first FINGERPRINT TLV in raw
	)
	for offset < size {
		if len(b)-offset < attributeHeaderSize {
			return nil, errors.Wrapf(ErrTruncatedAttribute,
				"%d bytes left, attribute header needs %d",
				len(b)-offset, attributeHeaderSize,
			)
		}
		t := AttrType(bin.Uint16(b[offset : offset+2]))
		length := int(bin.Uint16(b[offset+2 : offset+4]))
		end := offset + attributeHeaderSize + nearestPaddedValueLength(length)
		if end > len(b) {
			return nil, errors.Wrapf(ErrTruncatedAttribute,
				"%s: value of %d bytes extends past message end", t, length,
			)
		}
		if end > size {
			return nil, errors.Wrapf(ErrLengthMismatch,
				"%s crosses declared message length %d", t, size,
			)
		}
		switch t {
		case AttrMessageIntegrity:
			if integrityStart < 0 {
				integrityStart = messageHeaderSize + offset
			}
		case AttrFingerprint:
			if fingerprintStart < 0 {
				fingerprintStart = messageHeaderSize + offset
			}
		}
		a, err := parseAttribute(t, b[offset+attributeHeaderSize:offset+attributeHeaderSize+length], msg.TransactionID)
		if err != nil {
			return nil, err
		}
		msg.Attributes = append(msg.Attributes, a)
		offset = end
	}
	msg.Raw = raw

	msg.FingerprintCheck = verifyFingerprint(msg, fingerprintStart)
	st, err := verifyIntegrity(msg, cred, integrityStart)
	if err != nil {
		return nil, err
	}
	msg.IntegrityCheck = st
	return msg, nil
}

// verifyFingerprint recomputes the checksum over the bytes preceding
// the FINGERPRINT attribute, with the length field patched as if it
// were the last attribute. Raw is restored before returning.
func verifyFingerprint(m *Message, start int) VerifyStatus {
	if start < 0 {
		return VerifyAbsent
	}
	a, _ := m.Get(AttrFingerprint)
	want := a.(Fingerprint)
	saved := bin.Uint16(m.Raw[2:4])
	writeLength(m.Raw, start-messageHeaderSize+fingerprintTLVSize)
	got := fingerprintValue(m.Raw[:start])
	bin.PutUint16(m.Raw[2:4], saved)
	if got != uint32(want) {
		return VerifyFailed
	}
	return VerifyPassed
}

// verifyIntegrity recomputes the HMAC over the bytes preceding the
// MESSAGE-INTEGRITY attribute, with the length field patched as if it
// were the last attribute even when FINGERPRINT follows. A non-nil
// error means cred could not derive a key, not a digest mismatch.
func verifyIntegrity(m *Message, cred Credential, start int) (VerifyStatus, error) {
	if start < 0 {
		return VerifyAbsent, nil
	}
	if cred == nil {
		return VerifySkipped, nil
	}
	a, _ := m.Get(AttrMessageIntegrity)
	want := a.(MessageIntegrity)
	key, err := cred.integrityKey(m)
	if err != nil {
		return VerifySkipped, err
	}
	saved := bin.Uint16(m.Raw[2:4])
	writeLength(m.Raw, start-messageHeaderSize+messageIntegrityTLVSize)
	got := integritySum(key, m.Raw[:start])
	bin.PutUint16(m.Raw[2:4], saved)
	if !checkHMAC(got, want) {
		return VerifyFailed, nil
	}
	return VerifyPassed, nil
}
