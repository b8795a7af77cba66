package stun

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

// maxTextValueB bounds the text attributes: the qdtext form allows up
// to 127 characters, which can be as long as 763 bytes of UTF-8.
//
// RFC 5389 Section 15.
const maxTextValueB = 763

// Username represents USERNAME attribute. RFC 5389 Section 15.3.
type Username string

// Type returns AttrUsername.
func (Username) Type() AttrType { return AttrUsername }

func (u Username) marshalValue([TransactionIDSize]byte) ([]byte, error) {
	return marshalTextValue(AttrUsername, string(u))
}

// Realm represents REALM attribute. RFC 5389 Section 15.7.
type Realm string

// Type returns AttrRealm.
func (Realm) Type() AttrType { return AttrRealm }

func (r Realm) marshalValue([TransactionIDSize]byte) ([]byte, error) {
	return marshalTextValue(AttrRealm, string(r))
}

// Software represents SOFTWARE attribute: a textual description of the
// software sending the message. RFC 5389 Section 15.10.
type Software string

// Type returns AttrSoftware.
func (Software) Type() AttrType { return AttrSoftware }

func (s Software) marshalValue([TransactionIDSize]byte) ([]byte, error) {
	return marshalTextValue(AttrSoftware, string(s))
}

// Nonce represents NONCE attribute. RFC 5389 Section 15.8.
type Nonce string

// Type returns AttrNonce.
func (Nonce) Type() AttrType { return AttrNonce }

func (n Nonce) marshalValue([TransactionIDSize]byte) ([]byte, error) {
	return marshalTextValue(AttrNonce, string(n))
}

func marshalTextValue(t AttrType, s string) ([]byte, error) {
	if len(s) > maxTextValueB {
		return nil, errors.Wrapf(ErrAttributeTooBig,
			"%s: %d bytes, limit %d", t, len(s), maxTextValueB,
		)
	}
	if !utf8.ValidString(s) {
		return nil, errors.Wrapf(ErrInvalidAttributeEncoding, "%s: not valid UTF-8", t)
	}
	return []byte(s), nil
}

func parseTextValue(t AttrType, v []byte) (string, error) {
	if !utf8.Valid(v) {
		return "", errors.Wrapf(ErrInvalidAttributeEncoding, "%s: not valid UTF-8", t)
	}
	return string(v), nil
}
