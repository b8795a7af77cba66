package stun

import (
	"crypto/hmac"
	"crypto/md5"  //nolint:gosec // mandated by RFC 5389 Section 15.4
	"crypto/sha1" //nolint:gosec // mandated by RFC 5389 Section 15.4
	"fmt"
	"io"
	"strings"
)

// separator for long-term credentials.
const credentialsSep = ":"

// Credential supplies the key material for MESSAGE-INTEGRITY. It is
// passed per call to Encode and Decode and never stored in a Message.
//
// The two concrete modes are ShortTermCredential and LongTermCredential;
// Password resolves the mode from message context the way the original
// long-term mechanism does.
type Credential interface {
	// integrityKey derives the HMAC-SHA1 key. The message is consulted
	// only by context-resolving credentials, for its USERNAME and REALM
	// attributes.
	integrityKey(m *Message) ([]byte, error)
}

// ShortTermCredential authenticates with the raw password bytes as the
// HMAC key. RFC 5389 Section 10.1.
type ShortTermCredential struct {
	Password string
}

func (c ShortTermCredential) integrityKey(*Message) ([]byte, error) {
	return []byte(c.Password), nil
}

// LongTermCredential authenticates with the 16-byte MD5 key derived
// from username, realm and password. RFC 5389 Section 10.2.
type LongTermCredential struct {
	Username string
	Realm    string
	Password string
}

func (c LongTermCredential) integrityKey(*Message) ([]byte, error) {
	return longTermKey(c.Username, c.Realm, c.Password), nil
}

// longTermKey is MD5(username ":" realm ":" password), RFC 5389
// Section 15.4. The inputs are hashed as raw UTF-8 bytes, no
// normalization is applied.
func longTermKey(username, realm, password string) []byte {
	h := md5.New() //nolint:gosec
	io.WriteString(h, strings.Join([]string{username, realm, password}, credentialsSep)) //nolint:errcheck
	return h.Sum(nil)
}

// Password returns a Credential that picks its mode from the message it
// is used against: long-term when the message carries USERNAME and
// REALM attributes, short-term otherwise. A REALM without a USERNAME is
// ErrMissingUsername. Use the explicit credential types when the mode
// is known up front.
func Password(password string) Credential {
	return contextCredential(password)
}

type contextCredential string

func (c contextCredential) integrityKey(m *Message) ([]byte, error) {
	var (
		username  Username
		realm     Realm
		haveUser  bool
		haveRealm bool
	)
	for _, a := range m.Attributes {
		switch v := a.(type) {
		case Username:
			username, haveUser = v, true
		case Realm:
			realm, haveRealm = v, true
		}
	}
	if !haveRealm {
		return []byte(c), nil
	}
	if !haveUser {
		return nil, ErrMissingUsername
	}
	return longTermKey(string(username), string(realm), string(c)), nil
}

const messageIntegritySize = 20

// MessageIntegrity represents MESSAGE-INTEGRITY attribute: a 20-byte
// HMAC-SHA1 over the message up to the attribute itself. A nil or empty
// value is a request for Encode to compute the digest; Decode fills in
// the digest found on the wire.
//
// RFC 5389 Section 15.4.
type MessageIntegrity []byte

// Type returns AttrMessageIntegrity.
func (MessageIntegrity) Type() AttrType { return AttrMessageIntegrity }

func (i MessageIntegrity) String() string {
	return fmt.Sprintf("HMAC: 0x%x", []byte(i))
}

// marshalValue emits a pre-computed digest verbatim. Encode intercepts
// the empty request form before this is called.
func (i MessageIntegrity) marshalValue([TransactionIDSize]byte) ([]byte, error) {
	if len(i) != messageIntegritySize {
		return nil, wrapAttrLength(AttrMessageIntegrity, messageIntegritySize, len(i))
	}
	return i, nil
}

// integritySum computes HMAC-SHA1 of raw under key.
func integritySum(key, raw []byte) []byte {
	mac := hmac.New(sha1.New, key)
	mac.Write(raw) //nolint:errcheck // hash writes never fail
	return mac.Sum(nil)
}
