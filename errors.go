package stun

// Error is error type for constant errors in stun package.
//
// See http://dave.cheney.net/2016/04/07/constant-errors for more info.
type Error string

func (e Error) Error() string {
	return string(e)
}

// Decode errors. All of them are fatal for the message being decoded;
// there is nothing to retry inside the codec.
const (
	// ErrMalformedHeader means that the first 20 bytes do not form a
	// valid RFC 5389 header: too short, bad fixed bits or bad magic
	// cookie.
	ErrMalformedHeader Error = "malformed message header"

	// ErrTruncatedAttribute means that a declared attribute length
	// extends past the end of the available bytes.
	ErrTruncatedAttribute Error = "attribute extends past end of message"

	// ErrLengthMismatch means that the header length field does not
	// match the attribute bytes actually present.
	ErrLengthMismatch Error = "message length does not match attribute bytes"

	// ErrInvalidAttributeLength means that a known attribute type was
	// framed with a length its value cannot have.
	ErrInvalidAttributeLength Error = "invalid attribute value length"

	// ErrInvalidAttributeEncoding means that an attribute value fails
	// its own shape constraints, e.g. a text attribute that is not
	// valid UTF-8.
	ErrInvalidAttributeEncoding Error = "invalid attribute value encoding"
)

// Verification errors. These are never returned by Decode itself; the
// parsed message carries them as VerifyStatus values so the caller can
// still read the transaction ID and attributes of a message that failed
// its checks. Message.Verify surfaces them as errors for callers that
// want fatal semantics.
const (
	// ErrIntegrityMismatch means that computed HMAC differs from the
	// MESSAGE-INTEGRITY attribute value.
	ErrIntegrityMismatch Error = "integrity check failed"

	// ErrFingerprintMismatch means that computed CRC-32 differs from
	// the FINGERPRINT attribute value.
	ErrFingerprintMismatch Error = "fingerprint check failed"
)

// Encode errors. Nothing is emitted when any of them is returned.
const (
	// ErrAttributeTooBig means that an attribute value exceeds the
	// protocol limit for its type.
	ErrAttributeTooBig Error = "attribute value exceeds protocol limit"

	// ErrMessageTooBig means that the encoded attributes do not fit the
	// 16-bit message length field.
	ErrMessageTooBig Error = "encoded message exceeds 65535 attribute bytes"

	// ErrUnsupportedFamily means that an address attribute holds an IP
	// that is neither IPv4 nor IPv6.
	ErrUnsupportedFamily Error = "address family is not IPv4 or IPv6"

	// ErrInvalidAttributeOrder means that MESSAGE-INTEGRITY or
	// FINGERPRINT is not in its mandated trailing position.
	ErrInvalidAttributeOrder Error = "invalid trailing attribute order"

	// ErrMissingCredentials means that MESSAGE-INTEGRITY was requested
	// without any credential material to compute it from.
	ErrMissingCredentials Error = "no credentials for MESSAGE-INTEGRITY"

	// ErrMissingUsername means that a REALM attribute is present
	// without a USERNAME, so the long-term key cannot be derived.
	ErrMissingUsername Error = "REALM present without USERNAME"
)
