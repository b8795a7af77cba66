package stun

import (
	"fmt"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrorCode is code for ERROR-CODE attribute.
type ErrorCode int

// Possible error codes.
const (
	CodeTryAlternate     ErrorCode = 300
	CodeBadRequest       ErrorCode = 400
	CodeUnauthorised     ErrorCode = 401
	CodeUnknownAttribute ErrorCode = 420
	CodeStaleNonce       ErrorCode = 438
	CodeRoleConflict     ErrorCode = 487
	CodeServerError      ErrorCode = 500
)

var errorReasons = map[ErrorCode]string{
	CodeTryAlternate:     "Try Alternate",
	CodeBadRequest:       "Bad Request",
	CodeUnauthorised:     "Unauthorised",
	CodeUnknownAttribute: "Unknown Attribute",
	CodeStaleNonce:       "Stale Nonce",
	CodeRoleConflict:     "Role Conflict",
	CodeServerError:      "Server Error",
}

// Reason returns recommended reason string.
func (c ErrorCode) Reason() string {
	reason, ok := errorReasons[c]
	if !ok {
		return "Unknown Error"
	}
	return reason
}

// ErrorCodeAttribute represents ERROR-CODE attribute: a numeric code in
// the 300..699 range plus a UTF-8 reason phrase.
//
// RFC 5389 Section 15.6.
type ErrorCodeAttribute struct {
	Code   ErrorCode
	Reason string
}

// NewErrorCode returns an ErrorCodeAttribute with the recommended
// reason phrase for c.
func NewErrorCode(c ErrorCode) ErrorCodeAttribute {
	return ErrorCodeAttribute{Code: c, Reason: c.Reason()}
}

// Type returns AttrErrorCode.
func (ErrorCodeAttribute) Type() AttrType { return AttrErrorCode }

func (a ErrorCodeAttribute) String() string {
	return fmt.Sprintf("%d: %s", a.Code, a.Reason)
}

const (
	errorCodeReasonStart = 4
	errorCodeClassByte   = 2
	errorCodeNumberByte  = 3
	errorCodeModulo      = 100
	errorCodeMin         = 300
	errorCodeMax         = 699
)

func (a ErrorCodeAttribute) marshalValue([TransactionIDSize]byte) ([]byte, error) {
	if a.Code < errorCodeMin || a.Code > errorCodeMax {
		return nil, errors.Wrapf(ErrInvalidAttributeEncoding,
			"%s: code %d outside 300..699", AttrErrorCode, a.Code,
		)
	}
	if len(a.Reason) > maxTextValueB {
		return nil, errors.Wrapf(ErrAttributeTooBig,
			"%s: reason %d bytes, limit %d", AttrErrorCode, len(a.Reason), maxTextValueB,
		)
	}
	if !utf8.ValidString(a.Reason) {
		return nil, errors.Wrapf(ErrInvalidAttributeEncoding, "%s: reason not valid UTF-8", AttrErrorCode)
	}
	v := make([]byte, errorCodeReasonStart, errorCodeReasonStart+len(a.Reason))
	v[errorCodeClassByte] = byte(a.Code / errorCodeModulo)
	v[errorCodeNumberByte] = byte(a.Code % errorCodeModulo)
	return append(v, a.Reason...), nil
}

func parseErrorCode(v []byte) (Attribute, error) {
	if len(v) < errorCodeReasonStart {
		return nil, wrapAttrLength(AttrErrorCode, errorCodeReasonStart, len(v))
	}
	var (
		class  = int(v[errorCodeClassByte])
		number = int(v[errorCodeNumberByte])
		code   = ErrorCode(class*errorCodeModulo + number)
	)
	if code < errorCodeMin || code > errorCodeMax {
		return nil, errors.Wrapf(ErrInvalidAttributeEncoding,
			"%s: code %d outside 300..699", AttrErrorCode, code,
		)
	}
	reason, err := parseTextValue(AttrErrorCode, v[errorCodeReasonStart:])
	if err != nil {
		return nil, err
	}
	return ErrorCodeAttribute{Code: code, Reason: reason}, nil
}
