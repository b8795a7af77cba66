package stun

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode_Reason(t *testing.T) {
	assert.Equal(t, "Try Alternate", CodeTryAlternate.Reason())
	assert.Equal(t, "Role Conflict", CodeRoleConflict.Reason())
	assert.Equal(t, "Unknown Error", ErrorCode(699).Reason())
}

func TestErrorCodeAttribute_RoundTrip(t *testing.T) {
	id := [TransactionIDSize]byte{}
	in := NewErrorCode(CodeUnauthorised)
	v, err := in.marshalValue(id)
	assert.NoError(t, err)
	assert.Equal(t, byte(4), v[errorCodeClassByte])
	assert.Equal(t, byte(1), v[errorCodeNumberByte])
	out, err := parseAttribute(AttrErrorCode, v, id)
	assert.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestErrorCodeAttribute_CodeRange(t *testing.T) {
	for _, code := range []ErrorCode{299, 700, 0} {
		a := ErrorCodeAttribute{Code: code, Reason: "nope"}
		_, err := a.marshalValue([TransactionIDSize]byte{})
		assert.ErrorIs(t, err, ErrInvalidAttributeEncoding, "code %d", code)
	}
}

func TestParseErrorCode_Invalid(t *testing.T) {
	id := [TransactionIDSize]byte{}
	t.Run("TooShort", func(t *testing.T) {
		_, err := parseAttribute(AttrErrorCode, []byte{0, 0, 4}, id)
		assert.ErrorIs(t, err, ErrInvalidAttributeLength)
	})
	t.Run("BadClass", func(t *testing.T) {
		_, err := parseAttribute(AttrErrorCode, []byte{0, 0, 2, 55}, id)
		assert.ErrorIs(t, err, ErrInvalidAttributeEncoding)
	})
	t.Run("BadReason", func(t *testing.T) {
		_, err := parseAttribute(AttrErrorCode, []byte{0, 0, 4, 0, 0xff, 0xfe}, id)
		assert.ErrorIs(t, err, ErrInvalidAttributeEncoding)
	})
}
