package stun

import (
	"crypto/hmac"

	"github.com/pkg/errors"
)

// wrapAttrLength annotates ErrInvalidAttributeLength with the attribute
// and sizes involved.
func wrapAttrLength(t AttrType, expected, got int) error {
	return errors.Wrapf(ErrInvalidAttributeLength,
		"%s: got %d bytes, expected %d", t, got, expected,
	)
}

// checkHMAC compares digests without leaking timing.
func checkHMAC(got, expected []byte) bool {
	return hmac.Equal(got, expected)
}

func parseUint32Value(t AttrType, v []byte) (uint32, error) {
	if len(v) != 4 {
		return 0, wrapAttrLength(t, 4, len(v))
	}
	return bin.Uint32(v), nil
}

func parseUint64Value(t AttrType, v []byte) (uint64, error) {
	if len(v) != 8 {
		return 0, wrapAttrLength(t, 8, len(v))
	}
	return bin.Uint64(v), nil
}
