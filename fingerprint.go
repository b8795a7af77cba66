package stun

import (
	"fmt"
	"hash/crc32"
)

const (
	fingerprintXORValue uint32 = 0x5354554e
	fingerprintSize            = 4 // 32 bit
)

// Fingerprint represents FINGERPRINT attribute: CRC-32 of the message
// up to the attribute itself, XOR'ed with 0x5354554e. The zero value is
// a request for Encode to compute the checksum; Decode fills in the
// value found on the wire.
//
// RFC 5389 Section 15.5.
type Fingerprint uint32

// Type returns AttrFingerprint.
func (Fingerprint) Type() AttrType { return AttrFingerprint }

func (f Fingerprint) String() string {
	return fmt.Sprintf("CRC: 0x%x", uint32(f))
}

// marshalValue emits a pre-computed checksum verbatim. Encode
// intercepts the zero request form before this is called.
func (f Fingerprint) marshalValue([TransactionIDSize]byte) ([]byte, error) {
	v := make([]byte, fingerprintSize)
	bin.PutUint32(v, uint32(f))
	return v, nil
}

// fingerprintValue returns CRC-32 of b XOR-ed by 0x5354554e.
//
// The XOR helps in cases where an application packet is also using
// CRC-32 in it.
func fingerprintValue(b []byte) uint32 {
	return crc32.ChecksumIEEE(b) ^ fingerprintXORValue
}
