package stun

import (
	"net"
	"strconv"

	"github.com/pion/transport/v3/utils/xor"
)

// XORMappedAddress represents XOR-MAPPED-ADDRESS attribute. The stored
// IP and Port are the logical, de-obfuscated values; the XOR transform
// with the magic cookie and transaction ID is purely a wire detail
// applied inside the codec.
//
// RFC 5389 Section 15.2.
type XORMappedAddress struct {
	IP   net.IP
	Port int
}

// Type returns AttrXORMappedAddress.
func (XORMappedAddress) Type() AttrType { return AttrXORMappedAddress }

func (a XORMappedAddress) String() string {
	return net.JoinHostPort(a.IP.String(), strconv.Itoa(a.Port))
}

func (a XORMappedAddress) marshalValue(id [TransactionIDSize]byte) ([]byte, error) {
	return marshalAddrValue(AttrXORMappedAddress, a.IP, a.Port, true, id)
}

// xorAddrBytes obfuscates b in place. The key is the magic cookie
// followed by the transaction ID; IPv4 addresses consume only the
// cookie, IPv6 addresses the full 16 bytes. The transform is
// self-inverse.
func xorAddrBytes(b []byte, id [TransactionIDSize]byte) {
	key := make([]byte, 4+TransactionIDSize)
	bin.PutUint32(key[0:4], magicCookie)
	copy(key[4:], id[:])
	xor.XorBytes(b, b, key[:len(b)])
}
