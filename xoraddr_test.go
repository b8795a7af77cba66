package stun

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

// rfc5769ID is the transaction ID used by all RFC 5769 test vectors.
var rfc5769ID = [TransactionIDSize]byte{
	0xb7, 0xe7, 0xa7, 0x01, 0xbc, 0x34, 0xd6, 0x86, 0xfa, 0x87, 0xdf, 0xae,
}

func TestXORAddrBytes_SelfInverse(t *testing.T) {
	id := NewTransactionID()
	for _, ip := range []net.IP{
		{192, 0, 2, 1},
		net.ParseIP("2001:db8:1234:5678:11:2233:4455:6677"),
	} {
		b := make([]byte, len(ip))
		copy(b, ip)
		xorAddrBytes(b, id)
		assert.NotEqual(t, []byte(ip), b)
		xorAddrBytes(b, id)
		assert.Equal(t, []byte(ip), b)
	}
}

func TestXORMappedAddress_KnownVector(t *testing.T) {
	// XOR-MAPPED-ADDRESS value from the RFC 5769 sample IPv4 response:
	// 192.0.2.1:32853 obfuscated with the sample transaction ID.
	v := []byte{0x00, 0x01, 0xa1, 0x47, 0xe1, 0x12, 0xa6, 0x43}
	a, err := parseAttribute(AttrXORMappedAddress, v, rfc5769ID)
	assert.NoError(t, err)
	addr := a.(XORMappedAddress)
	assert.Equal(t, "192.0.2.1", addr.IP.String())
	assert.Equal(t, 32853, addr.Port)

	out, err := addr.marshalValue(rfc5769ID)
	assert.NoError(t, err)
	assert.Equal(t, v, out)
}

func TestXORMappedAddress_RoundTripIPv6(t *testing.T) {
	id := NewTransactionID()
	in := XORMappedAddress{
		IP:   net.ParseIP("2001:db8:1234:5678:11:2233:4455:6677"),
		Port: 32853,
	}
	v, err := in.marshalValue(id)
	assert.NoError(t, err)
	assert.Len(t, v, 20)
	a, err := parseAttribute(AttrXORMappedAddress, v, id)
	assert.NoError(t, err)
	out := a.(XORMappedAddress)
	assert.True(t, out.IP.Equal(in.IP))
	assert.Equal(t, in.Port, out.Port)
}
