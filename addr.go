package stun

import (
	"net"
	"strconv"

	"github.com/pkg/errors"
)

// Address families.
const (
	familyIPv4 uint16 = 0x01
	familyIPv6 uint16 = 0x02
)

// MappedAddress represents MAPPED-ADDRESS attribute.
//
// RFC 5389 Section 15.1.
type MappedAddress struct {
	IP   net.IP
	Port int
}

// Type returns AttrMappedAddress.
func (MappedAddress) Type() AttrType { return AttrMappedAddress }

func (a MappedAddress) String() string {
	return net.JoinHostPort(a.IP.String(), strconv.Itoa(a.Port))
}

func (a MappedAddress) marshalValue(id [TransactionIDSize]byte) ([]byte, error) {
	return marshalAddrValue(AttrMappedAddress, a.IP, a.Port, false, id)
}

// AlternateServer represents ALTERNATE-SERVER attribute.
//
// RFC 5389 Section 15.11.
type AlternateServer struct {
	IP   net.IP
	Port int
}

// Type returns AttrAlternateServer.
func (AlternateServer) Type() AttrType { return AttrAlternateServer }

func (a AlternateServer) String() string {
	return net.JoinHostPort(a.IP.String(), strconv.Itoa(a.Port))
}

func (a AlternateServer) marshalValue(id [TransactionIDSize]byte) ([]byte, error) {
	return marshalAddrValue(AttrAlternateServer, a.IP, a.Port, false, id)
}

// marshalAddrValue renders the shared address value layout: one zero
// byte, one family byte, 16-bit port, then the 4 or 16 address bytes.
// When xored is set, port and address are obfuscated with the magic
// cookie and transaction ID before hitting the wire.
func marshalAddrValue(t AttrType, ip net.IP, port int, xored bool, id [TransactionIDSize]byte) ([]byte, error) {
	family := familyIPv4
	if ip4 := ip.To4(); ip4 != nil {
		ip = ip4
	} else if len(ip) == net.IPv6len {
		family = familyIPv6
	} else {
		return nil, errors.Wrapf(ErrUnsupportedFamily, "%s: IP length %d", t, len(ip))
	}
	v := make([]byte, attrAddrHeaderSize+len(ip))
	bin.PutUint16(v[0:2], family)
	p := port
	if xored {
		p ^= magicCookie >> 16
	}
	bin.PutUint16(v[2:4], uint16(p))
	copy(v[attrAddrHeaderSize:], ip)
	if xored {
		xorAddrBytes(v[attrAddrHeaderSize:], id)
	}
	return v, nil
}

const attrAddrHeaderSize = 4 // zero byte, family byte, port

// parseAddrValue is the inverse of marshalAddrValue. The returned IP is
// freshly allocated and never aliases v.
func parseAddrValue(t AttrType, v []byte, xored bool, id [TransactionIDSize]byte) (net.IP, int, error) {
	if len(v) < attrAddrHeaderSize {
		return nil, 0, wrapAttrLength(t, attrAddrHeaderSize, len(v))
	}
	family := bin.Uint16(v[0:2])
	ipLen := net.IPv4len
	switch family {
	case familyIPv4:
	case familyIPv6:
		ipLen = net.IPv6len
	default:
		return nil, 0, errors.Wrapf(ErrInvalidAttributeEncoding, "%s: bad address family %d", t, family)
	}
	if len(v) != attrAddrHeaderSize+ipLen {
		return nil, 0, wrapAttrLength(t, attrAddrHeaderSize+ipLen, len(v))
	}
	port := int(bin.Uint16(v[2:4]))
	ip := make(net.IP, ipLen)
	copy(ip, v[attrAddrHeaderSize:])
	if xored {
		port ^= magicCookie >> 16
		xorAddrBytes(ip, id)
	}
	return ip, port, nil
}
