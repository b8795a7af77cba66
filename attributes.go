package stun

import "fmt"

// AttrType is attribute type.
type AttrType uint16

// Attribute types defined by RFC 5389 Section 18.2 and the ICE
// extensions from RFC 8445 Section 7.1.
const (
	AttrMappedAddress     AttrType = 0x0001 // MAPPED-ADDRESS
	AttrUsername          AttrType = 0x0006 // USERNAME
	AttrMessageIntegrity  AttrType = 0x0008 // MESSAGE-INTEGRITY
	AttrErrorCode         AttrType = 0x0009 // ERROR-CODE
	AttrUnknownAttributes AttrType = 0x000A // UNKNOWN-ATTRIBUTES
	AttrRealm             AttrType = 0x0014 // REALM
	AttrNonce             AttrType = 0x0015 // NONCE
	AttrXORMappedAddress  AttrType = 0x0020 // XOR-MAPPED-ADDRESS
	AttrPriority          AttrType = 0x0024 // PRIORITY
	AttrUseCandidate      AttrType = 0x0025 // USE-CANDIDATE
	AttrSoftware          AttrType = 0x8022 // SOFTWARE
	AttrAlternateServer   AttrType = 0x8023 // ALTERNATE-SERVER
	AttrFingerprint       AttrType = 0x8028 // FINGERPRINT
	AttrICEControlled     AttrType = 0x8029 // ICE-CONTROLLED
	AttrICEControlling    AttrType = 0x802A // ICE-CONTROLLING
)

// Required returns true if type is comprehension-required per
// RFC 5389 Section 15: an agent that does not understand such an
// attribute cannot process the message.
func (t AttrType) Required() bool {
	return t < 0x8000
}

// Optional returns true if type is comprehension-optional.
func (t AttrType) Optional() bool {
	return !t.Required()
}

// Known returns true if the codec decodes this type into a dedicated
// attribute variant instead of preserving it as RawAttribute.
func (t AttrType) Known() bool {
	_, ok := attrNames[t]
	return ok
}

var attrNames = map[AttrType]string{
	AttrMappedAddress:     "MAPPED-ADDRESS",
	AttrUsername:          "USERNAME",
	AttrMessageIntegrity:  "MESSAGE-INTEGRITY",
	AttrErrorCode:         "ERROR-CODE",
	AttrUnknownAttributes: "UNKNOWN-ATTRIBUTES",
	AttrRealm:             "REALM",
	AttrNonce:             "NONCE",
	AttrXORMappedAddress:  "XOR-MAPPED-ADDRESS",
	AttrPriority:          "PRIORITY",
	AttrUseCandidate:      "USE-CANDIDATE",
	AttrSoftware:          "SOFTWARE",
	AttrAlternateServer:   "ALTERNATE-SERVER",
	AttrFingerprint:       "FINGERPRINT",
	AttrICEControlled:     "ICE-CONTROLLED",
	AttrICEControlling:    "ICE-CONTROLLING",
}

func (t AttrType) String() string {
	s, ok := attrNames[t]
	if !ok {
		return fmt.Sprintf("0x%x", uint16(t))
	}
	return s
}

// Attribute is a decoded STUN attribute value. The set of
// implementations is closed: every known type code maps to exactly one
// variant, and everything else decodes to RawAttribute. Adding a new
// attribute type means adding one variant plus its branch in
// parseAttribute.
type Attribute interface {
	Type() AttrType

	// marshalValue renders the value bytes, before TLV framing and
	// padding. The transaction ID is needed by the XOR address
	// transform only.
	marshalValue(id [TransactionIDSize]byte) ([]byte, error)
}

// RawAttribute preserves an attribute whose type code the codec does not
// recognize. Unknown attributes are never dropped so that a server can
// report them via UNKNOWN-ATTRIBUTES; see
// Message.UnknownComprehensionRequired.
type RawAttribute struct {
	AttrType AttrType
	Value    []byte
}

// Type returns the preserved type code.
func (a RawAttribute) Type() AttrType { return a.AttrType }

func (a RawAttribute) marshalValue([TransactionIDSize]byte) ([]byte, error) {
	return a.Value, nil
}

func (a RawAttribute) String() string {
	return fmt.Sprintf("%s: 0x%x", a.AttrType, a.Value)
}

// parseAttribute dispatches a TLV to the variant for its type code. The
// value slice is owned by the caller's buffer; variants copy what they
// keep.
func parseAttribute(t AttrType, v []byte, id [TransactionIDSize]byte) (Attribute, error) {
	switch t {
	case AttrMappedAddress:
		ip, port, err := parseAddrValue(t, v, false, id)
		if err != nil {
			return nil, err
		}
		return MappedAddress{IP: ip, Port: port}, nil
	case AttrAlternateServer:
		ip, port, err := parseAddrValue(t, v, false, id)
		if err != nil {
			return nil, err
		}
		return AlternateServer{IP: ip, Port: port}, nil
	case AttrXORMappedAddress:
		ip, port, err := parseAddrValue(t, v, true, id)
		if err != nil {
			return nil, err
		}
		return XORMappedAddress{IP: ip, Port: port}, nil
	case AttrUsername:
		s, err := parseTextValue(t, v)
		return Username(s), err
	case AttrRealm:
		s, err := parseTextValue(t, v)
		return Realm(s), err
	case AttrSoftware:
		s, err := parseTextValue(t, v)
		return Software(s), err
	case AttrNonce:
		s, err := parseTextValue(t, v)
		return Nonce(s), err
	case AttrErrorCode:
		return parseErrorCode(v)
	case AttrUnknownAttributes:
		return parseUnknownAttributes(v)
	case AttrPriority:
		n, err := parseUint32Value(t, v)
		return Priority(n), err
	case AttrUseCandidate:
		if len(v) != 0 {
			return nil, wrapAttrLength(t, 0, len(v))
		}
		return UseCandidate{}, nil
	case AttrICEControlled:
		n, err := parseUint64Value(t, v)
		return ICEControlled(n), err
	case AttrICEControlling:
		n, err := parseUint64Value(t, v)
		return ICEControlling(n), err
	case AttrMessageIntegrity:
		if len(v) != messageIntegritySize {
			return nil, wrapAttrLength(t, messageIntegritySize, len(v))
		}
		return MessageIntegrity(cloneBytes(v)), nil
	case AttrFingerprint:
		if len(v) != fingerprintSize {
			return nil, wrapAttrLength(t, fingerprintSize, len(v))
		}
		return Fingerprint(bin.Uint32(v)), nil
	default:
		return RawAttribute{AttrType: t, Value: cloneBytes(v)}, nil
	}
}

func cloneBytes(v []byte) []byte {
	if v == nil {
		return nil
	}
	b := make([]byte, len(v))
	copy(b, v)
	return b
}
