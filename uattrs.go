package stun

import "fmt"

// UnknownAttributes represents UNKNOWN-ATTRIBUTES attribute: the list
// of 16-bit type codes a server did not understand, sent in a 420 error
// response.
//
// RFC 5389 Section 15.9.
type UnknownAttributes struct {
	Types []AttrType
}

// Type returns AttrUnknownAttributes.
func (UnknownAttributes) Type() AttrType { return AttrUnknownAttributes }

func (a UnknownAttributes) String() string {
	return fmt.Sprintf("unknown attributes: %v", a.Types)
}

func (a UnknownAttributes) marshalValue([TransactionIDSize]byte) ([]byte, error) {
	v := make([]byte, len(a.Types)*2)
	for i, t := range a.Types {
		bin.PutUint16(v[i*2:], uint16(t))
	}
	return v, nil
}

func parseUnknownAttributes(v []byte) (Attribute, error) {
	if len(v)%2 != 0 {
		return nil, wrapAttrLength(AttrUnknownAttributes, len(v)+1, len(v))
	}
	ts := make([]AttrType, 0, len(v)/2)
	for i := 0; i < len(v); i += 2 {
		ts = append(ts, AttrType(bin.Uint16(v[i:])))
	}
	return UnknownAttributes{Types: ts}, nil
}
