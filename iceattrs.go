package stun

// ICE extension attributes, RFC 8445 Section 7.1.

// Priority represents PRIORITY attribute: the candidate priority an ICE
// agent assigns to the transport address the request arrived on.
type Priority uint32

// Type returns AttrPriority.
func (Priority) Type() AttrType { return AttrPriority }

func (p Priority) marshalValue([TransactionIDSize]byte) ([]byte, error) {
	v := make([]byte, 4)
	bin.PutUint32(v, uint32(p))
	return v, nil
}

// UseCandidate represents the zero-length USE-CANDIDATE attribute set
// by a controlling ICE agent to nominate a candidate pair.
type UseCandidate struct{}

// Type returns AttrUseCandidate.
func (UseCandidate) Type() AttrType { return AttrUseCandidate }

func (UseCandidate) marshalValue([TransactionIDSize]byte) ([]byte, error) {
	return nil, nil
}

// ICEControlled represents ICE-CONTROLLED attribute: the 64-bit role
// tiebreaker of an agent in the controlled role.
type ICEControlled uint64

// Type returns AttrICEControlled.
func (ICEControlled) Type() AttrType { return AttrICEControlled }

func (c ICEControlled) marshalValue([TransactionIDSize]byte) ([]byte, error) {
	v := make([]byte, 8)
	bin.PutUint64(v, uint64(c))
	return v, nil
}

// ICEControlling represents ICE-CONTROLLING attribute: the 64-bit role
// tiebreaker of an agent in the controlling role.
type ICEControlling uint64

// Type returns AttrICEControlling.
func (ICEControlling) Type() AttrType { return AttrICEControlling }

func (c ICEControlling) marshalValue([TransactionIDSize]byte) ([]byte, error) {
	v := make([]byte, 8)
	bin.PutUint64(v, uint64(c))
	return v, nil
}
