package stun

import (
	"testing"
)

func TestFingerprintValue(t *testing.T) {
	// CRC of the empty prefix still gets XOR'ed with the constant.
	if got := fingerprintValue(nil); got != fingerprintXORValue {
		t.Errorf("fingerprintValue(nil) = 0x%x, expected 0x%x", got, fingerprintXORValue)
	}
}

func TestFingerprint_EncodeVerify(t *testing.T) {
	m := NewRequest(NewTransactionID())
	m.Add(Software("software"))
	m.AddFingerprint()
	raw, err := m.Encode(nil)
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := Decode(raw, nil)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.FingerprintCheck != VerifyPassed {
		t.Errorf("FingerprintCheck = %s, expected passed", decoded.FingerprintCheck)
	}

	t.Run("Corrupted", func(t *testing.T) {
		corrupted := make([]byte, len(raw))
		copy(corrupted, raw)
		corrupted[messageHeaderSize+5] ^= 0x01 // inside SOFTWARE value

		decoded, err := Decode(corrupted, nil)
		if err != nil {
			t.Fatal(err)
		}
		if decoded.FingerprintCheck != VerifyFailed {
			t.Errorf("FingerprintCheck = %s, expected failed", decoded.FingerprintCheck)
		}
		if err := decoded.Verify(); err != ErrFingerprintMismatch {
			t.Errorf("Verify() = %v, expected ErrFingerprintMismatch", err)
		}
	})
}

func TestFingerprint_Absent(t *testing.T) {
	m := NewRequest(NewTransactionID())
	m.Add(Software("software"))
	raw, err := m.Encode(nil)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := Decode(raw, nil)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.FingerprintCheck != VerifyAbsent {
		t.Errorf("FingerprintCheck = %s, expected absent", decoded.FingerprintCheck)
	}
}
