package stun

const padding = 4

// nearestPaddedValueLength rounds l up to the next 32-bit boundary.
// Attribute values are padded to it on the wire; the pad bytes are not
// counted in the attribute length field.
func nearestPaddedValueLength(l int) int {
	n := padding * (l / padding)
	if n < l {
		n += padding
	}
	return n
}
