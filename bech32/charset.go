package bech32

// charset is the 32-character alphabet bech32 and BOLT 12's no-checksum
// envelope both map 5-bit words onto. Identical to the standard bech32
// charset, reproduced here because the upstream library keeps its own copy
// unexported.
const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// charToVal maps an ASCII charset character (lowercase) to its 5-bit value.
var charToVal = func() map[byte]byte {
	m := make(map[byte]byte, len(charset))
	for i := 0; i < len(charset); i++ {
		m[charset[i]] = byte(i)
	}
	return m
}()
