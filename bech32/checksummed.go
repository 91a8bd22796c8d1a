package bech32

import "github.com/btcsuite/btcd/btcutil/bech32"

// EncodeBech32M encodes hrp and data (already regrouped to 5-bit words is
// NOT required — data is raw 8-bit bytes) as a checksummed bech32m string.
// This companion codec is not used by any BOLT 12 message; it exists purely
// as a test utility for exercising the regrouping logic against a
// checksum-verified reference encoding.
func EncodeBech32M(hrp string, data []byte) (string, error) {
	words, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.EncodeM(hrp, words)
}

// DecodeBech32M decodes and checksum-verifies a bech32m string, returning
// the human-readable part and the underlying 8-bit data.
func DecodeBech32M(bechString string) (hrp string, data []byte, err error) {
	hrp, words, err := bech32.DecodeNoLimit(bechString)
	if err != nil {
		return "", nil, err
	}

	data, err = bech32.ConvertBits(words, 5, 8, false)
	if err != nil {
		return "", nil, err
	}

	return hrp, data, nil
}
