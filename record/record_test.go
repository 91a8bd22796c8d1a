package record_test

import (
	"testing"

	"github.com/lightninglabs/bolt12/record"
	"github.com/stretchr/testify/require"
)

func TestBlindedPathRoundTrip(t *testing.T) {
	paths := []*record.BlindedPath{
		{
			BlindingKey: [33]byte{0x02, 0x01},
			Hops: []record.BlindedHop{
				{NodeID: [33]byte{0x02, 0xaa}, Payload: []byte{0x01, 0x02}},
				{NodeID: [33]byte{0x02, 0xbb}, Payload: []byte{}},
			},
		},
		{
			BlindingKey: [33]byte{0x02, 0x02},
			Hops:        nil,
		},
	}

	encoded, err := record.EncodeBlindedPaths(paths)
	require.NoError(t, err)

	decoded, err := record.DecodeBlindedPaths(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	require.Equal(t, paths[0].BlindingKey, decoded[0].BlindingKey)
	require.Len(t, decoded[0].Hops, 2)
	require.Equal(t, paths[0].Hops[0].Payload, decoded[0].Hops[0].Payload)
	require.Empty(t, decoded[1].Hops)
}

func TestBlindedPathTruncated(t *testing.T) {
	_, err := record.DecodeBlindedPaths([]byte{0x02, 0x01, 0x02})
	require.Error(t, err)
}

func TestBlindedPayInfoRoundTrip(t *testing.T) {
	infos := []*record.BlindedPayInfo{
		{
			FeeBaseMsat:               1000,
			FeeProportionalMillionths: 100,
			CltvExpiryDelta:           144,
			HtlcMinimumMsat:           1,
			HtlcMaximumMsat:           1_000_000,
			Features:                  []byte{0x01},
		},
		{},
	}

	encoded, err := record.EncodeBlindedPayInfos(infos)
	require.NoError(t, err)

	decoded, err := record.DecodeBlindedPayInfos(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	require.Equal(t, infos[0].FeeBaseMsat, decoded[0].FeeBaseMsat)
	require.Equal(t, infos[0].HtlcMaximumMsat, decoded[0].HtlcMaximumMsat)
	require.Equal(t, infos[0].Features, decoded[0].Features)
}

func TestFallbackAddressRoundTrip(t *testing.T) {
	addrs := []*record.FallbackAddress{
		{WitnessVersion: 0, Address: []byte{0xde, 0xad}},
		{WitnessVersion: 1, Address: []byte{}},
	}

	encoded, err := record.EncodeFallbackAddresses(addrs)
	require.NoError(t, err)

	decoded, err := record.DecodeFallbackAddresses(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	require.Equal(t, addrs[0].Address, decoded[0].Address)
	require.Equal(t, uint8(1), decoded[1].WitnessVersion)
}

func TestBIP353NameRoundTrip(t *testing.T) {
	name := &record.BIP353Name{Name: "alice", Domain: "example.com"}

	encoded, err := record.EncodeBIP353Name(name)
	require.NoError(t, err)

	decoded, err := record.DecodeBIP353Name(encoded)
	require.NoError(t, err)
	require.Equal(t, name, decoded)
}

func TestBIP353NameDisallowedCharacter(t *testing.T) {
	name := &record.BIP353Name{Name: "al ice", Domain: "example.com"}
	_, err := record.EncodeBIP353Name(name)
	require.Error(t, err)

	var disallowed record.ErrDisallowedCharacter
	require.ErrorAs(t, err, &disallowed)
}

func TestBIP353NameTooLong(t *testing.T) {
	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}
	name := &record.BIP353Name{Name: string(long), Domain: "example.com"}
	_, err := record.EncodeBIP353Name(name)
	require.ErrorIs(t, err, record.ErrNameComponentTooLong)
}

func TestBIP353NameRejectsTrailingBytes(t *testing.T) {
	name := &record.BIP353Name{Name: "alice", Domain: "example.com"}
	encoded, err := record.EncodeBIP353Name(name)
	require.NoError(t, err)

	_, err = record.DecodeBIP353Name(append(encoded, 0xff))
	require.ErrorIs(t, err, record.ErrTrailingBytes)
}
