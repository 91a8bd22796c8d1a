package bolt12

import (
	"bytes"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/lightninglabs/bolt12/bech32"
	"github.com/lightninglabs/bolt12/tlv"
)

// Offer describes the terms a merchant is willing to sell under. It is
// unsigned: anyone can construct or relay one, and its authenticity is
// established out of band (e.g. by the channel it was received over), not
// by a cryptographic signature carried in the message itself.
type Offer struct {
	OfferFields

	// UnknownOddFields preserves any odd TLVs this decoder did not
	// recognize, so a re-encode round-trips them.
	UnknownOddFields []tlv.Entry
}

// SupportsChain reports whether the offer is valid on the given chain. An
// offer with no chains TLV is valid only on Bitcoin mainnet, per the
// implicit default; an offer listing chains is valid only on those.
func (o *Offer) SupportsChain(chain chainhash.Hash) bool {
	chains, ok := o.Chains.UnwrapOr(nil), o.Chains.IsSome()
	if !ok {
		return chain == *chaincfg.MainNetParams.GenesisHash
	}
	for _, c := range chains {
		if c == chain {
			return true
		}
	}
	return false
}

// IsExpired reports whether the offer's absolute_expiry has passed as of
// now. An offer with no absolute_expiry never expires.
func (o *Offer) IsExpired(now time.Time) bool {
	expiry, ok := o.AbsoluteExpiry.UnwrapOr(0), o.AbsoluteExpiry.IsSome()
	if !ok {
		return false
	}
	return now.Unix() >= int64(expiry)
}

// EncodeOffer validates and serializes o into its "lno"-prefixed textual
// envelope.
func EncodeOffer(o *Offer) (string, error) {
	if err := o.validate(); err != nil {
		return "", err
	}

	entries, err := o.appendEntries(nil)
	if err != nil {
		return "", err
	}
	entries = append(entries, o.UnknownOddFields...)
	tlv.SortEntries(entries)

	data, err := tlv.EncodeStreamToBytes(entries)
	if err != nil {
		return "", err
	}

	return bech32.EncodeNoChecksum(prefixOffer, data)
}

// DecodeOffer parses and validates the "lno"-prefixed textual envelope s.
func DecodeOffer(s string) (*Offer, error) {
	prefix, data, err := bech32.DecodeNoChecksum(s)
	if err != nil {
		return nil, err
	}
	if prefix != prefixOffer {
		return nil, ErrWrongPrefix
	}

	entries, err := tlv.DecodeStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var o Offer
	unknownOdd, _, err := decodeKnownEntries(entries, o.handlers(), nil)
	if err != nil {
		return nil, err
	}
	o.UnknownOddFields = unknownOdd
	if len(unknownOdd) > 0 {
		log.Debugf("offer: preserved %d unknown odd TLV(s)", len(unknownOdd))
	}

	if err := o.validate(); err != nil {
		return nil, err
	}

	return &o, nil
}
