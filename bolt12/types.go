package bolt12

import "github.com/lightninglabs/bolt12/tlv"

// Offer-mirrored TLV types, shared by the offer itself and by the two
// signed messages that carry a copy of the offer's terms.
const (
	typeOfferChains         tlv.Type = 2
	typeOfferMetadata       tlv.Type = 4
	typeOfferCurrency       tlv.Type = 6
	typeOfferAmount         tlv.Type = 8
	typeOfferDescription    tlv.Type = 10
	typeOfferFeatures       tlv.Type = 12
	typeOfferAbsoluteExpiry tlv.Type = 14
	typeOfferPaths          tlv.Type = 16
	typeOfferIssuer         tlv.Type = 18
	typeOfferQuantityMax    tlv.Type = 20
	typeOfferIssuerID       tlv.Type = 22
)

// Invoice-request-mirrored TLV types, shared by the invoice request itself
// and by the invoice that answers it.
const (
	typeInvreqMetadata   tlv.Type = 0
	typeInvreqChain      tlv.Type = 80
	typeInvreqAmount     tlv.Type = 82
	typeInvreqFeatures   tlv.Type = 84
	typeInvreqQuantity   tlv.Type = 86
	typeInvreqPayerID    tlv.Type = 88
	typeInvreqPayerNote  tlv.Type = 89
	typeInvreqPaths      tlv.Type = 90
	typeInvreqBIP353Name tlv.Type = 91
)

// Invoice-specific TLV types.
const (
	typeInvoicePaths          tlv.Type = 160
	typeInvoiceBlindedPayInfo tlv.Type = 162
	typeInvoiceCreatedAt      tlv.Type = 164
	typeInvoiceRelativeExpiry tlv.Type = 166
	typeInvoicePaymentHash    tlv.Type = 168
	typeInvoiceAmount         tlv.Type = 170
	typeInvoiceFallbacks      tlv.Type = 172
	typeInvoiceFeatures       tlv.Type = 174
	typeInvoiceNodeID         tlv.Type = 176
)

// Invoice-error TLV types. The invoice error message has no offer- or
// invoice-request-mirrored fields: it is a bare, unsigned TLV stream.
const (
	typeInvoiceErrorErroneousField tlv.Type = 1
	typeInvoiceErrorSuggestedValue tlv.Type = 3
	typeInvoiceErrorMessage        tlv.Type = 5
)

// typeSignature is the reserved-range TLV carrying a message's BIP-340
// signature over its Merkle root. It is shared by invoice_request and
// invoice; offer and invoice_error are never signed.
const typeSignature tlv.Type = 240

// Bech32-style human-readable prefixes for the three enveloped message
// kinds. invoice_error has no envelope: it travels as a bare TLV blob over
// whatever transport carries it.
const (
	prefixOffer          = "lno"
	prefixInvoiceRequest = "lnr"
	prefixInvoice        = "lni"
)
