package bolt12

import "github.com/btcsuite/btclog/v2"

// log is the package-level subsystem logger, following the convention used
// throughout lnd's leaf packages: a disabled logger by default, swapped out
// by an embedding application via UseLogger. Nothing in this package's
// correctness depends on logging — encode/decode are pure functions — the
// logger exists purely so integrators can observe, e.g., how many unknown
// odd TLVs DecodeOffer preserved for a round trip.
var log btclog.Logger = btclog.Disabled

// UseLogger sets the package-level logger used by the bolt12 package.
func UseLogger(logger btclog.Logger) {
	log = logger
}
