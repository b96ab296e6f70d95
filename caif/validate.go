package caif

import "fmt"

// ValidateStrict enforces the strict endpoint rules that Decode deliberately
// does not. Decode is permissive so that reserved symbol space (undocumented
// AtType values) round-trips untouched; callers that must act on an address
// deterministically run this before doing so.
//
// This is separate from Decode so callers can choose whether unknown endpoint
// values are treated as decode failures or as data.
func ValidateStrict(a Address) error {
	return ValidateRules(a, strictRules(a))
}

func strictRules(a Address) []Rule {
	switch a.(type) {
	case ATAddress:
		return []Rule{{ID: RuleATTypeNotPlain, Apply: func(a Address) error {
			at := a.(ATAddress)
			if at.Type != AtTypePlain {
				return newError(KindValidation, RuleATTypeNotPlain,
					fmt.Sprintf("AT endpoint type %d is not documented; only plain (%d) is",
						uint8(at.Type), uint8(AtTypePlain)))
			}
			return nil
		}}}
	case DatagramAddress:
		return []Rule{{ID: RuleAmbiguousDatagram, Apply: func(a Address) error {
			dgm := a.(DatagramAddress)
			if dgm.Kind != DatagramConnectionID && dgm.Kind != DatagramNSAPI {
				return newError(KindValidation, RuleAmbiguousDatagram,
					"datagram address has no active interpretation; set Kind")
			}
			return nil
		}}}
	default:
		// Util and RFM carry no strict-only constraints beyond what
		// Encode already enforces.
		return nil
	}
}
