package caif

import (
	"encoding/binary"
	"fmt"
)

// EncodeLinkSelect serializes a link selector as the 4-byte option value
// expected by OptLinkSelect.
func EncodeLinkSelect(s LinkSelector) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(s))
	return b
}

// DecodeLinkSelect deserializes an OptLinkSelect value. Unlike protocol
// types, link selectors have no forward-compatible unknown range: the
// transport must act on the value deterministically, so anything outside the
// defined set is rejected.
func DecodeLinkSelect(b []byte) (LinkSelector, error) {
	if len(b) != 4 {
		return 0, newError(KindOption, RuleLengthMismatch,
			fmt.Sprintf("link-select value must be 4 bytes, got %d", len(b)))
	}
	s := LinkSelector(binary.LittleEndian.Uint32(b))
	switch s {
	case LinkHighBandwidth, LinkLowLatency:
		return s, nil
	default:
		return 0, newError(KindOption, RuleInvalidLinkSelector,
			fmt.Sprintf("link selector %d is not defined", uint32(s)))
	}
}

// ValidateOption checks a socket-option value against opt's contract.
//
// OptLinkSelect values must decode to a defined LinkSelector. Request and
// response parameters are opaque blobs bounded by MaxParamSize; their content
// is a contract between the caller and the transport, not this codec. The
// set/read timing rules (request before connect, response after) are enforced
// by the transport.
func ValidateOption(opt SocketOpt, value []byte) error {
	switch opt {
	case OptLinkSelect:
		_, err := DecodeLinkSelect(value)
		return err
	case OptReqParam, OptRspParam:
		if len(value) > MaxParamSize {
			return newError(KindOption, RuleParamTooLong,
				fmt.Sprintf("%s value is %d bytes, max %d", opt, len(value), MaxParamSize))
		}
		return nil
	default:
		return newError(KindOption, RuleUnknownOption,
			fmt.Sprintf("unknown CAIF socket option %d", int(opt)))
	}
}
