package caif

import (
	"fmt"
	"strconv"
	"strings"
)

// Textual address form, the human-facing counterpart of the wire arms:
//
//	at:plain            at:<0..255>
//	util:<service>
//	dgm:connid:<u32>    dgm:nsapi:<0..255>      (dgmloop: for loopback)
//	rfm:<connid>:<volume>
//
// String and ParseAddress are exact inverses for every encodable address.

func (a ATAddress) String() string {
	if a.Type == AtTypePlain {
		return "at:plain"
	}
	return fmt.Sprintf("at:%d", uint8(a.Type))
}

func (a UtilAddress) String() string {
	return "util:" + a.Service
}

func (a DatagramAddress) String() string {
	scheme := "dgm"
	if a.Loop {
		scheme = "dgmloop"
	}
	switch a.Kind {
	case DatagramConnectionID:
		return fmt.Sprintf("%s:connid:%d", scheme, a.ConnectionID)
	case DatagramNSAPI:
		return fmt.Sprintf("%s:nsapi:%d", scheme, a.NSAPI)
	default:
		return scheme + ":unset"
	}
}

func (a RFMAddress) String() string {
	return fmt.Sprintf("rfm:%d:%s", a.ConnectionID, a.Volume)
}

// ParseAddress parses the textual address form.
func ParseAddress(s string) (Address, error) {
	scheme, rest, ok := strings.Cut(s, ":")
	if !ok {
		return nil, newError(KindText, RuleTextSyntax,
			fmt.Sprintf("address %q has no scheme", s))
	}

	switch scheme {
	case "at":
		if rest == "plain" {
			return ATAddress{Type: AtTypePlain}, nil
		}
		n, err := strconv.ParseUint(rest, 10, 8)
		if err != nil {
			return nil, wrapError(KindText, RuleTextNumber,
				fmt.Sprintf("AT endpoint type %q is not a byte value", rest), err)
		}
		return ATAddress{Type: AtType(n)}, nil

	case "util":
		// The service name may itself contain ':'; everything after the
		// scheme belongs to it.
		return UtilAddress{Service: rest}, nil

	case "dgm", "dgmloop":
		a, err := parseDatagram(rest)
		if err != nil {
			return nil, err
		}
		a.Loop = scheme == "dgmloop"
		return a, nil

	case "rfm":
		id, vol, ok := strings.Cut(rest, ":")
		if !ok {
			return nil, newError(KindText, RuleTextSyntax,
				fmt.Sprintf("rfm address %q needs <connid>:<volume>", s))
		}
		n, err := strconv.ParseUint(id, 10, 32)
		if err != nil {
			return nil, wrapError(KindText, RuleTextNumber,
				fmt.Sprintf("rfm connection id %q is not a u32", id), err)
		}
		return RFMAddress{ConnectionID: uint32(n), Volume: vol}, nil

	default:
		return nil, newError(KindText, RuleTextSyntax,
			fmt.Sprintf("unknown address scheme %q", scheme))
	}
}

func parseDatagram(rest string) (DatagramAddress, error) {
	kind, val, ok := strings.Cut(rest, ":")
	if !ok {
		return DatagramAddress{}, newError(KindText, RuleTextSyntax,
			fmt.Sprintf("datagram address needs connid:<n> or nsapi:<n>, got %q", rest))
	}
	switch kind {
	case "connid":
		n, err := strconv.ParseUint(val, 10, 32)
		if err != nil {
			return DatagramAddress{}, wrapError(KindText, RuleTextNumber,
				fmt.Sprintf("connection id %q is not a u32", val), err)
		}
		return DatagramConnID(uint32(n)), nil
	case "nsapi":
		n, err := strconv.ParseUint(val, 10, 8)
		if err != nil {
			return DatagramAddress{}, wrapError(KindText, RuleTextNumber,
				fmt.Sprintf("nsapi %q is not a byte value", val), err)
		}
		return DatagramPDP(uint8(n)), nil
	default:
		return DatagramAddress{}, newError(KindText, RuleTextSyntax,
			fmt.Sprintf("unknown datagram interpretation %q", kind))
	}
}
