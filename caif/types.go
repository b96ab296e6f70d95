// Package caif implements the address and socket-option codec for the CAIF
// (CDMA Application Interface Framework) channel-multiplexing protocol.
//
// CAIF multiplexes logical channels between an application processor and a
// modem over one physical link. This package owns the value layer only: the
// sockaddr-equivalent channel address, its fixed wire layout, and the three
// CAIF socket-option values. Socket I/O, channel multiplexing, and the
// link-layer transport are external collaborators.
//
// All operations are pure and stateless; values are safe to share across
// goroutines.
package caif

import "fmt"

// AddressFamily is AF_CAIF, the address-family discriminant carried in the
// first field of the kernel sockaddr layout.
const AddressFamily = 37

// ProtocolType selects the CAIF channel type, i.e. the service to connect to
// on the modem. Wire values are pinned; they cross the kernel boundary.
type ProtocolType uint8

const (
	ProtoAT           ProtocolType = 0 // classic AT channel
	ProtoDatagram     ProtocolType = 1 // datagram channel
	ProtoDatagramLoop ProtocolType = 2 // datagram loopback, used for testing
	ProtoUtil         ProtocolType = 3 // utility (psock) channel
	ProtoRFM          ProtocolType = 4 // remote file manager

	// protoMax bounds the valid range (exclusive).
	protoMax ProtocolType = 5
)

// Valid reports whether pt is a defined protocol type.
func (pt ProtocolType) Valid() bool { return pt < protoMax }

func (pt ProtocolType) String() string {
	switch pt {
	case ProtoAT:
		return "at"
	case ProtoDatagram:
		return "dgm"
	case ProtoDatagramLoop:
		return "dgmloop"
	case ProtoUtil:
		return "util"
	case ProtoRFM:
		return "rfm"
	default:
		return fmt.Sprintf("proto(%d)", uint8(pt))
	}
}

// PayloadSize returns the fixed wire size of the address payload for pt.
// The size depends only on the protocol type, never on payload content.
func (pt ProtocolType) PayloadSize() (int, error) {
	switch pt {
	case ProtoAT:
		return 1, nil
	case ProtoDatagram, ProtoDatagramLoop:
		return 4, nil
	case ProtoUtil:
		return serviceNameSize, nil
	case ProtoRFM:
		return 4 + serviceNameSize, nil
	default:
		return 0, newError(KindAddress, RuleUnknownProtocolType,
			fmt.Sprintf("unknown protocol type %d", uint8(pt)))
	}
}

// serviceNameSize is the fixed width of the Util service and RFM volume
// fields: NUL-padded on encode, never NUL-terminated by contract on decode.
const serviceNameSize = 16

// AtType selects the AT service endpoint. Plain is the only documented
// value; other values are reserved symbol space and round-trip untouched.
// Use ValidateStrict to reject them.
type AtType uint8

// AtTypePlain connects to a plain vanilla AT channel.
const AtTypePlain AtType = 2

// Priority is a CAIF channel scheduling priority. Any value in
// [PriorityMin, PriorityMax] is legal; the named points are recommendations.
// Higher numeric value means higher scheduling priority. The codec passes
// priorities through opaquely; only Validate enforces the range.
type Priority uint8

const (
	PriorityMin    Priority = 0x01
	PriorityLow    Priority = 0x04
	PriorityNormal Priority = 0x0F
	PriorityHigh   Priority = 0x14
	PriorityMax    Priority = 0x1F
)

// Validate rejects priorities outside the closed interval
// [PriorityMin, PriorityMax].
func (p Priority) Validate() error {
	if p < PriorityMin || p > PriorityMax {
		return newError(KindValidation, RulePriorityOutOfRange,
			fmt.Sprintf("priority 0x%02x outside [0x%02x, 0x%02x]",
				uint8(p), uint8(PriorityMin), uint8(PriorityMax)))
	}
	return nil
}

// LinkSelector chooses between CAIF link layers when several physical
// transports are available. Advisory metadata; enforcement is the
// transport's business.
type LinkSelector uint32

const (
	LinkHighBandwidth LinkSelector = 0
	LinkLowLatency    LinkSelector = 1
)

func (s LinkSelector) String() string {
	switch s {
	case LinkHighBandwidth:
		return "high-bandwidth"
	case LinkLowLatency:
		return "low-latency"
	default:
		return fmt.Sprintf("linkselector(%d)", uint32(s))
	}
}

// SocketOpt identifies a CAIF socket option. Numeric values avoid the
// generic socket-option namespace owned by the transport layer.
type SocketOpt int

const (
	// OptLinkSelect carries a 4-byte LinkSelector value. Set before connect.
	OptLinkSelect SocketOpt = 127
	// OptReqParam sets the request parameters for a utility channel,
	// at most MaxParamSize bytes. Must be set before connecting.
	OptReqParam SocketOpt = 128
	// OptRspParam holds the response parameters for a utility channel,
	// at most MaxParamSize bytes. Readable after a successful connect;
	// read-only for the local caller.
	OptRspParam SocketOpt = 129
)

// MaxParamSize bounds OptReqParam/OptRspParam values.
const MaxParamSize = 256

func (o SocketOpt) String() string {
	switch o {
	case OptLinkSelect:
		return "link-select"
	case OptReqParam:
		return "req-param"
	case OptRspParam:
		return "rsp-param"
	default:
		return fmt.Sprintf("sockopt(%d)", int(o))
	}
}
