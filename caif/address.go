package caif

// Address is a CAIF channel address: one variant per protocol type. Exactly
// one variant is meaningful per channel, selected by the protocol type alone;
// the payload bytes never identify the variant.
//
// Address is a pure value type. It is created by the caller, handed to the
// (out-of-scope) connect path, and has no lifecycle beyond that.
type Address interface {
	// Protocol returns the protocol type that selects this variant.
	Protocol() ProtocolType

	// String renders the textual address form; ParseAddress inverts it.
	String() string

	sealed()
}

// ATAddress connects to an AT service endpoint.
type ATAddress struct {
	Type AtType
}

func (ATAddress) Protocol() ProtocolType { return ProtoAT }
func (ATAddress) sealed()                {}

// UtilAddress connects to a named utility (psock) service.
//
// Service occupies a fixed 16-byte field on the wire: NUL-padded when
// shorter, rejected when longer. There is no length prefix, so truncation
// would silently change the service name.
type UtilAddress struct {
	Service string
}

func (UtilAddress) Protocol() ProtocolType { return ProtoUtil }
func (UtilAddress) sealed()                {}

// DatagramKind names the active interpretation of the datagram address
// payload. The 4-byte wire field is a true overlapping union with no
// secondary discriminant, so the interpretation is caller state, never
// derived from the bytes.
type DatagramKind uint8

const (
	// DatagramConnectionID interprets the payload as a 32-bit connection id.
	DatagramConnectionID DatagramKind = 1
	// DatagramNSAPI interprets the payload as the 8-bit NSAPI of the
	// PDP-context.
	DatagramNSAPI DatagramKind = 2
)

func (k DatagramKind) String() string {
	switch k {
	case DatagramConnectionID:
		return "connid"
	case DatagramNSAPI:
		return "nsapi"
	default:
		return "unset"
	}
}

// DatagramAddress connects a datagram channel. Loop selects the loopback
// protocol type, which shares the datagram payload shape and exists for
// testing.
//
// Kind must be set before encoding; only the field named by Kind is
// meaningful, the other is ignored and zero-filled on the wire.
type DatagramAddress struct {
	Loop bool

	Kind         DatagramKind
	ConnectionID uint32
	NSAPI        uint8
}

func (a DatagramAddress) Protocol() ProtocolType {
	if a.Loop {
		return ProtoDatagramLoop
	}
	return ProtoDatagram
}
func (DatagramAddress) sealed() {}

// DatagramConnID returns a datagram address carrying a connection id.
func DatagramConnID(id uint32) DatagramAddress {
	return DatagramAddress{Kind: DatagramConnectionID, ConnectionID: id}
}

// DatagramPDP returns a datagram address carrying an NSAPI.
func DatagramPDP(nsapi uint8) DatagramAddress {
	return DatagramAddress{Kind: DatagramNSAPI, NSAPI: nsapi}
}

// RFMAddress mounts a remote storage volume over a Remote File Manager
// channel. Volume follows the same fixed 16-byte rule as UtilAddress.Service.
type RFMAddress struct {
	ConnectionID uint32
	Volume       string
}

func (RFMAddress) Protocol() ProtocolType { return ProtoRFM }
func (RFMAddress) sealed()                {}
