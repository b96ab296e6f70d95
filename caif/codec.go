package caif

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

// Wire layout constants. The sockaddr form mirrors struct sockaddr_caif:
// a 16-bit address family, two alignment bytes, then the 20-byte union area.
const (
	payloadOffset = 4
	unionSize     = 20
	sockaddrSize  = payloadOffset + unionSize
)

// DecodeOption adjusts decoding behavior.
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	dgmKind DatagramKind
}

// WithDatagramKind states which interpretation of the overlapping datagram
// union the caller means. The wire bytes cannot disambiguate; without this
// option, Decode uses the connection-id interpretation, whose 4-byte arm is
// a lossless superset of the NSAPI arm.
func WithDatagramKind(k DatagramKind) DecodeOption {
	return func(o *decodeOptions) { o.dgmKind = k }
}

func (o decodeOptions) withDefaults() decodeOptions {
	if o.dgmKind == 0 {
		o.dgmKind = DatagramConnectionID
	}
	return o
}

// Encode serializes the active variant of addr into its fixed-size payload.
// The result size depends only on the protocol type: AT=1, datagram=4,
// util=16, RFM=20 bytes.
//
// Pure function; never mutates addr.
func Encode(addr Address) ([]byte, error) {
	switch a := addr.(type) {
	case ATAddress:
		// Any AtType byte is legal here; unknown endpoint values are
		// reserved symbol space, not errors. ValidateStrict is the
		// strict path.
		return []byte{byte(a.Type)}, nil

	case DatagramAddress:
		b := make([]byte, 4)
		switch a.Kind {
		case DatagramConnectionID:
			binary.LittleEndian.PutUint32(b, a.ConnectionID)
		case DatagramNSAPI:
			b[0] = a.NSAPI
		default:
			return nil, newError(KindAddress, RuleAmbiguousDatagram,
				"datagram address has no active interpretation; set Kind")
		}
		return b, nil

	case UtilAddress:
		return encodeFixedString("service", a.Service)

	case RFMAddress:
		vol, err := encodeFixedString("volume", a.Volume)
		if err != nil {
			return nil, err
		}
		b := make([]byte, 4, 4+serviceNameSize)
		binary.LittleEndian.PutUint32(b, a.ConnectionID)
		return append(b, vol...), nil

	default:
		return nil, newError(KindInternal, "CAIF-INTERNAL-001",
			fmt.Sprintf("unhandled address variant %T", addr))
	}
}

// Decode deserializes payload as the variant selected by pt. The variant is
// determined solely by pt; payload content is never inspected to pick one.
//
// payload length must exactly equal pt's fixed payload size. String fields
// stop at the first NUL or at the field width, whichever comes first; input
// is not assumed to be NUL-terminated, so 16 non-NUL bytes legally decode to
// a 16-byte string.
func Decode(pt ProtocolType, payload []byte, opts ...DecodeOption) (Address, error) {
	want, err := pt.PayloadSize()
	if err != nil {
		return nil, err
	}
	if len(payload) != want {
		return nil, newError(KindAddress, RuleLengthMismatch,
			fmt.Sprintf("%s payload must be %d bytes, got %d", pt, want, len(payload)))
	}

	var o decodeOptions
	for _, opt := range opts {
		opt(&o)
	}
	o = o.withDefaults()

	switch pt {
	case ProtoAT:
		return ATAddress{Type: AtType(payload[0])}, nil

	case ProtoDatagram, ProtoDatagramLoop:
		a := DatagramAddress{Loop: pt == ProtoDatagramLoop, Kind: o.dgmKind}
		switch o.dgmKind {
		case DatagramConnectionID:
			a.ConnectionID = binary.LittleEndian.Uint32(payload)
		case DatagramNSAPI:
			a.NSAPI = payload[0]
		default:
			return nil, newError(KindAddress, RuleAmbiguousDatagram,
				fmt.Sprintf("unknown datagram interpretation %d", uint8(o.dgmKind)))
		}
		return a, nil

	case ProtoUtil:
		return UtilAddress{Service: decodeFixedString(payload)}, nil

	case ProtoRFM:
		return RFMAddress{
			ConnectionID: binary.LittleEndian.Uint32(payload[:4]),
			Volume:       decodeFixedString(payload[4:]),
		}, nil

	default:
		return nil, newError(KindAddress, RuleUnknownProtocolType,
			fmt.Sprintf("unknown protocol type %d", uint8(pt)))
	}
}

// EncodeSockaddr serializes addr into the full 24-byte sockaddr_caif layout:
// little-endian AF_CAIF at offset 0, two zero alignment bytes, then the
// payload at offset 4, zero-filled to the 20-byte union width.
func EncodeSockaddr(addr Address) ([]byte, error) {
	payload, err := Encode(addr)
	if err != nil {
		return nil, err
	}
	b := make([]byte, sockaddrSize)
	binary.LittleEndian.PutUint16(b, AddressFamily)
	copy(b[payloadOffset:], payload)
	return b, nil
}

// DecodeSockaddr deserializes a full 24-byte sockaddr_caif buffer as the
// variant selected by pt. The address family must equal AF_CAIF. Union bytes
// beyond pt's arm are ignored, matching kernel behavior.
func DecodeSockaddr(pt ProtocolType, b []byte, opts ...DecodeOption) (Address, error) {
	size, err := pt.PayloadSize()
	if err != nil {
		return nil, err
	}
	if len(b) != sockaddrSize {
		return nil, newError(KindAddress, RuleLengthMismatch,
			fmt.Sprintf("sockaddr must be %d bytes, got %d", sockaddrSize, len(b)))
	}
	if fam := binary.LittleEndian.Uint16(b[:2]); fam != AddressFamily {
		return nil, newError(KindAddress, RuleBadAddressFamily,
			fmt.Sprintf("address family %d, want %d (AF_CAIF)", fam, AddressFamily))
	}
	return Decode(pt, b[payloadOffset:payloadOffset+size], opts...)
}

// EncodeRecord serializes addr as a self-describing record: one protocol-type
// byte followed by the payload arm. The record is the exchange form used by
// tooling; the bare payload arms remain the wire contract.
func EncodeRecord(addr Address) ([]byte, error) {
	payload, err := Encode(addr)
	if err != nil {
		return nil, err
	}
	return append([]byte{byte(addr.Protocol())}, payload...), nil
}

// DecodeRecord is the inverse of EncodeRecord.
func DecodeRecord(b []byte, opts ...DecodeOption) (Address, error) {
	if len(b) == 0 {
		return nil, newError(KindAddress, RuleLengthMismatch, "empty address record")
	}
	return Decode(ProtocolType(b[0]), b[1:], opts...)
}

// encodeFixedString lays out s into the fixed 16-byte field named by field.
// Shorter strings are NUL-padded. Longer strings are rejected: the field has
// no length prefix, so truncating would silently change the name. Embedded
// NULs are rejected because the decoder treats NUL as end of string.
func encodeFixedString(field, s string) ([]byte, error) {
	if len(s) > serviceNameSize {
		return nil, newError(KindAddress, RuleFieldTooLong,
			fmt.Sprintf("%s %q is %d bytes, max %d", field, s, len(s), serviceNameSize))
	}
	if strings.IndexByte(s, 0) >= 0 {
		return nil, newError(KindAddress, RuleEmbeddedNUL,
			fmt.Sprintf("%s contains a NUL byte", field))
	}
	b := make([]byte, serviceNameSize)
	copy(b, s)
	return b, nil
}

// decodeFixedString reads a fixed 16-byte field: up to the first NUL, or all
// 16 bytes when none is present. Adversarial all-non-NUL input is legal and
// yields a 16-byte string.
func decodeFixedString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}
