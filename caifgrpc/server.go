package caifgrpc

import (
	"context"

	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/modemlink/caif/caif"
)

// Server exposes the address codec over the Codec gRPC service.
//
// Datagram records decode under the connection-id interpretation; callers
// that mean NSAPI reinterpret locally with caif.WithDatagramKind, since the
// wire bytes carry no discriminant to send across.
type Server struct {
	UnimplementedCodecServer
}

func (s *Server) Encode(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	addr, err := caif.ParseAddress(in.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}
	rec, err := caif.EncodeRecord(addr)
	if err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.Bytes(rec), nil
}

func (s *Server) Decode(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	_ = ctx
	addr, err := caif.DecodeRecord(in.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.String(addr.String()), nil
}

func (s *Server) Validate(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.BoolValue, error) {
	_ = ctx
	addr, err := caif.DecodeRecord(in.GetValue())
	if err != nil {
		// Malformed records are request errors, not verdicts.
		return nil, toStatus(err)
	}
	if err := caif.ValidateStrict(addr); err != nil {
		return wrapperspb.Bool(false), nil
	}
	return wrapperspb.Bool(true), nil
}
