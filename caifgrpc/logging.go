package caifgrpc

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// UnaryLoggingInterceptor logs one line per RPC: method, outcome, duration.
// Payloads are never logged; request parameters can carry opaque caller data.
func UnaryLoggingInterceptor(log zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		if err != nil {
			log.Warn().
				Str("method", info.FullMethod).
				Str("code", status.Code(err).String()).
				Dur("took", time.Since(start)).
				Err(err).
				Msg("rpc")
			return resp, err
		}
		log.Info().
			Str("method", info.FullMethod).
			Dur("took", time.Since(start)).
			Msg("rpc")
		return resp, err
	}
}
