package caifgrpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client wraps the Codec gRPC service behind codec-shaped methods.
type Client struct {
	cc     *grpc.ClientConn
	client CodecClient

	// Timeout applies per RPC when non-zero.
	Timeout time.Duration
}

type DialOptions struct {
	// Timeout applies to the initial dial when non-zero.
	Timeout time.Duration

	// MaxMsgBytes sets both send/recv max sizes when non-zero.
	MaxMsgBytes int
}

func Dial(target string, opts DialOptions) (*Client, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if opts.MaxMsgBytes > 0 {
		dialOpts = append(dialOpts,
			grpc.WithDefaultCallOptions(
				grpc.MaxCallRecvMsgSize(opts.MaxMsgBytes),
				grpc.MaxCallSendMsgSize(opts.MaxMsgBytes),
			),
		)
	}

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cc, err := grpc.DialContext(ctx, target, dialOpts...)
	if err != nil {
		return nil, err
	}
	return &Client{cc: cc, client: NewCodecClient(cc), Timeout: 0}, nil
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

func (c *Client) ctx() (context.Context, context.CancelFunc) {
	if c.Timeout > 0 {
		return context.WithTimeout(context.Background(), c.Timeout)
	}
	return context.Background(), func() {}
}

// Encode turns a textual address into its framed record bytes.
func (c *Client) Encode(text string) ([]byte, error) {
	ctx, cancel := c.ctx()
	defer cancel()
	out, err := c.client.Encode(ctx, wrapperspb.String(text))
	if err != nil {
		return nil, fromStatus(err)
	}
	return out.GetValue(), nil
}

// Decode turns framed record bytes into the textual address form.
func (c *Client) Decode(record []byte) (string, error) {
	ctx, cancel := c.ctx()
	defer cancel()
	out, err := c.client.Decode(ctx, wrapperspb.Bytes(record))
	if err != nil {
		return "", fromStatus(err)
	}
	return out.GetValue(), nil
}

// Validate reports the strict-validation verdict for framed record bytes.
func (c *Client) Validate(record []byte) (bool, error) {
	ctx, cancel := c.ctx()
	defer cancel()
	out, err := c.client.Validate(ctx, wrapperspb.Bytes(record))
	if err != nil {
		return false, fromStatus(err)
	}
	return out.GetValue(), nil
}
