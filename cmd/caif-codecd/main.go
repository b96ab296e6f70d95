package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"

	"github.com/modemlink/caif/caifgrpc"
)

func main() {
	fs := flag.NewFlagSet("caif-codecd", flag.ExitOnError)
	listen := fs.String("listen", "", "listen address (overrides config)")
	configPath := fs.String("config", "", "path to config.toml")

	_ = fs.Parse(os.Args[1:])

	cfg := defaultServerConfig()
	if *configPath != "" {
		var err error
		cfg, err = loadServerConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	if *listen != "" {
		cfg.Listen = *listen
	}

	log := zerolog.New(os.Stderr).Level(cfg.LogLevel).With().
		Timestamp().Str("component", "caif-codecd").Logger()

	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		log.Error().Err(err).Msg("listen")
		os.Exit(1)
	}
	defer lis.Close()

	var serverOpts []grpc.ServerOption
	serverOpts = append(serverOpts, grpc.UnaryInterceptor(caifgrpc.UnaryLoggingInterceptor(log)))
	if cfg.MaxMsgBytes > 0 {
		serverOpts = append(serverOpts,
			grpc.MaxRecvMsgSize(cfg.MaxMsgBytes),
			grpc.MaxSendMsgSize(cfg.MaxMsgBytes),
		)
	}

	s := grpc.NewServer(serverOpts...)
	caifgrpc.RegisterCodecServer(s, &caifgrpc.Server{})

	log.Info().Str("listen", lis.Addr().String()).Msg("caif-codecd listening")
	if err := s.Serve(lis); err != nil {
		log.Error().Err(err).Msg("serve")
		os.Exit(1)
	}
}
