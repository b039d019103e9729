// Command server serves the division core over gRPC and net/rpc.
package main

import (
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/caffee/division/config"
	"github.com/caffee/division/logutil"
	"github.com/caffee/division/rpc"
	"github.com/caffee/division/service"
)

func main() {
	configFile := flag.String("config", "", "path of the TOML config file")
	grpcAddress := flag.String("grpc-address", "", "overrides server.grpc-address")
	rpcAddress := flag.String("rpc-address", "", "overrides server.rpc-address")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalln("cannot load config:", err)
	}
	if *grpcAddress != "" {
		cfg.Server.GRPCAddress = *grpcAddress
	}
	if *rpcAddress != "" {
		cfg.Server.RPCAddress = *rpcAddress
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalln("invalid config:", err)
	}

	logger := logutil.SetupLogger(&cfg.Log)
	defer func() { _ = logger.Sync() }()

	grpcListener, err := net.Listen("tcp", cfg.Server.GRPCAddress)
	if err != nil {
		logger.Fatal("cannot start grpc server", zap.Error(err))
	}
	grpcServer := service.NewGRPCServer(logger)
	go func() {
		logger.Info("grpc server started", zap.String("address", grpcListener.Addr().String()))
		if err := grpcServer.Serve(grpcListener); err != nil {
			logger.Fatal("grpc server stopped", zap.Error(err))
		}
	}()

	var rpcListener net.Listener
	if cfg.Server.RPCAddress != "" {
		rpcListener, err = net.Listen("tcp", cfg.Server.RPCAddress)
		if err != nil {
			logger.Fatal("cannot start rpc server", zap.Error(err))
		}
		rpcServer, err := rpc.NewServer(logger)
		if err != nil {
			logger.Fatal("cannot register rpc service", zap.Error(err))
		}
		go func() {
			logger.Info("rpc server started", zap.String("address", rpcListener.Addr().String()))
			// Serve returns once the listener is closed on shutdown
			_ = rpc.Serve(rpcListener, rpcServer)
		}()
	}

	waitSignal()
	logger.Info("shutting down")
	if rpcListener != nil {
		_ = rpcListener.Close()
	}
	grpcServer.GracefulStop()
}

func waitSignal() {
	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, syscall.SIGTERM, syscall.SIGINT)
	<-sigchan
}
