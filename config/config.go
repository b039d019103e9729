// Package config loads the TOML configuration of the division servers.
package config

import (
	"errors"
	"fmt"
	"net"

	"github.com/BurntSushi/toml"

	"github.com/caffee/division/logutil"
)

type Server struct {
	// GRPCAddress serves the Division gRPC service.
	GRPCAddress string `toml:"grpc-address"`
	// RPCAddress serves the net/rpc Arith service. Empty disables it.
	RPCAddress string `toml:"rpc-address"`
}

type Config struct {
	Server Server            `toml:"server"`
	Log    logutil.LogConfig `toml:"log"`
}

func Default() Config {
	return Config{
		Server: Server{
			GRPCAddress: "localhost:8080",
			RPCAddress:  "localhost:8081",
		},
		Log: logutil.DefaultConfig(),
	}
}

// Load decodes the file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("cannot decode config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown keys in config file %s: %v", path, undecoded)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	if cfg.Server.GRPCAddress == "" {
		return errors.New("server.grpc-address is required")
	}
	if _, _, err := net.SplitHostPort(cfg.Server.GRPCAddress); err != nil {
		return fmt.Errorf("server.grpc-address: %w", err)
	}
	if cfg.Server.RPCAddress != "" {
		if _, _, err := net.SplitHostPort(cfg.Server.RPCAddress); err != nil {
			return fmt.Errorf("server.rpc-address: %w", err)
		}
	}
	if cfg.Log.MaxSize < 0 || cfg.Log.MaxDays < 0 || cfg.Log.MaxBackups < 0 {
		return errors.New("log rotation limits must not be negative")
	}
	return nil
}
