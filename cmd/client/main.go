// Command client divides two numbers on a running division server.
//
//	client [-transport grpc|rpc] [-protocol throw|result] [-json] dividend divisor
//	client -n 100
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/caffee/division/config"
	"github.com/caffee/division/division"
	"github.com/caffee/division/logutil"
	"github.com/caffee/division/rpc"
	"github.com/caffee/division/sample"
	"github.com/caffee/division/serializer"
	"github.com/caffee/division/service"
)

// divider is what both transports offer.
type divider interface {
	Divide(ctx context.Context, dividend, divisor float64) (float64, error)
	TryDivide(ctx context.Context, dividend, divisor float64) (division.Result, error)
}

type grpcDivider struct {
	client *service.Client
}

func (d grpcDivider) Divide(ctx context.Context, dividend, divisor float64) (float64, error) {
	return d.client.Divide(ctx, dividend, divisor)
}

func (d grpcDivider) TryDivide(ctx context.Context, dividend, divisor float64) (division.Result, error) {
	return d.client.TryDivide(ctx, dividend, divisor)
}

// net/rpc calls take no context
type rpcDivider struct {
	client *rpc.Client
}

func (d rpcDivider) Divide(_ context.Context, dividend, divisor float64) (float64, error) {
	return d.client.Divide(dividend, divisor)
}

func (d rpcDivider) TryDivide(_ context.Context, dividend, divisor float64) (division.Result, error) {
	return d.client.TryDivide(dividend, divisor)
}

func main() {
	configFile := flag.String("config", "", "path of the TOML config file")
	transport := flag.String("transport", "grpc", "grpc or rpc")
	protocol := flag.String("protocol", "result", "throw or result")
	asJSON := flag.Bool("json", false, "print the outcome as JSON")
	random := flag.Int("n", 0, "divide n random operand pairs instead of the arguments")
	timeout := flag.Duration("timeout", 10*time.Second, "deadline of each call")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalln("cannot load config:", err)
	}
	logger := logutil.SetupLogger(&cfg.Log)
	defer func() { _ = logger.Sync() }()

	var pairs []sample.Operands
	if *random > 0 {
		pairs = sample.NewOperandsList(*random)
	} else {
		ops, err := parseOperands(flag.Args())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			flag.Usage()
			os.Exit(2)
		}
		pairs = []sample.Operands{ops}
	}

	d, closeFn, err := dial(*transport, cfg)
	if err != nil {
		logger.Fatal("cannot connect", zap.String("transport", *transport), zap.Error(err))
	}
	defer closeFn()

	for _, ops := range pairs {
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		r, err := call(ctx, d, *protocol, ops)
		cancel()
		if err != nil {
			logger.Fatal("call failed", zap.Error(err))
		}
		if err := printResult(r, *asJSON); err != nil {
			logger.Fatal("cannot print result", zap.Error(err))
		}
	}
}

func parseOperands(args []string) (sample.Operands, error) {
	if len(args) != 2 {
		return sample.Operands{}, fmt.Errorf("want dividend and divisor, got %d arguments", len(args))
	}
	dividend, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return sample.Operands{}, fmt.Errorf("invalid dividend: %w", err)
	}
	divisor, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return sample.Operands{}, fmt.Errorf("invalid divisor: %w", err)
	}
	return sample.Operands{Dividend: dividend, Divisor: divisor}, nil
}

func dial(transport string, cfg config.Config) (divider, func(), error) {
	switch transport {
	case "grpc":
		conn, err := grpc.Dial(cfg.Server.GRPCAddress, grpc.WithInsecure())
		if err != nil {
			return nil, nil, err
		}
		return grpcDivider{client: service.NewClient(conn)}, func() { _ = conn.Close() }, nil
	case "rpc":
		client, err := rpc.Dial(cfg.Server.RPCAddress)
		if err != nil {
			return nil, nil, err
		}
		return rpcDivider{client: client}, func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown transport %q", transport)
	}
}

// call returns the outcome as a Result whichever protocol is used. Only
// errors that are not division errors are returned as errors.
func call(ctx context.Context, d divider, protocol string, ops sample.Operands) (division.Result, error) {
	switch protocol {
	case "result":
		return d.TryDivide(ctx, ops.Dividend, ops.Divisor)
	case "throw":
		q, err := d.Divide(ctx, ops.Dividend, ops.Divisor)
		if err == nil {
			return division.Quotient(q), nil
		}
		if e, ok := division.As(err); ok {
			return division.Failure(e), nil
		}
		return division.Result{}, err
	default:
		return division.Result{}, fmt.Errorf("unknown protocol %q", protocol)
	}
}

func printResult(r division.Result, asJSON bool) error {
	if !asJSON {
		fmt.Println(r)
		return nil
	}
	data, err := serializer.ProtobufToJSON(serializer.ResultToProto(r))
	if err != nil {
		return err
	}
	fmt.Println(data)
	return nil
}
