// Package rpc serves the division core as the net/rpc service "Arith".
//
// net/rpc sends only the text of a returned error. Client restores the
// DivByZero from that text, so callers downcast exactly as they would
// locally.
package rpc

import (
	"net"
	"net/http"
	netrpc "net/rpc"

	"go.uber.org/zap"

	"github.com/caffee/division/division"
)

const serviceName = "Arith"

type Args struct {
	A, B float64
}

type Quotient struct {
	Quo float64
}

// Reply is the TryDivide answer. Err holds the variant name when the
// division failed.
type Reply struct {
	Quo     float64
	Err     string
	Message string
}

type Arith struct {
	logger *zap.Logger
}

// Divide fails with the DivByZero message when there is no quotient.
func (t *Arith) Divide(args *Args, reply *Quotient) error {
	q, err := division.Division(args.A, args.B)
	if err != nil {
		t.logger.Info("arith divide failed", zap.Float64("a", args.A), zap.Float64("b", args.B), zap.Error(err))
		return err
	}
	reply.Quo = q
	return nil
}

// TryDivide never fails; the outcome is in reply.
func (t *Arith) TryDivide(args *Args, reply *Reply) error {
	q, err := division.Division(args.A, args.B)
	if e, ok := division.As(err); ok {
		reply.Err = e.String()
		reply.Message = e.Message()
		return nil
	}
	reply.Quo = q
	return nil
}

// NewServer returns an rpc server with Arith registered.
func NewServer(logger *zap.Logger) (*netrpc.Server, error) {
	server := netrpc.NewServer()
	if err := server.RegisterName(serviceName, &Arith{logger: logger}); err != nil {
		return nil, err
	}
	return server, nil
}

// Serve answers rpc-over-HTTP connections on listener until it is closed.
func Serve(listener net.Listener, server *netrpc.Server) error {
	// rpc.Server handles the HTTP CONNECT handshake used by DialHTTP
	return http.Serve(listener, server)
}
