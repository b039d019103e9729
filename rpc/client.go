package rpc

import (
	"errors"
	"fmt"
	netrpc "net/rpc"

	"github.com/caffee/division/division"
)

type Client struct {
	client *netrpc.Client
}

// Dial connects to an Arith server at addr.
func Dial(addr string) (*Client, error) {
	client, err := netrpc.DialHTTP("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial rpc server %s: %w", addr, err)
	}
	return &Client{client: client}, nil
}

// Divide calls Arith.Divide. A DivByZero raised by the server comes back
// as a DivByZero.
func (c *Client) Divide(a, b float64) (float64, error) {
	args := &Args{A: a, B: b}
	var reply Quotient

	if err := c.client.Call(serviceName+".Divide", args, &reply); err != nil {
		return 0, restoreError(err)
	}
	return reply.Quo, nil
}

// DivideAsync starts Arith.Divide and delivers its outcome on the
// returned channel. The channel is closed without a value when the call
// itself fails.
func (c *Client) DivideAsync(a, b float64) <-chan division.Result {
	out := make(chan division.Result, 1)
	reply := &Quotient{}
	call := c.client.Go(serviceName+".Divide", &Args{A: a, B: b}, reply, nil)

	go func() {
		defer close(out)
		done := <-call.Done
		if done.Error == nil {
			out <- division.Quotient(reply.Quo)
			return
		}
		// transport failures have no Result form, the channel just closes
		if e, ok := division.As(restoreError(done.Error)); ok {
			out <- division.Failure(e)
		}
	}()
	return out
}

// TryDivide calls Arith.TryDivide. The error is only for transport
// failures.
func (c *Client) TryDivide(a, b float64) (division.Result, error) {
	args := &Args{A: a, B: b}
	var reply Reply

	if err := c.client.Call(serviceName+".TryDivide", args, &reply); err != nil {
		return division.Result{}, err
	}
	if reply.Err == "" {
		return division.Quotient(reply.Quo), nil
	}
	e, ok := division.Parse(reply.Err)
	if !ok {
		return division.Result{}, fmt.Errorf("unknown division error %q", reply.Err)
	}
	return division.Failure(e), nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

func restoreError(err error) error {
	var serverErr netrpc.ServerError
	if errors.As(err, &serverErr) {
		if e, ok := division.FromMessage(string(serverErr)); ok {
			return e
		}
	}
	return err
}
