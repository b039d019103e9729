package service

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/caffee/division/division"
	"github.com/caffee/division/serializer"
)

// Client calls the division.Division service.
type Client struct {
	conn grpc.ClientConnInterface
}

func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Divide returns the quotient or the DivByZero raised by the server.
// Any other error is a transport or status error.
func (client *Client) Divide(ctx context.Context, dividend, divisor float64, opts ...grpc.CallOption) (float64, error) {
	out := new(wrapperspb.DoubleValue)
	err := client.conn.Invoke(ctx, divideMethod, serializer.OperandsToProto(dividend, divisor), out, opts...)
	if err != nil {
		return 0, fromStatus(err)
	}
	return out.GetValue(), nil
}

// TryDivide returns the outcome as a Result. The error is reserved for
// failures to reach the server or decode its answer.
func (client *Client) TryDivide(ctx context.Context, dividend, divisor float64, opts ...grpc.CallOption) (division.Result, error) {
	out := new(structpb.Struct)
	err := client.conn.Invoke(ctx, tryDivideMethod, serializer.OperandsToProto(dividend, divisor), out, opts...)
	if err != nil {
		return division.Result{}, err
	}
	return serializer.ProtoToResult(out)
}
