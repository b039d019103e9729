// Package service exposes the division core over gRPC.
//
// Divide reports a failure as an InvalidArgument status whose details name
// the DivByZero variant. TryDivide always succeeds at the RPC level and
// returns the outcome as a struct, mirroring division.Divide.
package service

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/caffee/division/division"
	"github.com/caffee/division/serializer"
)

// DivisionServer is the server API of the division.Division service.
type DivisionServer interface {
	Divide(context.Context, *structpb.Struct) (*wrapperspb.DoubleValue, error)
	TryDivide(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type Server struct {
	logger *zap.Logger
}

func NewServer(logger *zap.Logger) *Server {
	return &Server{logger: logger}
}

func (server *Server) Divide(ctx context.Context, req *structpb.Struct) (*wrapperspb.DoubleValue, error) {
	dividend, divisor, err := server.operands(ctx, req)
	if err != nil {
		return nil, err
	}

	q, err := division.Division(dividend, divisor)
	if err != nil {
		server.logger.Info("division failed",
			zap.Float64("dividend", dividend),
			zap.Float64("divisor", divisor),
			zap.Error(err))
		return nil, toStatus(err)
	}
	return wrapperspb.Double(q), nil
}

func (server *Server) TryDivide(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	dividend, divisor, err := server.operands(ctx, req)
	if err != nil {
		return nil, err
	}

	r := division.Divide(dividend, divisor)
	server.logger.Debug("try-divide",
		zap.Float64("dividend", dividend),
		zap.Float64("divisor", divisor),
		zap.Stringer("result", r))
	return serializer.ResultToProto(r), nil
}

func (server *Server) operands(ctx context.Context, req *structpb.Struct) (float64, float64, error) {
	if err := contextError(ctx); err != nil {
		return 0, 0, server.logError(err)
	}
	dividend, divisor, err := serializer.ProtoToOperands(req)
	if err != nil {
		return 0, 0, server.logError(status.Errorf(codes.InvalidArgument, "invalid operands: %v", err))
	}
	return dividend, divisor, nil
}

func contextError(ctx context.Context) error {
	switch ctx.Err() {
	case context.Canceled:
		return status.Error(codes.Canceled, "request is canceled")
	case context.DeadlineExceeded:
		return status.Error(codes.DeadlineExceeded, "deadline is exceeded")
	default:
		return nil
	}
}

func (server *Server) logError(err error) error {
	if err != nil {
		server.logger.Warn("request rejected", zap.Error(err))
	}
	return err
}
