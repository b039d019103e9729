package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// RequestIDKey is the metadata key carrying the request id both ways.
const RequestIDKey = "x-request-id"

// unaryInterceptor tags every call with a request id, logs it and turns
// handler panics into Internal statuses.
func unaryInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (resp interface{}, err error) {
		requestID := incomingRequestID(ctx)
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDKey, requestID))

		log := logger.With(zap.String("method", info.FullMethod), zap.String("request-id", requestID))
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				log.Error("handler panicked", zap.Any("panic", r))
				err = status.Errorf(codes.Internal, "internal error")
			}
			log.Info("unary call",
				zap.Duration("elapsed", time.Since(start)),
				zap.Stringer("code", status.Code(err)))
		}()

		return handler(ctx, req)
	}
}

// incomingRequestID reuses the caller's request id or makes a new one.
func incomingRequestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(RequestIDKey); len(ids) > 0 && ids[0] != "" {
			return ids[0]
		}
	}
	return uuid.New().String()
}

// NewGRPCServer returns a gRPC server with the Division service and
// reflection registered.
func NewGRPCServer(logger *zap.Logger, opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{grpc.UnaryInterceptor(unaryInterceptor(logger))}, opts...)
	server := grpc.NewServer(opts...)

	RegisterDivisionServer(server, NewServer(logger))
	// 注册反射服务，供grpcurl/evans等CLI使用
	reflection.Register(server)
	return server
}
