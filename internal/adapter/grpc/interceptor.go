package grpc

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/simaogato/recipecost-backend/internal/metrics"
)

// AuthInterceptor returns a gRPC unary server interceptor that validates
// the authorization token from request metadata.
// The token may be sent raw or as "Bearer <token>".
// If the token is missing or invalid, it returns status.Unauthenticated.
func AuthInterceptor(validToken string) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		authHeaders := md.Get("authorization")
		if len(authHeaders) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing authorization header")
		}

		token := strings.TrimSpace(authHeaders[0])
		if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
			token = strings.TrimSpace(token[7:])
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(validToken)) != 1 {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		return handler(ctx, req)
	}
}

// MetricsInterceptor counts every RPC and records its latency.
func MetricsInterceptor(m *metrics.Metrics) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		m.ObserveRPC(info.FullMethod, status.Code(err).String(), time.Since(start))
		return resp, err
	}
}

// LoggingInterceptor logs the outcome of every RPC.
// Server-side failures are logged at error level, client errors at info.
func LoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", code.String()),
			zap.Duration("duration", time.Since(start)),
		}

		switch code {
		case codes.OK:
			logger.Debug("rpc finished", fields...)
		case codes.Internal, codes.Unknown, codes.DataLoss, codes.Unavailable:
			logger.Error("rpc failed", append(fields, zap.Error(err))...)
		default:
			logger.Info("rpc rejected", append(fields, zap.Error(err))...)
		}

		return resp, err
	}
}
