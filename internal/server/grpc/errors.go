package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/weekjournal/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errorCodes = []struct {
	err  error
	code codes.Code
}{
	{common.ErrWeekLocked, codes.FailedPrecondition},
	{common.ErrorNotFound, codes.NotFound},
	{common.ErrorAlreadyExists, codes.AlreadyExists},
	{common.ErrUnknownTimezone, codes.InvalidArgument},
	{common.ErrInvalidWeekStart, codes.InvalidArgument},
	{common.ErrMalformedEnvelope, codes.InvalidArgument},
	{common.ErrInvalidArgument, codes.InvalidArgument},
	{common.ErrorUnauthorized, codes.Unauthenticated},
	{common.ErrRefreshTokenExpired, codes.Unauthenticated},
}

// toStatus converts a service error into a gRPC status. Known sentinels keep
// their message so the client can map them back; anything else is logged and
// reported as Internal.
func (s *GRPCServer) toStatus(ctx context.Context, method string, err error) error {
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return status.Error(e.code, e.err.Error())
		}
	}
	s.logger.Error(ctx, "request failed", "method", method, "error", err.Error())
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}
