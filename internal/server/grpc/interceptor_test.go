package grpc

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/weekjournal/internal/api"
	"github.com/dmitrijs2005/weekjournal/internal/common"
	"github.com/dmitrijs2005/weekjournal/internal/logging"
	"github.com/dmitrijs2005/weekjournal/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func newTestServer(secret string) *GRPCServer {
	return NewGRPCServer("", nopLogger{}, nil, nil, nil, nil, secret)
}

func withToken(token string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.New(map[string]string{
		common.AccessTokenHeaderName: token,
	}))
}

var protected = &grpc.UnaryServerInfo{FullMethod: api.JournalService_SaveReflection_FullMethodName}

func mustNotRun(t *testing.T) grpc.UnaryHandler {
	return func(context.Context, any) (any, error) {
		t.Fatal("handler must not be called")
		return nil, nil
	}
}

func TestInterceptor_PublicMethodsSkipAuth(t *testing.T) {
	s := newTestServer("secret")
	for method := range api.PublicMethods {
		called := false
		_, err := s.accessTokenInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: method},
			func(context.Context, any) (any, error) { called = true; return "ok", nil })
		require.NoError(t, err, method)
		assert.True(t, called, method)
	}
}

func TestInterceptor_MissingToken(t *testing.T) {
	s := newTestServer("secret")

	_, err := s.accessTokenInterceptor(context.Background(), nil, protected, mustNotRun(t))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "missing token", status.Convert(err).Message())
}

func TestInterceptor_InvalidToken(t *testing.T) {
	s := newTestServer("secret")

	_, err := s.accessTokenInterceptor(withToken("not-a-jwt"), nil, protected, mustNotRun(t))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, common.ErrInvalidToken.Error(), status.Convert(err).Message())

	foreign, err := auth.GenerateToken("u1", []byte("other"), time.Hour)
	require.NoError(t, err)
	_, err = s.accessTokenInterceptor(withToken(foreign), nil, protected, mustNotRun(t))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestInterceptor_ExpiredToken(t *testing.T) {
	s := newTestServer("secret")
	token, err := auth.GenerateToken("u1", []byte("secret"), -time.Minute)
	require.NoError(t, err)

	_, err = s.accessTokenInterceptor(withToken(token), nil, protected, mustNotRun(t))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "token expired", status.Convert(err).Message())
}

func TestInterceptor_ValidTokenSetsUserID(t *testing.T) {
	s := newTestServer("secret")
	token, err := auth.GenerateToken("user-123", []byte("secret"), time.Hour)
	require.NoError(t, err)

	var got string
	_, err = s.accessTokenInterceptor(withToken(token), nil, protected, func(ctx context.Context, _ any) (any, error) {
		id, idErr := userIDFromContext(ctx)
		got = id
		return "ok", idErr
	})
	require.NoError(t, err)
	assert.Equal(t, "user-123", got)
}

func TestUserIDFromContext_Missing(t *testing.T) {
	_, err := userIDFromContext(context.Background())
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestInterceptors_TagRequestLogs(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.BackendSlog, &buf)
	require.NoError(t, err)
	s := NewGRPCServer("", log, nil, nil, nil, nil, "secret")

	token, err := auth.GenerateToken("user-123", []byte("secret"), time.Hour)
	require.NoError(t, err)

	inner := func(ctx context.Context, req any) (any, error) {
		return s.accessTokenInterceptor(ctx, req, protected, func(ctx context.Context, _ any) (any, error) {
			log.Info(ctx, "inside")
			return "ok", nil
		})
	}
	_, err = s.loggingInterceptor(withToken(token), nil, protected, inner)
	require.NoError(t, err)

	var inside map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.Split(strings.TrimSpace(buf.String()), "\n")[0]), &inside))
	assert.Equal(t, "inside", inside["msg"])
	assert.Equal(t, "user-123", inside["user_id"])
	assert.Equal(t, api.JournalService_SaveReflection_FullMethodName, inside["method"])
}
