package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cloud.google.com/go/civil"
	"github.com/dmitrijs2005/weekjournal/internal/api"
	"github.com/dmitrijs2005/weekjournal/internal/client/models"
	"github.com/dmitrijs2005/weekjournal/internal/common"
	"github.com/dmitrijs2005/weekjournal/internal/week"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      api.JournalServiceClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string

	// refreshMu serializes token refreshes. The server rotates the refresh
	// token, so it can be spent only once.
	refreshMu sync.Mutex
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	s.accessToken, s.refreshToken = access, refresh
	s.mu.Unlock()
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	access, refresh := s.tokens()

	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refresh == "" || method == api.JournalService_RefreshToken_FullMethodName {
		return err
	}

	fresh, err := s.refreshAccess(ctx, access, err)
	if err != nil {
		return err
	}
	return invoker(withAccessToken(ctx, fresh), method, req, reply, cc, opts...)
}

// refreshAccess returns a usable access token for a call that was rejected
// with stale. If another call already refreshed, its token is reused.
func (s *GRPCClient) refreshAccess(ctx context.Context, stale string, cause error) (string, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	access, refresh := s.tokens()
	if access != stale {
		return access, nil
	}
	if refresh == "" {
		return "", cause
	}

	resp, err := s.client.RefreshToken(ctx, &api.RefreshTokenRequest{RefreshToken: refresh})
	if err != nil {
		return "", err
	}
	s.setTokens(resp.AccessToken, resp.RefreshToken)
	return resp.AccessToken, nil
}

func NewJournalClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.initGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = api.NewJournalServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Register(ctx context.Context, username string, salt []byte, verifier []byte) error {
	_, err := s.client.RegisterUser(ctx, &api.RegisterUserRequest{Username: username, Salt: salt, Verifier: verifier})
	return s.mapError(err)
}

func (s *GRPCClient) GetSalt(ctx context.Context, username string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 12*time.Second)
	defer cancel()

	resp, err := s.client.GetSalt(ctx, &api.GetSaltRequest{Username: username})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Salt, nil
}

func (s *GRPCClient) Login(ctx context.Context, username string, verifier []byte) error {
	resp, err := s.client.Login(ctx, &api.LoginRequest{Username: username, VerifierCandidate: verifier})
	if err != nil {
		return s.mapError(err)
	}
	s.setTokens(resp.AccessToken, resp.RefreshToken)
	return nil
}

func (s *GRPCClient) Logout() {
	s.setTokens("", "")
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &api.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) GetProfile(ctx context.Context) (*models.Profile, error) {
	resp, err := s.client.GetProfile(ctx, &api.GetProfileRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return profileFromAPI(resp.Profile), nil
}

func (s *GRPCClient) UpdateProfile(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	req := &api.UpdateProfileRequest{Profile: &api.Profile{
		Timezone:          p.Timezone,
		EmailReminders:    p.EmailReminders,
		PushNotifications: p.PushNotifications,
	}}
	resp, err := s.client.UpdateProfile(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return profileFromAPI(resp.Profile), nil
}

func (s *GRPCClient) SaveReflection(ctx context.Context, weekStart civil.Date, encryptedContent string, completed bool) (*models.Reflection, error) {
	req := &api.SaveReflectionRequest{
		WeekStartDate:    weekStart.String(),
		EncryptedContent: encryptedContent,
		IsCompleted:      completed,
	}
	resp, err := s.client.SaveReflection(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return reflectionFromAPI(resp.Reflection)
}

// GetReflection returns common.ErrorNotFound when the week has no record.
func (s *GRPCClient) GetReflection(ctx context.Context, weekStart civil.Date) (*models.Reflection, error) {
	resp, err := s.client.GetReflection(ctx, &api.GetReflectionRequest{WeekStartDate: weekStart.String()})
	if err != nil {
		return nil, s.mapError(err)
	}
	return reflectionFromAPI(resp.Reflection)
}

func (s *GRPCClient) ListReflections(ctx context.Context, withContent bool) ([]models.Reflection, error) {
	resp, err := s.client.ListReflections(ctx, &api.ListReflectionsRequest{IncludeContent: withContent})
	if err != nil {
		return nil, s.mapError(err)
	}

	result := make([]models.Reflection, 0, len(resp.Reflections))
	for _, r := range resp.Reflections {
		m, err := reflectionFromAPI(r)
		if err != nil {
			return nil, err
		}
		result = append(result, *m)
	}
	return result, nil
}

func (s *GRPCClient) DeleteReflection(ctx context.Context, id string) error {
	_, err := s.client.DeleteReflection(ctx, &api.DeleteReflectionRequest{ID: id})
	return s.mapError(err)
}

func (s *GRPCClient) RestoreReflection(ctx context.Context, id string) error {
	_, err := s.client.RestoreReflection(ctx, &api.RestoreReflectionRequest{ID: id})
	return s.mapError(err)
}

func (s *GRPCClient) ArchiveUploadURL(ctx context.Context) (string, string, error) {
	resp, err := s.client.GetArchiveUploadURL(ctx, &api.GetArchiveUploadURLRequest{})
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.Key, resp.URL, nil
}

func (s *GRPCClient) ArchiveDownloadURL(ctx context.Context, key string) (string, error) {
	resp, err := s.client.GetArchiveDownloadURL(ctx, &api.GetArchiveDownloadURLRequest{Key: key})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.URL, nil
}

// remoteErrors are the sentinels the server reports by message.
var remoteErrors = []error{
	common.ErrWeekLocked,
	common.ErrorNotFound,
	common.ErrorAlreadyExists,
	common.ErrUnknownTimezone,
	common.ErrInvalidWeekStart,
	common.ErrMalformedEnvelope,
	common.ErrInvalidArgument,
	common.ErrRefreshTokenExpired,
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}

	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.Unauthenticated, codes.PermissionDenied:
		if st.Message() == common.ErrRefreshTokenExpired.Error() {
			return fmt.Errorf("%w: %w", ErrUnauthorized, common.ErrRefreshTokenExpired)
		}
		return ErrUnauthorized
	}

	for _, e := range remoteErrors {
		if st.Message() == e.Error() {
			return e
		}
	}

	switch st.Code() {
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.AlreadyExists:
		return common.ErrorAlreadyExists
	case codes.FailedPrecondition:
		return common.ErrWeekLocked
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrInvalidArgument, st.Message())
	}
	return fmt.Errorf("rpc error: %w", err)
}

func profileFromAPI(p *api.Profile) *models.Profile {
	if p == nil {
		return &models.Profile{Timezone: common.DefaultTimezone}
	}
	return &models.Profile{
		Timezone:          p.Timezone,
		EmailReminders:    p.EmailReminders,
		PushNotifications: p.PushNotifications,
	}
}

func reflectionFromAPI(r *api.Reflection) (*models.Reflection, error) {
	if r == nil {
		return nil, fmt.Errorf("rpc error: empty reflection in response")
	}
	d, err := week.Parse(r.WeekStartDate)
	if err != nil {
		return nil, fmt.Errorf("rpc error: %w", err)
	}
	return &models.Reflection{
		ID:               r.ID,
		WeekStartDate:    d,
		EncryptedContent: r.EncryptedContent,
		IsCompleted:      r.IsCompleted,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
		LockedAt:         r.LockedAt,
	}, nil
}
