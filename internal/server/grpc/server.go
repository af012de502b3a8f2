// Package grpc exposes the journal services over gRPC using the protobuf
// codec from internal/api.
package grpc

import (
	"context"
	"net"

	"cloud.google.com/go/civil"
	"github.com/dmitrijs2005/weekjournal/internal/api"
	"github.com/dmitrijs2005/weekjournal/internal/logging"
	"github.com/dmitrijs2005/weekjournal/internal/server/models"
	"github.com/dmitrijs2005/weekjournal/internal/server/services"
	"google.golang.org/grpc"
)

type UserService interface {
	Register(ctx context.Context, username string, salt, verifier []byte) (*models.User, error)
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, verifierCandidate []byte) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

type ProfileService interface {
	Get(ctx context.Context, userID string) (*models.Profile, error)
	Update(ctx context.Context, p *models.Profile) (*models.Profile, error)
}

type ReflectionService interface {
	Save(ctx context.Context, userID string, weekStart civil.Date, content string, completed bool) (*models.Reflection, error)
	Get(ctx context.Context, userID string, weekStart civil.Date) (*models.Reflection, error)
	List(ctx context.Context, userID string, withContent bool) ([]*models.Reflection, error)
	Delete(ctx context.Context, userID, id string) error
	Restore(ctx context.Context, userID, id string) error
}

type ArchiveService interface {
	UploadURL(ctx context.Context, userID string) (key, url string, err error)
	DownloadURL(ctx context.Context, userID, key string) (string, error)
}

type GRPCServer struct {
	api.UnimplementedJournalServiceServer
	address     string
	users       UserService
	profiles    ProfileService
	reflections ReflectionService
	archives    ArchiveService
	logger      logging.Logger
	jwtSecret   []byte
}

func NewGRPCServer(a string, l logging.Logger, us UserService, ps ProfileService, rs ReflectionService, as ArchiveService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:     a,
		logger:      l.With("module", "grpc_server"),
		users:       us,
		profiles:    ps,
		reflections: rs,
		archives:    as,
		jwtSecret:   []byte(secretKey),
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis and stops gracefully when ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	api.RegisterJournalServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())
	return srv.Serve(lis)
}
