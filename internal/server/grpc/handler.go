package grpc

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/weekjournal/internal/api"
	"github.com/dmitrijs2005/weekjournal/internal/common"
	"github.com/dmitrijs2005/weekjournal/internal/server/models"
	"github.com/dmitrijs2005/weekjournal/internal/week"
	"github.com/google/uuid"
)

// checkReflectionID rejects ids that are not UUIDs before they reach the
// database.
func checkReflectionID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: reflection id %q", common.ErrInvalidArgument, id)
	}
	return nil
}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *api.RegisterUserRequest) (*api.RegisterUserResponse, error) {
	u, err := s.users.Register(ctx, req.Username, req.Salt, req.Verifier)
	if err != nil {
		return nil, s.toStatus(ctx, "RegisterUser", err)
	}
	s.logger.Info(ctx, "Registered", "username", req.Username, "user_id", u.ID)
	return &api.RegisterUserResponse{UserID: u.ID}, nil
}

func (s *GRPCServer) GetSalt(ctx context.Context, req *api.GetSaltRequest) (*api.GetSaltResponse, error) {
	salt, err := s.users.GetSalt(ctx, req.Username)
	if err != nil {
		return nil, s.toStatus(ctx, "GetSalt", err)
	}
	return &api.GetSaltResponse{Salt: salt}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.LoginResponse, error) {
	tokens, err := s.users.Login(ctx, req.Username, req.VerifierCandidate)
	if err != nil {
		return nil, s.toStatus(ctx, "Login", err)
	}
	return &api.LoginResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *api.RefreshTokenRequest) (*api.RefreshTokenResponse, error) {
	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, "RefreshToken", err)
	}
	return &api.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *api.PingRequest) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

func profileToAPI(p *models.Profile) *api.Profile {
	return &api.Profile{
		Timezone:          p.Timezone,
		EmailReminders:    p.EmailReminders,
		PushNotifications: p.PushNotifications,
	}
}

func (s *GRPCServer) GetProfile(ctx context.Context, req *api.GetProfileRequest) (*api.GetProfileResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, "GetProfile", err)
	}
	return &api.GetProfileResponse{Profile: profileToAPI(p)}, nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *api.UpdateProfileRequest) (*api.UpdateProfileResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	in := &models.Profile{UserID: userID}
	if req.Profile != nil {
		in.Timezone = req.Profile.Timezone
		in.EmailReminders = req.Profile.EmailReminders
		in.PushNotifications = req.Profile.PushNotifications
	}
	p, err := s.profiles.Update(ctx, in)
	if err != nil {
		return nil, s.toStatus(ctx, "UpdateProfile", err)
	}
	return &api.UpdateProfileResponse{Profile: profileToAPI(p)}, nil
}

func reflectionToAPI(r *models.Reflection) *api.Reflection {
	return &api.Reflection{
		ID:               r.ID,
		WeekStartDate:    r.WeekStartDate.String(),
		EncryptedContent: r.EncryptedContent,
		IsCompleted:      r.IsCompleted,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
		LockedAt:         r.LockedAt,
	}
}

func (s *GRPCServer) SaveReflection(ctx context.Context, req *api.SaveReflectionRequest) (*api.SaveReflectionResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	weekStart, err := week.Parse(req.WeekStartDate)
	if err != nil {
		return nil, s.toStatus(ctx, "SaveReflection", err)
	}
	r, err := s.reflections.Save(ctx, userID, weekStart, req.EncryptedContent, req.IsCompleted)
	if err != nil {
		return nil, s.toStatus(ctx, "SaveReflection", err)
	}
	s.logger.Info(ctx, "Reflection saved", "user_id", userID, "week", weekStart.String(), "completed", r.IsCompleted)
	return &api.SaveReflectionResponse{Reflection: reflectionToAPI(r)}, nil
}

func (s *GRPCServer) GetReflection(ctx context.Context, req *api.GetReflectionRequest) (*api.GetReflectionResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	weekStart, err := week.Parse(req.WeekStartDate)
	if err != nil {
		return nil, s.toStatus(ctx, "GetReflection", err)
	}
	r, err := s.reflections.Get(ctx, userID, weekStart)
	if err != nil {
		return nil, s.toStatus(ctx, "GetReflection", err)
	}
	return &api.GetReflectionResponse{Reflection: reflectionToAPI(r)}, nil
}

func (s *GRPCServer) ListReflections(ctx context.Context, req *api.ListReflectionsRequest) (*api.ListReflectionsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.reflections.List(ctx, userID, req.IncludeContent)
	if err != nil {
		return nil, s.toStatus(ctx, "ListReflections", err)
	}
	out := make([]*api.Reflection, 0, len(items))
	for _, r := range items {
		out = append(out, reflectionToAPI(r))
	}
	return &api.ListReflectionsResponse{Reflections: out}, nil
}

func (s *GRPCServer) DeleteReflection(ctx context.Context, req *api.DeleteReflectionRequest) (*api.DeleteReflectionResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkReflectionID(req.ID); err != nil {
		return nil, s.toStatus(ctx, "DeleteReflection", err)
	}
	if err := s.reflections.Delete(ctx, userID, req.ID); err != nil {
		return nil, s.toStatus(ctx, "DeleteReflection", err)
	}
	return &api.DeleteReflectionResponse{}, nil
}

func (s *GRPCServer) RestoreReflection(ctx context.Context, req *api.RestoreReflectionRequest) (*api.RestoreReflectionResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkReflectionID(req.ID); err != nil {
		return nil, s.toStatus(ctx, "RestoreReflection", err)
	}
	if err := s.reflections.Restore(ctx, userID, req.ID); err != nil {
		return nil, s.toStatus(ctx, "RestoreReflection", err)
	}
	return &api.RestoreReflectionResponse{}, nil
}

func (s *GRPCServer) GetArchiveUploadURL(ctx context.Context, req *api.GetArchiveUploadURLRequest) (*api.GetArchiveUploadURLResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	key, url, err := s.archives.UploadURL(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, "GetArchiveUploadURL", err)
	}
	return &api.GetArchiveUploadURLResponse{Key: key, URL: url}, nil
}

func (s *GRPCServer) GetArchiveDownloadURL(ctx context.Context, req *api.GetArchiveDownloadURLRequest) (*api.GetArchiveDownloadURLResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	url, err := s.archives.DownloadURL(ctx, userID, req.Key)
	if err != nil {
		return nil, s.toStatus(ctx, "GetArchiveDownloadURL", err)
	}
	return &api.GetArchiveDownloadURLResponse{URL: url}, nil
}
