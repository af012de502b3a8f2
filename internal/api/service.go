package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "weekjournal.JournalService"

const (
	JournalService_RegisterUser_FullMethodName          = "/weekjournal.JournalService/RegisterUser"
	JournalService_GetSalt_FullMethodName               = "/weekjournal.JournalService/GetSalt"
	JournalService_Login_FullMethodName                 = "/weekjournal.JournalService/Login"
	JournalService_RefreshToken_FullMethodName          = "/weekjournal.JournalService/RefreshToken"
	JournalService_Ping_FullMethodName                  = "/weekjournal.JournalService/Ping"
	JournalService_GetProfile_FullMethodName            = "/weekjournal.JournalService/GetProfile"
	JournalService_UpdateProfile_FullMethodName         = "/weekjournal.JournalService/UpdateProfile"
	JournalService_SaveReflection_FullMethodName        = "/weekjournal.JournalService/SaveReflection"
	JournalService_GetReflection_FullMethodName         = "/weekjournal.JournalService/GetReflection"
	JournalService_ListReflections_FullMethodName       = "/weekjournal.JournalService/ListReflections"
	JournalService_DeleteReflection_FullMethodName      = "/weekjournal.JournalService/DeleteReflection"
	JournalService_RestoreReflection_FullMethodName     = "/weekjournal.JournalService/RestoreReflection"
	JournalService_GetArchiveUploadURL_FullMethodName   = "/weekjournal.JournalService/GetArchiveUploadURL"
	JournalService_GetArchiveDownloadURL_FullMethodName = "/weekjournal.JournalService/GetArchiveDownloadURL"
)

// PublicMethods can be called without an access token.
var PublicMethods = map[string]struct{}{
	JournalService_RegisterUser_FullMethodName: {},
	JournalService_GetSalt_FullMethodName:      {},
	JournalService_Login_FullMethodName:        {},
	JournalService_RefreshToken_FullMethodName: {},
	JournalService_Ping_FullMethodName:         {},
}

// JournalServiceClient is the client API for JournalService.
type JournalServiceClient interface {
	RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*RegisterUserResponse, error)
	GetSalt(ctx context.Context, in *GetSaltRequest, opts ...grpc.CallOption) (*GetSaltResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error)
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*GetProfileResponse, error)
	UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*UpdateProfileResponse, error)
	SaveReflection(ctx context.Context, in *SaveReflectionRequest, opts ...grpc.CallOption) (*SaveReflectionResponse, error)
	GetReflection(ctx context.Context, in *GetReflectionRequest, opts ...grpc.CallOption) (*GetReflectionResponse, error)
	ListReflections(ctx context.Context, in *ListReflectionsRequest, opts ...grpc.CallOption) (*ListReflectionsResponse, error)
	DeleteReflection(ctx context.Context, in *DeleteReflectionRequest, opts ...grpc.CallOption) (*DeleteReflectionResponse, error)
	RestoreReflection(ctx context.Context, in *RestoreReflectionRequest, opts ...grpc.CallOption) (*RestoreReflectionResponse, error)
	GetArchiveUploadURL(ctx context.Context, in *GetArchiveUploadURLRequest, opts ...grpc.CallOption) (*GetArchiveUploadURLResponse, error)
	GetArchiveDownloadURL(ctx context.Context, in *GetArchiveDownloadURLRequest, opts ...grpc.CallOption) (*GetArchiveDownloadURLResponse, error)
}

type journalServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewJournalServiceClient(cc grpc.ClientConnInterface) JournalServiceClient {
	return &journalServiceClient{cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod(), grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(Resp)
	if err := cc.Invoke(ctx, method, in, out, cOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *journalServiceClient) RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*RegisterUserResponse, error) {
	return invoke[RegisterUserResponse](ctx, c.cc, JournalService_RegisterUser_FullMethodName, in, opts)
}

func (c *journalServiceClient) GetSalt(ctx context.Context, in *GetSaltRequest, opts ...grpc.CallOption) (*GetSaltResponse, error) {
	return invoke[GetSaltResponse](ctx, c.cc, JournalService_GetSalt_FullMethodName, in, opts)
}

func (c *journalServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, JournalService_Login_FullMethodName, in, opts)
}

func (c *journalServiceClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error) {
	return invoke[RefreshTokenResponse](ctx, c.cc, JournalService_RefreshToken_FullMethodName, in, opts)
}

func (c *journalServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, JournalService_Ping_FullMethodName, in, opts)
}

func (c *journalServiceClient) GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*GetProfileResponse, error) {
	return invoke[GetProfileResponse](ctx, c.cc, JournalService_GetProfile_FullMethodName, in, opts)
}

func (c *journalServiceClient) UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*UpdateProfileResponse, error) {
	return invoke[UpdateProfileResponse](ctx, c.cc, JournalService_UpdateProfile_FullMethodName, in, opts)
}

func (c *journalServiceClient) SaveReflection(ctx context.Context, in *SaveReflectionRequest, opts ...grpc.CallOption) (*SaveReflectionResponse, error) {
	return invoke[SaveReflectionResponse](ctx, c.cc, JournalService_SaveReflection_FullMethodName, in, opts)
}

func (c *journalServiceClient) GetReflection(ctx context.Context, in *GetReflectionRequest, opts ...grpc.CallOption) (*GetReflectionResponse, error) {
	return invoke[GetReflectionResponse](ctx, c.cc, JournalService_GetReflection_FullMethodName, in, opts)
}

func (c *journalServiceClient) ListReflections(ctx context.Context, in *ListReflectionsRequest, opts ...grpc.CallOption) (*ListReflectionsResponse, error) {
	return invoke[ListReflectionsResponse](ctx, c.cc, JournalService_ListReflections_FullMethodName, in, opts)
}

func (c *journalServiceClient) DeleteReflection(ctx context.Context, in *DeleteReflectionRequest, opts ...grpc.CallOption) (*DeleteReflectionResponse, error) {
	return invoke[DeleteReflectionResponse](ctx, c.cc, JournalService_DeleteReflection_FullMethodName, in, opts)
}

func (c *journalServiceClient) RestoreReflection(ctx context.Context, in *RestoreReflectionRequest, opts ...grpc.CallOption) (*RestoreReflectionResponse, error) {
	return invoke[RestoreReflectionResponse](ctx, c.cc, JournalService_RestoreReflection_FullMethodName, in, opts)
}

func (c *journalServiceClient) GetArchiveUploadURL(ctx context.Context, in *GetArchiveUploadURLRequest, opts ...grpc.CallOption) (*GetArchiveUploadURLResponse, error) {
	return invoke[GetArchiveUploadURLResponse](ctx, c.cc, JournalService_GetArchiveUploadURL_FullMethodName, in, opts)
}

func (c *journalServiceClient) GetArchiveDownloadURL(ctx context.Context, in *GetArchiveDownloadURLRequest, opts ...grpc.CallOption) (*GetArchiveDownloadURLResponse, error) {
	return invoke[GetArchiveDownloadURLResponse](ctx, c.cc, JournalService_GetArchiveDownloadURL_FullMethodName, in, opts)
}

// JournalServiceServer is the server API for JournalService. Implementations
// must embed UnimplementedJournalServiceServer.
type JournalServiceServer interface {
	RegisterUser(context.Context, *RegisterUserRequest) (*RegisterUserResponse, error)
	GetSalt(context.Context, *GetSaltRequest) (*GetSaltResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error)
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	GetProfile(context.Context, *GetProfileRequest) (*GetProfileResponse, error)
	UpdateProfile(context.Context, *UpdateProfileRequest) (*UpdateProfileResponse, error)
	SaveReflection(context.Context, *SaveReflectionRequest) (*SaveReflectionResponse, error)
	GetReflection(context.Context, *GetReflectionRequest) (*GetReflectionResponse, error)
	ListReflections(context.Context, *ListReflectionsRequest) (*ListReflectionsResponse, error)
	DeleteReflection(context.Context, *DeleteReflectionRequest) (*DeleteReflectionResponse, error)
	RestoreReflection(context.Context, *RestoreReflectionRequest) (*RestoreReflectionResponse, error)
	GetArchiveUploadURL(context.Context, *GetArchiveUploadURLRequest) (*GetArchiveUploadURLResponse, error)
	GetArchiveDownloadURL(context.Context, *GetArchiveDownloadURLRequest) (*GetArchiveDownloadURLResponse, error)
	mustEmbedUnimplementedJournalServiceServer()
}

// UnimplementedJournalServiceServer answers every method with Unimplemented.
type UnimplementedJournalServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedJournalServiceServer) RegisterUser(context.Context, *RegisterUserRequest) (*RegisterUserResponse, error) {
	return nil, unimplemented("RegisterUser")
}
func (UnimplementedJournalServiceServer) GetSalt(context.Context, *GetSaltRequest) (*GetSaltResponse, error) {
	return nil, unimplemented("GetSalt")
}
func (UnimplementedJournalServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, unimplemented("Login")
}
func (UnimplementedJournalServiceServer) RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error) {
	return nil, unimplemented("RefreshToken")
}
func (UnimplementedJournalServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, unimplemented("Ping")
}
func (UnimplementedJournalServiceServer) GetProfile(context.Context, *GetProfileRequest) (*GetProfileResponse, error) {
	return nil, unimplemented("GetProfile")
}
func (UnimplementedJournalServiceServer) UpdateProfile(context.Context, *UpdateProfileRequest) (*UpdateProfileResponse, error) {
	return nil, unimplemented("UpdateProfile")
}
func (UnimplementedJournalServiceServer) SaveReflection(context.Context, *SaveReflectionRequest) (*SaveReflectionResponse, error) {
	return nil, unimplemented("SaveReflection")
}
func (UnimplementedJournalServiceServer) GetReflection(context.Context, *GetReflectionRequest) (*GetReflectionResponse, error) {
	return nil, unimplemented("GetReflection")
}
func (UnimplementedJournalServiceServer) ListReflections(context.Context, *ListReflectionsRequest) (*ListReflectionsResponse, error) {
	return nil, unimplemented("ListReflections")
}
func (UnimplementedJournalServiceServer) DeleteReflection(context.Context, *DeleteReflectionRequest) (*DeleteReflectionResponse, error) {
	return nil, unimplemented("DeleteReflection")
}
func (UnimplementedJournalServiceServer) RestoreReflection(context.Context, *RestoreReflectionRequest) (*RestoreReflectionResponse, error) {
	return nil, unimplemented("RestoreReflection")
}
func (UnimplementedJournalServiceServer) GetArchiveUploadURL(context.Context, *GetArchiveUploadURLRequest) (*GetArchiveUploadURLResponse, error) {
	return nil, unimplemented("GetArchiveUploadURL")
}
func (UnimplementedJournalServiceServer) GetArchiveDownloadURL(context.Context, *GetArchiveDownloadURLRequest) (*GetArchiveDownloadURLResponse, error) {
	return nil, unimplemented("GetArchiveDownloadURL")
}
func (UnimplementedJournalServiceServer) mustEmbedUnimplementedJournalServiceServer() {}

func RegisterJournalServiceServer(s grpc.ServiceRegistrar, srv JournalServiceServer) {
	s.RegisterService(&JournalService_ServiceDesc, srv)
}

// unary adapts a typed server method to a grpc.MethodDesc handler.
func unary[Req any, Resp any](fullMethod string, call func(JournalServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(JournalServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(JournalServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// JournalService_ServiceDesc is the grpc.ServiceDesc for JournalService.
var JournalService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*JournalServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RegisterUser", Handler: unary(JournalService_RegisterUser_FullMethodName, JournalServiceServer.RegisterUser)},
		{MethodName: "GetSalt", Handler: unary(JournalService_GetSalt_FullMethodName, JournalServiceServer.GetSalt)},
		{MethodName: "Login", Handler: unary(JournalService_Login_FullMethodName, JournalServiceServer.Login)},
		{MethodName: "RefreshToken", Handler: unary(JournalService_RefreshToken_FullMethodName, JournalServiceServer.RefreshToken)},
		{MethodName: "Ping", Handler: unary(JournalService_Ping_FullMethodName, JournalServiceServer.Ping)},
		{MethodName: "GetProfile", Handler: unary(JournalService_GetProfile_FullMethodName, JournalServiceServer.GetProfile)},
		{MethodName: "UpdateProfile", Handler: unary(JournalService_UpdateProfile_FullMethodName, JournalServiceServer.UpdateProfile)},
		{MethodName: "SaveReflection", Handler: unary(JournalService_SaveReflection_FullMethodName, JournalServiceServer.SaveReflection)},
		{MethodName: "GetReflection", Handler: unary(JournalService_GetReflection_FullMethodName, JournalServiceServer.GetReflection)},
		{MethodName: "ListReflections", Handler: unary(JournalService_ListReflections_FullMethodName, JournalServiceServer.ListReflections)},
		{MethodName: "DeleteReflection", Handler: unary(JournalService_DeleteReflection_FullMethodName, JournalServiceServer.DeleteReflection)},
		{MethodName: "RestoreReflection", Handler: unary(JournalService_RestoreReflection_FullMethodName, JournalServiceServer.RestoreReflection)},
		{MethodName: "GetArchiveUploadURL", Handler: unary(JournalService_GetArchiveUploadURL_FullMethodName, JournalServiceServer.GetArchiveUploadURL)},
		{MethodName: "GetArchiveDownloadURL", Handler: unary(JournalService_GetArchiveDownloadURL_FullMethodName, JournalServiceServer.GetArchiveDownloadURL)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/api/service.go",
}
