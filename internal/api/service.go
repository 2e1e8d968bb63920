package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

const ServiceName = "wanttogo.TravelService"

// Full method names, as seen by interceptors.
const (
	MethodRegister        = "/" + ServiceName + "/Register"
	MethodLogin           = "/" + ServiceName + "/Login"
	MethodLogout          = "/" + ServiceName + "/Logout"
	MethodViewDestination = "/" + ServiceName + "/ViewDestination"
	MethodAddToList       = "/" + ServiceName + "/AddToList"
	MethodViewList        = "/" + ServiceName + "/ViewList"
	MethodPing            = "/" + ServiceName + "/Ping"
)

// TravelServiceServer is implemented by the server transport.
type TravelServiceServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Logout(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	ViewDestination(context.Context, *ViewDestinationRequest) (*Destination, error)
	AddToList(context.Context, *AddToListRequest) (*AddToListResponse, error)
	ViewList(context.Context, *emptypb.Empty) (*ViewListResponse, error)
	Ping(context.Context, *emptypb.Empty) (*PingResponse, error)
}

func RegisterTravelServiceServer(s grpc.ServiceRegistrar, srv TravelServiceServer) {
	s.RegisterService(&TravelServiceDesc, srv)
}

// unary builds a grpc.MethodDesc handler for a method taking Req.
func unary[Req any, Resp any](fullMethod string, call func(TravelServiceServer, context.Context, *Req) (Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(TravelServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(TravelServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var TravelServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TravelServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: unary(MethodRegister, TravelServiceServer.Register)},
		{MethodName: "Login", Handler: unary(MethodLogin, TravelServiceServer.Login)},
		{MethodName: "Logout", Handler: unary(MethodLogout, TravelServiceServer.Logout)},
		{MethodName: "ViewDestination", Handler: unary(MethodViewDestination, TravelServiceServer.ViewDestination)},
		{MethodName: "AddToList", Handler: unary(MethodAddToList, TravelServiceServer.AddToList)},
		{MethodName: "ViewList", Handler: unary(MethodViewList, TravelServiceServer.ViewList)},
		{MethodName: "Ping", Handler: unary(MethodPing, TravelServiceServer.Ping)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "wanttogo/travel.json",
}

// TravelServiceClient is the client side of TravelService.
type TravelServiceClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	Logout(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	ViewDestination(ctx context.Context, in *ViewDestinationRequest, opts ...grpc.CallOption) (*Destination, error)
	AddToList(ctx context.Context, in *AddToListRequest, opts ...grpc.CallOption) (*AddToListResponse, error)
	ViewList(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ViewListResponse, error)
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*PingResponse, error)
}

type travelServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewTravelServiceClient returns a client that always uses the JSON codec.
func NewTravelServiceClient(cc grpc.ClientConnInterface) TravelServiceClient {
	return &travelServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *travelServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return invoke[RegisterResponse](ctx, c.cc, MethodRegister, in, opts)
}

func (c *travelServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, MethodLogin, in, opts)
}

func (c *travelServiceClient) Logout(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, MethodLogout, in, opts)
}

func (c *travelServiceClient) ViewDestination(ctx context.Context, in *ViewDestinationRequest, opts ...grpc.CallOption) (*Destination, error) {
	return invoke[Destination](ctx, c.cc, MethodViewDestination, in, opts)
}

func (c *travelServiceClient) AddToList(ctx context.Context, in *AddToListRequest, opts ...grpc.CallOption) (*AddToListResponse, error) {
	return invoke[AddToListResponse](ctx, c.cc, MethodAddToList, in, opts)
}

func (c *travelServiceClient) ViewList(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ViewListResponse, error) {
	return invoke[ViewListResponse](ctx, c.cc, MethodViewList, in, opts)
}

func (c *travelServiceClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, MethodPing, in, opts)
}
