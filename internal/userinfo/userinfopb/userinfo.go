// Package userinfopb holds hand-maintained Go bindings for the user-info
// wire contract in userinfo.proto. The message structs carry protobuf
// struct tags, which is all the standard gRPC proto codec needs to marshal
// them; there is no protoc step in the build. Keep this file in sync with
// userinfo.proto when the contract changes.
package userinfopb

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
)

// FullMethodBlogUserInfo is the wire name of the single RPC.
const FullMethodBlogUserInfo = "/userinfo.v1.UserInfoService/BlogUserInfo"

// UserInfoRequest asks for the display identity of one user.
type UserInfoRequest struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *UserInfoRequest) Reset()         { *m = UserInfoRequest{} }
func (m *UserInfoRequest) String() string { return fmt.Sprintf("UserInfoRequest{id:%q}", m.Id) }
func (*UserInfoRequest) ProtoMessage()    {}

// UserInfoResponse carries the resolved display identity.
type UserInfoResponse struct {
	Name   string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Avatar string `protobuf:"bytes,2,opt,name=avatar,proto3" json:"avatar,omitempty"`
}

func (m *UserInfoResponse) Reset() { *m = UserInfoResponse{} }
func (m *UserInfoResponse) String() string {
	return fmt.Sprintf("UserInfoResponse{name:%q avatar:%q}", m.Name, m.Avatar)
}
func (*UserInfoResponse) ProtoMessage() {}

// UserInfoServiceClient is the client API for UserInfoService.
type UserInfoServiceClient interface {
	BlogUserInfo(ctx context.Context, in *UserInfoRequest, opts ...grpc.CallOption) (*UserInfoResponse, error)
}

type userInfoServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewUserInfoServiceClient creates a client over an established connection.
func NewUserInfoServiceClient(cc grpc.ClientConnInterface) UserInfoServiceClient {
	return &userInfoServiceClient{cc: cc}
}

func (c *userInfoServiceClient) BlogUserInfo(ctx context.Context, in *UserInfoRequest, opts ...grpc.CallOption) (*UserInfoResponse, error) {
	out := new(UserInfoResponse)
	if err := c.cc.Invoke(ctx, FullMethodBlogUserInfo, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// UserInfoServiceServer is the server API for UserInfoService. The real
// server lives in the user service; this interface exists so tests can run
// an in-process fake.
type UserInfoServiceServer interface {
	BlogUserInfo(context.Context, *UserInfoRequest) (*UserInfoResponse, error)
}

// RegisterUserInfoServiceServer registers an implementation with a gRPC server.
func RegisterUserInfoServiceServer(s grpc.ServiceRegistrar, srv UserInfoServiceServer) {
	s.RegisterService(&UserInfoService_ServiceDesc, srv)
}

func _UserInfoService_BlogUserInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UserInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserInfoServiceServer).BlogUserInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FullMethodBlogUserInfo,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UserInfoServiceServer).BlogUserInfo(ctx, req.(*UserInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// UserInfoService_ServiceDesc is the grpc.ServiceDesc for UserInfoService.
var UserInfoService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "userinfo.v1.UserInfoService",
	HandlerType: (*UserInfoServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "BlogUserInfo",
			Handler:    _UserInfoService_BlogUserInfo_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "userinfo.proto",
}
