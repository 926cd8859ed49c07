package grpcv1

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "endpointlog.v1.LogService"

type LogServiceServer interface {
	CreateLog(context.Context, *CreateLogRequest) (*CreateLogResponse, error)
	GetLogs(context.Context, *GetLogsRequest) (*GetLogsResponse, error)
	DeleteLog(context.Context, *DeleteLogRequest) (*DeleteLogResponse, error)
	CreateEndpoint(context.Context, *CreateEndpointRequest) (*CreateEndpointResponse, error)
	DeleteEndpoint(context.Context, *DeleteEndpointRequest) (*DeleteEndpointResponse, error)
}

func RegisterLogServiceServer(s grpc.ServiceRegistrar, srv LogServiceServer) {
	s.RegisterService(&logServiceDesc, srv)
}

// unaryHandler adapts a typed method to grpc.MethodHandler.
func unaryHandler[Req any, Resp any](method string, call func(LogServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(LogServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/" + ServiceName + "/" + method,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(LogServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var logServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateLog",
			Handler:    unaryHandler("CreateLog", LogServiceServer.CreateLog),
		},
		{
			MethodName: "GetLogs",
			Handler:    unaryHandler("GetLogs", LogServiceServer.GetLogs),
		},
		{
			MethodName: "DeleteLog",
			Handler:    unaryHandler("DeleteLog", LogServiceServer.DeleteLog),
		},
		{
			MethodName: "CreateEndpoint",
			Handler:    unaryHandler("CreateEndpoint", LogServiceServer.CreateEndpoint),
		},
		{
			MethodName: "DeleteEndpoint",
			Handler:    unaryHandler("DeleteEndpoint", LogServiceServer.DeleteEndpoint),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "endpointlog/v1/log_service.json",
}

// LogServiceClient calls the service with the JSON codec.
type LogServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewLogServiceClient(cc grpc.ClientConnInterface) *LogServiceClient {
	return &LogServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *LogServiceClient) CreateLog(ctx context.Context, in *CreateLogRequest, opts ...grpc.CallOption) (*CreateLogResponse, error) {
	return invoke[CreateLogResponse](ctx, c.cc, "CreateLog", in, opts...)
}

func (c *LogServiceClient) GetLogs(ctx context.Context, in *GetLogsRequest, opts ...grpc.CallOption) (*GetLogsResponse, error) {
	return invoke[GetLogsResponse](ctx, c.cc, "GetLogs", in, opts...)
}

func (c *LogServiceClient) DeleteLog(ctx context.Context, in *DeleteLogRequest, opts ...grpc.CallOption) (*DeleteLogResponse, error) {
	return invoke[DeleteLogResponse](ctx, c.cc, "DeleteLog", in, opts...)
}

func (c *LogServiceClient) CreateEndpoint(ctx context.Context, in *CreateEndpointRequest, opts ...grpc.CallOption) (*CreateEndpointResponse, error) {
	return invoke[CreateEndpointResponse](ctx, c.cc, "CreateEndpoint", in, opts...)
}

func (c *LogServiceClient) DeleteEndpoint(ctx context.Context, in *DeleteEndpointRequest, opts ...grpc.CallOption) (*DeleteEndpointResponse, error) {
	return invoke[DeleteEndpointResponse](ctx, c.cc, "DeleteEndpoint", in, opts...)
}
