package v1alpha1

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// CodecName is the content-subtype the equipment service speaks
const CodecName = "json"

// Full method names
const (
	EquipmentService_Generate_FullMethodName      = "/equipment.v1alpha1.EquipmentService/Generate"
	EquipmentService_ListHistory_FullMethodName   = "/equipment.v1alpha1.EquipmentService/ListHistory"
	EquipmentService_ClearHistory_FullMethodName  = "/equipment.v1alpha1.EquipmentService/ClearHistory"
	EquipmentService_ListTemplates_FullMethodName = "/equipment.v1alpha1.EquipmentService/ListTemplates"
)

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// jsonCodec carries the plain Go messages in this package over gRPC
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}

// EquipmentServiceServer is the server API for the equipment service
type EquipmentServiceServer interface {
	Generate(context.Context, *GenerateRequest) (*GenerateResponse, error)
	ListHistory(context.Context, *ListHistoryRequest) (*ListHistoryResponse, error)
	ClearHistory(context.Context, *ClearHistoryRequest) (*ClearHistoryResponse, error)
	ListTemplates(context.Context, *ListTemplatesRequest) (*ListTemplatesResponse, error)
}

// RegisterEquipmentServiceServer registers srv with the gRPC server
func RegisterEquipmentServiceServer(s grpc.ServiceRegistrar, srv EquipmentServiceServer) {
	s.RegisterService(&EquipmentService_ServiceDesc, srv)
}

// EquipmentService_ServiceDesc is the grpc.ServiceDesc for the equipment service
var EquipmentService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "equipment.v1alpha1.EquipmentService",
	HandlerType: (*EquipmentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Generate", Handler: _EquipmentService_Generate_Handler},
		{MethodName: "ListHistory", Handler: _EquipmentService_ListHistory_Handler},
		{MethodName: "ClearHistory", Handler: _EquipmentService_ClearHistory_Handler},
		{MethodName: "ListTemplates", Handler: _EquipmentService_ListTemplates_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "equipment/v1alpha1/service.go",
}

// unary adapts a typed method into a grpc.MethodDesc handler
func unary[Req any, Resp any](
	fullMethod string,
	call func(EquipmentServiceServer, context.Context, *Req) (*Resp, error),
) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(EquipmentServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(EquipmentServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var (
	_EquipmentService_Generate_Handler = unary(EquipmentService_Generate_FullMethodName,
		EquipmentServiceServer.Generate)
	_EquipmentService_ListHistory_Handler = unary(EquipmentService_ListHistory_FullMethodName,
		EquipmentServiceServer.ListHistory)
	_EquipmentService_ClearHistory_Handler = unary(EquipmentService_ClearHistory_FullMethodName,
		EquipmentServiceServer.ClearHistory)
	_EquipmentService_ListTemplates_Handler = unary(EquipmentService_ListTemplates_FullMethodName,
		EquipmentServiceServer.ListTemplates)
)

// EquipmentServiceClient is the client API for the equipment service
type EquipmentServiceClient interface {
	Generate(ctx context.Context, in *GenerateRequest, opts ...grpc.CallOption) (*GenerateResponse, error)
	ListHistory(ctx context.Context, in *ListHistoryRequest, opts ...grpc.CallOption) (*ListHistoryResponse, error)
	ClearHistory(ctx context.Context, in *ClearHistoryRequest, opts ...grpc.CallOption) (*ClearHistoryResponse, error)
	ListTemplates(ctx context.Context, in *ListTemplatesRequest, opts ...grpc.CallOption) (*ListTemplatesResponse, error)
}

type equipmentServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewEquipmentServiceClient creates a client that always negotiates the JSON codec
func NewEquipmentServiceClient(cc grpc.ClientConnInterface) EquipmentServiceClient {
	return &equipmentServiceClient{cc: cc}
}

func (c *equipmentServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *equipmentServiceClient) Generate(
	ctx context.Context,
	in *GenerateRequest,
	opts ...grpc.CallOption,
) (*GenerateResponse, error) {
	out := new(GenerateResponse)
	if err := c.invoke(ctx, EquipmentService_Generate_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *equipmentServiceClient) ListHistory(
	ctx context.Context,
	in *ListHistoryRequest,
	opts ...grpc.CallOption,
) (*ListHistoryResponse, error) {
	out := new(ListHistoryResponse)
	if err := c.invoke(ctx, EquipmentService_ListHistory_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *equipmentServiceClient) ClearHistory(
	ctx context.Context,
	in *ClearHistoryRequest,
	opts ...grpc.CallOption,
) (*ClearHistoryResponse, error) {
	out := new(ClearHistoryResponse)
	if err := c.invoke(ctx, EquipmentService_ClearHistory_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *equipmentServiceClient) ListTemplates(
	ctx context.Context,
	in *ListTemplatesRequest,
	opts ...grpc.CallOption,
) (*ListTemplatesResponse, error) {
	out := new(ListTemplatesResponse)
	if err := c.invoke(ctx, EquipmentService_ListTemplates_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
