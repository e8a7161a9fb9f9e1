package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "sendmoney.v1.TransferWizardService"

// Method names
const (
	MethodStartTransfer     = "StartTransfer"
	MethodDispatch          = "Dispatch"
	MethodGetTransfer       = "GetTransfer"
	MethodDiscardTransfer   = "DiscardTransfer"
	MethodListAccounts      = "ListAccounts"
	MethodGetTransferStatus = "GetTransferStatus"
)

// TransferWizardServer is the server API. Messages are google.protobuf.Struct
// documents; field names are listed in codec.go.
type TransferWizardServer interface {
	StartTransfer(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Dispatch(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetTransfer(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DiscardTransfer(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListAccounts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetTransferStatus(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(TransferWizardServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// ServiceDesc describes TransferWizardService for grpc.Server.RegisterService
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TransferWizardServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(MethodStartTransfer, TransferWizardServer.StartTransfer),
		unaryMethod(MethodDispatch, TransferWizardServer.Dispatch),
		unaryMethod(MethodGetTransfer, TransferWizardServer.GetTransfer),
		unaryMethod(MethodDiscardTransfer, TransferWizardServer.DiscardTransfer),
		unaryMethod(MethodListAccounts, TransferWizardServer.ListAccounts),
		unaryMethod(MethodGetTransferStatus, TransferWizardServer.GetTransferStatus),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sendmoney/v1/transfer_wizard.proto",
}

// RegisterTransferWizardServer registers srv on s
func RegisterTransferWizardServer(s grpc.ServiceRegistrar, srv TransferWizardServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func fullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

func unaryMethod(name string, call unaryCall) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(TransferWizardServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(TransferWizardServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
