package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName gRPC 服務名稱
// 訊息全部使用 protobuf well-known types，不需要額外產生程式碼
const ServiceName = "bankkata.v1.AccountService"

const (
	depositMethod        = "/" + ServiceName + "/Deposit"
	withdrawMethod       = "/" + ServiceName + "/Withdraw"
	printStatementMethod = "/" + ServiceName + "/PrintStatement"
	getBalanceMethod     = "/" + ServiceName + "/GetBalance"
)

// AccountServiceServer 是 AccountService 的服務端介面
type AccountServiceServer interface {
	// Deposit 存款，回傳最新餘額
	Deposit(ctx context.Context, req *wrapperspb.UInt64Value) (*wrapperspb.UInt64Value, error)
	// Withdraw 提款，回傳最新餘額
	Withdraw(ctx context.Context, req *wrapperspb.UInt64Value) (*wrapperspb.UInt64Value, error)
	// PrintStatement 列印對帳單，回傳每一行
	PrintStatement(ctx context.Context, req *emptypb.Empty) (*structpb.ListValue, error)
	// GetBalance 取得目前餘額
	GetBalance(ctx context.Context, req *emptypb.Empty) (*wrapperspb.UInt64Value, error)
}

// ServiceDesc AccountService 的服務描述
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AccountServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Deposit",
			Handler: unaryHandler(depositMethod, func(s AccountServiceServer, ctx context.Context, req *wrapperspb.UInt64Value) (*wrapperspb.UInt64Value, error) {
				return s.Deposit(ctx, req)
			}),
		},
		{
			MethodName: "Withdraw",
			Handler: unaryHandler(withdrawMethod, func(s AccountServiceServer, ctx context.Context, req *wrapperspb.UInt64Value) (*wrapperspb.UInt64Value, error) {
				return s.Withdraw(ctx, req)
			}),
		},
		{
			MethodName: "PrintStatement",
			Handler: unaryHandler(printStatementMethod, func(s AccountServiceServer, ctx context.Context, req *emptypb.Empty) (*structpb.ListValue, error) {
				return s.PrintStatement(ctx, req)
			}),
		},
		{
			MethodName: "GetBalance",
			Handler: unaryHandler(getBalanceMethod, func(s AccountServiceServer, ctx context.Context, req *emptypb.Empty) (*wrapperspb.UInt64Value, error) {
				return s.GetBalance(ctx, req)
			}),
		},
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterAccountServiceServer 註冊服務
func RegisterAccountServiceServer(s grpc.ServiceRegistrar, srv AccountServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// unaryHandler 將型別化的呼叫包成 grpc.MethodHandler (解碼請求、套用攔截器)
func unaryHandler[Req any, Resp any](
	fullMethod string,
	call func(AccountServiceServer, context.Context, *Req) (*Resp, error),
) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AccountServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AccountServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
