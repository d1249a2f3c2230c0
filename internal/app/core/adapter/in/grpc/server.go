package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/JoeShih716/go-bank-kata/internal/app/core/domain"
	"github.com/JoeShih716/go-bank-kata/internal/app/core/usecase"
)

type GrpcServer struct {
	account *usecase.Account
}

func NewGrpcServer(account *usecase.Account) *GrpcServer {
	return &GrpcServer{
		account: account,
	}
}

func (s *GrpcServer) Deposit(ctx context.Context, req *wrapperspb.UInt64Value) (*wrapperspb.UInt64Value, error) {
	balance, err := s.account.Deposit(req.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.UInt64(balance), nil
}

func (s *GrpcServer) Withdraw(ctx context.Context, req *wrapperspb.UInt64Value) (*wrapperspb.UInt64Value, error) {
	balance, err := s.account.Withdraw(req.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.UInt64(balance), nil
}

func (s *GrpcServer) PrintStatement(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	lines := s.account.PrintStatement()
	values := make([]*structpb.Value, 0, len(lines))
	for _, line := range lines {
		values = append(values, structpb.NewStringValue(line))
	}
	return &structpb.ListValue{Values: values}, nil
}

func (s *GrpcServer) GetBalance(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.UInt64Value, error) {
	return wrapperspb.UInt64(s.account.Balance()), nil
}

// toStatus 將 domain 錯誤轉為 gRPC status
func toStatus(err error) error {
	switch {
	case errors.Is(err, domain.ErrUnsupportedOperation):
		return status.Error(codes.Unimplemented, err.Error())
	case errors.Is(err, domain.ErrInsufficientBalance):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrAmountMustBePositive):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrBalanceOverflow):
		return status.Error(codes.OutOfRange, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

var _ AccountServiceServer = (*GrpcServer)(nil)
