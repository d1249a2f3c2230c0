package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client AccountService 的型別化客戶端
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Deposit 存款，回傳最新餘額
func (c *Client) Deposit(ctx context.Context, amount uint64, opts ...grpc.CallOption) (uint64, error) {
	out := new(wrapperspb.UInt64Value)
	if err := c.cc.Invoke(ctx, depositMethod, wrapperspb.UInt64(amount), out, opts...); err != nil {
		return 0, err
	}
	return out.GetValue(), nil
}

// Withdraw 提款，回傳最新餘額
func (c *Client) Withdraw(ctx context.Context, amount uint64, opts ...grpc.CallOption) (uint64, error) {
	out := new(wrapperspb.UInt64Value)
	if err := c.cc.Invoke(ctx, withdrawMethod, wrapperspb.UInt64(amount), out, opts...); err != nil {
		return 0, err
	}
	return out.GetValue(), nil
}

// PrintStatement 列印對帳單，回傳每一行 (標題在前)
func (c *Client) PrintStatement(ctx context.Context, opts ...grpc.CallOption) ([]string, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, printStatementMethod, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(out.GetValues()))
	for _, v := range out.GetValues() {
		lines = append(lines, v.GetStringValue())
	}
	return lines, nil
}

// GetBalance 取得目前餘額
func (c *Client) GetBalance(ctx context.Context, opts ...grpc.CallOption) (uint64, error) {
	out := new(wrapperspb.UInt64Value)
	if err := c.cc.Invoke(ctx, getBalanceMethod, &emptypb.Empty{}, out, opts...); err != nil {
		return 0, err
	}
	return out.GetValue(), nil
}
