package grpc

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client calls TransferWizardService over a client connection
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a new Client
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) invoke(ctx context.Context, method string, in map[string]any, opts ...grpc.CallOption) (*structpb.Struct, error) {
	req, err := structpb.NewStruct(in)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", method, err)
	}

	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod(method), req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// StartTransfer opens a new wizard
func (c *Client) StartTransfer(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodStartTransfer, map[string]any{}, opts...)
}

// Dispatch sends one event. event is the event name; args carries its fields
// (field/value, amount, account_id or pin).
func (c *Client) Dispatch(ctx context.Context, wizardID uuid.UUID, event string, args map[string]string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	in := map[string]any{
		fieldWizardID: wizardID.String(),
		fieldEvent:    event,
	}
	for k, v := range args {
		in[k] = v
	}
	return c.invoke(ctx, MethodDispatch, in, opts...)
}

// GetTransfer reads the current wizard state
func (c *Client) GetTransfer(ctx context.Context, wizardID uuid.UUID, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGetTransfer, map[string]any{fieldWizardID: wizardID.String()}, opts...)
}

// DiscardTransfer drops a wizard
func (c *Client) DiscardTransfer(ctx context.Context, wizardID uuid.UUID, opts ...grpc.CallOption) error {
	_, err := c.invoke(ctx, MethodDiscardTransfer, map[string]any{fieldWizardID: wizardID.String()}, opts...)
	return err
}

// ListAccounts returns the accounts overview
func (c *Client) ListAccounts(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodListAccounts, map[string]any{}, opts...)
}

// GetTransferStatus reads a submitted transfer
func (c *Client) GetTransferStatus(ctx context.Context, transferID string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGetTransferStatus, map[string]any{fieldTransferID: transferID}, opts...)
}
