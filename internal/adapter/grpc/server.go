package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/sendmoney-backend/internal/domain"
	"github.com/simaogato/sendmoney-backend/internal/session"
	"github.com/simaogato/sendmoney-backend/internal/usecase/dashboard"
	"github.com/simaogato/sendmoney-backend/internal/usecase/transfer"
)

// Server implements the TransferWizardService gRPC server
type Server struct {
	TransferService  *transfer.Service
	DashboardService *dashboard.DashboardService
}

var _ TransferWizardServer = (*Server)(nil)

// NewServer creates a new gRPC server instance
func NewServer(transferService *transfer.Service, dashboardService *dashboard.DashboardService) *Server {
	return &Server{
		TransferService:  transferService,
		DashboardService: dashboardService,
	}
}

// StartTransfer handles the StartTransfer RPC
func (s *Server) StartTransfer(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	view, err := s.TransferService.Start(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return encodeView(view)
}

// Dispatch handles the Dispatch RPC
func (s *Server) Dispatch(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	// Parse wizard ID
	id, err := uuidField(req, fieldWizardID)
	if err != nil {
		return nil, err
	}

	// Decode the event
	ev, err := decodeEvent(req)
	if err != nil {
		return nil, err
	}

	view, err := s.TransferService.Dispatch(ctx, id, ev)
	if err != nil {
		return nil, mapError(err)
	}
	return encodeView(view)
}

// GetTransfer handles the GetTransfer RPC
func (s *Server) GetTransfer(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := uuidField(req, fieldWizardID)
	if err != nil {
		return nil, err
	}

	view, err := s.TransferService.Get(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return encodeView(view)
}

// DiscardTransfer handles the DiscardTransfer RPC
func (s *Server) DiscardTransfer(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := uuidField(req, fieldWizardID)
	if err != nil {
		return nil, err
	}

	if err := s.TransferService.Discard(ctx, id); err != nil {
		return nil, mapError(err)
	}
	return &structpb.Struct{}, nil
}

// ListAccounts handles the ListAccounts RPC
func (s *Server) ListAccounts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	overview, err := s.DashboardService.GetOverview(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	out, err := encodeOverview(overview)
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

// GetTransferStatus handles the GetTransferStatus RPC
func (s *Server) GetTransferStatus(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	transferID := stringField(req, fieldTransferID)
	if transferID == "" {
		return nil, status.Error(codes.InvalidArgument, "transfer_id is required")
	}

	tr, err := s.TransferService.Status(ctx, transferID)
	if err != nil {
		return nil, mapError(err)
	}

	out, err := structpb.NewStruct(encodeRequest(tr))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode transfer: %v", err)
	}
	return out, nil
}

var errorCodes = []struct {
	code codes.Code
	errs []error
}{
	{codes.Unauthenticated, []error{session.ErrInvalidToken}},
	{codes.PermissionDenied, []error{domain.ErrSessionForbidden}},
	{codes.NotFound, []error{domain.ErrAccountNotFound, domain.ErrTransferNotFound, domain.ErrSessionNotFound}},
	{codes.InvalidArgument, []error{
		domain.ErrMissingRecipientField,
		domain.ErrInvalidAmount,
		domain.ErrInvalidPIN,
		domain.ErrInvalidCurrency,
		domain.ErrInvalidRate,
		domain.ErrInvalidAccount,
		domain.ErrUnknownField,
	}},
	{codes.FailedPrecondition, []error{
		domain.ErrInvalidTransition,
		domain.ErrFieldNotEditable,
		domain.ErrAlreadySubmitted,
		domain.ErrNoSourceAccount,
		domain.ErrInsufficientBalance,
		domain.ErrInsufficientBalanceAllAccounts,
		domain.ErrRateUnavailable,
	}},
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	for _, group := range errorCodes {
		for _, target := range group.errs {
			if errors.Is(err, target) {
				return status.Error(group.code, err.Error())
			}
		}
	}

	// Default to Internal error for unknown errors
	return status.Errorf(codes.Internal, "%s", err.Error())
}
