package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophauth/internal/authrpc"
	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors onto gRPC status codes. Domain messages are
// passed through; anything unrecognised becomes a bare Internal.
func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidInput), errors.Is(err, common.ErrWeakPassword):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrEmailTaken):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrUnknownEmail),
		errors.Is(err, common.ErrWrongPassword),
		errors.Is(err, common.ErrAccountLocked),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func toAuthResponse(s *models.Session) *authrpc.AuthResponse {
	return &authrpc.AuthResponse{
		AccessToken: s.Token,
		User:        authrpc.User{FullName: s.User.FullName, Email: s.User.Email},
	}
}

func (s *GRPCServer) Register(ctx context.Context, req *authrpc.RegisterRequest) (*authrpc.AuthResponse, error) {

	if err := services.ValidateSignUp(req.FullName, req.Email, req.Password); err != nil {
		return nil, toStatus(err)
	}

	session, err := s.accounts.Register(ctx, req.FullName, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInternal) {
			s.logger.Error(ctx, "Registration failed", "email", req.Email, "error", err)
		} else {
			s.logger.Info(ctx, "Registration rejected", "email", req.Email, "reason", err.Error())
		}
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Registered", "email", session.User.Email)
	return toAuthResponse(session), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *authrpc.LoginRequest) (*authrpc.AuthResponse, error) {

	if err := services.ValidateSignIn(req.Email, req.Password); err != nil {
		return nil, toStatus(err)
	}

	session, err := s.accounts.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInternal) {
			s.logger.Error(ctx, "Login failed", "email", req.Email, "error", err)
		} else {
			s.logger.Info(ctx, "Login rejected", "email", req.Email, "reason", err.Error())
		}
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Logged in", "email", session.User.Email)
	return toAuthResponse(session), nil
}

func (s *GRPCServer) Profile(ctx context.Context, req *authrpc.ProfileRequest) (*authrpc.ProfileResponse, error) {

	accountID, ok := AccountIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	user, err := s.accounts.Profile(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrorInternal) {
			s.logger.Error(ctx, "Profile failed", "account_id", accountID, "error", err)
		}
		return nil, toStatus(err)
	}

	return &authrpc.ProfileResponse{User: authrpc.User{FullName: user.FullName, Email: user.Email}}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *authrpc.PingRequest) (*authrpc.PingResponse, error) {

	return &authrpc.PingResponse{Status: "OK"}, nil

}
