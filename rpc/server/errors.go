package server

import (
	"github.com/zllovesuki/IdeapadManager/system/acpicall"
	"github.com/zllovesuki/IdeapadManager/system/battery"
	"github.com/zllovesuki/IdeapadManager/system/performance"

	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errNotInitialized = status.Error(codes.Unavailable, "server is not initialized")

// toStatus maps controller errors to gRPC status codes
func toStatus(err error) error {
	if err == nil {
		return nil
	}

	var (
		notLoaded  *acpicall.KernelModuleNotLoadedError
		notFound   *acpicall.MethodNotFoundError
		mismatched *performance.MismatchedError
		invalid    *performance.InvalidModeError
	)

	switch {
	case errors.Is(err, battery.ErrConservationEnabled), errors.Is(err, battery.ErrRapidChargeEnabled):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, battery.ErrInvalidMode), errors.Is(err, performance.ErrInvalidMode):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.As(err, &notLoaded):
		return status.Error(codes.Unavailable, err.Error())
	case errors.As(err, &notFound):
		return status.Error(codes.Unimplemented, err.Error())
	case errors.As(err, &mismatched), errors.As(err, &invalid):
		return status.Error(codes.DataLoss, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
