package grpcutil

import (
	"errors"

	"github.com/syrec53/AeroplaneReservation/internal/domain"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorDomain is reported in the ErrorInfo detail of every domain error.
const ErrorDomain = "airreservation"

func codeFor(err error) codes.Code {
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		return codes.NotFound
	case domain.KindInvalidInput:
		return codes.InvalidArgument
	case domain.KindConflict:
		if errors.Is(err, domain.ErrSeatUnavailable) || errors.Is(err, domain.ErrDuplicatePNR) {
			return codes.AlreadyExists
		}
		return codes.FailedPrecondition
	case domain.KindExhausted:
		return codes.ResourceExhausted
	case domain.KindInvariantViolation:
		return codes.Internal
	default:
		return codes.Unknown
	}
}

// ToStatus converts a service error into a gRPC status error. The error kind
// and offending identifier travel in an ErrorInfo detail.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	st := status.New(codeFor(err), err.Error())
	info := &errdetails.ErrorInfo{
		Reason: domain.KindOf(err).String(),
		Domain: ErrorDomain,
	}
	if id := domain.IDOf(err); id != "" {
		info.Metadata = map[string]string{"id": id}
	}
	if detailed, derr := st.WithDetails(info); derr == nil {
		st = detailed
	}
	return st.Err()
}

// InfoOf extracts the ErrorInfo detail from a status error returned by ToStatus.
func InfoOf(err error) (*errdetails.ErrorInfo, bool) {
	st, ok := status.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}
