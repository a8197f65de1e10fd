package grpcutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syrec53/AeroplaneReservation/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"flight not found", domain.WithID(domain.ErrFlightNotFound, "FL999"), codes.NotFound},
		{"bad label", domain.WithID(domain.ErrInvalidSeatFormat, "3c3"), codes.InvalidArgument},
		{"seat taken", domain.WithID(domain.ErrSeatUnavailable, "3C"), codes.AlreadyExists},
		{"cancel in progress", domain.WithID(domain.ErrCancellationInProgress, "K7Q2MX"), codes.FailedPrecondition},
		{"seat already free", domain.WithID(domain.ErrSeatAlreadyFree, "3C"), codes.FailedPrecondition},
		{"full flight", domain.WithID(domain.ErrNoSeatsAvailable, "FL300"), codes.ResourceExhausted},
		{"corruption", domain.WithID(domain.ErrFlightDataCorruption, "FL999"), codes.Internal},
		{"unknown", errors.New("boom"), codes.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ToStatus(tt.err)
			assert.Equal(t, tt.code, status.Code(err))

			info, ok := InfoOf(err)
			require.True(t, ok)
			assert.Equal(t, ErrorDomain, info.GetDomain())
			assert.Equal(t, domain.KindOf(tt.err).String(), info.GetReason())
			assert.Equal(t, domain.IDOf(tt.err), info.GetMetadata()["id"])
		})
	}
}

func TestToStatus_PassesThrough(t *testing.T) {
	assert.NoError(t, ToStatus(nil))

	orig := status.Error(codes.Unavailable, "down")
	assert.Equal(t, orig, ToStatus(orig))
}

func TestString(t *testing.T) {
	s, err := structpb.NewStruct(map[string]interface{}{"pnr": "K7Q2MX", "rows": 3})
	require.NoError(t, err)

	assert.Equal(t, "K7Q2MX", String(s, "pnr"))
	assert.Equal(t, "", String(s, "rows"))
	assert.Equal(t, "", String(s, "missing"))
	assert.Equal(t, "", String(nil, "pnr"))
}
