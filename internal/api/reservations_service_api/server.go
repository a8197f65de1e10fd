package reservations_service_api

import (
	"context"

	"github.com/syrec53/AeroplaneReservation/internal/api/grpcutil"
	"github.com/syrec53/AeroplaneReservation/internal/domain"
	"github.com/syrec53/AeroplaneReservation/internal/service/reservation"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "airreservation.v1.ReservationsService"

type ReservationsServiceServer interface {
	BookSeat(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	CancelBooking(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	ViewReservation(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
}

// Server exposes reservation booking and cancellation over gRPC.
type Server struct {
	reservations reservation.ReservationUseCase
}

func NewServer(reservations reservation.ReservationUseCase) *Server {
	return &Server{reservations: reservations}
}

func Register(registrar grpc.ServiceRegistrar, srv ReservationsServiceServer) {
	registrar.RegisterService(&ServiceDesc, srv)
}

// BookSeat expects {"flight_id", "seat", "passenger_name"}; seat may be "AUTO".
func (s *Server) BookSeat(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r, err := s.reservations.BookSeat(ctx, reservation.BookSeatInput{
		FlightID:      grpcutil.String(req, "flight_id"),
		Seat:          grpcutil.String(req, "seat"),
		PassengerName: grpcutil.String(req, "passenger_name"),
	})
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	return toStruct(r)
}

// CancelBooking expects {"pnr"}.
func (s *Server) CancelBooking(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r, err := s.reservations.CancelBooking(ctx, grpcutil.String(req, "pnr"))
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	return toStruct(r)
}

// ViewReservation expects {"pnr"}.
func (s *Server) ViewReservation(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r, err := s.reservations.ViewReservation(ctx, grpcutil.String(req, "pnr"))
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	return toStruct(r)
}

func toStruct(r *domain.Reservation) (*structpb.Struct, error) {
	resp, err := structpb.NewStruct(grpcutil.ReservationValue(*r))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode reservation: %v", err)
	}
	return resp, nil
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ReservationsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "BookSeat", Handler: unaryHandler("BookSeat", ReservationsServiceServer.BookSeat)},
		{MethodName: "CancelBooking", Handler: unaryHandler("CancelBooking", ReservationsServiceServer.CancelBooking)},
		{MethodName: "ViewReservation", Handler: unaryHandler("ViewReservation", ReservationsServiceServer.ViewReservation)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "airreservation/v1/reservations.proto",
}

type method func(ReservationsServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// All methods share the Struct-in, Struct-out shape.
func unaryHandler(name string, call method) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	fullMethod := "/" + ServiceName + "/" + name
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ReservationsServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(ReservationsServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Client calls ReservationsService on a connection.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) BookSeat(ctx context.Context, flightID, seat, passengerName string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "BookSeat", map[string]interface{}{
		"flight_id":      flightID,
		"seat":           seat,
		"passenger_name": passengerName,
	}, opts...)
}

func (c *Client) CancelBooking(ctx context.Context, pnr string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "CancelBooking", map[string]interface{}{"pnr": pnr}, opts...)
}

func (c *Client) ViewReservation(ctx context.Context, pnr string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "ViewReservation", map[string]interface{}{"pnr": pnr}, opts...)
}

func (c *Client) invoke(ctx context.Context, name string, fields map[string]interface{}, opts ...grpc.CallOption) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+name, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
