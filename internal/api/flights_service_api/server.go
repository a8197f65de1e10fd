package flights_service_api

import (
	"context"

	"github.com/syrec53/AeroplaneReservation/internal/api/grpcutil"
	"github.com/syrec53/AeroplaneReservation/internal/service/flights"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "airreservation.v1.FlightsService"

type FlightsServiceServer interface {
	ListFlights(ctx context.Context, in *emptypb.Empty) (*structpb.Struct, error)
	GetFlight(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
}

// Server exposes the flight catalog over gRPC.
type Server struct {
	flights flights.FlightUseCase
}

func NewServer(flights flights.FlightUseCase) *Server {
	return &Server{flights: flights}
}

func Register(registrar grpc.ServiceRegistrar, srv FlightsServiceServer) {
	registrar.RegisterService(&ServiceDesc, srv)
}

// ListFlights responds with {"flights": [...]} in catalog order.
func (s *Server) ListFlights(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	list, err := s.flights.List(ctx)
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	items := make([]interface{}, 0, len(list))
	for _, f := range list {
		items = append(items, grpcutil.FlightValue(f))
	}
	resp, err := structpb.NewStruct(map[string]interface{}{"flights": items})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode flights: %v", err)
	}
	return resp, nil
}

// GetFlight expects {"id": "FL100"}.
func (s *Server) GetFlight(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	flight, err := s.flights.GetByID(ctx, grpcutil.String(req, "id"))
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	resp, err := structpb.NewStruct(grpcutil.FlightValue(*flight))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode flight: %v", err)
	}
	return resp, nil
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FlightsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListFlights", Handler: listFlightsHandler},
		{MethodName: "GetFlight", Handler: getFlightHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "airreservation/v1/flights.proto",
}

func listFlightsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FlightsServiceServer).ListFlights(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/ListFlights"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FlightsServiceServer).ListFlights(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func getFlightHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FlightsServiceServer).GetFlight(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/GetFlight"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FlightsServiceServer).GetFlight(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// Client calls FlightsService on a connection.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) ListFlights(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/ListFlights", &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetFlight(ctx context.Context, id string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/GetFlight", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
