package flights_service_api

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syrec53/AeroplaneReservation/internal/domain"
	"github.com/syrec53/AeroplaneReservation/internal/inventory"
	"github.com/syrec53/AeroplaneReservation/internal/service/flights"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func startServer(t *testing.T) (*Client, *inventory.Catalog) {
	t.Helper()

	catalog, err := inventory.NewCatalog([]domain.FlightSpec{
		{ID: "FL100", Origin: "New York", Destination: "London", Rows: 10, Columns: 6},
		{ID: "FL300", Origin: "Paris", Destination: "Berlin", Rows: 8, Columns: 4},
	})
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	Register(srv, NewServer(flights.NewFlightService(catalog, nil)))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewClient(conn), catalog
}

func TestServer_ListFlights(t *testing.T) {
	client, catalog := startServer(t)

	flight, _ := catalog.Get("FL300")
	_, err := flight.BookAt("1A")
	require.NoError(t, err)

	resp, err := client.ListFlights(context.Background())
	require.NoError(t, err)

	list := resp.GetFields()["flights"].GetListValue().GetValues()
	require.Len(t, list, 2)
	assert.Equal(t, "FL100", list[0].GetStructValue().GetFields()["id"].GetStringValue())

	fl300 := list[1].GetStructValue().GetFields()
	assert.Equal(t, "Berlin", fl300["destination"].GetStringValue())
	assert.Equal(t, float64(32), fl300["total_seats"].GetNumberValue())
	assert.Equal(t, float64(31), fl300["available_seats"].GetNumberValue())
}

func TestServer_GetFlight(t *testing.T) {
	client, _ := startServer(t)

	resp, err := client.GetFlight(context.Background(), "FL100")
	require.NoError(t, err)
	assert.Equal(t, "New York", resp.GetFields()["origin"].GetStringValue())
	assert.Equal(t, float64(6), resp.GetFields()["columns"].GetNumberValue())

	_, err = client.GetFlight(context.Background(), "FL999")
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}
