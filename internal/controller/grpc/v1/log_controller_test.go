package grpcv1_test

import (
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	grpcv1 "github.com/Egor213/EndpointLog/internal/controller/grpc/v1"
	"github.com/Egor213/EndpointLog/internal/domain"
	"github.com/Egor213/EndpointLog/internal/metrics"
	service_mock "github.com/Egor213/EndpointLog/internal/mocks/service"
	"github.com/Egor213/EndpointLog/internal/repo"
	"github.com/Egor213/EndpointLog/internal/revalidate"
	"github.com/Egor213/EndpointLog/internal/service"
	"github.com/Egor213/EndpointLog/pkg/clock"
	"github.com/Egor213/EndpointLog/pkg/grpcserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1024 * 1024

func startServer(t *testing.T, register func(*grpc.Server)) *grpcv1.LogServiceClient {
	t.Helper()

	lis := bufconn.Listen(bufSize)
	srv, err := grpcserver.New(register, grpcserver.WithListener(lis), grpcserver.WithShutdownTimeout(time.Second))
	require.NoError(t, err)
	t.Cleanup(srv.Shutdown)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return grpcv1.NewLogServiceClient(conn)
}

func TestLogController_RoundTrip(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 11, 0, 0, 0, time.UTC)

	services := service.NewServices(service.ServicesDependencies{
		Repos:       repo.NewMemoryRepositories(),
		Counters:    metrics.NewTestCounters(),
		Revalidator: revalidate.Nop{},
		Clock:       clock.NewFixed(now),
	})
	client := startServer(t, grpcv1.RegisterServices(services, metrics.NewTestCounters()))

	ep, err := client.CreateEndpoint(ctx, &grpcv1.CreateEndpointRequest{Name: "Signup", UserID: "u1"})
	require.NoError(t, err)

	created, err := client.CreateLog(ctx, &grpcv1.CreateLogRequest{
		Type:       "success",
		PostType:   "http",
		Message:    "42",
		EndpointID: ep.ID,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	logs, err := client.GetLogs(ctx, &grpcv1.GetLogsRequest{UserID: "u1"})
	require.NoError(t, err)
	require.Len(t, logs.Logs, 1)

	row := logs.Logs[0]
	assert.Equal(t, created.ID, row.ID)
	assert.Equal(t, "Signup", row.Endpoint)
	assert.Equal(t, ep.ID, row.EndpointID)
	assert.True(t, now.Equal(row.CreatedAt))
	assert.JSONEq(t, `{"success":true,"value":"42"}`, string(row.Message))

	deleted, err := client.DeleteLog(ctx, &grpcv1.DeleteLogRequest{ID: created.ID})
	require.NoError(t, err)
	assert.Empty(t, deleted.Error)

	logs, err = client.GetLogs(ctx, &grpcv1.GetLogsRequest{UserID: "u1"})
	require.NoError(t, err)
	assert.Empty(t, logs.Logs)
}

func TestLogController_Errors(t *testing.T) {
	ctx := context.Background()

	services := service.NewServices(service.ServicesDependencies{
		Repos:       repo.NewMemoryRepositories(),
		Counters:    metrics.NewTestCounters(),
		Revalidator: revalidate.Nop{},
	})
	client := startServer(t, grpcv1.RegisterServices(services, metrics.NewTestCounters()))

	_, err := client.CreateLog(ctx, &grpcv1.CreateLogRequest{Type: "info", PostType: "http", EndpointID: "ep"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.CreateLog(ctx, &grpcv1.CreateLogRequest{Type: "error", PostType: "form", Message: "x", EndpointID: "missing"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.GetLogs(ctx, &grpcv1.GetLogsRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.DeleteEndpoint(ctx, &grpcv1.DeleteEndpointRequest{ID: "missing"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.CreateEndpoint(ctx, &grpcv1.CreateEndpointRequest{Name: "no owner"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestLogController_DeleteLogFailureInBody(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	logSvc := service_mock.NewMockLog(ctrl)
	logSvc.EXPECT().
		DeleteLog(gomock.Any(), "log-1").
		Return(&domain.DeleteResult{Error: "connection refused"})

	controller := grpcv1.NewLogController(logSvc, service_mock.NewMockEndpoint(ctrl), metrics.NewTestCounters())
	client := startServer(t, func(s *grpc.Server) {
		grpcv1.RegisterLogServiceServer(s, controller)
	})

	resp, err := client.DeleteLog(ctx, &grpcv1.DeleteLogRequest{ID: "log-1"})
	require.NoError(t, err)
	assert.Equal(t, "connection refused", resp.Error)
}

func TestToGetLogsResponse(t *testing.T) {
	resp, err := grpcv1.ToGetLogsResponse([]domain.LogRow{{
		ID:       "log-1",
		Type:     domain.LogTypeError,
		PostType: domain.PostTypeForm,
		Message:  domain.ErrorMessage{Error: "bad input"},
	}})
	require.NoError(t, err)
	require.Len(t, resp.Logs, 1)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(resp.Logs[0].Message, &msg))
	assert.Equal(t, map[string]any{"error": "bad input"}, msg)
	assert.Equal(t, "form", resp.Logs[0].PostType)

	empty, err := grpcv1.ToGetLogsResponse(nil)
	require.NoError(t, err)
	assert.NotNil(t, empty.Logs)
}
