package milvus

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/Aleph-Alpha/milvus-go/v1/logger"
	"github.com/Aleph-Alpha/milvus-go/v1/metrics"
)

// TestMilvusServerRoundTrip exercises the client against a real Milvus server.
func TestMilvusServerRoundTrip(t *testing.T) {
	// Skip if running in short mode
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Initialize Milvus container
	host, port, containerInstance := initializeMilvus(ctx, t)
	defer func() {
		if err := containerInstance.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}()

	metricsPort, err := getFreePort()
	require.NoError(t, err)

	var client *GrpcClient

	// Create a test app wiring the client together with the logger and
	// metrics modules, the way an application would.
	app := fxtest.New(t,
		logger.FXModule,
		metrics.FXModule,
		FXModule,
		fx.Provide(
			func() *Config {
				return FromHostPort(host, port)
			},
			func() logger.Config {
				return logger.Config{Level: logger.Debug, ServiceName: "milvus-integration"}
			},
			func() metrics.Config {
				return metrics.Config{Address: ":" + metricsPort, ServiceName: "milvus-integration"}
			},
			func(l *logger.LoggerClient) Logger { return l },
		),
		fx.Populate(&client),
	)

	require.NoError(t, app.Start(ctx))
	defer app.Stop(ctx)

	require.NotNil(t, client)
	require.True(t, client.IsConnected())

	tableName := testTableName()

	t.Run("Server commands", func(t *testing.T) {
		reply, err := client.ServerStatus(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, reply)

		version, err := client.ServerVersion(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, version)
	})

	t.Run("Table lifecycle", func(t *testing.T) {
		require.NoError(t, client.CreateTable(ctx, TableSchema{
			TableName: tableName,
			Dimension: 4,
		}))

		exists, err := client.HasTable(ctx, tableName)
		require.NoError(t, err)
		assert.True(t, exists)

		schema, err := client.DescribeTable(ctx, tableName)
		require.NoError(t, err)
		assert.Equal(t, tableName, schema.TableName)
		assert.Equal(t, int64(4), schema.Dimension)

		names, err := client.ShowTables(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, tableName)
	})

	t.Run("Insert and count", func(t *testing.T) {
		ids, err := client.Insert(ctx, InsertParam{
			TableName: tableName,
			Vectors: [][]float32{
				{0.1, 0.2, 0.3, 0.4},
				{0.5, 0.6, 0.7, 0.8},
				{0.9, 1.0, 1.1, 1.2},
			},
		})
		require.NoError(t, err)
		assert.Len(t, ids, 3)

		// Inserted vectors become countable once the server has flushed them.
		require.Eventually(t, func() bool {
			count, err := client.CountTable(ctx, tableName)
			return err == nil && count == 3
		}, 30*time.Second, time.Second, "inserted rows never became visible")
	})

	t.Run("Search", func(t *testing.T) {
		require.NoError(t, client.PreloadTable(ctx, tableName))

		results, err := client.Search(ctx, SearchParam{
			TableName:    tableName,
			QueryVectors: [][]float32{{0.1, 0.2, 0.3, 0.4}},
			TopK:         3,
			NProbe:       16,
		})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.NotEmpty(t, results[0])
	})

	t.Run("Index lifecycle", func(t *testing.T) {
		require.NoError(t, client.CreateIndex(ctx, IndexParam{
			TableName: tableName,
			Index:     Index{Type: IndexIVFFlat, NList: 64},
		}))

		idx, err := client.DescribeIndex(ctx, tableName)
		require.NoError(t, err)
		assert.Equal(t, IndexIVFFlat, idx.Type)

		require.NoError(t, client.DropIndex(ctx, tableName))
	})

	t.Run("Drop table", func(t *testing.T) {
		require.NoError(t, client.DropTable(ctx, tableName))

		exists, err := client.HasTable(ctx, tableName)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

// TestMilvusConnectionLifecycle verifies connect/disconnect against a real
// server channel.
func TestMilvusConnectionLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	host, port, containerInstance := initializeMilvus(ctx, t)
	defer func() {
		if err := containerInstance.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}()

	client := NewClient(FromHostPort(host, port))

	require.NoError(t, client.Connect(ctx, ConnectParam{}))
	assert.True(t, client.IsConnected())

	// A second Connect must be rejected while the channel lives.
	require.ErrorIs(t, client.Connect(ctx, ConnectParam{}), ErrAlreadyConnected)

	require.NoError(t, client.Disconnect(ctx))
	assert.False(t, client.IsConnected())
	require.ErrorIs(t, client.Disconnect(ctx), ErrNotConnected)

	// After a clean shutdown the same client can connect again.
	require.NoError(t, client.Connect(ctx, ConnectParam{}))
	assert.True(t, client.IsConnected())
	require.NoError(t, client.Disconnect(ctx))
}

// Helper functions

func testTableName() string {
	return "t_" + strings.ReplaceAll(uuid.NewString(), "-", "_")
}

func initializeMilvus(ctx context.Context, t *testing.T) (string, int, testcontainers.Container) {
	hostPort, err := getFreePort()
	require.NoError(t, err)

	containerInstance, err := createMilvusContainer(ctx, hostPort)
	require.NoError(t, err)

	port, err := containerInstance.MappedPort(ctx, "19530")
	require.NoError(t, err)

	host, err := containerInstance.Host(ctx)
	require.NoError(t, err)

	// Wait for the gRPC port to be ready
	require.Eventually(t, func() bool {
		conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, port.Port()), 2*time.Second)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, 60*time.Second, 500*time.Millisecond, "Milvus port not ready")

	return host, port.Int(), containerInstance
}

func createMilvusContainer(ctx context.Context, hostPort string) (testcontainers.Container, error) {
	portBindings := nat.PortMap{
		"19530/tcp": []nat.PortBinding{{HostPort: hostPort}},
	}

	req := testcontainers.ContainerRequest{
		Image: "milvusdb/milvus:0.5.3-d102119-ede20b",
		ExposedPorts: []string{
			"19530/tcp",
		},
		HostConfigModifier: func(cfg *container.HostConfig) {
			cfg.PortBindings = portBindings
		},
		WaitingFor: wait.ForListeningPort("19530/tcp").WithStartupTimeout(120 * time.Second),
	}

	var containerInstance testcontainers.Container
	var lastErr error

	for attempt := 0; attempt < 3; attempt++ {
		containerInstance, lastErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		if lastErr == nil {
			return containerInstance, nil
		}

		if strings.Contains(lastErr.Error(), "docker.sock") {
			time.Sleep(time.Duration(attempt+1) * time.Second)
			continue
		}

		break
	}

	return nil, fmt.Errorf("failed to start Milvus container after 3 attempts: %w", lastErr)
}

func getFreePort() (string, error) {
	l, err := net.Listen("tcp", ":0")
	if err != nil {
		return "", err
	}
	defer l.Close()
	addr := l.Addr().(*net.TCPAddr)
	return strconv.Itoa(addr.Port), nil
}
