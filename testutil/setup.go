package testutil

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	RabbitUser     = "rabbit_user"
	RabbitPassword = "rabbit_pass"
)

// Rabbit starts a disposable broker and returns it with its mapped host and port.
// The calling test is skipped when Docker is not reachable.
func Rabbit(ctx context.Context, t *testing.T) (tc.Container, string, int) {
	t.Helper()
	if !dockerAvailable() {
		t.Skip("skipping: docker not available (required for testcontainers)")
	}
	defer func() {
		if r := recover(); r != nil {
			t.Skipf("skipping: docker/testcontainers not available (%v)", r)
		}
	}()
	req := tc.ContainerRequest{
		Image:        "rabbitmq:3.13-management",
		ExposedPorts: []string{"5672/tcp"},
		Env: map[string]string{
			"RABBITMQ_DEFAULT_USER": RabbitUser,
			"RABBITMQ_DEFAULT_PASS": RabbitPassword,
		},
		WaitingFor: wait.ForLog("Server startup complete").WithStartupTimeout(90 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Skipf("skipping: docker/testcontainers not available (%v)", err)
	}
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("rabbit host: %v", err)
	}
	port, err := c.MappedPort(ctx, nat.Port("5672/tcp"))
	if err != nil {
		t.Fatalf("rabbit port: %v", err)
	}
	return c, host, port.Int()
}

func dockerAvailable() bool {
	c, err := net.DialTimeout("unix", "/var/run/docker.sock", 300*time.Millisecond)
	if err != nil {
		return false
	}
	_ = c.Close()
	return true
}
