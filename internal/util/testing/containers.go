package test_utils

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"jobtracker/internal/storage"
	"jobtracker/internal/storage/migrations"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresImage = "postgres:16-alpine"
	valkeyImage   = "valkey/valkey:8-alpine"
)

var (
	infrastructureOnce sync.Once
	infrastructureErr  error
)

// RequireInfrastructure starts shared Postgres and Valkey containers once per
// test binary, points the configuration at them and applies migrations.
// Tests are skipped in -short mode or when Docker is not reachable.
func RequireInfrastructure(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode (requires Docker)")
	}

	infrastructureOnce.Do(func() {
		infrastructureErr = setupInfrastructure()
	})

	if infrastructureErr != nil {
		t.Skipf("Skipping integration test, infrastructure unavailable: %v", infrastructureErr)
	}
}

// RunWithInfrastructure is meant for TestMain of packages whose tests all
// need the database. The whole package is skipped when infrastructure is
// unavailable.
func RunWithInfrastructure(m *testing.M) {
	flag.Parse()

	if testing.Short() {
		fmt.Println("Skipping integration tests in short mode (requires Docker)")
		os.Exit(0)
	}

	infrastructureOnce.Do(func() {
		infrastructureErr = setupInfrastructure()
	})

	if infrastructureErr != nil {
		fmt.Printf("Skipping integration tests, infrastructure unavailable: %v\n", infrastructureErr)
		os.Exit(0)
	}

	os.Exit(m.Run())
}

func setupInfrastructure() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	postgresContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        postgresImage,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_DB":       "jobtracker",
				"POSTGRES_USER":     "jobtracker",
				"POSTGRES_PASSWORD": "test_password",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return fmt.Errorf("failed to start postgres container: %w", err)
	}

	valkeyContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        valkeyImage,
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return fmt.Errorf("failed to start valkey container: %w", err)
	}

	postgresHost, err := postgresContainer.Host(ctx)
	if err != nil {
		return fmt.Errorf("failed to get postgres host: %w", err)
	}

	postgresPort, err := postgresContainer.MappedPort(ctx, "5432")
	if err != nil {
		return fmt.Errorf("failed to get postgres port: %w", err)
	}

	valkeyHost, err := valkeyContainer.Host(ctx)
	if err != nil {
		return fmt.Errorf("failed to get valkey host: %w", err)
	}

	valkeyPort, err := valkeyContainer.MappedPort(ctx, "6379")
	if err != nil {
		return fmt.Errorf("failed to get valkey port: %w", err)
	}

	variables := map[string]string{
		"DATABASE_DSN": fmt.Sprintf(
			"host=%s port=%s user=jobtracker password=test_password dbname=jobtracker sslmode=disable",
			postgresHost,
			postgresPort.Port(),
		),
		"ENV_MODE":    "development",
		"VALKEY_HOST": valkeyHost,
		"VALKEY_PORT": valkeyPort.Port(),
	}

	for key, value := range variables {
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	sqlDB, err := storage.GetDb().DB()
	if err != nil {
		return fmt.Errorf("failed to get sql handle: %w", err)
	}

	if err := migrations.Run(sqlDB); err != nil {
		return err
	}

	if _, err := storage.DetectCapabilities(storage.GetDb()); err != nil {
		return err
	}

	return nil
}
