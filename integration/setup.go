package integration

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/gofrs/uuid"

	factom "github.com/maxbull/factom-go-sdk"
)

// Global client instance that will be reused across all tests
var (
	globalClient      *factom.Client
	clientMutex       sync.Mutex
	clientInitialized bool
)

const (
	trueStr = "true"
)

// initializeClient initializes the global client instance if it hasn't been initialized yet
func initializeClient() (*factom.Client, error) {
	clientMutex.Lock()
	defer clientMutex.Unlock()

	if clientInitialized && globalClient != nil {
		return globalClient, nil
	}

	client, err := factom.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create Factom client: %w", err)
	}

	globalClient = client
	clientInitialized = true

	return client, nil
}

type TestClient struct {
	Client       *factom.Client
	ECAddress    string
	FCTAddress   string
	TestPrefix   string
	SkipTeardown bool
}

func Setup(t *testing.T) *TestClient {
	if os.Getenv("FACTOM_INTEGRATION_TESTS") != trueStr {
		t.Skip("Skipping integration test. Set FACTOM_INTEGRATION_TESTS=" + trueStr + " to run")
	}

	client, err := initializeClient()
	if err != nil {
		t.Fatalf("Failed to initialize client: %v", err)
	}

	testPrefix := os.Getenv("FACTOM_TEST_PREFIX")
	if testPrefix == "" {
		testPrefix = "factom-go-sdk-test"
	}

	return &TestClient{
		Client:       client,
		ECAddress:    os.Getenv("FACTOM_EC_ADDRESS"),
		FCTAddress:   os.Getenv("FACTOM_FCT_ADDRESS"),
		TestPrefix:   testPrefix,
		SkipTeardown: os.Getenv("FACTOM_SKIP_TEARDOWN") == trueStr,
	}
}

// RequireECAddress skips tests that spend entry credits when no funded
// address was configured.
func (tc *TestClient) RequireECAddress(t *testing.T) string {
	if tc.ECAddress == "" {
		t.Skip("Skipping paid test. Set FACTOM_EC_ADDRESS to a funded entry credit address to run")
	}
	return tc.ECAddress
}

// GenerateExtIDs builds unique external ids so repeated runs never
// collide with an existing chain.
func (tc *TestClient) GenerateExtIDs(resourceType string) []string {
	return []string{tc.TestPrefix, resourceType, uuid.Must(uuid.NewV4()).String()}
}

func (tc *TestClient) CleanupTransaction(t *testing.T, name string) {
	if tc.SkipTeardown {
		t.Logf("Skipping cleanup of transaction %s", name)
		return
	}

	ctx := context.Background()
	if _, err := tc.Client.Wallet().DeleteTransaction(ctx, name); err != nil {
		t.Logf("Failed to delete transaction %s: %v", name, err)
	}
}

func (tc *TestClient) CleanupAddress(t *testing.T, address string) {
	if tc.SkipTeardown {
		t.Logf("Skipping cleanup of address %s", address)
		return
	}

	ctx := context.Background()
	if _, err := tc.Client.Wallet().RemoveAddress(ctx, address); err != nil {
		t.Logf("Failed to remove address %s: %v", address, err)
	}
}
