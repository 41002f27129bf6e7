package market_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net"
	"net/http"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/kmrmotors/motodrive/pkg/marketsdk"
)

/*
 * Common constants and helper functions for marketplace end-to-end tests.
 * The service runs in a container; tokens are minted against a stub
 * identity provider served from the host and reached from the container
 * via testcontainers host port access.
 */

const (
	testImageName = "motodrive-test:latest"

	bootstrapToken = "test-bootstrap-token-12345"
	idpIssuer      = "https://idp.e2e.test"
	idpAudience    = "motodrive-api"
	idpKeyID       = "e2e-key-001"

	adminEmail = "admin@kmrmotors.test"
)

// stubIDP is the host-side stand-in for the external identity provider. It
// holds the signing key and serves the matching JWKS document.
type stubIDP struct {
	key  *rsa.PrivateKey
	port int
}

var idp *stubIDP

// TestMain builds the Docker image and starts the stub identity provider
// once before all tests, and cleans the image up afterwards.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building MotoDrive Docker image...")
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	var err error
	idp, err = startStubIDP()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start stub identity provider: %v\n", err)
		os.Exit(1)
	}

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up MotoDrive Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/motodrive/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// startStubIDP generates a signing key and serves its JWKS document on a
// random host port.
func startStubIDP() (*stubIDP, error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}

	doc := map[string]any{
		"keys": []map[string]string{{
			"kty": "RSA",
			"use": "sig",
			"kid": idpKeyID,
			"n":   base64.RawURLEncoding.EncodeToString(key.PublicKey.N.Bytes()),
			"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.PublicKey.E)).Bytes()),
		}},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/jwks.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(doc)
	})

	listener, err := net.Listen("tcp", "0.0.0.0:0")
	if err != nil {
		return nil, fmt.Errorf("listen: %w", err)
	}

	go func() {
		_ = http.Serve(listener, mux)
	}()

	return &stubIDP{
		key:  key,
		port: listener.Addr().(*net.TCPAddr).Port,
	}, nil
}

// mintToken signs an access token for the given principal the way the
// identity provider would.
func mintToken(t *testing.T, sub, email, name string) string {
	t.Helper()

	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   idpIssuer,
		"aud":   idpAudience,
		"sub":   sub,
		"email": email,
		"name":  name,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = idpKeyID

	signed, err := token.SignedString(idp.key)
	require.NoError(t, err)
	return signed
}

// setupMarketContainer starts the service in a container and returns the
// base URL. Rate limits are relaxed so rapid test requests don't trip them;
// rate limit behaviour itself is covered by a dedicated test.
func setupMarketContainer(t *testing.T) (string, func()) {
	t.Helper()
	return setupMarketContainerWithEnv(t, map[string]string{
		"RATELIMIT_STRICT_REQUESTS":   "1000",
		"RATELIMIT_STRICT_BURST":      "1000",
		"RATELIMIT_MODERATE_REQUESTS": "1000",
		"RATELIMIT_MODERATE_BURST":    "1000",
	})
}

func setupMarketContainerWithEnv(t *testing.T, extraEnv map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"IDP_JWKS_URL":    fmt.Sprintf("http://host.testcontainers.internal:%d/jwks.json", idp.port),
		"IDP_ISSUER":      idpIssuer,
		"IDP_AUDIENCE":    idpAudience,
		"BOOTSTRAP_TOKEN": bootstrapToken,
		"DATABASE_FILE":   "/motodrive.db",
		"APP_BASE_URL":    "http://localhost:3000",
		"ENV":             "test",
		"LOG_LEVEL":       "info",
		"LOG_FORMAT":      "json",
	}
	for k, v := range extraEnv {
		env[k] = v
	}

	req := testcontainers.ContainerRequest{
		Image:           testImageName,
		ExposedPorts:    []string{"8080/tcp"},
		HostAccessPorts: []int{idp.port},
		Env:             env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// bootstrapAdmin designates the initial admin and returns a client
// authenticated as them.
func bootstrapAdmin(t *testing.T, client *marketsdk.Client) *marketsdk.Client {
	t.Helper()
	ctx := context.Background()

	resp, err := client.Bootstrap(ctx, marketsdk.BootstrapRequest{
		Token: bootstrapToken,
		Email: adminEmail,
	})
	require.NoError(t, err, "Bootstrap should succeed")
	require.True(t, resp.Success)
	require.Equal(t, "ADMIN", resp.User.Role)

	admin := client.WithToken(mintToken(t, "idp|admin", adminEmail, "Admin"))

	// Sign in once so the directory links the identity to the bootstrapped
	// record.
	me, err := admin.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, adminEmail, me.User.Email)

	return admin
}

// seedBikeViaAPI lists a bike through the admin API and returns it.
func seedBikeViaAPI(t *testing.T, admin *marketsdk.Client, make_, model string, price float64) marketsdk.Bike {
	t.Helper()

	resp, err := admin.CreateBike(context.Background(), marketsdk.CreateBikeRequest{
		Make:         make_,
		Model:        model,
		Year:         2024,
		Price:        price,
		Mileage:      1200,
		BodyType:     "Naked",
		FuelType:     "Petrol",
		Transmission: "Manual",
		Color:        "Black",
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Bike.ID)

	return resp.Bike
}

// assertAPIStatus checks that err is an API error with the given status.
func assertAPIStatus(t *testing.T, err error, status int, context string) {
	t.Helper()
	require.Error(t, err, context)

	var apiErr *marketsdk.APIError
	require.ErrorAs(t, err, &apiErr, context)
	require.Equal(t, status, apiErr.StatusCode, "%s: %s", context, apiErr.Message)
}
