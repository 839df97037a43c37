package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"pagehub/internal/auth"
	"pagehub/internal/config"
	"pagehub/internal/database"
	"pagehub/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var testServer *Server
var testStorage *memObjectStorage

// memObjectStorage stands in for S3 in handler tests.
type memObjectStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemObjectStorage() *memObjectStorage {
	return &memObjectStorage{objects: make(map[string][]byte)}
}

func (m *memObjectStorage) PutObject(_ context.Context, key string, body io.Reader, _ string) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return "https://uploads.test/" + key, nil
}

func (m *memObjectStorage) DeleteObject(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:14-alpine",
		postgres.WithDatabase("test_api_db"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		),
	)
	if err != nil {
		log.Fatalf("Could not start postgres: %s", err)
	}
	defer pgContainer.Terminate(ctx)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("Could not get connection string: %s", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		log.Fatalf("Could not connect to database: %s", err)
	}

	schema, err := os.ReadFile("../../db/init.sql")
	if err != nil {
		log.Fatalf("Could not read schema file: %s", err)
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		log.Fatalf("Could not apply schema: %s", err)
	}

	store := database.NewStore(pool)
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "api_test_secret"}}
	testStorage = newMemObjectStorage()
	testServer = NewServer(cfg, store, testStorage)

	os.Exit(m.Run())
}

var userSeq int64

// createAPITestUser registers a user directly through the store and returns
// it together with verified claims for context injection.
func createAPITestUser(t *testing.T, role string) (*models.User, *auth.AppClaims) {
	t.Helper()

	n := atomic.AddInt64(&userSeq, 1)
	hash, err := auth.HashPassword("password123")
	if err != nil {
		t.Fatalf("Could not hash password: %s", err)
	}

	user, err := testServer.store.CreateUser(context.Background(), database.CreateUserParams{
		Username:     fmt.Sprintf("api_user_%d", n),
		Email:        fmt.Sprintf("api_user_%d@example.com", n),
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		t.Fatalf("Could not create test user: %s", err)
	}

	token, err := auth.GenerateJWT(user, testServer.config.JWT.Secret)
	if err != nil {
		t.Fatalf("Could not generate token: %s", err)
	}
	claims, err := auth.VerifyJWT(token, testServer.config.JWT.Secret)
	if err != nil {
		t.Fatalf("Could not verify token: %s", err)
	}

	return user, claims
}

func withClaims(ctx context.Context, claims *auth.AppClaims) context.Context {
	return context.WithValue(ctx, userContextKey, claims)
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Could not marshal body: %s", err)
	}
	return bytes.NewReader(data)
}
