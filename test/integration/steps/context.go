// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/infra/db"
	"github.com/expense-tracker/backend/internal/infra/dependency"
	"github.com/expense-tracker/backend/test/integration/mock"
)

const testPassword = "Password123"

var testEnv = map[string]string{
	"ENV":             "test",
	"DATABASE_DRIVER": config.DriverSQLite,
	"JWT_SECRET":      "test-jwt-secret-key-for-testing-purposes",
	"APP_TIMEZONE":    "UTC",
}

// testContext holds the state of one scenario.
type testContext struct {
	server   *httptest.Server
	client   *http.Client
	database *db.Database
	timeMock *mock.Time

	headers     map[string]string
	accessToken string
	vars        map[string]string

	status int
	body   []byte
}

// InitializeTestSuite sets up resources shared by every scenario.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		for key, value := range testEnv {
			_ = os.Setenv(key, value)
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client:   &http.Client{Timeout: 10 * time.Second},
		timeMock: mock.NewTime(),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before(ctx)
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		test.after()
		return ctx, nil
	})

	registerSetupSteps(ctx, test)
	registerRequestSteps(ctx, test)
	registerResponseSteps(ctx, test)
	registerDatabaseSteps(ctx, test)
}

func (t *testContext) before(ctx context.Context) error {
	t.headers = make(map[string]string)
	t.vars = make(map[string]string)
	t.accessToken = ""
	t.status = 0
	t.body = nil
	t.timeMock.Set(time.Time{})

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := mock.NewDb(ctx)
	if err != nil {
		return err
	}
	t.database = database

	redisClient := mock.NewRedis()
	if err := mock.ClearRedis(ctx, redisClient); err != nil {
		return err
	}

	injector, err := dependency.NewInjector(cfg, database,
		dependency.WithClock(t.timeMock),
		dependency.WithRedis(redisClient),
		dependency.WithPasswordCost(bcrypt.MinCost),
	)
	if err != nil {
		return err
	}
	if err := injector.SeedDefaults(ctx); err != nil {
		return err
	}

	t.server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
	return nil
}

func (t *testContext) after() {
	if t.server != nil {
		t.server.Close()
		t.server = nil
	}
	if t.database != nil {
		_ = t.database.Close()
		t.database = nil
	}
}

// expand replaces {name} placeholders with values saved during the scenario.
func (t *testContext) expand(s string) string {
	for name, value := range t.vars {
		s = strings.ReplaceAll(s, "{"+name+"}", value)
	}
	return s
}

func (t *testContext) send(method, endpoint string, body []byte) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, t.server.URL+t.expand(endpoint), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	t.status = resp.StatusCode
	t.body, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

// field walks a dot separated path ("bills.0.status") through the JSON body.
func (t *testContext) field(path string) (any, error) {
	var data any
	if err := json.Unmarshal(t.body, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w. Body: %s", err, string(t.body))
	}

	current := data
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field '%s' not found in response. Body: %s", path, string(t.body))
			}
			current = value
		case []any:
			var index int
			if _, err := fmt.Sscanf(part, "%d", &index); err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("index '%s' out of range in '%s'. Body: %s", part, path, string(t.body))
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("cannot descend into '%s' at '%s'. Body: %s", path, part, string(t.body))
		}
	}
	return current, nil
}
