package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"eurobot-backend/internal/config"
	"eurobot-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for the readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "eurobot"
	pgPassword = "eurobot"
	pgName     = "eurobot_test"
)

// One Postgres container is shared by every suite in the test binary
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedDB       *gorm.DB
	sharedConfig   *config.Config
)

// BaseTestSuite hands a migrated database to integration suites
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared container on first use. Suites are skipped,
// not failed, when no Docker daemon is reachable.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { sharedInitErr = initSharedPGContainer() })
	if sharedInitErr != nil {
		t.Skipf("postgres container unavailable: %v", sharedInitErr)
	}
	return &BaseTestSuite{
		DB:     sharedDB,
		Config: sharedConfig,
	}
}

// CleanupSharedContainer purges the container; TestMain calls it when the run ends
func CleanupSharedContainer() {
	if sharedDB != nil {
		_ = database.Close(sharedDB)
	}
	if sharedPool != nil && sharedResource != nil {
		log.Printf("Purging Docker container: %s", sharedResource.Container.Name)
		if err := sharedPool.Purge(sharedResource); err != nil {
			log.Printf("WARN: could not purge shared resource: %v", err)
		}
	}
	sharedResource = nil
	sharedPool = nil
	sharedDB = nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite only empties the tables; the container outlives the suite
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates every table the ingester writes to
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	m := s.DB.Migrator()
	for _, t := range []string{"matches", "rankings", "series", "teams"} {
		if m.HasTable(t) {
			s.DB.Exec(`TRUNCATE TABLE "` + t + `" RESTART IDENTITY CASCADE;`)
		}
	}
}

func initSharedPGContainer() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	if err := pool.Client.Ping(); err != nil {
		return fmt.Errorf("docker daemon not reachable: %w", err)
	}
	sharedPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_DB=" + pgName,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	sharedResource = resource
	_ = resource.Expire(300)

	hostPort := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, hostPort, pgName)

	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error {
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		if err := std.Ping(); err != nil {
			return err
		}

		gdb, err := database.Initialize(dsn, nil)
		if err != nil {
			return err
		}
		sharedDB = gdb
		return nil
	}); err != nil {
		return fmt.Errorf("could not connect to docker database: %w", err)
	}

	sharedConfig = &config.Config{
		DatabaseURL: dsn,
		Port:        "5000",
		LogLevel:    "debug",
		Environment: "test",
		DataDir:     "./data",
	}
	return nil
}
