package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"pc-builder-backend/internal/config"
	"pc-builder-backend/internal/database"

	_ "github.com/go-sql-driver/mysql" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/gorm"
)

// ------------------------------
// Shared, process-wide resources
// ------------------------------
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedDB       *gorm.DB
	sharedConfig   *config.Config
)

// BaseTestSuite wraps the shared MySQL container for integration suites
type BaseTestSuite struct {
	DB       *gorm.DB
	Config   *config.Config
	pool     *dockertest.Pool
	resource *dockertest.Resource
}

// ------------------------------
// Public helpers
// ------------------------------

// SetupTestSuite initializes (once) the shared MySQL container and returns a
// per-suite wrapper. Call this in your tests before using the DB.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { sharedInitErr = initSharedMySQLContainer() })
	if sharedInitErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", sharedInitErr)
	}
	return &BaseTestSuite{
		DB:       sharedDB,
		Config:   sharedConfig,
		pool:     sharedPool,
		resource: sharedResource,
	}
}

// CleanupSharedContainer tears down Docker resources when the whole test run
// ends. Called by TestMain in the integration packages.
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if sharedPool != nil && sharedResource != nil {
		if err := sharedPool.Purge(sharedResource); err != nil {
			log.Printf("WARN: could not purge shared resource: %v", err)
		}
		sharedResource = nil
		sharedPool = nil
		sharedDB = nil
	}
}

// ------------------------------
// Suite lifecycle hooks
// ------------------------------

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite is per *suite* (not process). We only clean DB here;
// the Docker container persists across suites for speed.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates known tables if they exist. Children first, then
// parents; foreign key checks are disabled for the duration.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	tables := []string{
		"build_likes",
		"build_components",
		"compatibility_triples",
		"builds",
		"components",
		"users",
	}
	m := s.DB.Migrator()
	s.DB.Exec("SET FOREIGN_KEY_CHECKS = 0")
	for _, t := range tables {
		if m.HasTable(t) {
			s.DB.Exec("TRUNCATE TABLE `" + t + "`")
		}
	}
	s.DB.Exec("SET FOREIGN_KEY_CHECKS = 1")
}

// ------------------------------
// Shared MySQL container init
// ------------------------------

func initSharedMySQLContainer() error {
	// 1) Create Docker pool
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	sharedPool = pool

	// 2) Run MySQL
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=testpass",
			"MYSQL_DATABASE=testdb",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start mysql: %w", err)
	}
	sharedResource = resource

	// 3) Build DSN
	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:testpass@tcp(127.0.0.1:%s)/testdb?charset=utf8mb4&parseTime=True&loc=Local", hostPort)

	// 4) Wait for MySQL to be ready, then init GORM (which runs migrations)
	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error {
		// 4a) Ping with database/sql first (fast readiness)
		std, err := sql.Open("mysql", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		if err := std.Ping(); err != nil {
			return err
		}

		// 4b) Now initialize GORM (runs AutoMigrate)
		gdb, err := database.Initialize(dsn, nil)
		if err != nil {
			return err
		}
		if sqlDB, err := gdb.DB(); err != nil {
			return err
		} else if err := sqlDB.Ping(); err != nil {
			return err
		}
		sharedDB = gdb
		return nil
	}); err != nil {
		return fmt.Errorf("could not connect to docker database: %w", err)
	}

	// 5) Build a shared config
	sharedConfig = &config.Config{
		DatabaseURL: dsn,
		Port:        "4000",
		LogLevel:    "debug",
		Environment: "test",
		JWTSecret:   "test-secret",
	}

	log.Printf("Shared MySQL ready on %s", hostPort)
	return nil
}
