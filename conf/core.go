package conf

import (
	"context"
	"encoding/json/v2"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/zeptools/findoc-core/db/kvdb"
	"github.com/zeptools/findoc-core/db/kvdb/impls/redis"
	"github.com/zeptools/findoc-core/db/sqldb"
	"github.com/zeptools/findoc-core/render"
	"github.com/zeptools/findoc-core/throttle"
)

// DebugOpts - debug-only surfaces, all off in production configs
type DebugOpts struct {
	Echo bool `json:"echo"` // expose the request echo endpoint
}

// Core - common app config, loaded from JSON files under <AppRoot>/config/
type Core struct {
	AppName          string    `json:"app_name"`
	Listen           string    `json:"listen"` // HTTP Server Listen IP:PORT Address
	Host             string    `json:"host"`   // HTTP Host. Can be used to generate public url endpoints
	ShareTokenSecret string    `json:"share_token_secret"`
	DebugOpts        DebugOpts `json:"debug_opts"`

	AppRoot    string             `json:"-"` // Filled from compiled paths
	RootCtx    context.Context    `json:"-"` // Global Context with RootCancel
	RootCancel context.CancelFunc `json:"-"` // CancelFunc for RootCtx

	Layout              render.Layout                 `json:"-"` // LoadLayoutConf
	ThrottleBucketStore *throttle.BucketStore[string] `json:"-"` // PrepareThrottleBucketStore
	BackendHttpClient   *http.Client                  `json:"-"` // for requests to external apis (logo fetch)
	KVDBConf            kvdb.Conf                     `json:"-"` // loadKVDBConf
	BackendKVDBClient   kvdb.Client                   `json:"-"` // prepareKVDBClient
	SQLDBConfs          map[string]*sqldb.Conf        `json:"-"` // loadSQLDBConfs
	BackendSQLDBClients map[string]sqldb.Client       `json:"-"` // prepareSQLDBClients
}

// BaseInit - 1st step for initialization
// 1. set AppRoot
// 2. load config/.core.json file
// 3. prepare base fields
// 4. Start ShutdownSignalListener
func (c *Core) BaseInit(appRoot string, rootCtx context.Context, rootCancel context.CancelFunc) error {
	c.AppRoot = appRoot
	envFilePath := filepath.Join(appRoot, "config", ".core.json")
	envBytes, err := os.ReadFile(envFilePath) // ([]byte, error)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(envBytes, c); err != nil {
		return err
	}
	c.RootCtx = rootCtx
	c.RootCancel = rootCancel
	c.BackendHttpClient = &http.Client{Timeout: 10 * time.Second}
	c.startShutdownSignalListener()
	return nil
}

var once sync.Once

func (c *Core) startShutdownSignalListener() {
	once.Do(func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			sig := <-sigs
			log.Printf("[INFO] got signal [%s]. shutting down app [%s] ...", sig, c.AppName)
			c.RootCancel() // broadcast to all child services via Context.Done()
		}()
	})
	log.Printf("[INFO][CORE] shutdown signal listener started")
}

// LoadLayoutConf reads the render geometry; a missing file means defaults
func (c *Core) LoadLayoutConf() error {
	confFilePath := filepath.Join(c.AppRoot, "config", ".layout.json")
	confBytes, err := os.ReadFile(confFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.Layout = render.DefaultLayout()
			return nil
		}
		return err
	}
	var layout render.Layout
	if err = json.Unmarshal(confBytes, &layout); err != nil {
		return err
	}
	c.Layout = layout
	return nil
}

func (c *Core) PrepareThrottleBucketStore() {
	c.ThrottleBucketStore = throttle.NewBucketStore[string]()
}

func (c *Core) PrepareKVDatabase() error {
	// Load KV Database Config File
	err := c.loadKVDBConf()
	if err != nil {
		return err
	}
	return c.prepareKVDBClient()
}

func (c *Core) loadKVDBConf() error {
	confFilePath := filepath.Join(c.AppRoot, "config", ".kv-databases.json")
	confBytes, err := os.ReadFile(confFilePath) // ([]byte, error)
	if err != nil {
		return err
	}
	return json.Unmarshal(confBytes, &c.KVDBConf)
}

func (c *Core) prepareKVDBClient() error {
	switch c.KVDBConf.Type {
	case "redis":
		c.BackendKVDBClient = &redis.Client{Conf: &c.KVDBConf}
		if err := c.BackendKVDBClient.Init(); err != nil {
			return err
		}
	default:
		return errors.New("unsupported key-value database type")
	}
	return nil
}

func (c *Core) loadSQLDBConfs() error {
	confFilePath := filepath.Join(c.AppRoot, "config", ".sql-databases.json")
	confBytes, err := os.ReadFile(confFilePath) // ([]byte, error)
	if err != nil {
		return err
	}
	c.SQLDBConfs = make(map[string]*sqldb.Conf)
	return json.Unmarshal(confBytes, &c.SQLDBConfs)
}

// prepareSQLDBClients - Build & Init SQL DB Clients
// Use after loadSQLDBConfs
// Implementations register themselves via their package init; import them
// for side effects in the main package.
func (c *Core) prepareSQLDBClients() error {
	c.BackendSQLDBClients = make(map[string]sqldb.Client)
	for dbName, sqlDBConf := range c.SQLDBConfs {
		dbClient, err := sqldb.New(sqlDBConf.Type, sqlDBConf)
		if err != nil {
			return err
		}
		if err = dbClient.Init(); err != nil {
			return err
		}
		c.BackendSQLDBClients[dbName] = dbClient
	}
	return nil
}

// PrepareSQLDatabases for SQL DB Clients
func (c *Core) PrepareSQLDatabases() error {
	// Load SQL Databases Config File
	err := c.loadSQLDBConfs()
	if err != nil {
		return err
	}
	if len(c.SQLDBConfs) == 0 {
		return errors.New("no SQL databases configured")
	}
	return c.prepareSQLDBClients()
}

func (c *Core) ResourceCleanUp() {
	log.Println("[INFO] App Resource Cleaning Up...")
	if c.BackendKVDBClient != nil {
		if err := c.BackendKVDBClient.Close(); err != nil {
			log.Println("[ERROR] Failed to close KV database client")
		}
	}
	for name, sqlDBClient := range c.BackendSQLDBClients {
		dbType := sqlDBClient.GetConf().Type
		log.Printf("[INFO][%s] Closing %q SQL DB client", dbType, name)
		err := sqlDBClient.Close()
		if err != nil {
			log.Printf("[ERROR][%s] Failed to close %q SQL DB client", dbType, name)
		} else {
			log.Printf("[INFO][%s] %q SQL DB client closed", dbType, name)
		}
	}
	log.Println("[INFO] App Resource Cleanup Complete")
}
