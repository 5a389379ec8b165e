package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/zeptools/findoc-core/conf"
	_ "github.com/zeptools/findoc-core/db/sqldb/impls/mysql" // side-effect: factory registration
	_ "github.com/zeptools/findoc-core/db/sqldb/impls/pgsql" // side-effect
	"github.com/zeptools/findoc-core/render"
	"github.com/zeptools/findoc-core/servers"
	"github.com/zeptools/findoc-core/store"
	"github.com/zeptools/findoc-core/throttle"
	"github.com/zeptools/findoc-core/web"
)

const (
	renderThrottleGroup = "render"
	shareTTL            = 72 * time.Hour
)

func main() {
	appRoot := flag.String("approot", ".", "application root holding the config/ directory")
	flag.Parse()

	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	core := &conf.Core{}
	if err := core.BaseInit(*appRoot, rootCtx, rootCancel); err != nil {
		log.Printf("[ERROR] core init failed: %v", err)
		os.Exit(1)
	}
	if err := core.LoadLayoutConf(); err != nil {
		log.Printf("[ERROR] layout config failed: %v", err)
		os.Exit(1)
	}
	if err := core.PrepareKVDatabase(); err != nil {
		log.Printf("[ERROR] kv database setup failed: %v", err)
		os.Exit(1)
	}
	if err := core.PrepareSQLDatabases(); err != nil {
		log.Printf("[ERROR] sql database setup failed: %v", err)
		os.Exit(1)
	}

	dbClient, ok := core.BackendSQLDBClients["billing"]
	if !ok {
		for name, client := range core.BackendSQLDBClients {
			log.Printf("[WARN] no %q database configured, using %q", "billing", name)
			dbClient = client
			break
		}
	}
	if dbClient == nil {
		log.Print("[ERROR] no usable SQL database client")
		os.Exit(1)
	}

	core.PrepareThrottleBucketStore()
	core.ThrottleBucketStore.SetBucketGroup(renderThrottleGroup, &throttle.BucketConf{
		Burst:     10,
		Increment: 5,
		Period:    10 * time.Second,
	})
	core.ThrottleBucketStore.StartCleanUpService(10*time.Minute, time.Hour)

	handlers := &web.Handlers{
		Store:       &store.Store{DB: dbClient},
		Logos:       store.NewLogoFetcher(core.BackendHttpClient, core.BackendKVDBClient),
		Renderer:    render.NewRenderer(core.Layout),
		Cache:       core.BackendKVDBClient,
		ShareSecret: []byte(core.ShareTokenSecret),
		ShareTTL:    shareTTL,
	}
	router := handlers.NewRouter(web.RouterOpts{
		RenderThrottle: &throttle.PerIPWrapper{
			Store:   core.ThrottleBucketStore,
			GroupID: renderThrottleGroup,
		},
		DebugEcho: core.DebugOpts.Echo,
	})

	server := &http.Server{
		Addr:              core.Listen,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := servers.RunWithGracefulShutdown(server, core.AppName, core.ResourceCleanUp, 15*time.Second); err != nil {
		log.Printf("[ERROR] server exited with error: %v", err)
		os.Exit(1)
	}
}
