// Command docgen-server runs the document-generation HTTP service.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	docgen "github.com/alnah/go-docgen"
	"github.com/alnah/go-docgen/internal/config"
	"github.com/alnah/go-docgen/internal/logging"
	"github.com/alnah/go-docgen/internal/web"
)

// Version is set at build time via ldflags.
var Version = "dev"

// shutdownGrace bounds how long in-flight renders may finish on shutdown.
const shutdownGrace = 30 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		envFile = flag.String("env-file", ".env", "dotenv file seeding the environment")
		addr    = flag.String("addr", "", "listen address, overrides APP_ADDR")
		workers = flag.Int("workers", 0, "browser pool size, overrides POOL_SIZE (0 = auto)")
		version = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println(Version)
		return nil
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.AppAddr = *addr
	}
	if *workers > 0 {
		cfg.PoolSize = *workers
	}

	logger := logging.NewJSONLogger("docgen", cfg.LogLevel)

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		logger.Debug(fmt.Sprintf(format, args...))
	}))

	pub, err := docgen.NewObjectPublisher(docgen.PublisherConfig{
		Endpoint:   cfg.StorageEndpoint,
		AccessKey:  cfg.StorageAccessKey,
		SecretKey:  cfg.StorageSecretKey,
		Bucket:     cfg.StorageBucket,
		UseSSL:     cfg.StorageUseSSL,
		PublicBase: cfg.PublicURLBase,
	})
	if err != nil {
		return err
	}

	poolSize := docgen.ResolvePoolSize(cfg.PoolSize)
	pool := docgen.NewServicePool(poolSize, pub,
		docgen.WithTimeout(cfg.RenderTimeout),
		docgen.WithWorkDir(cfg.WorkDir),
		docgen.WithAssetPath(cfg.AssetPath),
	)
	defer pool.Close()

	logger.Info("starting",
		"version", Version,
		"pool_size", poolSize,
		"config", cfg.String(),
	)

	server := web.New(cfg.AppAddr, &web.PoolGenerator{Pool: pool}, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return server.Shutdown(ctx)
}
