package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"xiangqi/internal/archive"
	"xiangqi/internal/config"
	"xiangqi/internal/obslog"
	httpserver "xiangqi/internal/server/http"
	"xiangqi/internal/session"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // 不阻塞；服务器环境可能没有图形界面
}

func main() {
	cfgPath := flag.String("config", "", "config file (yaml / env), optional")
	addr := flag.String("addr", "", "listen address, overrides ADDR")
	webDir := flag.String("web", "", "directory with index.html / js / svg, overrides WEB_DIR")
	flag.Parse()

	cfg, err := config.Setup(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *webDir != "" {
		cfg.WebDir = *webDir
	}

	if err := obslog.Init(obslog.Options{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		File:      cfg.LogFile,
		ToConsole: cfg.LogToConsole,
		ToFile:    cfg.LogToFile,
		Caller:    cfg.LogCaller,
	}); err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer obslog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		obslog.L().Error("server_exit", zap.Error(err))
		obslog.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	store, closeStore, err := newStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	opts := []session.Option{session.WithStrictEngine(cfg.Strict)}
	if cfg.DatabaseURL != "" {
		repo, err := archive.NewRepository(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("archive: %w", err)
		}
		defer repo.Close()
		if err := repo.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("archive schema: %w", err)
		}
		opts = append(opts, session.WithArchive(repo))
		obslog.L().Info("archive_enabled")
	}

	games := session.NewManager(store, opts...)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpserver.NewRouter(httpserver.NewHandler(games), cfg.WebDir),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		obslog.L().Info("listening",
			zap.String("addr", cfg.Addr),
			zap.String("web_dir", cfg.WebDir),
			zap.String("store", cfg.Store),
			zap.Bool("strict", cfg.Strict),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	if cfg.OpenBrowser {
		// 延迟 100ms 打开默认浏览器，否则可能服务器未启动完成
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser(browserURL(cfg.Addr))
		}()
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	obslog.L().Info("shutting_down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newStore 按配置选择对局存储，返回的 close 函数总是可调用
func newStore(ctx context.Context, cfg *config.Config) (session.Store, func(), error) {
	switch cfg.Store {
	case config.StoreRedis:
		rdb, err := session.DialRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("redis: %w", err)
		}
		return session.NewRedisStore(rdb, cfg.SessionTTL), func() { _ = rdb.Close() }, nil
	default:
		return session.NewMemoryStore(), func() {}, nil
	}
}

func browserURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://127.0.0.1" + addr
	}
	return "http://" + addr
}
