// Package mobile 给 gomobile 绑定用：在 App 进程里起本地对局服务。
package mobile

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"xiangqi/internal/obslog"
	httpserver "xiangqi/internal/server/http"
	"xiangqi/internal/session"
)

var (
	mu     sync.Mutex
	server *http.Server
	addr   string
)

// StartServer starts the local HTTP server on 127.0.0.1:port.
// webDir: physical path to the extracted web assets
// port: port to listen on, e.g. "2888"; "0" picks a free one (see ServerAddr)
func StartServer(webDir string, port string) error {
	mu.Lock()
	defer mu.Unlock()
	if server != nil {
		return errors.New("server already running")
	}

	ln, err := net.Listen("tcp", "127.0.0.1:"+port)
	if err != nil {
		return err
	}
	games := session.NewManager(session.NewMemoryStore())
	srv := &http.Server{
		Handler:           httpserver.NewRouter(httpserver.NewHandler(games), webDir),
		ReadHeaderTimeout: 10 * time.Second,
	}
	server = srv
	addr = ln.Addr().String()

	// 后台运行，不阻塞 Android UI 线程
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			obslog.L().Error("mobile_server_error", zap.Error(err))
		}
	}()
	return nil
}

// ServerAddr 返回监听地址，未启动时为空
func ServerAddr() string {
	mu.Lock()
	defer mu.Unlock()
	return addr
}

func StopServer() {
	mu.Lock()
	srv := server
	server, addr = nil, ""
	mu.Unlock()
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}
