package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	commonlog "outreach_web/server/common/log"
	webapp "outreach_web/server/web/app"
)

func main() {
	cfg := webapp.LoadConfig()

	server, err := webapp.NewServer(cfg)
	if err != nil {
		log.Fatalf("initialize web server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		commonlog.Infof("start web server on :%s", cfg.Port)
		if err := server.HTTPServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("run web server: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		commonlog.Errorf("shutdown web server gracefully: %v", err)
	}

	_ = os.Stdout.Sync()
}
