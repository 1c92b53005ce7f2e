package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/soochol/nodecanvas/internal/api"
	"github.com/soochol/nodecanvas/internal/catalog"
	"github.com/soochol/nodecanvas/internal/config"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		serve()
		return
	}
	fmt.Println("nodecanvas v0.1.0")
	fmt.Println("Usage: nodecanvas serve")
}

func serve() {
	cfg, err := config.LoadDefault()
	if err != nil {
		slog.Error("config error", "err", err)
		os.Exit(1)
	}

	registry := catalog.Builtin()
	srv := api.NewServer(registry, cfg.CORS.AllowedOrigins)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	slog.Info("starting nodecanvas server", "addr", addr, "nodes", len(registry.List()))
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		slog.Error("server error", "err", err)
		os.Exit(1)
	}
}
