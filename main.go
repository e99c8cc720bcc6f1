package main

import (
	"net/http"

	"go.uber.org/zap"

	"n77audit/config"
	"n77audit/handlers"
	"n77audit/inventory"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	h := &handlers.Handler{Cfg: cfg, Log: logger}
	if cfg.InventoryDB != "" {
		inv, err := inventory.Open(cfg.InventoryDB)
		if err != nil {
			logger.Fatal("cannot open node inventory", zap.String("path", cfg.InventoryDB), zap.Error(err))
		}
		defer inv.Close()
		h.Inv = inv
	}

	http.HandleFunc("/upload", h.Upload)
	http.Handle("/download/",
		http.StripPrefix("/download/", http.FileServer(http.Dir(cfg.OutputDir))))

	logger.Info("server started", zap.String("addr", cfg.ListenAddr))
	if err := http.ListenAndServe(cfg.ListenAddr, nil); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
