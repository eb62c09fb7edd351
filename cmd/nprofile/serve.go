package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"nprofile.mleku.dev/chk"
	"nprofile.mleku.dev/config"
	"nprofile.mleku.dev/log"
	"nprofile.mleku.dev/openapi"
)

func serve(cfg *config.C) (err error) {
	sm := openapi.NewServeMux()
	openapi.New(sm, cfg.AppName, version,
		"encode and decode NIP-19 nprofile strings", cfg.APIPath, cfg.Relays)
	addr := net.JoinHostPort(cfg.Listen, strconv.Itoa(cfg.Port))
	srv := &http.Server{
		Addr:         addr,
		Handler:      openapi.Handler(sm),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  30 * time.Second,
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt,
		syscall.SIGTERM)
	defer cancel()
	go func() {
		<-ctx.Done()
		log.I.Ln("shutting down")
		timeout, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		chk.E(srv.Shutdown(timeout))
	}()
	log.I.F("listening on %s, docs at %s", addr, cfg.APIPath)
	if err = srv.ListenAndServe(); errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	return
}
