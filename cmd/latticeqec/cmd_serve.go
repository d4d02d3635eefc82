// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"github.com/AleutianAI/LatticeQEC/services/session"
)

var (
	servePort  int
	serveTrace string // "stdout" or "none"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the interactive session server",
	Long: "Runs the HTTP and WebSocket API for interactive lattice sessions.\n" +
		"Stabilizer matrices, error samples and decodes are fetched from the\n" +
		"remote service configured with --server-url; stabilizer matrices are\n" +
		"cached locally.",
	Example: "  latticeqec serve --port 12250\n" +
		"  latticeqec serve --trace stdout --cache-dir ~/.latticeqec/cache",
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVar(&servePort, "port", 12250, "HTTP listen port")
	serveCmd.Flags().StringVar(&serveTrace, "trace", "none", "Span exporter (stdout, none)")
}

// initTracer installs a stdout span exporter. Container deployments swap
// this for an OTLP collector at the compose layer.
func initTracer() (func(context.Context), error) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}

	res, err := resource.New(context.Background(),
		resource.WithAttributes(semconv.ServiceNameKey.String("latticeqec-session")))
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{}))

	return func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			slog.Error("tracer shutdown failed", "error", err)
		}
	}, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveTrace == "stdout" {
		cleanup, err := initTracer()
		if err != nil {
			return err
		}
		defer cleanup(context.Background())
	}

	svc, closeCache, err := newRemoteServices()
	if err != nil {
		return err
	}
	defer closeCache()

	s := session.New(svc)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	session.RegisterValidators()
	session.RegisterRoutes(router, s)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", servePort),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("session server listening", "port", servePort, "session_id", s.ID())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		slog.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
