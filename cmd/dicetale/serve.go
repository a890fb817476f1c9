package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/dicetale"
	httpAdapter "github.com/aretw0/dicetale/internal/adapters/http"
	"github.com/aretw0/dicetale/internal/logging"
	"github.com/aretw0/dicetale/pkg/adapters/memory"
	redisStore "github.com/aretw0/dicetale/pkg/adapters/redis"
	"github.com/aretw0/dicetale/pkg/ports"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the Dicetale engine in server mode, exposing the model, the
table and roll-by-roll story sessions as a JSON API over HTTP.

Story sessions live in an in-memory store by default; pass --store redis
to share sessions between server instances (a whole classroom rolling
against the same corpus).`,
	Run: func(cmd *cobra.Command, args []string) {
		dir := repoPathFromFlags(cmd, args)
		port, _ := cmd.Flags().GetString("port")
		storeKind, _ := cmd.Flags().GetString("store")
		redisAddr, _ := cmd.Flags().GetString("redis-addr")
		redisPassword, _ := cmd.Flags().GetString("redis-password")
		ttl, _ := cmd.Flags().GetDuration("session-ttl")
		debug, _ := cmd.Flags().GetBool("debug")

		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		logger := logging.New(level)

		engine, err := dicetale.New(dir, dicetale.WithLogger(logger))
		if err != nil {
			fmt.Printf("Error initializing dicetale: %v\n", err)
			os.Exit(1)
		}

		var store ports.StoryStore
		switch storeKind {
		case "memory":
			store = memory.NewStore()
		case "redis":
			rs := redisStore.New(redisAddr, redisPassword, 0, redisStore.WithTTL(ttl))
			defer rs.Close()
			store = rs
		default:
			fmt.Printf("Unknown store: %s. Supported: memory, redis\n", storeKind)
			os.Exit(1)
		}

		handler := httpAdapter.NewHandler(engine, store, logger)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Dicetale Server on %s\n", srv.Addr)
			fmt.Printf("Serving corpus from: %s\n", dir)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Dicetale Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("store", "memory", "Story session store: 'memory' or 'redis'")
	serveCmd.Flags().String("redis-addr", "localhost:6379", "Redis address (only for --store redis)")
	serveCmd.Flags().String("redis-password", "", "Redis password (only for --store redis)")
	serveCmd.Flags().Duration("session-ttl", time.Hour, "Expire idle story sessions after this long (0 keeps them forever)")
}
