// Command genematch-server provides a REST API for best-match searches.
//
// Usage:
//
//	genematch-server [options]
//
// Options:
//
//	-catalog  Catalog file (default: covid.tsv)
//	-port     Port to listen on (default: 8080)
//	-host     Host to bind to (default: localhost)
//	-workers  Alignment workers per request (default: number of CPUs)
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/aria-lang/genematch/api"
	"github.com/aria-lang/genematch/internal/catalog"
	"github.com/dustin/go-humanize"
)

func main() {
	catalogPath := flag.String("catalog", "covid.tsv", "Catalog file (TSV with GeneID and sequence columns, or FASTA)")
	port := flag.Int("port", 8080, "Port to listen on")
	host := flag.String("host", "localhost", "Host to bind to")
	workers := flag.Int("workers", runtime.NumCPU(), "Alignment workers per match request")
	timeout := flag.Duration("timeout", 60*time.Second, "Per-request timeout")
	flag.Parse()

	cat, err := catalog.Load(*catalogPath)
	if err != nil {
		log.Fatalf("Could not load catalog: %v\n", err)
	}
	log.Printf("Loaded %s records from %s (catalog %s)\n",
		humanize.Comma(int64(cat.Len())), cat.Source, cat.ID)

	handler := api.NewRouter(cat, api.Config{
		Workers:   *workers,
		Timeout:   *timeout,
		AccessLog: log.New(os.Stdout, "", log.LstdFlags),
		ScanLog:   log.Default(),
	})

	addr := fmt.Sprintf("%s:%d", *host, *port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: *timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Could not gracefully shutdown: %v\n", err)
		}
		close(done)
	}()

	log.Printf("GeneMatch API server starting on http://%s\n", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", addr, err)
	}

	<-done
	log.Println("Server stopped")
}
