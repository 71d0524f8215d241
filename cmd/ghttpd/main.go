package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ghttpd"
)

func main() {
	var (
		addr     = flag.String("addr", ":8080", "listen address")
		workers  = flag.Int("workers", ghttpd.DefaultWorkers, "worker pool size")
		root     = flag.String("root", "", "content root directory")
		notFound = flag.String("notfound", "404.html", "page served on 404")
		maxConns = flag.Uint("maxconns", 0, "max concurrent connections, 0 for no limit")
		debug    = flag.Bool("debug", false, "log every connection operation")
	)
	flag.Parse()

	handler := &ghttpd.FileHandler{
		Root:     *root,
		NotFound: *notFound,
	}
	stats := &ghttpd.TrafficStatistics{}
	srv := &ghttpd.Server{
		Addr:       *addr,
		Handler:    handler.Serve,
		Workers:    *workers,
		Statistics: stats,
		NewConn:    newConn(*debug),
	}
	if *maxConns > 0 {
		srv.Limiters = []ghttpd.Limiter{&ghttpd.MaxConnLimiter{Max: uint32(*maxConns)}}
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.ListenAndServe()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	log.Printf("ghttpd: listening on %s with %d workers", *addr, *workers)
	select {
	case err := <-errChan:
		log.Fatalf("ghttpd: %v", err)
	case sig := <-sigChan:
		log.Printf("ghttpd: %v received, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("ghttpd: shutdown: %v", err)
	}
	log.Printf("ghttpd: traffic %s", stats)
}

func newConn(debug bool) ghttpd.NewConn {
	return func(conn ghttpd.Conn) ghttpd.Conn {
		if debug {
			conn = ghttpd.NewDebugConn(conn)
		}
		return ghttpd.NewStatsConn(conn)
	}
}
