// Command arena runs an authoritative first-person movement server.
// Clients connect over a websocket, stream input messages, and receive
// world state snapshots at a fixed tick rate. Tuning hot-reloads from
// the same yaml file the playground uses.
package main

import (
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/milk9111/firstperson/config"
)

func main() {
	var (
		addr       string
		logPath    string
		tuningPath string
	)
	flag.StringVar(&addr, "addr", ":8080", "listen address")
	flag.StringVar(&logPath, "log", "arena.log", "log file path")
	flag.StringVar(&tuningPath, "tuning", "tuning.yaml", "movement tuning file")
	flag.Parse()

	log := newLogger(logPath)
	defer func() { _ = log.Sync() }()

	tuning, err := config.Load(tuningPath)
	if err != nil {
		log.Warnf("load tuning from %s: %v; using defaults", tuningPath, err)
		tuning = config.Default()
	}

	room := newRoom(tuning, log)
	go room.run()

	if watcher, err := config.Watch(tuningPath); err != nil {
		log.Warnf("tuning watch disabled: %v", err)
	} else {
		defer watcher.Close()
		go func() {
			for {
				select {
				case t, ok := <-watcher.Events:
					if !ok {
						return
					}
					room.retune(t)
				case err, ok := <-watcher.Errors:
					if !ok {
						return
					}
					log.Warnf("tuning reload: %v", err)
				}
			}
		}()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", handleWS(room))
	mux.HandleFunc("/metrics", handleMetrics(room))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		log.Infof("arena listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")
	_ = srv.Close()
}
