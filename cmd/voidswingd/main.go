package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	cfg "github.com/voidswing/voidswing/config"
	"github.com/voidswing/voidswing/protocol"
	"github.com/voidswing/voidswing/stream"
)

func main() {
	port := flag.Uint("port", 7474, "Server port")
	tickRate := flag.Int("tickrate", 30, "Server tick rate (updates per second)")
	seed := flag.Int64("seed", 1, "Hazard stream seed (equal seeds replay equal runs)")
	flag.Parse()

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	server, err := stream.NewServer(cfg.Default(), *seed, *tickRate)
	if err != nil {
		log.Fatalf("Failed to build simulation: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting voidswing server on port %d (tick rate: %d/s, seed: %d)",
		*port, *tickRate, *seed)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
