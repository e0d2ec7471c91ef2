package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/wavecrest/go-ocean-render/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Printf("Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	webServer := server.NewServer(*port, logger)
	logger.Info("ocean renderer web server", zap.Int("port", *port))

	if err := webServer.Start(); err != nil {
		logger.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
