package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"vpn-instance-scheduler/api"
	"vpn-instance-scheduler/controller"
	"vpn-instance-scheduler/credentials"
	"vpn-instance-scheduler/logging"
	"vpn-instance-scheduler/types"
)

var (
	serverPort      uint
	logLevel        string
	logFormat       string
	computeEndpoint string
)

func init() {
	flag.UintVar(&serverPort, "serverPort", envUint("PORT", 8080), "Port for the trigger server")
	flag.StringVar(&logLevel, "logLevel", envString("LOG_LEVEL", "info"), "Log level")
	flag.StringVar(&logFormat, "logFormat", envString("LOG_FORMAT", logging.FormatJSON), "Log format: json or console")
	flag.StringVar(&computeEndpoint, "computeEndpoint", envString("COMPUTE_ENDPOINT", controller.DefaultEndpoint), "Compute Engine API base URL")
}

func main() {
	flag.Parse()

	// Initialize logger
	logging.InitLogger(logLevel, logFormat)
	logger := logging.GetLogger()

	identity := credentials.Describe()
	logger.Info().
		Bool("on_gce", identity.OnGCE).
		Str("service_account", identity.ServiceAccount).
		Str("metadata_project", identity.ProjectID).
		Msg("Resolved runtime identity")

	// Instance coordinates are read again on every invocation; this only warns early.
	if _, err := types.LoadConfigFromEnv(); err != nil {
		logger.Warn().Err(err).Msg("Instance configuration incomplete, triggers will fail until it is set")
	}

	instanceController := controller.New(logger, credentials.NewDefault(), controller.WithEndpoint(computeEndpoint))
	apiServer := api.New(logger, instanceController, types.LoadConfigFromEnv)

	go func() {
		if err := apiServer.Serve(serverPort); err != nil {
			logger.Fatal().Err(err).Msg("Failed to start API server")
		}
	}()

	// Set up a channel to capture termination signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	// Block until a termination signal is received
	<-sigCh

	logger.Info().Msg("Received termination signal. Initiating graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := apiServer.Stop(ctx); err != nil {
		logger.Error().Err(err).Msg("Error during shutdown")
	}

	logger.Info().Msg("Shutdown complete. Exiting.")
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envUint(key string, fallback uint) uint {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return fallback
	}
	return uint(n)
}
