package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"vpn-instance-scheduler/types"
)

// InstanceController changes the power state of the configured instance.
type InstanceController interface {
	ManageInstance(ctx context.Context, action types.Action, conf types.Config) (types.OperationResult, int)
}

type ConfigLoader func() (types.Config, error)

type Server struct {
	logger     *zerolog.Logger
	controller InstanceController
	loadConfig ConfigLoader
	router     *mux.Router

	mu         sync.Mutex
	httpServer *http.Server
}

func New(logger *zerolog.Logger, controller InstanceController, loadConfig ConfigLoader) *Server {
	api := &Server{
		logger:     logger,
		controller: controller,
		loadConfig: loadConfig,
	}
	api.router = api.routes()
	return api
}

func (api *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(api.invocationMiddleware, api.recoverMiddleware)

	r.HandleFunc("/healthz", api.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/{action}", api.handleAction).Methods(http.MethodPost)
	// Cloud Scheduler targets the function URL itself.
	r.HandleFunc("/", api.actionHandler(types.ActionStop)).Methods(http.MethodPost, http.MethodGet)
	return r
}

func (api *Server) Handler() http.Handler {
	return api.router
}

func (api *Server) Serve(port uint) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: api.router,
	}
	api.mu.Lock()
	api.httpServer = srv
	api.mu.Unlock()

	api.logger.Info().Msgf("Listening on port %d", port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop waits for in-flight invocations to finish or ctx to expire.
func (api *Server) Stop(ctx context.Context) error {
	api.logger.Info().Msg("Stopping API server")
	api.mu.Lock()
	srv := api.httpServer
	api.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

func (api *Server) actionHandler(action types.Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := zerolog.Ctx(r.Context())

		conf, err := api.loadConfig()
		if err != nil {
			logger.Error().Err(err).Str("action", string(action)).Msg("Configuration incomplete, skipping instance operation")
			writeResult(w, logger, types.Failed(missingConfigMessage(err)), http.StatusInternalServerError)
			return
		}

		ctx := logger.With().
			Str("project", conf.ProjectID).
			Str("zone", conf.Zone).
			Str("instance", conf.InstanceName).
			Logger().
			WithContext(r.Context())

		result, status := api.controller.ManageInstance(ctx, action, conf)
		writeResult(w, logger, result, status)
	}
}

func (api *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	action, err := types.ParseAction(mux.Vars(r)["action"])
	if err != nil {
		writeResult(w, zerolog.Ctx(r.Context()), types.Failed(err.Error()), http.StatusNotFound)
		return
	}
	api.actionHandler(action)(w, r)
}

func (api *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func missingConfigMessage(err error) string {
	var missing *types.MissingConfigError
	if errors.As(err, &missing) {
		return "Missing required environment variables: " + strings.Join(missing.Keys, ", ")
	}
	return "Missing required environment variables"
}

func writeResult(w http.ResponseWriter, logger *zerolog.Logger, result types.OperationResult, status int) {
	if err := writeJSON(w, status, result); err != nil {
		logger.Error().Err(err).Msg("Failed to write response")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
