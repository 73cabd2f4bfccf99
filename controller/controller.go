package controller

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"vpn-instance-scheduler/credentials"
	"vpn-instance-scheduler/types"
)

func New(logger *zerolog.Logger, provider credentials.Provider, opts ...Option) *Controller {
	c := &Controller{
		credentials: provider,
		endpoint:    DefaultEndpoint,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ManageInstance performs exactly one start or stop request for the instance
// in conf and classifies the outcome. It never returns an error: every
// failure is reported as an unsuccessful result with status 500.
func (c *Controller) ManageInstance(ctx context.Context, action types.Action, conf types.Config) (types.OperationResult, int) {
	logger := zerolog.Ctx(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		logger = c.logger
	}

	logger.Info().
		Str("action", string(action)).
		Str("instance", conf.InstanceName).
		Str("zone", conf.Zone).
		Msgf("%s instance: %s in %s", capitalize(action.Gerund()), conf.InstanceName, conf.Zone)

	svc, err := c.computeService(ctx)
	if err != nil {
		return c.exception(logger, action, err)
	}

	op, err := sendAction(ctx, svc, action, conf)
	if err == nil && op.HTTPStatusCode != http.StatusOK {
		// Only a plain 200 means the operation was accepted.
		logger.Error().
			Int("code", op.HTTPStatusCode).
			Msgf("Error %s instance: unexpected status %d", action.Gerund(), op.HTTPStatusCode)
		return types.Failed(fmt.Sprintf("Error %s instance: %s", action.Gerund(), unknownError)), http.StatusInternalServerError
	}
	if err == nil {
		logger.Info().
			Str("operation", op.Name).
			Str("status", op.Status).
			Msgf("Successfully %s instance %s", action.PastTense(), conf.InstanceName)
		return types.Succeeded(fmt.Sprintf("Instance %s %s operation initiated", conf.InstanceName, action)), http.StatusOK
	}

	code, message, ok := providerError(err)
	if !ok {
		return c.exception(logger, action, err)
	}

	if isAlreadyInState(code) {
		logger.Warn().
			Int("code", code).
			Msgf("Instance might already be %s: %s", action.TargetState(), message)
		return types.Succeeded(fmt.Sprintf("Instance %s is already %s or %s", conf.InstanceName, action.TargetState(), action.Gerund())), http.StatusOK
	}

	logger.Error().
		Int("code", code).
		Msgf("Error %s instance: %s", action.Gerund(), message)
	return types.Failed(fmt.Sprintf("Error %s instance: %s", action.Gerund(), message)), http.StatusInternalServerError
}

func (c *Controller) exception(logger *zerolog.Logger, action types.Action, err error) (types.OperationResult, int) {
	logger.Error().Err(err).Msgf("Exception %s instance", action.Gerund())
	return types.Failed(fmt.Sprintf("Exception: %v", err)), http.StatusInternalServerError
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
