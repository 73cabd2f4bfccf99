package controller

import (
	"context"
	"fmt"

	compute "google.golang.org/api/compute/v1"
	"google.golang.org/api/option"

	"vpn-instance-scheduler/types"
)

func (c *Controller) computeService(ctx context.Context) (*compute.Service, error) {
	httpClient, err := c.credentials.Client(ctx)
	if err != nil {
		return nil, err
	}

	svc, err := compute.NewService(ctx,
		option.WithHTTPClient(httpClient),
		option.WithEndpoint(c.endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("creating compute service: %w", err)
	}
	return svc, nil
}

// sendAction issues the single POST for action and returns the operation the
// API accepted.
func sendAction(ctx context.Context, svc *compute.Service, action types.Action, conf types.Config) (*compute.Operation, error) {
	switch action {
	case types.ActionStart:
		return svc.Instances.Start(conf.ProjectID, conf.Zone, conf.InstanceName).Context(ctx).Do()
	case types.ActionStop:
		return svc.Instances.Stop(conf.ProjectID, conf.Zone, conf.InstanceName).Context(ctx).Do()
	default:
		return nil, fmt.Errorf("invalid action %q", action)
	}
}
