package controller

import (
	"github.com/rs/zerolog"

	"vpn-instance-scheduler/credentials"
)

const DefaultEndpoint = "https://compute.googleapis.com/compute/v1/"

const unknownError = "Unknown error"

type Controller struct {
	credentials credentials.Provider
	endpoint    string
	logger      *zerolog.Logger
}

type Option func(*Controller)

// WithEndpoint points the controller at another Compute API base URL, such as
// an emulator. An empty value keeps the default.
func WithEndpoint(endpoint string) Option {
	return func(c *Controller) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}
