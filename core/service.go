package core

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Interface defines a common interface for all services
type Interface interface {
	Start(ctx context.Context) error
	Stop()
}

type namedService struct {
	name    string
	service Interface
}

// Registry manages all services
type Registry struct {
	services []namedService
	started  int
	logger   *zap.Logger
}

// NewRegistry creates a new core registry
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		services: make([]namedService, 0),
		logger:   logger.Named("core"),
	}
}

// Register adds a service to the registry under name
func (sr *Registry) Register(name string, service Interface) {
	sr.services = append(sr.services, namedService{name: name, service: service})
}

// Start starts registered services in registration order. When one fails,
// the ones already started are stopped again.
func (sr *Registry) Start(ctx context.Context) error {
	for i, s := range sr.services {
		if err := s.service.Start(ctx); err != nil {
			sr.started = i
			sr.Stop()
			return fmt.Errorf("failed to start %s: %w", s.name, err)
		}
		sr.logger.Debug("service started", zap.String("service", s.name))
	}
	sr.started = len(sr.services)
	return nil
}

// Stop stops started services in reverse order
func (sr *Registry) Stop() {
	for i := sr.started - 1; i >= 0; i-- {
		sr.services[i].service.Stop()
		sr.logger.Debug("service stopped", zap.String("service", sr.services[i].name))
	}
	sr.started = 0
}
