package mock

import (
	"context"

	"github.com/gekberg/gptnotes"
)

var _ gptnotes.ConfigService = (*ConfigService)(nil)

// ConfigService is a mock implementation of gptnotes.ConfigService.
type ConfigService struct {
	LoadFn func(ctx context.Context) (*gptnotes.Config, error)
	PathFn func() string
}

func (s *ConfigService) Load(ctx context.Context) (*gptnotes.Config, error) {
	return s.LoadFn(ctx)
}

func (s *ConfigService) Path() string {
	return s.PathFn()
}
