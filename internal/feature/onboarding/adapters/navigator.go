package adapters

import (
	"twala_backend/internal/feature/onboarding/domain/entity"
	"twala_backend/internal/feature/onboarding/usecase"
)

type configNavigator struct {
	overrides map[entity.Kind]string
}

var _ usecase.Navigator = (*configNavigator)(nil)

// NewNavigator resolves destinations from the kind config. overrides may replace
// individual routes, e.g. when the web client is mounted under a base path.
func NewNavigator(overrides map[entity.Kind]string) *configNavigator {
	return &configNavigator{overrides: overrides}
}

func (n *configNavigator) Destination(k entity.Kind) string {
	if d, ok := n.overrides[k]; ok && d != "" {
		return d
	}
	return k.Config().Destination
}
