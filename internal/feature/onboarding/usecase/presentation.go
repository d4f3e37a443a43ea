package usecase

import (
	"twala_backend/internal/feature/onboarding/domain/entity"
	"twala_backend/internal/shared/viewport"
)

// Container is the UI element a panel is rendered in.
type Container string

const (
	ContainerModal  Container = "modal"
	ContainerDrawer Container = "drawer"
)

// ContainerFor returns drawer for mobile viewports and modal otherwise.
func ContainerFor(c viewport.Class) Container {
	if c == viewport.Mobile {
		return ContainerDrawer
	}
	return ContainerModal
}

// Panel is the single onboarding panel to render.
type Panel struct {
	Kind      entity.Kind
	Container Container
	Config    entity.KindConfig
}

// SelectPanel picks the open prerequisite, if any. Nothing is rendered until the
// viewport has been measured, so the client never flashes the wrong container.
func SelectPanel(prereqs []entity.Prerequisite, measured bool, class viewport.Class) *Panel {
	if !measured {
		return nil
	}
	for _, p := range prereqs {
		if p.Open {
			return &Panel{Kind: p.Kind, Container: ContainerFor(class), Config: p.Kind.Config()}
		}
	}
	return nil
}
