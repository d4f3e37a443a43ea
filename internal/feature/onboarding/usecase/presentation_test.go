package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twala_backend/internal/feature/onboarding/domain/entity"
	"twala_backend/internal/shared/viewport"
)

func TestSelectPanel(t *testing.T) {
	t.Parallel()

	open := []entity.Prerequisite{
		{Kind: entity.KindCustody, Outstanding: true, Open: true},
		{Kind: entity.KindTransactions},
	}

	tests := []struct {
		name     string
		prereqs  []entity.Prerequisite
		width    int
		wantNil  bool
		wantCont Container
	}{
		{name: "767 is mobile: drawer", prereqs: open, width: 767, wantCont: ContainerDrawer},
		{name: "768 is desktop: modal", prereqs: open, width: 768, wantCont: ContainerModal},
		{name: "769 is desktop: modal", prereqs: open, width: 769, wantCont: ContainerModal},
		{name: "not measured renders nothing", prereqs: open, width: 0, wantNil: true},
		{
			name:    "nothing open",
			prereqs: []entity.Prerequisite{{Kind: entity.KindCustody, Outstanding: true}, {Kind: entity.KindTransactions}},
			width:   1024,
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			obs := viewport.NewObserver()
			obs.Observe(tt.width)

			got := SelectPanel(tt.prereqs, obs.Measured(), obs.Class())
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, entity.KindCustody, got.Kind)
			assert.Equal(t, tt.wantCont, got.Container)
			assert.Equal(t, entity.KindCustody.Config(), got.Config)
		})
	}
}

func TestContainerFor(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ContainerDrawer, ContainerFor(viewport.Mobile))
	assert.Equal(t, ContainerModal, ContainerFor(viewport.Desktop))
}
