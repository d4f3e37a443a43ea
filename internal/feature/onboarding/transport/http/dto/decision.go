// Package dto はonboardingフィーチャーのHTTPレスポンス/リクエストを定義します。
package dto

import (
	"twala_backend/internal/feature/onboarding/domain/entity"
	"twala_backend/internal/feature/onboarding/usecase"
)

// PrerequisiteItem is one evaluated prerequisite.
type PrerequisiteItem struct {
	Kind        string `json:"kind"`
	Outstanding bool   `json:"outstanding"`
	Open        bool   `json:"open"`
}

// PanelResponse carries everything the client needs to render the panel.
type PanelResponse struct {
	Kind        string `json:"kind"`
	Container   string `json:"container"` // modal | drawer
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	ActionLabel string `json:"action_label"`
	LaterLabel  string `json:"later_label"`
	Destination string `json:"destination"`
}

type ViewportResponse struct {
	Class    string `json:"class"`
	Measured bool   `json:"measured"`
}

// DecisionResponse は GET /onboarding のレスポンスです。panelがnullなら何も表示しません。
type DecisionResponse struct {
	Prerequisites []PrerequisiteItem `json:"prerequisites"`
	Panel         *PanelResponse     `json:"panel"`
	Viewport      ViewportResponse   `json:"viewport"`
}

// DismissReq は POST /onboarding/prerequisites/:kind/dismiss のリクエストボディです。
type DismissReq struct {
	Reason string `json:"reason" binding:"required,oneof=close later"`
}

func FromDecision(d usecase.Decision) DecisionResponse {
	res := DecisionResponse{
		Prerequisites: make([]PrerequisiteItem, 0, len(d.Prerequisites)),
		Viewport:      ViewportResponse{Class: d.Viewport.String(), Measured: d.ViewportMeasured},
	}
	for _, p := range d.Prerequisites {
		res.Prerequisites = append(res.Prerequisites, PrerequisiteItem{
			Kind:        p.Kind.String(),
			Outstanding: p.Outstanding,
			Open:        p.Open,
		})
	}
	if d.Panel != nil {
		res.Panel = fromPanel(*d.Panel)
	}
	return res
}

func fromPanel(p usecase.Panel) *PanelResponse {
	return &PanelResponse{
		Kind:        p.Kind.String(),
		Container:   string(p.Container),
		Title:       p.Config.Title,
		Description: p.Config.Description,
		Icon:        p.Config.Icon,
		ActionLabel: p.Config.ActionLabel,
		LaterLabel:  p.Config.LaterLabel,
		Destination: p.Config.Destination,
	}
}

// ToReason converts a validated request reason.
func (r DismissReq) ToReason() entity.DismissReason {
	return entity.DismissReason(r.Reason)
}
