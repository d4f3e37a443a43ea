package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"twala_backend/internal/feature/onboarding/domain"
	"twala_backend/internal/feature/onboarding/domain/entity"
	"twala_backend/internal/shared/notify"
	"twala_backend/internal/shared/viewport"
)

// PrerequisiteData exposes the account and transaction counts of a user.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type PrerequisiteData interface {
	CountCustodyAccounts(ctx context.Context, userID uint) (int64, error)
	CountTransactions(ctx context.Context, userID uint) (int64, error)
}

// RouteClassifier tells authentication pages apart from the rest of the app.
type RouteClassifier interface {
	IsAuthRoute(route string) bool
}

// Navigator resolves where a prerequisite's call-to-action leads.
type Navigator interface {
	Destination(k entity.Kind) string
}

// StateStore holds one SessionState per user.
type StateStore interface {
	// Load returns the user's state, or a fresh one if none is stored.
	Load(ctx context.Context, userID uint) (*entity.SessionState, error)
	Save(ctx context.Context, st *entity.SessionState) error
	Delete(ctx context.Context, userID uint) error
}

// Notifier receives the toasts raised when a prerequisite is met.
type Notifier interface {
	Push(userID uint, t notify.Toast) notify.Toast
	Clear(userID uint)
}

// Decision is the outcome of one gate evaluation.
type Decision struct {
	Prerequisites    []entity.Prerequisite
	Panel            *Panel // nil when nothing should be rendered
	Viewport         viewport.Class
	ViewportMeasured bool
}

// GateUsecase decides, per page render, whether an onboarding panel interrupts the user.
type GateUsecase struct {
	data     PrerequisiteData
	routes   RouteClassifier
	nav      Navigator
	store    StateStore
	notifier Notifier
	now      func() time.Time
}

// NewGateUsecase はGateUsecaseの新しいインスタンスを生成します。
func NewGateUsecase(data PrerequisiteData, routes RouteClassifier, nav Navigator, store StateStore, notifier Notifier) *GateUsecase {
	return &GateUsecase{
		data:     data,
		routes:   routes,
		nav:      nav,
		store:    store,
		notifier: notifier,
		now:      time.Now,
	}
}

// Evaluate はレンダリング対象のルートとビューポート幅からゲートの判定を行います。
// 入力が揃わない場合（状態の読み込み失敗・件数取得失敗）は何も表示しない判定に縮退します。
// width <= 0 はビューポート未計測を意味し、前回の計測値があればそれを使います。
func (g *GateUsecase) Evaluate(ctx context.Context, userID uint, route string, width int) (Decision, error) {
	st, err := g.store.Load(ctx, userID)
	if err != nil {
		slog.Error("onboarding state load failed", "error", err, "user_id", userID)
		return Decision{Prerequisites: Evaluate(Input{}, nil)}, nil
	}

	obs := viewport.Restore(st.Viewport)
	unsubscribe := obs.Subscribe(func(from, to viewport.Class) {
		slog.Debug("viewport class changed", "user_id", userID, "from", from.String(), "to", to.String())
	})
	obs.Observe(width)
	unsubscribe()
	st.Viewport = obs.Snapshot()

	in := g.input(ctx, userID, route)
	if in.Gated() {
		for _, k := range st.Observe(Outstanding(in)) {
			if satisfied(k, in) {
				g.notifySatisfied(userID, k)
			}
		}
	}

	prereqs := Evaluate(in, st)
	decision := Decision{
		Prerequisites:    prereqs,
		Panel:            SelectPanel(prereqs, obs.Measured(), obs.Class()),
		Viewport:         obs.Class(),
		ViewportMeasured: obs.Measured(),
	}

	st.UpdatedAt = g.now()
	if err := g.store.Save(ctx, st); err != nil {
		slog.Error("onboarding state save failed", "error", err, "user_id", userID)
	}
	return decision, nil
}

// input gathers the evaluator input. Auth routes skip the count queries.
func (g *GateUsecase) input(ctx context.Context, userID uint, route string) Input {
	in := Input{AuthRoute: g.routes.IsAuthRoute(route)}
	if in.AuthRoute {
		return in
	}
	custody, err := g.data.CountCustodyAccounts(ctx, userID)
	if err != nil {
		slog.Warn("custody account count unavailable", "error", err, "user_id", userID)
		return in
	}
	txs, err := g.data.CountTransactions(ctx, userID)
	if err != nil {
		slog.Warn("transaction count unavailable", "error", err, "user_id", userID)
		return in
	}
	in.CustodyAccounts = custody
	in.Transactions = txs
	in.Ready = true
	return in
}

func (g *GateUsecase) notifySatisfied(userID uint, k entity.Kind) {
	if g.notifier == nil {
		return
	}
	cfg := k.Config()
	g.notifier.Push(userID, notify.Toast{
		Title:   cfg.SatisfiedTitle,
		Message: cfg.SatisfiedMessage,
		Variant: notify.VariantSuccess,
	})
}

// Dismiss closes the kind's panel for the rest of the session.
func (g *GateUsecase) Dismiss(ctx context.Context, userID uint, k entity.Kind, reason entity.DismissReason) error {
	if !reason.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidDismissReason, reason)
	}
	st, err := g.store.Load(ctx, userID)
	if err != nil {
		return fmt.Errorf("load onboarding state: %w", err)
	}
	st.Dismiss(k)
	st.UpdatedAt = g.now()
	if err := g.store.Save(ctx, st); err != nil {
		return fmt.Errorf("save onboarding state: %w", err)
	}
	slog.Info("onboarding panel dismissed", "user_id", userID, "kind", k.String(), "reason", string(reason))
	return nil
}

// Act dismisses the panel as completed and returns where the client should navigate.
func (g *GateUsecase) Act(ctx context.Context, userID uint, k entity.Kind) (string, error) {
	if err := g.Dismiss(ctx, userID, k, entity.DismissAction); err != nil {
		return "", err
	}
	return g.nav.Destination(k), nil
}

// Reset clears every dismissal so the next evaluation starts from scratch.
func (g *GateUsecase) Reset(ctx context.Context, userID uint) error {
	st, err := g.store.Load(ctx, userID)
	if err != nil {
		return fmt.Errorf("load onboarding state: %w", err)
	}
	st.Reset()
	st.UpdatedAt = g.now()
	if err := g.store.Save(ctx, st); err != nil {
		return fmt.Errorf("save onboarding state: %w", err)
	}
	return nil
}

// End drops the session's onboarding state, e.g. on logout.
func (g *GateUsecase) End(ctx context.Context, userID uint) error {
	if err := g.store.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete onboarding state: %w", err)
	}
	if g.notifier != nil {
		g.notifier.Clear(userID)
	}
	return nil
}
