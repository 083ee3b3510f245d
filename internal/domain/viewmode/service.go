// internal/domain/viewmode/service.go
package viewmode

import (
	"context"
	"errors"
	"fmt"

	"github.com/logicbyfred/gallery-store/internal/domain/catalog"
	"github.com/sirupsen/logrus"
)

// ErrSessionRequired is returned when no session id accompanies a view call
var ErrSessionRequired = errors.New("session ID required for view state")

// Decision is what a product page renders from
type Decision struct {
	ProductID       string     `json:"product_id"`
	Mode            Mode       `json:"mode"`
	ToggleAvailable bool       `json:"toggle_available"`
	Preference      Preference `json:"preference"`
	LowEnd          bool       `json:"low_end"`
	RuntimeFailed   bool       `json:"runtime_failed"`
}

// Service manages view state per session and product
type Service struct {
	store   *Store
	catalog catalog.Catalog
	policy  DetectionPolicy
	logger  *logrus.Logger
}

func NewService(store *Store, cat catalog.Catalog, policy DetectionPolicy, logger *logrus.Logger) *Service {
	return &Service{
		store:   store,
		catalog: cat,
		policy:  policy,
		logger:  logger,
	}
}

// Get returns the current decision for a product view
func (s *Service) Get(ctx context.Context, sessionID, productID string) (Decision, error) {
	if err := s.check(ctx, sessionID, productID); err != nil {
		return Decision{}, err
	}

	rec, err := s.store.Load(ctx, sessionID, productID)
	if err != nil {
		return Decision{}, fmt.Errorf("failed to load view state: %w", err)
	}
	return decide(productID, rec), nil
}

// ReportCapability records a probe outcome already reduced to a capability
func (s *Service) ReportCapability(ctx context.Context, sessionID, productID string, c Capability) (Decision, error) {
	return s.apply(ctx, sessionID, productID, func(rec *Record) {
		ctrl := Restore(rec.State)
		ctrl.ReportCapability(c)
		rec.State = ctrl.State()
	})
}

// ReportProbe runs the prober and reports its capability. Probe failures
// downgrade to Unsupported and never surface as errors.
func (s *Service) ReportProbe(ctx context.Context, sessionID, productID string, p Prober) (Decision, error) {
	det := Detect(ctx, p)
	capability := s.policy.Capability(det)

	entry := s.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"product_id": productID,
		"capability": capability.String(),
		"renderer":   det.Renderer,
		"low_end":    det.LowEnd,
	})
	if det.Err != nil {
		entry.WithError(det.Err).Info("Rendering probe fell back to 2D")
	} else {
		entry.Debug("Rendering probe reported")
	}

	return s.apply(ctx, sessionID, productID, func(rec *Record) {
		if rec.Capability != CapabilityUnknown {
			return
		}
		ctrl := Restore(rec.State)
		ctrl.ReportCapability(capability)
		rec.State = ctrl.State()
		rec.Renderer = det.Renderer
		rec.LowEnd = det.LowEnd
	})
}

// SetPreference stores the visitor's 3D/2D choice
func (s *Service) SetPreference(ctx context.Context, sessionID, productID string, p Preference) (Decision, error) {
	return s.apply(ctx, sessionID, productID, func(rec *Record) {
		ctrl := Restore(rec.State)
		ctrl.SetPreference(p)
		rec.State = ctrl.State()
	})
}

// ReportRuntimeFailure permanently downgrades the view for this session
func (s *Service) ReportRuntimeFailure(ctx context.Context, sessionID, productID string) (Decision, error) {
	d, err := s.apply(ctx, sessionID, productID, func(rec *Record) {
		ctrl := Restore(rec.State)
		ctrl.ReportRuntimeFailure()
		rec.State = ctrl.State()
	})
	if err == nil {
		s.logger.WithFields(logrus.Fields{
			"session_id": sessionID,
			"product_id": productID,
		}).Warn("3D presentation failed, falling back to 2D")
	}
	return d, err
}

func (s *Service) apply(ctx context.Context, sessionID, productID string, fn func(*Record)) (Decision, error) {
	if err := s.check(ctx, sessionID, productID); err != nil {
		return Decision{}, err
	}

	rec, err := s.store.Update(ctx, sessionID, productID, fn)
	if err != nil {
		return Decision{}, fmt.Errorf("failed to update view state: %w", err)
	}
	return decide(productID, rec), nil
}

func (s *Service) check(ctx context.Context, sessionID, productID string) error {
	if sessionID == "" {
		return ErrSessionRequired
	}
	if _, err := s.catalog.GetProductByID(ctx, productID); err != nil {
		return err
	}
	return nil
}

func decide(productID string, rec Record) Decision {
	ctrl := Restore(rec.State)
	return Decision{
		ProductID:       productID,
		Mode:            ctrl.EffectiveMode(),
		ToggleAvailable: ctrl.ToggleAvailable(),
		Preference:      rec.Preference,
		LowEnd:          rec.LowEnd,
		RuntimeFailed:   rec.RuntimeFailed,
	}
}
