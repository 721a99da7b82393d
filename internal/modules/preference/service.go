// README: Preference service; validated reads with silent fall-through to defaults.
package preference

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"tollwatch/internal/modules/toll"
)

const (
	fieldVehicle = "vehicle"
	fieldLocale  = "locale"

	// DefaultUser scopes the single-user case (no X-User-ID header).
	DefaultUser = "default"
)

var (
	ErrUnknownVehicle = errors.New("unknown vehicle class")
	ErrUnknownLocale  = errors.New("unknown locale")
)

// Service validates stored preferences on read; a missing, invalid, or
// unreadable value falls back to the default rather than surfacing an error.
// Writes validate their input but swallow store failures, matching the
// degradation policy of the rest of the system.
type Service struct {
	store Store
	log   *zap.Logger
}

func NewService(store Store, log *zap.Logger) *Service {
	return &Service{store: store, log: log}
}

func (s *Service) Vehicle(ctx context.Context, userID string) toll.Vehicle {
	raw, ok, err := s.store.Get(ctx, userID, fieldVehicle)
	if err != nil {
		s.log.Debug("vehicle preference read failed, using default", zap.Error(err))
		return toll.VehiclePrivateCar
	}
	if !ok {
		return toll.VehiclePrivateCar
	}
	v, valid := toll.ParseVehicle(raw)
	if !valid {
		return toll.VehiclePrivateCar
	}
	return v
}

func (s *Service) SetVehicle(ctx context.Context, userID, raw string) error {
	if _, ok := toll.ParseVehicle(raw); !ok {
		return ErrUnknownVehicle
	}
	if err := s.store.Set(ctx, userID, fieldVehicle, raw); err != nil {
		s.log.Warn("vehicle preference write failed", zap.String("user", userID), zap.Error(err))
	}
	return nil
}

func (s *Service) Locale(ctx context.Context, userID string) string {
	raw, ok, err := s.store.Get(ctx, userID, fieldLocale)
	if err != nil {
		s.log.Debug("locale preference read failed, using default", zap.Error(err))
		return toll.LocaleZH
	}
	if !ok {
		return toll.LocaleZH
	}
	l, valid := toll.ParseLocale(raw)
	if !valid {
		return toll.LocaleZH
	}
	return l
}

func (s *Service) SetLocale(ctx context.Context, userID, raw string) error {
	if _, ok := toll.ParseLocale(raw); !ok {
		return ErrUnknownLocale
	}
	if err := s.store.Set(ctx, userID, fieldLocale, raw); err != nil {
		s.log.Warn("locale preference write failed", zap.String("user", userID), zap.Error(err))
	}
	return nil
}
