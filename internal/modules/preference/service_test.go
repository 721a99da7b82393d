// README: Preference validation and degradation tests with a fake store.
package preference

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tollwatch/internal/modules/toll"
)

type fakeStore struct {
	values map[string]string
	err    error
	sets   int
}

func (f *fakeStore) Get(_ context.Context, userID, field string) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	v, ok := f.values[userID+"/"+field]
	return v, ok, nil
}

func (f *fakeStore) Set(_ context.Context, userID, field, value string) error {
	f.sets++
	if f.err != nil {
		return f.err
	}
	if f.values == nil {
		f.values = map[string]string{}
	}
	f.values[userID+"/"+field] = value
	return nil
}

func TestVehicle(t *testing.T) {
	tests := []struct {
		name  string
		store *fakeStore
		want  toll.Vehicle
	}{
		{"stored valid value", &fakeStore{values: map[string]string{"u1/vehicle": "taxi"}}, toll.VehicleTaxi},
		{"missing value defaults", &fakeStore{}, toll.VehiclePrivateCar},
		{"invalid value rejected", &fakeStore{values: map[string]string{"u1/vehicle": "bicycle"}}, toll.VehiclePrivateCar},
		{"store error defaults", &fakeStore{err: errors.New("redis down")}, toll.VehiclePrivateCar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.store, zap.NewNop())
			assert.Equal(t, tt.want, svc.Vehicle(context.Background(), "u1"))
		})
	}
}

func TestSetVehicle(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, zap.NewNop())

	require.NoError(t, svc.SetVehicle(context.Background(), "u1", "heavy_goods"))
	assert.Equal(t, toll.VehicleHeavyGoods, svc.Vehicle(context.Background(), "u1"))

	assert.ErrorIs(t, svc.SetVehicle(context.Background(), "u1", "bicycle"), ErrUnknownVehicle)
}

func TestSetVehicle_StoreFailureSwallowed(t *testing.T) {
	store := &fakeStore{err: errors.New("redis down")}
	svc := NewService(store, zap.NewNop())

	assert.NoError(t, svc.SetVehicle(context.Background(), "u1", "taxi"))
	assert.Equal(t, 1, store.sets)
}

func TestLocale(t *testing.T) {
	store := &fakeStore{values: map[string]string{"u1/locale": "en"}}
	svc := NewService(store, zap.NewNop())

	assert.Equal(t, toll.LocaleEN, svc.Locale(context.Background(), "u1"))
	assert.Equal(t, toll.LocaleZH, svc.Locale(context.Background(), "other"))

	assert.ErrorIs(t, svc.SetLocale(context.Background(), "u1", "fr"), ErrUnknownLocale)
	require.NoError(t, svc.SetLocale(context.Background(), "u1", "zh-HK"))
	assert.Equal(t, toll.LocaleZH, svc.Locale(context.Background(), "u1"))
}
