package service_test

import (
	"context"
	"testing"

	"badminton-directory-backend/internal/database/models"
	"badminton-directory-backend/internal/mocks"
	"badminton-directory-backend/internal/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// mockStores holds one mock per listing and fact table
type mockStores struct {
	courts         *mocks.MockListingStore
	coaches        *mocks.MockListingStore
	stringers      *mocks.MockListingStore
	courtPrices    *mocks.MockFactStore
	courtSchedules *mocks.MockFactStore
	coachPrices    *mocks.MockFactStore
	coachSchedules *mocks.MockFactStore
}

func newListingStore(ctrl *gomock.Controller, et models.EntityType) *mocks.MockListingStore {
	m := mocks.NewMockListingStore(ctrl)
	m.EXPECT().EntityType().Return(et).AnyTimes()
	return m
}

func newFactStore(ctrl *gomock.Controller, et models.EntityType, it models.InfoType) *mocks.MockFactStore {
	m := mocks.NewMockFactStore(ctrl)
	m.EXPECT().EntityType().Return(et).AnyTimes()
	m.EXPECT().InfoType().Return(it).AnyTimes()
	return m
}

// newMockResolver builds a real resolver over mock stores for every table
func newMockResolver(t *testing.T, ctrl *gomock.Controller) (*repository.TypeKeyedResolver, *mockStores) {
	s := &mockStores{
		courts:         newListingStore(ctrl, models.EntityTypeCourt),
		coaches:        newListingStore(ctrl, models.EntityTypeCoach),
		stringers:      newListingStore(ctrl, models.EntityTypeStringer),
		courtPrices:    newFactStore(ctrl, models.EntityTypeCourt, models.InfoTypePrice),
		courtSchedules: newFactStore(ctrl, models.EntityTypeCourt, models.InfoTypeSchedule),
		coachPrices:    newFactStore(ctrl, models.EntityTypeCoach, models.InfoTypePrice),
		coachSchedules: newFactStore(ctrl, models.EntityTypeCoach, models.InfoTypeSchedule),
	}
	reg, err := repository.NewEntityRegistry(
		[]repository.ListingStore{s.courts, s.coaches, s.stringers},
		[]repository.FactStore{s.courtPrices, s.courtSchedules, s.coachPrices, s.coachSchedules},
	)
	require.NoError(t, err)
	resolver, err := repository.NewTypeKeyedResolver(reg)
	require.NoError(t, err)
	return resolver, s
}

// runInline makes the mock transactor run the unit of work without a database
func runInline(m *mocks.MockTransactor) *gomock.Call {
	return m.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*gorm.DB) error) error {
			return fn(nil)
		})
}

func floatPtr(f float64) *float64 {
	return &f
}
