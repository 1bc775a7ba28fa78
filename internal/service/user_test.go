package service

import (
	"fmt"
	"testing"

	"lexicards/internal/domain"
	"lexicards/internal/session"
	"lexicards/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_EnsureUser_FirstContact(t *testing.T) {
	userRepo := new(testutil.MockUserRepository)
	userRepo.On("CreateUser", int64(100), domain.DefaultDirection).Return(nil).Once()

	registry := session.NewRegistry()
	svc := NewUserService(userRepo, registry, testutil.NewTestLogger())

	require.NoError(t, svc.EnsureUser(100))
	assert.True(t, registry.Known(100))
	assert.Equal(t, domain.DefaultDirection, svc.Direction(100))

	// Repeated contact is served from the registry, no second insert.
	require.NoError(t, svc.EnsureUser(100))
	userRepo.AssertExpectations(t)
}

func TestUserService_EnsureUser_StoreError(t *testing.T) {
	userRepo := new(testutil.MockUserRepository)
	userRepo.On("CreateUser", int64(100), domain.DefaultDirection).Return(fmt.Errorf("db error"))

	registry := session.NewRegistry()
	svc := NewUserService(userRepo, registry, testutil.NewTestLogger())

	assert.Error(t, svc.EnsureUser(100))
	assert.False(t, registry.Known(100))
}

func TestUserService_ToggleDirection(t *testing.T) {
	userRepo := new(testutil.MockUserRepository)
	userRepo.On("SetDirection", int64(100), domain.TargetToSource).Return(nil).Once()
	userRepo.On("SetDirection", int64(100), domain.SourceToTarget).Return(nil).Once()

	registry := session.NewRegistry()
	registry.Register(100, domain.SourceToTarget)
	svc := NewUserService(userRepo, registry, testutil.NewTestLogger())

	got, err := svc.ToggleDirection(100)
	require.NoError(t, err)
	assert.Equal(t, domain.TargetToSource, got)

	// Toggling twice returns the user to the original direction.
	got, err = svc.ToggleDirection(100)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceToTarget, got)

	userRepo.AssertExpectations(t)
}

func TestUserService_ToggleDirection_StoreErrorRollsBack(t *testing.T) {
	userRepo := new(testutil.MockUserRepository)
	userRepo.On("SetDirection", int64(100), domain.TargetToSource).Return(fmt.Errorf("db error"))

	registry := session.NewRegistry()
	registry.Register(100, domain.SourceToTarget)
	svc := NewUserService(userRepo, registry, testutil.NewTestLogger())

	_, err := svc.ToggleDirection(100)
	assert.Error(t, err)
	assert.Equal(t, domain.SourceToTarget, svc.Direction(100))
}
