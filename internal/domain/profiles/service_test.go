package profiles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	stored map[string]Profile
}

func (r *stubRepo) GetProfile(_ context.Context, userID string) (*Profile, error) {
	profile, ok := r.stored[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &profile, nil
}

func (r *stubRepo) UpsertProfile(_ context.Context, profile Profile) error {
	if r.stored == nil {
		r.stored = make(map[string]Profile)
	}
	r.stored[profile.UserID] = profile
	return nil
}

func newTestService() (*Service, *stubRepo) {
	repo := &stubRepo{}
	return NewService(repo, "memory", "village-1"), repo
}

func TestGetReturnsDefaultsWithoutPersisting(t *testing.T) {
	service, repo := newTestService()

	result, err := service.Get(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, "alice", result.Profile.UserID)
	require.True(t, result.Profile.NotificationEvents)
	require.True(t, result.Profile.NotificationVillage)
	require.False(t, result.Profile.NotificationPush)
	require.Equal(t, "community", result.Profile.DataVisibility)
	require.Equal(t, "village-1", result.Profile.CommunityID)

	// Reading never writes.
	require.Empty(t, repo.stored)
}

func TestUpdateCreatesOnFirstWrite(t *testing.T) {
	service, repo := newTestService()

	name := "Alice"
	result, err := service.Update(context.Background(), "alice", UpdateInput{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Alice", result.Profile.Name)
	require.Contains(t, repo.stored, "alice")
}

func TestUpdateRejectsEmptyName(t *testing.T) {
	service, _ := newTestService()

	name := "   "
	_, err := service.Update(context.Background(), "alice", UpdateInput{Name: &name})

	var validation ValidationError
	require.ErrorAs(t, err, &validation)
	require.Equal(t, "name", validation.Field)
}

func TestUpdateSettingsPartial(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	darkMode := true
	result, err := service.UpdateSettings(ctx, "alice", SettingsInput{DarkMode: &darkMode})
	require.NoError(t, err)
	require.True(t, result.Profile.DarkMode)
	// Untouched settings keep their defaults.
	require.True(t, result.Profile.NotificationEvents)

	visibility := "Private"
	result, err = service.UpdateSettings(ctx, "alice", SettingsInput{DataVisibility: &visibility})
	require.NoError(t, err)
	require.Equal(t, "private", result.Profile.DataVisibility)
	require.True(t, result.Profile.DarkMode)
}

func TestUpdateSettingsRejectsUnknownVisibility(t *testing.T) {
	service, _ := newTestService()

	visibility := "everyone"
	_, err := service.UpdateSettings(context.Background(), "alice", SettingsInput{DataVisibility: &visibility})

	var validation ValidationError
	require.ErrorAs(t, err, &validation)
	require.Equal(t, "dataVisibility", validation.Field)
}

func TestSetTrustedContact(t *testing.T) {
	service, _ := newTestService()

	result, err := service.SetTrustedContact(context.Background(), "alice", TrustedContactInput{
		Name:  "Jordan",
		Phone: "+1 555 0100",
	})
	require.NoError(t, err)
	require.Equal(t, "Jordan", result.Profile.TrustedContactName)
	require.Equal(t, "+1 555 0100", result.Profile.TrustedContactPhone)
}

func TestSetTrustedContactRequiresBothFields(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	var validation ValidationError

	_, err := service.SetTrustedContact(ctx, "alice", TrustedContactInput{Name: "Jordan"})
	require.ErrorAs(t, err, &validation)
	require.Equal(t, "phone", validation.Field)

	_, err = service.SetTrustedContact(ctx, "alice", TrustedContactInput{Phone: "+1 555 0100"})
	require.ErrorAs(t, err, &validation)
	require.Equal(t, "name", validation.Field)
}
