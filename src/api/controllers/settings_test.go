package controllers_test

import (
	"context"
	"server/src/api/controllers"
	"server/src/models"
	"server/src/schemas"
	"server/src/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySettingsRepo struct {
	settings *models.UserSettings
}

func (r *memorySettingsRepo) Get(_ context.Context) (*models.UserSettings, error) {
	return r.settings, nil
}

func (r *memorySettingsRepo) Save(_ context.Context, settings *models.UserSettings) error {
	settings.ID = 1
	settings.CreatedAt = time.Now()
	settings.UpdatedAt = settings.CreatedAt
	r.settings = settings
	return nil
}

func (r *memorySettingsRepo) Update(_ context.Context, settings *models.UserSettings) error {
	settings.UpdatedAt = time.Now()
	r.settings = settings
	return nil
}

func TestSettingsController(t *testing.T) {
	ctx := context.Background()

	t.Run("404 before anything is saved", func(t *testing.T) {
		controller := controllers.NewSettingsController(&memorySettingsRepo{})

		_, err := controller.GetUserSettings(ctx)
		var httpErr *utils.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 404, httpErr.Code)
	})

	t.Run("saves and reads back settings", func(t *testing.T) {
		controller := controllers.NewSettingsController(&memorySettingsRepo{})

		saved, err := controller.SaveUserSettings(ctx, &schemas.CreateUserSettingsRequest{
			YNABAPIToken: "token-123",
			SyncSchedule: "weekly",
		})
		require.NoError(t, err)
		assert.Equal(t, "weekly", saved.SyncSchedule)

		read, err := controller.GetUserSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, "token-123", read.YNABAPIToken)
	})

	t.Run("accepts every schedule value", func(t *testing.T) {
		controller := controllers.NewSettingsController(&memorySettingsRepo{})
		for _, schedule := range []string{"daily", "every_two_days", "weekly", "every_two_weeks", "monthly_first", "monthly_last"} {
			_, err := controller.SaveUserSettings(ctx, &schemas.CreateUserSettingsRequest{
				YNABAPIToken: "token",
				SyncSchedule: schedule,
			})
			assert.NoError(t, err, schedule)
		}
	})

	t.Run("rejects unknown schedules", func(t *testing.T) {
		controller := controllers.NewSettingsController(&memorySettingsRepo{})

		_, err := controller.SaveUserSettings(ctx, &schemas.CreateUserSettingsRequest{
			YNABAPIToken: "token",
			SyncSchedule: "hourly",
		})
		var httpErr *utils.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 400, httpErr.Code)
	})

	t.Run("rejects an empty token", func(t *testing.T) {
		controller := controllers.NewSettingsController(&memorySettingsRepo{})

		_, err := controller.SaveUserSettings(ctx, &schemas.CreateUserSettingsRequest{SyncSchedule: "daily"})
		assert.Error(t, err)
	})

	t.Run("partial update changes only the given fields", func(t *testing.T) {
		controller := controllers.NewSettingsController(&memorySettingsRepo{})
		_, err := controller.SaveUserSettings(ctx, &schemas.CreateUserSettingsRequest{
			YNABAPIToken: "token",
			SyncSchedule: "daily",
		})
		require.NoError(t, err)

		schedule := "monthly_last"
		updated, err := controller.UpdateUserSettings(ctx, &schemas.UpdateUserSettingsRequest{SyncSchedule: &schedule})
		require.NoError(t, err)
		assert.Equal(t, "monthly_last", updated.SyncSchedule)
		assert.Equal(t, "token", updated.YNABAPIToken)
	})
}
