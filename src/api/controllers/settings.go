package controllers

import (
	"context"
	"server/src/models"
	"server/src/repositories"
	"server/src/schemas"
	"server/src/utils"
)

type SettingsControllerI interface {
	GetUserSettings(ctx context.Context) (*schemas.UserSettingsResponse, error)
	SaveUserSettings(ctx context.Context, req *schemas.CreateUserSettingsRequest) (*schemas.UserSettingsResponse, error)
	UpdateUserSettings(ctx context.Context, req *schemas.UpdateUserSettingsRequest) (*schemas.UserSettingsResponse, error)
}

type SettingsController struct {
	settingsRepo repositories.UserSettingsRepository
}

func NewSettingsController(settingsRepo repositories.UserSettingsRepository) *SettingsController {
	return &SettingsController{settingsRepo: settingsRepo}
}

func (c *SettingsController) GetUserSettings(ctx context.Context) (*schemas.UserSettingsResponse, error) {
	settings, err := c.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, utils.NotFound("user settings not configured")
	}
	return settingsResponse(settings), nil
}

func (c *SettingsController) SaveUserSettings(ctx context.Context, req *schemas.CreateUserSettingsRequest) (*schemas.UserSettingsResponse, error) {
	if req.YNABAPIToken == "" {
		return nil, utils.BadRequest("ynabApiToken must not be empty")
	}
	schedule, err := models.ParseSyncSchedule(req.SyncSchedule)
	if err != nil {
		return nil, utils.BadRequest(err.Error())
	}

	settings := &models.UserSettings{
		YNABAPIToken: req.YNABAPIToken,
		SyncSchedule: schedule,
		YNABBudgetID: req.YNABBudgetID,
	}
	if err := c.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settingsResponse(settings), nil
}

func (c *SettingsController) UpdateUserSettings(ctx context.Context, req *schemas.UpdateUserSettingsRequest) (*schemas.UserSettingsResponse, error) {
	settings, err := c.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, utils.NotFound("user settings not configured")
	}

	if req.YNABAPIToken != nil {
		if *req.YNABAPIToken == "" {
			return nil, utils.BadRequest("ynabApiToken must not be empty")
		}
		settings.YNABAPIToken = *req.YNABAPIToken
	}
	if req.SyncSchedule != nil {
		schedule, err := models.ParseSyncSchedule(*req.SyncSchedule)
		if err != nil {
			return nil, utils.BadRequest(err.Error())
		}
		settings.SyncSchedule = schedule
	}
	if req.YNABBudgetID != nil {
		settings.YNABBudgetID = req.YNABBudgetID
	}

	if err := c.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settingsResponse(settings), nil
}

func settingsResponse(settings *models.UserSettings) *schemas.UserSettingsResponse {
	return &schemas.UserSettingsResponse{
		ID:           settings.ID,
		YNABAPIToken: settings.YNABAPIToken,
		SyncSchedule: string(settings.SyncSchedule),
		YNABBudgetID: settings.YNABBudgetID,
		CreatedAt:    settings.CreatedAt,
		UpdatedAt:    settings.UpdatedAt,
	}
}
