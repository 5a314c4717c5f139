package schemas

import "time"

type CreateUserSettingsRequest struct {
	YNABAPIToken string  `json:"ynabApiToken"`
	SyncSchedule string  `json:"syncSchedule"`
	YNABBudgetID *string `json:"ynabBudgetId"`
}

type UpdateUserSettingsRequest struct {
	YNABAPIToken *string `json:"ynabApiToken"`
	SyncSchedule *string `json:"syncSchedule"`
	YNABBudgetID *string `json:"ynabBudgetId"`
}

type UserSettingsResponse struct {
	ID           int       `json:"id"`
	YNABAPIToken string    `json:"ynabApiToken"`
	SyncSchedule string    `json:"syncSchedule"`
	YNABBudgetID *string   `json:"ynabBudgetId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
