package repository

import (
	"context"
)

type SettingsRepository interface {
	// GetSetting reads the structured value of a configuration setting
	// identified by scope and key.
	GetSetting(ctx context.Context, scope, key string) (map[string]interface{}, error)
}
