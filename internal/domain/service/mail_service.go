package service

import (
	"context"

	"assetnotifier/internal/domain/entity"
)

// MailService is the templated-mail delivery subsystem. SendEmail returning
// nil means accepted for delivery, not delivered.
type MailService interface {
	SendEmail(ctx context.Context, req *entity.NotificationRequest) error
}
