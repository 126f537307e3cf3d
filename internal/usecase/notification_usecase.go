package usecase

import (
	"context"

	"assetnotifier/internal/domain/entity"
	"assetnotifier/internal/domain/service"
	"assetnotifier/pkg/errors"
	"assetnotifier/pkg/logger"
)

type NotificationUseCase struct {
	mailService service.MailService
}

func NewNotificationUseCase(mailService service.MailService) *NotificationUseCase {
	return &NotificationUseCase{
		mailService: mailService,
	}
}

// Dispatch binds the variable map to the named template and submits it for
// the given recipients. Success means accepted for delivery. An empty
// recipient list is a caller error, never a silent no-op.
func (u *NotificationUseCase) Dispatch(ctx context.Context, templateName string, recipients []string, variables map[string]interface{}) error {
	if len(recipients) == 0 {
		return errors.BadRequest("Notification for template "+templateName+" has no recipients", nil)
	}

	req := &entity.NotificationRequest{
		TemplateName: templateName,
		Recipients:   recipients,
		Variables:    variables,
	}

	if err := u.mailService.SendEmail(ctx, req); err != nil {
		return err
	}

	logger.Info("Notification dispatched: template=%s recipients=%d", templateName, len(recipients))
	return nil
}
