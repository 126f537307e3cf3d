package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetnotifier/internal/domain/entity"
	"assetnotifier/pkg/errors"
)

func TestDispatchRejectsEmptyRecipients(t *testing.T) {
	mail := newFakeMailService()
	uc := NewNotificationUseCase(mail)

	err := uc.Dispatch(context.Background(), ApprovedTemplateName, nil, map[string]interface{}{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Empty(t, mail.sent)
}

func TestDispatchSubmitsRequest(t *testing.T) {
	mail := newFakeMailService()
	uc := NewNotificationUseCase(mail)

	err := uc.Dispatch(context.Background(), ApprovedTemplateName, []string{"jdoe@example.com"}, map[string]interface{}{
		"AssetTitle": "campaign.jpg",
	})

	require.NoError(t, err)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, ApprovedTemplateName, mail.sent[0].TemplateName)
	assert.Equal(t, []string{"jdoe@example.com"}, mail.sent[0].Recipients)
	assert.Equal(t, "campaign.jpg", mail.sent[0].Variables["AssetTitle"])
}

func TestDispatchRejectsUndeclaredVariable(t *testing.T) {
	mail := newFakeMailService()
	mail.schemas[ApprovedTemplateName] = []entity.TemplateVariable{
		{Name: "AssetTitle", Type: entity.VariableTypeString},
	}
	uc := NewNotificationUseCase(mail)

	err := uc.Dispatch(context.Background(), ApprovedTemplateName, []string{"jdoe@example.com"}, map[string]interface{}{
		"AssetTitle": "campaign.jpg",
		"Surprise":   "nope",
	})

	require.Error(t, err)
	assert.Empty(t, mail.sent)
}
