package handler

import (
	"assetnotifier/internal/usecase"
)

var (
	eventHandler *EventHandler
	adminHandler *AdminHandler
)

func Setup(
	workflowUseCase *usecase.WorkflowUseCase,
	templateUseCase *usecase.TemplateUseCase,
) {
	eventHandler = NewEventHandler(workflowUseCase)
	adminHandler = NewAdminHandler(templateUseCase)
}

func GetEventHandler() *EventHandler {
	return eventHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}
