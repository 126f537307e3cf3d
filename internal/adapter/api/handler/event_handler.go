package handler

import (
	"github.com/labstack/echo/v4"

	"assetnotifier/internal/domain/entity"
	"assetnotifier/internal/usecase"
	"assetnotifier/pkg/errors"
	"assetnotifier/pkg/logger"
	"assetnotifier/pkg/response"
)

type EventHandler struct {
	workflowUseCase *usecase.WorkflowUseCase
}

func NewEventHandler(workflowUseCase *usecase.WorkflowUseCase) *EventHandler {
	return &EventHandler{
		workflowUseCase: workflowUseCase,
	}
}

type assetEventRequest struct {
	AssetID string `json:"asset_id" validate:"required"`
	Status  string `json:"status" validate:"required,oneof=SubmittedForApproval Approved Rejected"`
}

// HandleAssetEvent is the trigger boundary: the repository posts one event
// per asset state transition, and each event runs one workflow invocation.
func (h *EventHandler) HandleAssetEvent(c echo.Context) error {
	var req assetEventRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid event payload", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ctx := c.Request().Context()
	logger.Info("Asset event received: asset=%s status=%s", req.AssetID, req.Status)

	var err error
	switch req.Status {
	case entity.AssetStatusSubmitted:
		err = h.workflowUseCase.ProcessSubmittedForApproval(ctx, req.AssetID)
	case entity.AssetStatusApproved:
		err = h.workflowUseCase.ProcessApproved(ctx, req.AssetID)
	case entity.AssetStatusRejected:
		err = h.workflowUseCase.ProcessRejected(ctx, req.AssetID)
	}
	if err != nil {
		logger.Error("Workflow failed: asset=%s status=%s error=%v", req.AssetID, req.Status, err)
		return response.Error(c, err)
	}

	return response.Accepted(c, map[string]string{
		"asset_id": req.AssetID,
		"status":   req.Status,
	})
}
