package handler

import (
	"github.com/labstack/echo/v4"

	"assetnotifier/internal/usecase"
	"assetnotifier/pkg/response"
)

type AdminHandler struct {
	templateUseCase *usecase.TemplateUseCase
}

func NewAdminHandler(templateUseCase *usecase.TemplateUseCase) *AdminHandler {
	return &AdminHandler{
		templateUseCase: templateUseCase,
	}
}

// EnsureTemplates pre-provisions every workflow template so first events
// don't pay the creation round trip.
func (h *AdminHandler) EnsureTemplates(c echo.Context) error {
	ctx := c.Request().Context()

	ensured := make([]string, 0, 4)
	for _, def := range usecase.AllTemplates() {
		if err := h.templateUseCase.Ensure(ctx, def); err != nil {
			return response.Error(c, err)
		}
		ensured = append(ensured, def.Name)
	}

	return response.Success(c, map[string]interface{}{
		"ensured": ensured,
	})
}
