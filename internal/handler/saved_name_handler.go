//go:generate mockgen -source=$GOFILE -destination=mock_saved_name_handler_test.go -package=handler
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/na2na-p/compoundname/internal/handler/dto"
	"github.com/na2na-p/compoundname/internal/usecase"
)

type SavedNameUseCase interface {
	Save(ctx context.Context, key string, in usecase.NameInput) (*usecase.SavedName, error)
	Get(ctx context.Context, key string) (*usecase.SavedName, error)
	Delete(ctx context.Context, key string) error
}

type SavedNameHandler struct {
	uc SavedNameUseCase
}

func NewSavedNameHandler(uc SavedNameUseCase) *SavedNameHandler {
	return &SavedNameHandler{uc: uc}
}

func (h *SavedNameHandler) Save(c echo.Context) error {
	var req dto.NameRequestDTO
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return bindError(err)
	}

	saved, err := h.uc.Save(c.Request().Context(), c.Param("key"), req.ToNameInput())
	if err != nil {
		return toAppError(err)
	}
	return c.JSON(http.StatusOK, dto.NewSavedNameResponseDTO(saved))
}

func (h *SavedNameHandler) Get(c echo.Context) error {
	saved, err := h.uc.Get(c.Request().Context(), c.Param("key"))
	if err != nil {
		return toAppError(err)
	}
	return c.JSON(http.StatusOK, dto.NewSavedNameResponseDTO(saved))
}

func (h *SavedNameHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("key")); err != nil {
		return toAppError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
