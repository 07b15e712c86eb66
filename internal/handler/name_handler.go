//go:generate mockgen -source=$GOFILE -destination=mock_name_handler_test.go -package=handler
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/na2na-p/compoundname/internal/handler/dto"
	"github.com/na2na-p/compoundname/internal/usecase"
)

type NameUseCase interface {
	Describe(ctx context.Context, in usecase.NameInput) (*usecase.NameDescription, error)
	Edit(ctx context.Context, in usecase.NameInput, ops []usecase.Operation) (*usecase.NameDescription, error)
	Compare(ctx context.Context, left, right usecase.NameInput) (*usecase.NameComparison, error)
}

type NameHandler struct {
	uc NameUseCase
}

func NewNameHandler(uc NameUseCase) *NameHandler {
	return &NameHandler{uc: uc}
}

func (h *NameHandler) Describe(c echo.Context) error {
	var req dto.NameRequestDTO
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return bindError(err)
	}

	desc, err := h.uc.Describe(c.Request().Context(), req.ToNameInput())
	if err != nil {
		return toAppError(err)
	}
	return c.JSON(http.StatusOK, dto.NewNameResponseDTO(desc))
}

func (h *NameHandler) Edit(c echo.Context) error {
	var req dto.EditNameRequestDTO
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return bindError(err)
	}

	desc, err := h.uc.Edit(c.Request().Context(), req.ToNameInput(), req.ToOperations())
	if err != nil {
		return toAppError(err)
	}
	return c.JSON(http.StatusOK, dto.NewNameResponseDTO(desc))
}

func (h *NameHandler) Compare(c echo.Context) error {
	var req dto.CompareNamesRequestDTO
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return bindError(err)
	}

	result, err := h.uc.Compare(c.Request().Context(), req.Left.ToNameInput(), req.Right.ToNameInput())
	if err != nil {
		return toAppError(err)
	}
	return c.JSON(http.StatusOK, dto.NewCompareNamesResponseDTO(result))
}
