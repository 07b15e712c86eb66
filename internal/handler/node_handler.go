//go:generate mockgen -source=$GOFILE -destination=mock_node_handler_test.go -package=handler
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/na2na-p/compoundname/internal/handler/dto"
	"github.com/na2na-p/compoundname/internal/usecase"
)

type TreeUseCase interface {
	RootID() uuid.UUID
	CreateNode(ctx context.Context, in usecase.CreateNodeInput) (*usecase.NodeView, error)
	GetNode(ctx context.Context, id uuid.UUID) (*usecase.NodeView, error)
	Children(ctx context.Context, id uuid.UUID) ([]usecase.NodeView, error)
	RenameNode(ctx context.Context, id uuid.UUID, bn string) (*usecase.NodeView, error)
	MoveNode(ctx context.Context, id, parentID uuid.UUID) (*usecase.NodeView, error)
	SetLinkTarget(ctx context.Context, id, targetID uuid.UUID) (*usecase.NodeView, error)
	ChangeFileState(ctx context.Context, id uuid.UUID, state string) (*usecase.NodeView, error)
	DeleteNode(ctx context.Context, id uuid.UUID) error
}

type NodeHandler struct {
	uc TreeUseCase
}

func NewNodeHandler(uc TreeUseCase) *NodeHandler {
	return &NodeHandler{uc: uc}
}

func (h *NodeHandler) Create(c echo.Context) error {
	var req dto.CreateNodeRequestDTO
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return bindError(err)
	}
	in, err := req.ToCreateNodeInput(h.uc.RootID())
	if err != nil {
		return toAppError(err)
	}

	v, err := h.uc.CreateNode(c.Request().Context(), in)
	if err != nil {
		return toAppError(err)
	}
	return c.JSON(http.StatusCreated, dto.NewNodeResponseDTO(v))
}

func (h *NodeHandler) Get(c echo.Context) error {
	id, err := dto.ParseNodeID(c.Param("id"))
	if err != nil {
		return toAppError(err)
	}

	v, err := h.uc.GetNode(c.Request().Context(), id)
	if err != nil {
		return toAppError(err)
	}
	return c.JSON(http.StatusOK, dto.NewNodeResponseDTO(v))
}

func (h *NodeHandler) Children(c echo.Context) error {
	id, err := dto.ParseNodeID(c.Param("id"))
	if err != nil {
		return toAppError(err)
	}

	views, err := h.uc.Children(c.Request().Context(), id)
	if err != nil {
		return toAppError(err)
	}
	resp := make([]dto.NodeResponseDTO, 0, len(views))
	for i := range views {
		resp = append(resp, dto.NewNodeResponseDTO(&views[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *NodeHandler) Rename(c echo.Context) error {
	id, err := dto.ParseNodeID(c.Param("id"))
	if err != nil {
		return toAppError(err)
	}
	var req dto.RenameNodeRequestDTO
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return bindError(err)
	}

	v, err := h.uc.RenameNode(c.Request().Context(), id, req.BaseName)
	if err != nil {
		return toAppError(err)
	}
	return c.JSON(http.StatusOK, dto.NewNodeResponseDTO(v))
}

func (h *NodeHandler) Move(c echo.Context) error {
	id, err := dto.ParseNodeID(c.Param("id"))
	if err != nil {
		return toAppError(err)
	}
	var req dto.MoveNodeRequestDTO
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return bindError(err)
	}
	parentID, err := dto.ParseNodeID(req.ParentID)
	if err != nil {
		return toAppError(err)
	}

	v, err := h.uc.MoveNode(c.Request().Context(), id, parentID)
	if err != nil {
		return toAppError(err)
	}
	return c.JSON(http.StatusOK, dto.NewNodeResponseDTO(v))
}

func (h *NodeHandler) Retarget(c echo.Context) error {
	id, err := dto.ParseNodeID(c.Param("id"))
	if err != nil {
		return toAppError(err)
	}
	var req dto.SetLinkTargetRequestDTO
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return bindError(err)
	}
	targetID, err := dto.ParseNodeID(req.TargetID)
	if err != nil {
		return toAppError(err)
	}

	v, err := h.uc.SetLinkTarget(c.Request().Context(), id, targetID)
	if err != nil {
		return toAppError(err)
	}
	return c.JSON(http.StatusOK, dto.NewNodeResponseDTO(v))
}

// ChangeState は state に open か closed を受け付ける
func (h *NodeHandler) ChangeState(c echo.Context) error {
	id, err := dto.ParseNodeID(c.Param("id"))
	if err != nil {
		return toAppError(err)
	}
	var req dto.ChangeFileStateRequestDTO
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return bindError(err)
	}

	v, err := h.uc.ChangeFileState(c.Request().Context(), id, req.State)
	if err != nil {
		return toAppError(err)
	}
	return c.JSON(http.StatusOK, dto.NewNodeResponseDTO(v))
}

func (h *NodeHandler) Delete(c echo.Context) error {
	id, err := dto.ParseNodeID(c.Param("id"))
	if err != nil {
		return toAppError(err)
	}

	if err := h.uc.DeleteNode(c.Request().Context(), id); err != nil {
		return toAppError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
