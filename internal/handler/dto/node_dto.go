package dto

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/na2na-p/compoundname/internal/usecase"
)

// ErrInvalidNodeID はノードIDがUUIDとして解釈できない場合のエラー
var ErrInvalidNodeID = errors.New("invalid node id")

// CreateNodeRequestDTO はparent_idが空の場合ルートの直下に作成する
type CreateNodeRequestDTO struct {
	Kind     string  `json:"kind"`
	ParentID string  `json:"parent_id,omitempty"`
	BaseName string  `json:"base_name"`
	TargetID *string `json:"target_id,omitempty"`
}

type RenameNodeRequestDTO struct {
	BaseName string `json:"base_name"`
}

type MoveNodeRequestDTO struct {
	ParentID string `json:"parent_id"`
}

type SetLinkTargetRequestDTO struct {
	TargetID string `json:"target_id"`
}

type ChangeFileStateRequestDTO struct {
	State string `json:"state"`
}

type NodeResponseDTO struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	BaseName   string    `json:"base_name"`
	FullName   string    `json:"full_name"`
	DataString string    `json:"data_string"`
	ParentID   string    `json:"parent_id"`
	IsRoot     bool      `json:"is_root"`
	TargetID   *string   `json:"target_id,omitempty"`
	State      string    `json:"state,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (d CreateNodeRequestDTO) ToCreateNodeInput(rootID uuid.UUID) (usecase.CreateNodeInput, error) {
	parentID := rootID
	if d.ParentID != "" {
		id, err := ParseNodeID(d.ParentID)
		if err != nil {
			return usecase.CreateNodeInput{}, err
		}
		parentID = id
	}

	in := usecase.CreateNodeInput{
		Kind:     d.Kind,
		ParentID: parentID,
		BaseName: d.BaseName,
	}
	if d.TargetID != nil {
		id, err := ParseNodeID(*d.TargetID)
		if err != nil {
			return usecase.CreateNodeInput{}, err
		}
		in.TargetID = &id
	}
	return in, nil
}

func ParseNodeID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidNodeID, s)
	}
	return id, nil
}

func NewNodeResponseDTO(v *usecase.NodeView) NodeResponseDTO {
	resp := NodeResponseDTO{
		ID:         v.ID.String(),
		Kind:       v.Kind,
		BaseName:   v.BaseName,
		FullName:   v.FullName,
		DataString: v.DataString,
		ParentID:   v.ParentID.String(),
		IsRoot:     v.IsRoot,
		State:      v.State,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
	if v.TargetID != nil {
		target := v.TargetID.String()
		resp.TargetID = &target
	}
	return resp
}
