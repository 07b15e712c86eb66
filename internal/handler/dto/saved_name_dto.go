package dto

import (
	"time"

	"github.com/na2na-p/compoundname/internal/usecase"
)

// SavedNameResponseDTO は名前の説明にキーと日時を加えたもの
type SavedNameResponseDTO struct {
	Key string `json:"key"`
	NameResponseDTO
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewSavedNameResponseDTO(saved *usecase.SavedName) SavedNameResponseDTO {
	return SavedNameResponseDTO{
		Key:             saved.Key,
		NameResponseDTO: NewNameResponseDTO(&saved.Description),
		CreatedAt:       saved.CreatedAt,
		UpdatedAt:       saved.UpdatedAt,
	}
}
