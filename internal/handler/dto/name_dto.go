package dto

import (
	"github.com/na2na-p/compoundname/internal/usecase"
)

// NameRequestDTO はsourceが指定されていればcomponentsより優先する
type NameRequestDTO struct {
	Components     []string `json:"components,omitempty"`
	Source         *string  `json:"source,omitempty"`
	Delimiter      string   `json:"delimiter,omitempty"`
	Representation string   `json:"representation,omitempty"`
}

type OperationDTO struct {
	Op        string `json:"op"`
	Index     int    `json:"index"`
	Component string `json:"component"`
}

type EditNameRequestDTO struct {
	NameRequestDTO
	Operations []OperationDTO `json:"operations"`
}

type CompareNamesRequestDTO struct {
	Left  NameRequestDTO `json:"left"`
	Right NameRequestDTO `json:"right"`
}

type NameResponseDTO struct {
	Components     []string `json:"components"`
	String         string   `json:"string"`
	DataString     string   `json:"data_string"`
	HashCode       int32    `json:"hash_code"`
	Count          int      `json:"count"`
	Delimiter      string   `json:"delimiter"`
	Representation string   `json:"representation"`
	Empty          bool     `json:"empty"`
}

type CompareNamesResponseDTO struct {
	Equal         bool  `json:"equal"`
	LeftHashCode  int32 `json:"left_hash_code"`
	RightHashCode int32 `json:"right_hash_code"`
}

func (d NameRequestDTO) ToNameInput() usecase.NameInput {
	return usecase.NameInput{
		Components:     d.Components,
		Source:         d.Source,
		Delimiter:      d.Delimiter,
		Representation: d.Representation,
	}
}

func (d EditNameRequestDTO) ToOperations() []usecase.Operation {
	ops := make([]usecase.Operation, len(d.Operations))
	for i, op := range d.Operations {
		ops[i] = usecase.Operation{Op: op.Op, Index: op.Index, Component: op.Component}
	}
	return ops
}

func NewNameResponseDTO(desc *usecase.NameDescription) NameResponseDTO {
	return NameResponseDTO{
		Components:     desc.Components,
		String:         desc.String,
		DataString:     desc.DataString,
		HashCode:       desc.HashCode,
		Count:          desc.Count,
		Delimiter:      desc.Delimiter,
		Representation: desc.Representation,
		Empty:          desc.Empty,
	}
}

func NewCompareNamesResponseDTO(cmp *usecase.NameComparison) CompareNamesResponseDTO {
	return CompareNamesResponseDTO{
		Equal:         cmp.Equal,
		LeftHashCode:  cmp.LeftHashCode,
		RightHashCode: cmp.RightHashCode,
	}
}
