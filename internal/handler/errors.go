package handler

import (
	"errors"
	"net/http"

	"github.com/na2na-p/compoundname/internal/contract"
	"github.com/na2na-p/compoundname/internal/domain"
	"github.com/na2na-p/compoundname/internal/handler/dto"
	"github.com/na2na-p/compoundname/internal/handler/middleware"
	"github.com/na2na-p/compoundname/internal/usecase"
)

// toAppError は契約違反とユースケースのエラーをHTTPステータスに対応付ける
func toAppError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrNodeNotFound):
		return middleware.NewAppError(http.StatusNotFound, "ノードが見つかりません", err)
	case errors.Is(err, usecase.ErrNameNotFound):
		return middleware.NewAppError(http.StatusNotFound, "名前が見つかりません", err)
	case errors.Is(err, contract.ErrIllegalArgument),
		errors.Is(err, usecase.ErrInvalidRepresentation),
		errors.Is(err, usecase.ErrInvalidOperation),
		errors.Is(err, usecase.ErrInvalidNodeKind),
		errors.Is(err, domain.ErrInvalidNameKey),
		errors.Is(err, dto.ErrInvalidNodeID):
		return middleware.NewAppError(http.StatusBadRequest, err.Error(), err)
	default:
		return middleware.NewAppError(http.StatusInternalServerError, "サーバー内部エラーが発生しました", err)
	}
}

func bindError(err error) error {
	return middleware.NewAppError(http.StatusBadRequest, "リクエストボディの解析に失敗しました", err)
}
