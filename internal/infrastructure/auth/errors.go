package auth

import "errors"

var (
	// ErrInvalidToken はトークンが無効な場合に返されます
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken はトークンが期限切れの場合に返されます
	ErrExpiredToken = errors.New("token expired")
	// ErrInvalidIssuer はissuerが不正な場合に返されます
	ErrInvalidIssuer = errors.New("invalid issuer")
	// ErrInvalidAudience はaudienceが不正な場合に返されます
	ErrInvalidAudience = errors.New("invalid audience")
	// ErrMissingSubject はsubjectが含まれていない場合に返されます
	ErrMissingSubject = errors.New("missing subject")
)
