package auth

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/newmo-oss/ctxtime"
)

// HMACVerifier は共有鍵で署名されたHS256トークンを検証します
type HMACVerifier struct {
	secret   []byte
	issuer   string
	audience string
}

// NewHMACVerifier は新しいHMACVerifierを作成します。issuerとaudienceは空の場合検証しません。
func NewHMACVerifier(secret, issuer, audience string) *HMACVerifier {
	return &HMACVerifier{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
	}
}

// Verify はトークンを検証し、subject (sub) claimを返します
func (v *HMACVerifier) Verify(ctx context.Context, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("予期しない署名アルゴリズムです: %v", token.Header["alg"])
		}
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return ctxtime.Now(ctx) }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("%w: claimsの取得に失敗しました", ErrInvalidToken)
	}

	if err := v.validateIssuer(claims); err != nil {
		return "", err
	}
	if err := v.validateAudience(claims); err != nil {
		return "", err
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrMissingSubject
	}
	return sub, nil
}

func (v *HMACVerifier) validateIssuer(claims jwt.MapClaims) error {
	if v.issuer == "" {
		return nil
	}

	iss, err := claims.GetIssuer()
	if err != nil || iss == "" {
		return fmt.Errorf("%w: issuerが含まれていません", ErrInvalidIssuer)
	}
	if iss != v.issuer {
		return fmt.Errorf("%w: expected=%s, got=%s", ErrInvalidIssuer, v.issuer, iss)
	}
	return nil
}

// validateAudience はaudienceが文字列でも配列でも受け付けます
func (v *HMACVerifier) validateAudience(claims jwt.MapClaims) error {
	if v.audience == "" {
		return nil
	}

	aud, err := claims.GetAudience()
	if err != nil {
		return fmt.Errorf("%w: audienceの型が不正です", ErrInvalidAudience)
	}
	if len(aud) == 0 {
		return fmt.Errorf("%w: audienceが含まれていません", ErrInvalidAudience)
	}
	if !slices.Contains(aud, v.audience) {
		return fmt.Errorf("%w: expected=%s が含まれていません", ErrInvalidAudience, v.audience)
	}
	return nil
}
