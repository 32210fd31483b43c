package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// RegisterRequest は新規登録APIのリクエストボディ
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest はログインAPIのリクエストボディ
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse はログイン成功時のレスポンス
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// JWTCustomClaims はJWTに含めるカスタムクレーム（ペイロード）
// sub にテナントIDを入れる。追加情報が必要になったらここに足す。
type JWTCustomClaims struct {
	jwt.RegisteredClaims
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}
