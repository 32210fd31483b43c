// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "VocabReview"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort      = ":8080"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"
	DefaultReviewLimit     = 5
	DefaultDistractorCount = 3
	DefaultAccessTokenTTL  = 24 * time.Hour
)
