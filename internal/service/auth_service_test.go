package service_test // メインコードとは別のパッケージにすることで、公開されているものしかテストできなくなり、より良いテストになる

import (
	"context"
	"testing"
	"time"

	"go_vocab_review/internal/config"
	"go_vocab_review/internal/model"
	"go_vocab_review/internal/repository/mocks"
	"go_vocab_review/internal/service"
	servicemocks "go_vocab_review/internal/service/mocks" // Mailerのモック

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストスイートの定義 ---
// 関連するテストと、共通のセットアップをまとめる
type AuthServiceTestSuite struct {
	suite.Suite // testifyのSuiteを埋め込む

	db             *gorm.DB
	mockTenantRepo *mocks.TenantRepository
	mockTokenRepo  *mocks.TokenRepository
	mockMailer     *servicemocks.Mailer
	cfg            *config.Config
	authService    service.AuthService
}

// --- セットアップメソッド ---
// 各テスト(`TestXxx`)が実行される直前に呼ばれる
func (s *AuthServiceTestSuite) SetupTest() {
	// 各テストの前に、モックを新しく生成してクリーンな状態にする
	s.mockTenantRepo = new(mocks.TenantRepository)
	s.mockTokenRepo = new(mocks.TokenRepository)
	s.mockMailer = new(servicemocks.Mailer)

	// トランザクションとアカウント有効化のUPDATEが走るので実DB(インメモリ)を使う
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(&model.Tenant{}))
	s.db = db

	// テスト用のダミー設定
	s.cfg = &config.Config{}
	s.cfg.App.Name = "vocab-review-test"
	s.cfg.App.FrontendURL = "http://localhost:3000"
	s.cfg.JWT.SecretKey = "test-secret"
	s.cfg.JWT.AccessTokenTTL = 15 * time.Minute

	// テスト対象のサービスにモックを注入してインスタンスを生成
	s.authService = service.NewAuthService(s.db, s.mockTenantRepo, s.mockTokenRepo, s.mockMailer, s.cfg)
}

// --- テストランナー ---
// この関数が `go test` から実際に呼ばれる
func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

// --- RegisterTenantメソッドのテスト ---
func (s *AuthServiceTestSuite) TestRegisterTenant() {
	// テストケースをテーブルとして定義
	testCases := []struct {
		name        string // テストケース名
		req         *model.RegisterRequest
		setupMocks  func()                                // このケースのためのモック設定
		checkResult func(tenant *model.Tenant, err error) // 結果の検証
	}{
		{
			name: "Success - 正常に登録できる",
			req:  &model.RegisterRequest{Name: "test", Email: "test@example.com", Password: "password"},
			setupMocks: func() {
				// 正常系のモック設定
				s.mockTenantRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").Return(nil, model.ErrNotFound).Once()
				s.mockTenantRepo.On("FindByName", mock.Anything, mock.Anything, "test").Return(nil, model.ErrNotFound).Once()
				s.mockTenantRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Tenant")).Return(nil).Once()
				s.mockTokenRepo.On("CreateVerificationToken", mock.Anything, mock.Anything, mock.AnythingOfType("*model.UserVerificationToken")).Return(nil).Once()
				s.mockMailer.On("Send", mock.Anything, "test@example.com", mock.Anything, mock.Anything).Return(nil).Once()
			},
			checkResult: func(tenant *model.Tenant, err error) {
				s.NoError(err)
				s.Require().NotNil(tenant)
				s.Equal("test@example.com", tenant.Email)
				s.False(tenant.IsActive, "登録直後は未有効化のはず")
				// パスワードは平文で保存されない
				s.NotEqual("password", tenant.PasswordHash)
				s.NoError(bcrypt.CompareHashAndPassword([]byte(tenant.PasswordHash), []byte("password")))
			},
		},
		{
			name: "Failure - Emailが重複している",
			req:  &model.RegisterRequest{Name: "test", Email: "test@example.com", Password: "password"},
			setupMocks: func() {
				// Email重複時のモック設定
				s.mockTenantRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").Return(&model.Tenant{}, nil).Once()
			},
			checkResult: func(tenant *model.Tenant, err error) {
				s.Nil(tenant)
				s.Error(err)
				var appErr *model.AppError
				s.Require().ErrorAs(err, &appErr)
				s.Equal("DUPLICATE_EMAIL", appErr.Code)
				s.ErrorIs(err, model.ErrConflict)
			},
		},
		{
			name: "Failure - ユーザ名が重複している",
			req:  &model.RegisterRequest{Name: "taken", Email: "new@example.com", Password: "password"},
			setupMocks: func() {
				s.mockTenantRepo.On("FindByEmail", mock.Anything, mock.Anything, "new@example.com").Return(nil, model.ErrNotFound).Once()
				s.mockTenantRepo.On("FindByName", mock.Anything, mock.Anything, "taken").Return(&model.Tenant{}, nil).Once()
			},
			checkResult: func(tenant *model.Tenant, err error) {
				s.Nil(tenant)
				var appErr *model.AppError
				s.Require().ErrorAs(err, &appErr)
				s.Equal("DUPLICATE_NAME", appErr.Code)
			},
		},
		{
			name: "Failure - メール送信に失敗したら登録全体が失敗する",
			req:  &model.RegisterRequest{Name: "test", Email: "test@example.com", Password: "password"},
			setupMocks: func() {
				s.mockTenantRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").Return(nil, model.ErrNotFound).Once()
				s.mockTenantRepo.On("FindByName", mock.Anything, mock.Anything, "test").Return(nil, model.ErrNotFound).Once()
				s.mockTenantRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Tenant")).Return(nil).Once()
				s.mockTokenRepo.On("CreateVerificationToken", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				s.mockMailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(model.ErrInternalServer).Once()
			},
			checkResult: func(tenant *model.Tenant, err error) {
				s.Nil(tenant)
				var appErr *model.AppError
				s.Require().ErrorAs(err, &appErr)
				s.Equal("EMAIL_SEND_FAILED", appErr.Code)
			},
		},
	}

	// テーブルのループ実行
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			// モックをリセットしてから各ケースを実行
			s.SetupTest()

			// 1. Arrange (準備)
			tc.setupMocks()

			// 2. Act (実行)
			createdTenant, err := s.authService.RegisterTenant(context.Background(), tc.req)

			// 3. Assert (検証)
			tc.checkResult(createdTenant, err)

			// モックの呼び出しが期待通りだったか全体を検証
			s.mockTenantRepo.AssertExpectations(s.T())
			s.mockTokenRepo.AssertExpectations(s.T())
			s.mockMailer.AssertExpectations(s.T())
		})
	}
}

// --- Loginメソッドのテスト ---
func (s *AuthServiceTestSuite) TestLogin() {
	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	s.Require().NoError(err)

	activeTenant := &model.Tenant{
		TenantID:     uuid.New(),
		Name:         "test",
		Email:        "test@example.com",
		PasswordHash: string(hashed),
		IsActive:     true,
	}

	testCases := []struct {
		name        string
		req         *model.LoginRequest
		setupMocks  func()
		checkResult func(res *model.LoginResponse, err error)
	}{
		{
			name: "Success - 正しい認証情報でトークンが返る",
			req:  &model.LoginRequest{Email: "test@example.com", Password: "correct-password"},
			setupMocks: func() {
				s.mockTenantRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").Return(activeTenant, nil).Once()
			},
			checkResult: func(res *model.LoginResponse, err error) {
				s.NoError(err)
				s.Require().NotNil(res)
				s.NotEmpty(res.AccessToken)
			},
		},
		{
			name: "Failure - パスワードが違う",
			req:  &model.LoginRequest{Email: "test@example.com", Password: "wrong-password"},
			setupMocks: func() {
				s.mockTenantRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").Return(activeTenant, nil).Once()
			},
			checkResult: func(res *model.LoginResponse, err error) {
				s.Nil(res)
				var appErr *model.AppError
				s.Require().ErrorAs(err, &appErr)
				s.Equal("AUTHENTICATION_FAILED", appErr.Code)
			},
		},
		{
			name: "Failure - ユーザーが存在しない",
			req:  &model.LoginRequest{Email: "nobody@example.com", Password: "correct-password"},
			setupMocks: func() {
				s.mockTenantRepo.On("FindByEmail", mock.Anything, mock.Anything, "nobody@example.com").Return(nil, model.ErrNotFound).Once()
			},
			checkResult: func(res *model.LoginResponse, err error) {
				s.Nil(res)
				var appErr *model.AppError
				s.Require().ErrorAs(err, &appErr)
				// 存在有無を悟らせないためパスワード誤りと同じコード
				s.Equal("AUTHENTICATION_FAILED", appErr.Code)
			},
		},
		{
			name: "Failure - アカウントが未有効化",
			req:  &model.LoginRequest{Email: "inactive@example.com", Password: "correct-password"},
			setupMocks: func() {
				inactive := &model.Tenant{
					TenantID:     uuid.New(),
					Email:        "inactive@example.com",
					PasswordHash: string(hashed),
					IsActive:     false,
				}
				s.mockTenantRepo.On("FindByEmail", mock.Anything, mock.Anything, "inactive@example.com").Return(inactive, nil).Once()
			},
			checkResult: func(res *model.LoginResponse, err error) {
				s.Nil(res)
				var appErr *model.AppError
				s.Require().ErrorAs(err, &appErr)
				s.Equal("ACCOUNT_NOT_ACTIVE", appErr.Code)
				s.ErrorIs(err, model.ErrForbidden)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.setupMocks()

			res, err := s.authService.Login(context.Background(), tc.req)

			tc.checkResult(res, err)
			s.mockTenantRepo.AssertExpectations(s.T())
		})
	}
}

// --- VerifyAccountメソッドのテスト ---
func (s *AuthServiceTestSuite) TestVerifyAccount() {
	s.Run("Success - トークンが有効ならアカウントが有効化される", func() {
		s.SetupTest()

		// 有効化対象のテナントを実DBに用意する
		tenant := &model.Tenant{
			TenantID:     uuid.New(),
			Name:         "test",
			Email:        "test@example.com",
			PasswordHash: "hash",
			IsActive:     false,
		}
		s.Require().NoError(s.db.Create(tenant).Error)

		token := &model.UserVerificationToken{
			Token:     "valid-token",
			TenantID:  tenant.TenantID,
			ExpiresAt: time.Now().Add(1 * time.Hour),
		}
		s.mockTokenRepo.On("FindVerificationToken", mock.Anything, mock.Anything, "valid-token").Return(token, nil).Once()
		s.mockTokenRepo.On("DeleteVerificationToken", mock.Anything, mock.Anything, "valid-token").Return(nil).Once()

		err := s.authService.VerifyAccount(context.Background(), "valid-token")
		s.NoError(err)

		var updated model.Tenant
		s.Require().NoError(s.db.First(&updated, "tenant_id = ?", tenant.TenantID).Error)
		s.True(updated.IsActive)
		s.mockTokenRepo.AssertExpectations(s.T())
	})

	s.Run("Failure - トークンが期限切れ", func() {
		s.SetupTest()

		token := &model.UserVerificationToken{
			Token:     "expired-token",
			TenantID:  uuid.New(),
			ExpiresAt: time.Now().Add(-1 * time.Minute),
		}
		s.mockTokenRepo.On("FindVerificationToken", mock.Anything, mock.Anything, "expired-token").Return(token, nil).Once()
		// 期限切れトークンは掃除される
		s.mockTokenRepo.On("DeleteVerificationToken", mock.Anything, mock.Anything, "expired-token").Return(nil).Once()

		err := s.authService.VerifyAccount(context.Background(), "expired-token")

		var appErr *model.AppError
		s.Require().ErrorAs(err, &appErr)
		s.Equal("INVALID_TOKEN", appErr.Code)
		s.mockTokenRepo.AssertExpectations(s.T())
	})

	s.Run("Failure - トークンが存在しない", func() {
		s.SetupTest()

		s.mockTokenRepo.On("FindVerificationToken", mock.Anything, mock.Anything, "unknown-token").Return(nil, model.ErrNotFound).Once()

		err := s.authService.VerifyAccount(context.Background(), "unknown-token")

		var appErr *model.AppError
		s.Require().ErrorAs(err, &appErr)
		s.Equal("INVALID_TOKEN", appErr.Code)
		s.mockTokenRepo.AssertExpectations(s.T())
	})
}

// --- パスワードリセットのテスト ---
func (s *AuthServiceTestSuite) TestRequestPasswordReset() {
	s.Run("Success - 登録済みEmailにはリセットメールが送られる", func() {
		s.SetupTest()

		tenant := &model.Tenant{TenantID: uuid.New(), Email: "test@example.com"}
		s.mockTenantRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").Return(tenant, nil).Once()
		s.mockTokenRepo.On("CreatePasswordResetToken", mock.Anything, mock.Anything, mock.AnythingOfType("*model.PasswordResetToken")).Return(nil).Once()
		s.mockMailer.On("Send", mock.Anything, "test@example.com", mock.Anything, mock.Anything).Return(nil).Once()

		err := s.authService.RequestPasswordReset(context.Background(), "test@example.com")
		s.NoError(err)
		s.mockMailer.AssertExpectations(s.T())
	})

	s.Run("Success - 未登録Emailでもエラーにせずメールも送らない", func() {
		s.SetupTest()

		s.mockTenantRepo.On("FindByEmail", mock.Anything, mock.Anything, "nobody@example.com").Return(nil, model.ErrNotFound).Once()

		err := s.authService.RequestPasswordReset(context.Background(), "nobody@example.com")
		s.NoError(err)
		s.mockMailer.AssertNotCalled(s.T(), "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func (s *AuthServiceTestSuite) TestResetPassword() {
	s.Run("Success - 新しいパスワードに更新される", func() {
		s.SetupTest()

		tenant := &model.Tenant{
			TenantID:     uuid.New(),
			Name:         "test",
			Email:        "test@example.com",
			PasswordHash: "old-hash",
			IsActive:     true,
		}
		s.Require().NoError(s.db.Create(tenant).Error)

		token := &model.PasswordResetToken{
			Token:     "reset-token",
			TenantID:  tenant.TenantID,
			ExpiresAt: time.Now().Add(30 * time.Minute),
		}
		s.mockTokenRepo.On("FindPasswordResetToken", mock.Anything, mock.Anything, "reset-token").Return(token, nil).Once()
		s.mockTokenRepo.On("DeletePasswordResetToken", mock.Anything, mock.Anything, "reset-token").Return(nil).Once()

		err := s.authService.ResetPassword(context.Background(), "reset-token", "new-password")
		s.NoError(err)

		var updated model.Tenant
		s.Require().NoError(s.db.First(&updated, "tenant_id = ?", tenant.TenantID).Error)
		s.NotEqual("old-hash", updated.PasswordHash)
		s.NoError(bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("new-password")))
		s.mockTokenRepo.AssertExpectations(s.T())
	})

	s.Run("Failure - トークンが無効", func() {
		s.SetupTest()

		s.mockTokenRepo.On("FindPasswordResetToken", mock.Anything, mock.Anything, "bad-token").Return(nil, model.ErrNotFound).Once()

		err := s.authService.ResetPassword(context.Background(), "bad-token", "new-password")

		var appErr *model.AppError
		s.Require().ErrorAs(err, &appErr)
		s.Equal("INVALID_TOKEN", appErr.Code)
	})
}
