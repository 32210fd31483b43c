package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go_vocab_review/internal/handlers"
	"go_vocab_review/internal/model"
	svc_mocks "go_vocab_review/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSessionHandler_StartSession(t *testing.T) {
	mockService := new(svc_mocks.SessionService)
	handler := handlers.NewSessionHandler(mockService, testLogger())

	testTenantID := uuid.New()
	testSessionID := uuid.New()
	nextAt := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		reqBody        interface{}
		setupContext   func() context.Context
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:         "正常系: セッション開始 (ボディ省略)",
			reqBody:      nil,
			setupContext: func() context.Context { return contextWithTenant(testTenantID) },
			setupMock: func() {
				mockService.On("StartSession", mock.Anything, testTenantID, 0).Return(&model.StartSessionResponse{
					Session: &model.SessionStateResponse{
						SessionID: testSessionID,
						Remaining: 3,
						Item:      &model.SessionItemView{WordID: uuid.New(), Step: "fill_in_blank", Question: "The _____ sleeps."},
					},
				}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"step":"fill_in_blank"`,
		},
		{
			name:         "正常系: 出題数を指定して開始",
			reqBody:      &model.StartSessionRequest{Limit: 10},
			setupContext: func() context.Context { return contextWithTenant(testTenantID) },
			setupMock: func() {
				mockService.On("StartSession", mock.Anything, testTenantID, 10).Return(&model.StartSessionResponse{
					Session: &model.SessionStateResponse{SessionID: testSessionID, Remaining: 10},
				}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"remaining":10`,
		},
		{
			name:         "正常系: 対象なしの場合は 200 で empty を返す",
			reqBody:      nil,
			setupContext: func() context.Context { return contextWithTenant(testTenantID) },
			setupMock: func() {
				mockService.On("StartSession", mock.Anything, testTenantID, 0).Return(&model.StartSessionResponse{
					Empty:        true,
					NextReviewAt: &nextAt,
				}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"empty":true`,
		},
		{
			name:           "異常系: 認証エラー",
			reqBody:        nil,
			setupContext:   func() context.Context { return context.Background() },
			setupMock:      func() {},
			expectedStatus: http.StatusForbidden,
			expectedBody:   "UNAUTHORIZED",
		},
		{
			name:           "異常系: 不正なJSONボディ",
			reqBody:        `{"limit":`,
			setupContext:   func() context.Context { return contextWithTenant(testTenantID) },
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "INVALID_REQUEST_BODY",
		},
		{
			name:           "異常系: 出題数が範囲外",
			reqBody:        &model.StartSessionRequest{Limit: 100},
			setupContext:   func() context.Context { return contextWithTenant(testTenantID) },
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJSONRequest(t, http.MethodPost, "/reviews/sessions", tt.reqBody)
			req = req.WithContext(tt.setupContext())

			rr := httptest.NewRecorder()
			handler.StartSession(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestSessionHandler_SubmitAnswer(t *testing.T) {
	mockService := new(svc_mocks.SessionService)
	handler := handlers.NewSessionHandler(mockService, testLogger())

	testTenantID := uuid.New()
	testSessionID := uuid.New()
	validSessionIDStr := testSessionID.String()

	tests := []struct {
		name           string
		sessionIDParam string
		reqBody        interface{}
		setupContext   func() context.Context
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "正常系: 正解",
			sessionIDParam: validSessionIDStr,
			reqBody:        &model.SubmitAnswerRequest{Answer: "cat"},
			setupContext:   func() context.Context { return contextWithTenant(testTenantID) },
			setupMock: func() {
				mockService.On("SubmitAnswer", mock.Anything, testTenantID, testSessionID, "cat").
					Return(&model.SubmitAnswerResponse{Result: "correct", CorrectAnswer: "cat"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"result":"correct"`,
		},
		{
			name:           "正常系: 不正解でも正解文字列を返す",
			sessionIDParam: validSessionIDStr,
			reqBody:        &model.SubmitAnswerRequest{Answer: "dog"},
			setupContext:   func() context.Context { return contextWithTenant(testTenantID) },
			setupMock: func() {
				mockService.On("SubmitAnswer", mock.Anything, testTenantID, testSessionID, "dog").
					Return(&model.SubmitAnswerResponse{Result: "incorrect", CorrectAnswer: "cat"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"correct_answer":"cat"`,
		},
		{
			name:           "異常系: 不正なセッションID形式",
			sessionIDParam: "invalid-uuid",
			reqBody:        &model.SubmitAnswerRequest{Answer: "cat"},
			setupContext:   func() context.Context { return contextWithTenant(testTenantID) },
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "INVALID_SESSION_ID",
		},
		{
			name:           "異常系: 解答が未入力",
			sessionIDParam: validSessionIDStr,
			reqBody:        `{"answer":""}`,
			setupContext:   func() context.Context { return contextWithTenant(testTenantID) },
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: セッションが存在しない",
			sessionIDParam: validSessionIDStr,
			reqBody:        &model.SubmitAnswerRequest{Answer: "cat"},
			setupContext:   func() context.Context { return contextWithTenant(testTenantID) },
			setupMock: func() {
				mockService.On("SubmitAnswer", mock.Anything, testTenantID, testSessionID, "cat").
					Return(nil, model.ErrSessionNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "異常系: 判定が保留中のまま多重送信",
			sessionIDParam: validSessionIDStr,
			reqBody:        &model.SubmitAnswerRequest{Answer: "cat"},
			setupContext:   func() context.Context { return contextWithTenant(testTenantID) },
			setupMock: func() {
				mockService.On("SubmitAnswer", mock.Anything, testTenantID, testSessionID, "cat").
					Return(nil, model.ErrAnswerPending).Once()
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			ctx := contextWithChiURLParam(tt.setupContext(), "session_id", tt.sessionIDParam)
			req := newJSONRequest(t, http.MethodPost, "/reviews/sessions/"+tt.sessionIDParam+"/answers", tt.reqBody)
			req = req.WithContext(ctx)

			rr := httptest.NewRecorder()
			handler.SubmitAnswer(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestSessionHandler_ContinueToNext(t *testing.T) {
	mockService := new(svc_mocks.SessionService)
	handler := handlers.NewSessionHandler(mockService, testLogger())

	testTenantID := uuid.New()
	testSessionID := uuid.New()
	finishTime := time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC)

	t.Run("正常系: 次の出題へ進む", func(t *testing.T) {
		mockService.Mock = mock.Mock{}
		mockService.On("ContinueToNext", mock.Anything, testTenantID, testSessionID).Return(&model.ContinueResponse{
			Session: &model.SessionStateResponse{SessionID: testSessionID, Remaining: 2},
		}, nil).Once()

		ctx := contextWithChiURLParam(contextWithTenant(testTenantID), "session_id", testSessionID.String())
		req := newJSONRequest(t, http.MethodPost, "/reviews/sessions/"+testSessionID.String()+"/next", nil)
		req = req.WithContext(ctx)

		rr := httptest.NewRecorder()
		handler.ContinueToNext(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"remaining":2`)
		assert.NotContains(t, rr.Body.String(), "summary", "完走前はサマリを含まないこと")
	})

	t.Run("正常系: 完走時はサマリ付きで返す", func(t *testing.T) {
		mockService.Mock = mock.Mock{}
		mockService.On("ContinueToNext", mock.Anything, testTenantID, testSessionID).Return(&model.ContinueResponse{
			Session: &model.SessionStateResponse{SessionID: testSessionID, Complete: true},
			Summary: &model.SessionSummaryResponse{CompletedCount: 5, FailedCount: 1, PersistedCount: 5, FinishTime: finishTime},
		}, nil).Once()

		ctx := contextWithChiURLParam(contextWithTenant(testTenantID), "session_id", testSessionID.String())
		req := newJSONRequest(t, http.MethodPost, "/reviews/sessions/"+testSessionID.String()+"/next", nil)
		req = req.WithContext(ctx)

		rr := httptest.NewRecorder()
		handler.ContinueToNext(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"completed_count":5`)
		assert.Contains(t, rr.Body.String(), `"failed_count":1`)
	})

	t.Run("異常系: 判定待ちの解答がない", func(t *testing.T) {
		mockService.Mock = mock.Mock{}
		mockService.On("ContinueToNext", mock.Anything, testTenantID, testSessionID).
			Return(nil, model.ErrNoAnswerPending).Once()

		ctx := contextWithChiURLParam(contextWithTenant(testTenantID), "session_id", testSessionID.String())
		req := newJSONRequest(t, http.MethodPost, "/reviews/sessions/"+testSessionID.String()+"/next", nil)
		req = req.WithContext(ctx)

		rr := httptest.NewRecorder()
		handler.ContinueToNext(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestSessionHandler_ExitSession(t *testing.T) {
	mockService := new(svc_mocks.SessionService)
	handler := handlers.NewSessionHandler(mockService, testLogger())

	testTenantID := uuid.New()
	testSessionID := uuid.New()

	t.Run("正常系: サマリを返して終了", func(t *testing.T) {
		mockService.Mock = mock.Mock{}
		mockService.On("ExitSession", mock.Anything, testTenantID, testSessionID).Return(&model.SessionSummaryResponse{
			CompletedCount: 2,
			PersistedCount: 2,
			FinishTime:     time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC),
		}, nil).Once()

		ctx := contextWithChiURLParam(contextWithTenant(testTenantID), "session_id", testSessionID.String())
		req := newJSONRequest(t, http.MethodDelete, "/reviews/sessions/"+testSessionID.String(), nil)
		req = req.WithContext(ctx)

		rr := httptest.NewRecorder()
		handler.ExitSession(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"persisted_count":2`)
	})

	t.Run("異常系: 他テナントのセッション", func(t *testing.T) {
		mockService.Mock = mock.Mock{}
		mockService.On("ExitSession", mock.Anything, testTenantID, testSessionID).
			Return(nil, model.ErrSessionNotFound).Once()

		ctx := contextWithChiURLParam(contextWithTenant(testTenantID), "session_id", testSessionID.String())
		req := newJSONRequest(t, http.MethodDelete, "/reviews/sessions/"+testSessionID.String(), nil)
		req = req.WithContext(ctx)

		rr := httptest.NewRecorder()
		handler.ExitSession(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
