package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/logger"
	mockusecase "github.com/amirhossein-jamali/companion-ledger/mocks/port/usecase"
)

const (
	testToken   = "token-1"
	testAccount = "acct_1"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixture struct {
	router     *gin.Engine
	accounts   *mockusecase.MockAccountUseCase
	personas   *mockusecase.MockPersonaUseCase
	generation *mockusecase.MockGenerationUseCase
	payments   *mockusecase.MockPaymentUseCase
	ledger     *mockusecase.MockLedgerUseCase
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		router:     gin.New(),
		accounts:   mockusecase.NewMockAccountUseCase(t),
		personas:   mockusecase.NewMockPersonaUseCase(t),
		generation: mockusecase.NewMockGenerationUseCase(t),
		payments:   mockusecase.NewMockPaymentUseCase(t),
		ledger:     mockusecase.NewMockLedgerUseCase(t),
	}
	f.accounts.EXPECT().Authenticate(mock.Anything, testToken).Return(testAccount, nil).Maybe()

	log := logger.NewNoopLogger()
	accounts := handler.NewAccountHandler(f.accounts, log)
	personas := handler.NewPersonaHandler(f.personas, log)
	generation := handler.NewGenerationHandler(f.generation, log)
	payments := handler.NewPaymentHandler(f.payments, log)
	ledger := handler.NewLedgerHandler(f.ledger, log)

	f.router.POST("/auth/register", accounts.Register)
	f.router.POST("/auth/login", accounts.Login)
	f.router.POST("/payments/webhook", payments.Webhook)
	f.router.GET("/packages", payments.Packages)

	authed := f.router.Group("", middleware.RequireAuth(f.accounts))
	authed.GET("/me", accounts.Me)
	authed.DELETE("/me", accounts.Delete)
	authed.POST("/personas", personas.Create)
	authed.GET("/personas/:personaId", personas.Get)
	authed.GET("/personas/:personaId/messages", personas.History)
	authed.POST("/personas/:personaId/messages", generation.SendMessage)
	authed.POST("/personas/:personaId/images", generation.GenerateImage)
	authed.GET("/gallery", personas.Gallery)
	authed.POST("/gallery/:imageId/like", personas.ToggleLike)
	authed.POST("/checkout", payments.Checkout)
	authed.GET("/transactions", ledger.History)
	return f
}

func (f *fixture) do(method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case []byte:
		reader = bytes.NewReader(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) authed(method, path string, body any) *httptest.ResponseRecorder {
	return f.do(method, path, body, map[string]string{"Authorization": "Bearer " + testToken})
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Validation", domainerr.NewValidationError("name", "required"), http.StatusBadRequest},
		{"Invalid payment event", domainerr.ErrInvalidPaymentEvent, http.StatusBadRequest},
		{"Unauthenticated", domainerr.ErrUnauthenticated, http.StatusUnauthorized},
		{"Invalid token", domainerr.ErrInvalidToken, http.StatusUnauthorized},
		{"Insufficient funds", domainerr.NewInsufficientFundsError("a", 10, 2), http.StatusPaymentRequired},
		{"Access denied", &domainerr.AccessDeniedError{Level: 3}, http.StatusForbidden},
		{"Persona not found", domainerr.ErrPersonaNotFound, http.StatusNotFound},
		{"Duplicate account", domainerr.ErrDuplicateAccount, http.StatusConflict},
		{"Concurrent update", domainerr.ErrConcurrentUpdate, http.StatusTooManyRequests},
		{"Generation failed", domainerr.NewGenerationFailedError("text", "rsv", true, errors.New("boom")), http.StatusBadGateway},
		{"Generation failed on a lock conflict", domainerr.NewGenerationFailedError("image", "rsv", true, domainerr.ErrConcurrentUpdate), http.StatusBadGateway},
		{"Generation failed on a missing row", domainerr.NewGenerationFailedError("text", "rsv", false, domainerr.ErrPersonaNotFound), http.StatusBadGateway},
		{"Generation failed on validation", domainerr.NewGenerationFailedError("text", "rsv", true, domainerr.NewValidationError("reply", "empty")), http.StatusBadGateway},
		{"Payment not configured", domainerr.ErrPaymentNotConfigured, http.StatusServiceUnavailable},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, handler.HTTPStatus(tt.err))
		})
	}
}

func TestAccountHandler(t *testing.T) {
	account, err := entity.NewAccount(testAccount, "ava@example.com", "ava", "hash", 0, time.Now())
	require.NoError(t, err)

	t.Run("Register returns token", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.accounts.EXPECT().Register(mock.Anything, usecase.RegisterInput{
			Email: "ava@example.com", Username: "ava", Password: "secret1",
		}).Return(&usecase.AuthResult{Account: account, Token: "jwt"}, nil).Once()

		// Act
		w := f.do(http.MethodPost, "/auth/register", dto.RegisterRequest{
			Email: "ava@example.com", Username: "ava", Password: "secret1",
		}, nil)

		// Assert
		require.Equal(t, http.StatusCreated, w.Code)
		var resp dto.AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "jwt", resp.Token)
		assert.Equal(t, testAccount, resp.Account.ID)
	})

	t.Run("Register rejects malformed body", func(t *testing.T) {
		f := newFixture(t)

		w := f.do(http.MethodPost, "/auth/register", dto.RegisterRequest{Email: "nope", Username: "ava", Password: "secret1"}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeValidation, decodeError(t, w).Code)
	})

	t.Run("Register duplicate", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerr.ErrDuplicateAccount).Once()

		w := f.do(http.MethodPost, "/auth/register", dto.RegisterRequest{
			Email: "ava@example.com", Username: "ava", Password: "secret1",
		}, nil)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, domainerr.CodeDuplicateAccount, decodeError(t, w).Code)
	})

	t.Run("Login with wrong password", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().Login(mock.Anything, "ava@example.com", "bad").Return(nil, domainerr.ErrUnauthenticated).Once()

		w := f.do(http.MethodPost, "/auth/login", dto.LoginRequest{Email: "ava@example.com", Password: "bad"}, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Me requires a token", func(t *testing.T) {
		f := newFixture(t)

		w := f.do(http.MethodGet, "/me", nil, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Me returns tier progress", func(t *testing.T) {
		f := newFixture(t)
		next := int64(100)
		f.accounts.EXPECT().Me(mock.Anything, testAccount).Return(&usecase.AccountSummary{
			AccountID: testAccount, Balance: 40, LifetimeSpend: 60, Level: 1, UnlockTier: 1, NextLevelAt: &next,
		}, nil).Once()

		w := f.authed(http.MethodGet, "/me", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.AccountResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(40), resp.Balance)
		require.NotNil(t, resp.NextLevelAt)
		assert.Equal(t, int64(100), *resp.NextLevelAt)
		assert.Nil(t, resp.NextUnlockAt)
	})

	t.Run("Delete", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().Delete(mock.Anything, testAccount).Return(nil).Once()

		w := f.authed(http.MethodDelete, "/me", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestPersonaHandler(t *testing.T) {
	t.Run("Create passes input", func(t *testing.T) {
		f := newFixture(t)
		f.personas.EXPECT().Create(mock.Anything, testAccount, entity.PersonaInput{Name: "Ava", Age: 25}).
			Return(&entity.Persona{ID: "prs_1", Name: "Ava", Age: 25}, nil).Once()

		w := f.authed(http.MethodPost, "/personas", dto.CreatePersonaRequest{Name: "Ava", Age: 25})

		require.Equal(t, http.StatusCreated, w.Code)
		var resp dto.PersonaResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "prs_1", resp.ID)
	})

	t.Run("Foreign persona is not found", func(t *testing.T) {
		f := newFixture(t)
		f.personas.EXPECT().Get(mock.Anything, testAccount, "prs_other").Return(nil, domainerr.ErrPersonaNotFound).Once()

		w := f.authed(http.MethodGet, "/personas/prs_other", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("History parses the page", func(t *testing.T) {
		f := newFixture(t)
		f.personas.EXPECT().History(mock.Anything, testAccount, "prs_1", entity.Page{Limit: 2, Offset: 4}).
			Return([]*entity.ConversationTurn{
				{ID: "trn_1", Sender: entity.SenderUser, Content: "hi"},
				{ID: "trn_2", Sender: entity.SenderAssistant, Content: "hey", Cost: 1},
			}, nil).Once()

		w := f.authed(http.MethodGet, "/personas/prs_1/messages?limit=2&offset=4", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.ListResponse[dto.TurnResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Items, 2)
		assert.Equal(t, "trn_1", resp.Items[0].ID)
		assert.Equal(t, 2, resp.Limit)
		assert.Equal(t, 4, resp.Offset)
	})

	t.Run("History rejects a bad limit", func(t *testing.T) {
		f := newFixture(t)

		w := f.authed(http.MethodGet, "/personas/prs_1/messages?limit=-1", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Gallery filters by persona", func(t *testing.T) {
		f := newFixture(t)
		f.personas.EXPECT().Gallery(mock.Anything, testAccount, "prs_1", entity.Page{}).
			Return([]*entity.GeneratedImage{{ID: "img_1", URL: "https://cdn/1.jpg"}}, nil).Once()

		w := f.authed(http.MethodGet, "/gallery?personaId=prs_1", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.ListResponse[dto.ImageResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "img_1", resp.Items[0].ID)
	})

	t.Run("ToggleLike", func(t *testing.T) {
		f := newFixture(t)
		f.personas.EXPECT().ToggleLike(mock.Anything, testAccount, "img_1").Return(true, nil).Once()

		w := f.authed(http.MethodPost, "/gallery/img_1/like", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.LikeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Liked)
		assert.Equal(t, "img_1", resp.ImageID)
	})
}

func TestGenerationHandler(t *testing.T) {
	t.Run("SendMessage returns reply and balance", func(t *testing.T) {
		f := newFixture(t)
		f.generation.EXPECT().SendMessage(mock.Anything, testAccount, "prs_1", "hello").Return(&usecase.MessageResult{
			UserTurn: &entity.ConversationTurn{ID: "trn_1", Sender: entity.SenderUser, Content: "hello"},
			Reply:    &entity.ConversationTurn{ID: "trn_2", Sender: entity.SenderAssistant, Content: "hi there", Cost: 1},
			Cost:     1,
			Balance:  49,
		}, nil).Once()

		w := f.authed(http.MethodPost, "/personas/prs_1/messages", dto.SendMessageRequest{Text: "hello"})

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.MessageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "hi there", resp.Reply.Content)
		assert.Equal(t, int64(49), resp.Balance)
	})

	t.Run("Insufficient funds carries the shortfall", func(t *testing.T) {
		f := newFixture(t)
		f.generation.EXPECT().SendMessage(mock.Anything, testAccount, "prs_1", "hello").
			Return(nil, domainerr.NewInsufficientFundsError(testAccount, 1, 0)).Once()

		w := f.authed(http.MethodPost, "/personas/prs_1/messages", dto.SendMessageRequest{Text: "hello"})

		require.Equal(t, http.StatusPaymentRequired, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, domainerr.CodeInsufficientFunds, resp.Code)
		assert.EqualValues(t, 1, resp.Details["missing"])
	})

	t.Run("Locked level reports the unlock target", func(t *testing.T) {
		f := newFixture(t)
		f.generation.EXPECT().GenerateImage(mock.Anything, testAccount, "prs_1", "beach", 3).Return(nil, &domainerr.AccessDeniedError{
			AccountID: testAccount, Level: 3, CurrentTier: 1, RequiredTier: 3, CurrentSpend: 20, RequiredSpend: 150,
		}).Once()

		w := f.authed(http.MethodPost, "/personas/prs_1/images", dto.GenerateImageRequest{Scenario: "beach", Level: 3})

		require.Equal(t, http.StatusForbidden, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, domainerr.CodeAccessDenied, resp.Code)
		assert.EqualValues(t, 130, resp.Details["creditsToNext"])
		assert.EqualValues(t, 3, resp.Details["requiredTier"])
	})

	t.Run("Failed generation reports the refund", func(t *testing.T) {
		f := newFixture(t)
		f.generation.EXPECT().GenerateImage(mock.Anything, testAccount, "prs_1", "beach", 0).
			Return(nil, domainerr.NewGenerationFailedError("image", "rsv_1", true, errors.New("provider down"))).Once()

		w := f.authed(http.MethodPost, "/personas/prs_1/images", dto.GenerateImageRequest{Scenario: "beach"})

		require.Equal(t, http.StatusBadGateway, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, domainerr.CodeGenerationFailed, resp.Code)
		assert.Equal(t, true, resp.Details["refunded"])
		assert.Contains(t, resp.Message, "credits were returned")
		assert.NotContains(t, resp.Message, "provider down")
		assert.NotContains(t, resp.Details, "reservationId")
	})

	t.Run("Failed generation without refund says so", func(t *testing.T) {
		f := newFixture(t)
		f.generation.EXPECT().SendMessage(mock.Anything, testAccount, "prs_1", "hello").
			Return(nil, domainerr.NewGenerationFailedError("text", "rsv_2", false, errors.New("ledger down"))).Once()

		w := f.authed(http.MethodPost, "/personas/prs_1/messages", dto.SendMessageRequest{Text: "hello"})

		require.Equal(t, http.StatusBadGateway, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, domainerr.CodeGenerationFailed, resp.Code)
		assert.Equal(t, false, resp.Details["refunded"])
		assert.Equal(t, "rsv_2", resp.Details["reservationId"])
		assert.Contains(t, resp.Message, "not yet returned")
		assert.NotContains(t, resp.Message, "credits were returned")
	})

	t.Run("Failed generation wrapping a lock conflict stays 502", func(t *testing.T) {
		f := newFixture(t)
		f.generation.EXPECT().GenerateImage(mock.Anything, testAccount, "prs_1", "beach", 0).
			Return(nil, domainerr.NewGenerationFailedError("image", "rsv_3", true, domainerr.ErrConcurrentUpdate)).Once()

		w := f.authed(http.MethodPost, "/personas/prs_1/images", dto.GenerateImageRequest{Scenario: "beach"})

		require.Equal(t, http.StatusBadGateway, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, domainerr.CodeGenerationFailed, resp.Code)
		assert.Equal(t, true, resp.Details["refunded"])
	})

	t.Run("Empty text is rejected before charging", func(t *testing.T) {
		f := newFixture(t)

		w := f.authed(http.MethodPost, "/personas/prs_1/messages", dto.SendMessageRequest{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPaymentHandler(t *testing.T) {
	t.Run("Webhook forwards raw body and signature", func(t *testing.T) {
		f := newFixture(t)
		payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
		f.payments.EXPECT().HandleWebhook(mock.Anything, payload, "t=1,v1=abc").Return(&usecase.WebhookResult{
			Event:    &entity.PaymentEvent{ID: "evt_1"},
			Credited: true,
		}, nil).Once()

		w := f.do(http.MethodPost, "/payments/webhook", payload, map[string]string{handler.SignatureHeader: "t=1,v1=abc"})

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.WebhookResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Received)
		assert.True(t, resp.Credited)
		assert.Equal(t, "evt_1", resp.EventID)
	})

	t.Run("Webhook with bad signature", func(t *testing.T) {
		f := newFixture(t)
		f.payments.EXPECT().HandleWebhook(mock.Anything, mock.Anything, "").Return(nil, domainerr.ErrInvalidPaymentEvent).Once()

		w := f.do(http.MethodPost, "/payments/webhook", []byte(`{}`), nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Checkout without provider", func(t *testing.T) {
		f := newFixture(t)
		f.payments.EXPECT().Checkout(mock.Anything, testAccount, "starter").Return(nil, domainerr.ErrPaymentNotConfigured).Once()

		w := f.authed(http.MethodPost, "/checkout", dto.CheckoutRequest{PackageID: "starter"})

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("Checkout returns session", func(t *testing.T) {
		f := newFixture(t)
		f.payments.EXPECT().Checkout(mock.Anything, testAccount, "starter").
			Return(&entity.CheckoutSession{ID: "cs_1", URL: "https://checkout/cs_1"}, nil).Once()

		w := f.authed(http.MethodPost, "/checkout", dto.CheckoutRequest{PackageID: "starter"})

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.CheckoutResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "https://checkout/cs_1", resp.URL)
	})

	t.Run("Packages are public", func(t *testing.T) {
		f := newFixture(t)
		var packages []*entity.CreditPackage
		for _, p := range entity.DefaultCreditPackages() {
			packages = append(packages, &p)
		}
		f.payments.EXPECT().Packages(mock.Anything).Return(packages, nil).Once()

		w := f.do(http.MethodGet, "/packages", nil, nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.ListResponse[dto.PackageResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Items)
		assert.Equal(t, "9.99", resp.Items[0].PriceEUR)
	})
}

func TestLedgerHandler(t *testing.T) {
	t.Run("History", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.EXPECT().History(mock.Anything, testAccount, entity.Page{Limit: 5}).Return([]*entity.Transaction{
			{ID: "txn_2", Amount: -1, Kind: entity.KindUsage, BalanceAfter: 49},
			{ID: "txn_1", Amount: 50, Kind: entity.KindSignupBonus, BalanceAfter: 50},
		}, nil).Once()

		w := f.authed(http.MethodGet, "/transactions?limit=5", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.ListResponse[dto.TransactionResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Items, 2)
		assert.Equal(t, "usage", resp.Items[0].Kind)
	})
}

type stubChecker struct{ err error }

func (s stubChecker) HealthCheck(context.Context) error { return s.err }

func TestHealthHandler(t *testing.T) {
	for _, tc := range []struct {
		name string
		err  error
		want int
	}{
		{"Up", nil, http.StatusOK},
		{"Down", errors.New("connection refused"), http.StatusServiceUnavailable},
	} {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/health", handler.NewHealthHandler(stubChecker{tc.err}, time.Second, logger.NewNoopLogger()).Health)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tc.want, w.Code)
		})
	}
}
