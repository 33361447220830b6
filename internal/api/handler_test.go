package api_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/eduboard/academy/internal/api"
	"github.com/eduboard/academy/internal/entity"
	"github.com/eduboard/academy/internal/mocks"
)

const (
	testJWTSecret  = "test-secret"
	testCookieName = "academy_token"
)

func newTestServer(t *testing.T) (*mocks.MockService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	s := mocks.NewMockService(ctrl)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(testJWTSecret, testCookieName)

	return s, api.NewRouter(handler, mw)
}

func signToken(t *testing.T, userID uuid.UUID, role entity.Role) string {
	t.Helper()

	claims := entity.UserClaims{
		UserID: userID,
		Email:  "user@example.com",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	return token
}

func doRequest(router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("{}")
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_VerifyPayment(t *testing.T) {
	t.Parallel()

	s, router := newTestServer(t)

	adminID := uuid.Must(uuid.NewV4())
	invoiceID := uuid.Must(uuid.NewV4())
	receiptID := uuid.Must(uuid.NewV4())

	s.EXPECT().VerifyPayment(gomock.Any(), entity.VerifyPaymentCommand{
		InvoiceID:  invoiceID,
		ReceiptID:  receiptID,
		Approved:   true,
		Notes:      "matches bank statement",
		VerifiedBy: adminID,
	}).Return(entity.VerificationResult{
		Receipt: entity.PaymentReceipt{
			ID:        receiptID,
			InvoiceID: invoiceID,
			Status:    entity.ReceiptStatusApproved,
		},
		Invoice: entity.Invoice{
			ID:     invoiceID,
			Type:   entity.InvoiceTypeEnrollment,
			Amount: decimal.RequireFromString("100.00"),
			Status: entity.InvoiceStatusPaid,
		},
		StudentCreated: true,
	}, nil)

	token := signToken(t, adminID, entity.RoleAdmin)
	path := fmt.Sprintf("/api/invoices/%s/receipts/%s/verify", invoiceID, receiptID)

	rec := doRequest(router, http.MethodPost, path, token,
		`{"approved": true, "notes": "matches bank statement"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Payment approved and student account created")
	require.Contains(t, rec.Body.String(), `"studentCreated":true`)
}

func TestHandler_VerifyPayment_ServiceErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"already approved", entity.ErrAlreadyApproved, http.StatusConflict},
		{"wrong invoice", entity.ErrInvalidRelation, http.StatusBadRequest},
		{"not found", entity.ErrNotFound, http.StatusNotFound},
		{"invalid argument", entity.ErrInvalidArgument, http.StatusBadRequest},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, router := newTestServer(t)

			s.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).
				Return(entity.VerificationResult{}, tt.err)

			token := signToken(t, uuid.Must(uuid.NewV4()), entity.RoleAdmin)
			path := fmt.Sprintf("/api/invoices/%s/receipts/%s/verify",
				uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()))

			rec := doRequest(router, http.MethodPost, path, token, `{"approved": true}`)
			require.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_VerifyPayment_InvalidInvoiceID(t *testing.T) {
	t.Parallel()

	_, router := newTestServer(t)

	token := signToken(t, uuid.Must(uuid.NewV4()), entity.RoleAdmin)
	path := fmt.Sprintf("/api/invoices/not-a-uuid/receipts/%s/verify", uuid.Must(uuid.NewV4()))

	rec := doRequest(router, http.MethodPost, path, token, `{"approved": true}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_AuthRequired(t *testing.T) {
	t.Parallel()

	_, router := newTestServer(t)

	rec := doRequest(router, http.MethodGet, "/api/invoices", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_VerifyRequiresAdmin(t *testing.T) {
	t.Parallel()

	_, router := newTestServer(t)

	token := signToken(t, uuid.Must(uuid.NewV4()), entity.RoleTeacher)
	path := fmt.Sprintf("/api/invoices/%s/receipts/%s/verify",
		uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()))

	rec := doRequest(router, http.MethodPost, path, token, `{"approved": true}`)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_TokenFromCookie(t *testing.T) {
	t.Parallel()

	s, router := newTestServer(t)

	s.EXPECT().Students(gomock.Any()).Return([]entity.Student{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
	req.AddCookie(&http.Cookie{
		Name:  testCookieName,
		Value: signToken(t, uuid.Must(uuid.NewV4()), entity.RoleStudent),
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_ListInvoices_Filter(t *testing.T) {
	t.Parallel()

	s, router := newTestServer(t)

	status := entity.InvoiceStatusUnpaid

	s.EXPECT().Invoices(gomock.Any(), entity.InvoiceFilter{
		Status: &status,
		Page:   2,
		Limit:  50,
	}).Return([]entity.Invoice{}, 0, nil)

	token := signToken(t, uuid.Must(uuid.NewV4()), entity.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices?status=UNPAID&page=2&limit=50", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_ListInvoices_InvalidFilter(t *testing.T) {
	t.Parallel()

	_, router := newTestServer(t)

	token := signToken(t, uuid.Must(uuid.NewV4()), entity.RoleAdmin)

	for _, query := range []string{"status=BOGUS", "page=0", "limit=1000"} {
		req := httptest.NewRequest(http.MethodGet, "/api/invoices?"+query, nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

func TestHandler_UploadReceipt(t *testing.T) {
	t.Parallel()

	s, router := newTestServer(t)

	invoiceID := uuid.Must(uuid.NewV4())

	s.EXPECT().UploadReceipt(gomock.Any(), gomock.Any()).
		Return(entity.PaymentReceipt{
			ID:        uuid.Must(uuid.NewV4()),
			InvoiceID: invoiceID,
			FileURL:   "uploads/r.png",
			Status:    entity.ReceiptStatusSubmitted,
		}, nil)

	token := signToken(t, uuid.Must(uuid.NewV4()), entity.RoleStudent)
	path := fmt.Sprintf("/api/invoices/%s/receipts", invoiceID)

	rec := doRequest(router, http.MethodPost, path, token, `{"fileUrl": "uploads/r.png"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"SUBMITTED"`)
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	_, router := newTestServer(t)

	rec := doRequest(router, http.MethodGet, "/api/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
}
