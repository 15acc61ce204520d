package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/khata/internal/auth"
)

func TestMiddleware(t *testing.T) {
	svc := auth.NewService([]byte("test-secret"), time.Hour)
	userID := uuid.New()

	token, err := svc.IssueToken(userID, "john@example.com")
	require.NoError(t, err)

	type testCase struct {
		name       string
		authHeader string
		wantStatus int
	}

	tests := []testCase{
		{
			name:       "MissingHeader",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "NotBearer",
			authHeader: "Basic am9objpzZWNyZXQ=",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "InvalidToken",
			authHeader: "Bearer not.a.token",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "ValidToken",
			authHeader: "Bearer " + token,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotClaims *auth.Claims

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotClaims, _ = auth.ClaimsFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rec := httptest.NewRecorder()
			svc.Middleware(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				require.NotNil(t, gotClaims)
				assert.Equal(t, userID, gotClaims.UserID)
			} else {
				assert.Nil(t, gotClaims)
			}
		})
	}
}
