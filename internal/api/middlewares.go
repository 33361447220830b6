package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/eduboard/academy/internal/entity"
	"github.com/eduboard/academy/pkg/logger"
)

var skipLogging = map[string]struct{}{
	"/api/health": {},
}

type Middleware struct {
	jwtSecret  []byte
	cookieName string
}

func NewMiddleware(jwtSecret string, cookieName string) *Middleware {
	return &Middleware{
		jwtSecret:  []byte(jwtSecret),
		cookieName: cookieName,
	}
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		ctx = logger.WithRequestID(ctx, requestID)
		w.Header().Set("X-Request-Id", requestID)

		if _, ok := skipLogging[r.URL.Path]; !ok {
			slog.InfoContext(ctx, "incoming request",
				"method", r.Method,
				"path", r.URL.Redacted(),
			)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "recovered from panic", "error", err, "stack", string(debug.Stack()))
				SendJSONErr(ctx, w, http.StatusInternalServerError, fmt.Errorf("panic: %v", err), "Internal error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Origin, Accept, User-Agent, Cache-Control")

		if r.Method == http.MethodOptions {
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Auth verifies the JWT supplied either in the session cookie or as a Bearer
// token and puts the authenticated user into the request context.
func (m *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token := m.extractToken(r)
		if token == "" {
			SendJSONErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthenticated, "Missing token")
			return
		}

		user, err := m.parseToken(token)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Invalid token")
			return
		}

		ctx = entity.CtxWithUser(ctx, user)
		ctx = logger.WithUserID(ctx, user.ID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole rejects authenticated users whose role does not match.
func (m *Middleware) RequireRole(role entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			user, err := entity.UserFromCtx(ctx)
			if err != nil {
				SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Authentication required")
				return
			}

			if user.Role != role {
				SendJSONErr(ctx, w, http.StatusForbidden,
					fmt.Errorf("role %q: %w", user.Role, entity.ErrForbidden), "Action is not allowed")

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (m *Middleware) extractToken(r *http.Request) string {
	cookie, err := r.Cookie(m.cookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	const bearerPrefix = "Bearer "

	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, bearerPrefix) {
		return strings.TrimPrefix(auth, bearerPrefix)
	}

	return ""
}

func (m *Middleware) parseToken(token string) (entity.AuthUser, error) {
	var claims entity.UserClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		_, ok := t.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}

		return m.jwtSecret, nil
	})
	if err != nil {
		return entity.AuthUser{}, fmt.Errorf("parse token: %w", err)
	}

	if !parsed.Valid {
		return entity.AuthUser{}, entity.ErrUnauthenticated
	}

	err = claims.Role.Validate()
	if err != nil {
		return entity.AuthUser{}, err
	}

	return entity.AuthUser{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}
