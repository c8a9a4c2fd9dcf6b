package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/campusbooks/bookshare-service/pkg/auth"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

const (
	AuthorizationHeader = "Authorization"
	bearer              = "Bearer "
)

// AuthContext puts the acting user into the request context. Identity headers
// set by the gateway win; a bare Bearer token is accepted for direct calls.
func AuthContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		userName := req.Header.Get(auth.XUserNameHeader)
		userRole := req.Header.Get(auth.XUserRoleHeader)
		if userName == "" {
			claims, err := parseBearer(req.Header.Get(AuthorizationHeader))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err)
			}
			userName, userRole = claims.Profile.Username, claims.Profile.Role
		}
		if userRole == "" {
			userRole = auth.RoleUser
		}
		ctx := auth.SetAuthContext(req.Context(), userName, userRole)
		req = req.WithContext(ctx)
		c.SetRequest(req)
		return next(c)
	}
}

func parseBearer(authorization string) (*auth.Claims, error) {
	if authorization == "" {
		return nil, errors.New("user-name is empty")
	}
	if !strings.HasPrefix(authorization, bearer) {
		return nil, errors.New("invalid Authorization header")
	}
	tokenStr := strings.TrimPrefix(authorization, bearer)
	claims := new(auth.Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return auth.JWTKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("JwtAccessDenied")
	}
	if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
		return nil, errors.New("TokenExpired")
	}
	return claims, nil
}

func NewRateLimiter(rps rate.Limit) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rps))
}

func RequestLoggerConfig(log *zap.Logger) middleware.RequestLoggerConfig {
	log = log.Named("http")
	c := middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		HandleError:  true,
		LogError:     true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := zapcore.InfoLevel
			if v.Error != nil {
				level = zapcore.ErrorLevel
			}
			log.Log(level, "request",
				zap.String("URI", v.URI),
				zap.String("Method", v.Method),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	}
	return c
}
