package middleware

import (
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/focusdo/backend/pkg/token"
)

// JWTAuth verifies the bearer access token and injects the caller's
// identity as the X-User-ID header for downstream handlers. Any value a
// client might have set there itself is overwritten.
func JWTAuth(tokens *token.Manager, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			ctx.Request.Header.Del("X-User-ID")

			tokenString := extractToken(ctx)
			if tokenString == "" {
				ctx.SetStatusCode(fasthttp.StatusUnauthorized)
				return
			}

			claims, err := tokens.ValidateAccess(tokenString)
			if err != nil {
				logger.Warn("rejected bearer token", zap.Error(err))
				ctx.SetStatusCode(fasthttp.StatusUnauthorized)
				return
			}

			ctx.Request.Header.Set("X-User-ID", claims.UserID)
			next(ctx)
		}
	}
}

func extractToken(ctx *fasthttp.RequestCtx) string {
	header := string(ctx.Request.Header.Peek("Authorization"))
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return header
}
