package server

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

const requestIDHeader = "X-Request-ID"

// logRequests tags each request with an ID and logs its outcome
func (s *Server) logRequests(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()

		id := string(ctx.Request.Header.Peek(requestIDHeader))
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		ctx.Response.Header.Set(requestIDHeader, id)

		next(ctx)

		status := ctx.Response.StatusCode()
		level := slog.LevelInfo
		if status >= fasthttp.StatusInternalServerError {
			level = slog.LevelError
		} else if status >= fasthttp.StatusBadRequest {
			level = slog.LevelWarn
		}
		s.logger.Log(ctx, level, "request",
			"request_id", id,
			"method", string(ctx.Method()),
			"path", string(ctx.Path()),
			"status", status,
			"duration", time.Since(start),
		)
	}
}
