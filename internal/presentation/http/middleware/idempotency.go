package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/electrostore-api/internal/domain/entity"
	"github.com/sangkips/electrostore-api/internal/domain/repository"
	"github.com/sangkips/electrostore-api/internal/infrastructure/logger"
	"github.com/sangkips/electrostore-api/internal/presentation/http/dto/response"
	"go.uber.org/zap"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// ReplayedHeader marks a response served from a stored key
	ReplayedHeader = "X-Idempotency-Replayed"

	defaultIdempotencyTTL = 24 * time.Hour
	maxIdempotencyKeyLen  = 255
)

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Repo repository.IdempotencyRepository
	TTL  time.Duration
}

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency requires an Idempotency-Key header on the request and replays
// the stored response when the same session sends the same key again. The
// key is claimed before the handler runs, so a concurrent duplicate gets 409
// instead of running the handler twice. Must run after AuthMiddleware.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}

	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			response.BadRequest(c, "Idempotency-Key header is required for this request")
			c.Abort()
			return
		}
		if len(key) > maxIdempotencyKeyLen {
			response.BadRequest(c, "Idempotency-Key header is too long")
			c.Abort()
			return
		}

		sess, ok := GetSession(c)
		if !ok {
			response.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		log := logger.FromContext(ctx)

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.BadRequest(c, "Failed to read request body")
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		sum := sha256.Sum256(body)
		requestHash := hex.EncodeToString(sum[:])

		ikey := &entity.IdempotencyKey{
			Key:         key,
			SubjectID:   sess.SubjectID,
			Endpoint:    c.Request.Method + " " + c.FullPath(),
			RequestHash: requestHash,
			ExpiresAt:   time.Now().Add(ttl),
		}
		claimed, err := cfg.Repo.Claim(ctx, ikey)
		if err != nil {
			log.Error("failed to claim idempotency key", zap.Error(err))
			response.InternalServerError(c, "Failed to check idempotency key")
			c.Abort()
			return
		}
		if !claimed {
			replay(c, cfg.Repo, key, sess.SubjectID, requestHash)
			c.Abort()
			return
		}

		// The claim outlives a cancelled request
		storeCtx := context.WithoutCancel(ctx)
		completed := false
		defer func() {
			if completed {
				return
			}
			if err := cfg.Repo.Release(storeCtx, ikey); err != nil {
				log.Warn("failed to release idempotency key", zap.String("endpoint", ikey.Endpoint), zap.Error(err))
			}
		}()

		// Capture the response
		blw := &responseWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		// Only successful responses are replayed; a failed attempt may be retried
		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		ikey.ResponseCode = status
		ikey.ResponseBody = blw.body.String()
		if err := cfg.Repo.Complete(storeCtx, ikey); err != nil {
			log.Warn("failed to store idempotency response", zap.String("endpoint", ikey.Endpoint), zap.Error(err))
			return
		}
		completed = true
	}
}

// replay answers a request whose key is already held by an earlier one
func replay(c *gin.Context, repo repository.IdempotencyRepository, key string, subjectID uuid.UUID, requestHash string) {
	existing, err := repo.GetByKey(c.Request.Context(), key, subjectID)
	if err != nil {
		logger.FromContext(c.Request.Context()).Error("failed to load idempotency key", zap.Error(err))
		response.InternalServerError(c, "Failed to check idempotency key")
		return
	}

	switch {
	case existing == nil:
		// Released between the claim and this read
		response.ErrorWithCode(c, http.StatusConflict, "A request with this Idempotency-Key is in progress, retry shortly")
	case existing.RequestHash != requestHash:
		response.ErrorWithCode(c, http.StatusUnprocessableEntity, "Idempotency-Key was already used for a different request")
	case existing.IsPending():
		c.Header("Retry-After", "1")
		response.ErrorWithCode(c, http.StatusConflict, "A request with this Idempotency-Key is in progress, retry shortly")
	default:
		c.Header(ReplayedHeader, "true")
		c.Data(existing.ResponseCode, "application/json; charset=utf-8", []byte(existing.ResponseBody))
	}
}
