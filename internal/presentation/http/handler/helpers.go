package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/electrostore-api/internal/domain/session"
	"github.com/sangkips/electrostore-api/internal/presentation/http/dto/response"
	"github.com/sangkips/electrostore-api/internal/presentation/http/middleware"
	"github.com/sangkips/electrostore-api/pkg/pagination"
	"github.com/sangkips/electrostore-api/pkg/utils"
)

// bindJSON decodes and validates the body, writing the error response on
// failure
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if fields := middleware.FieldErrors(err); len(fields) > 0 {
			response.ValidationError(c, fields)
			return false
		}
		response.BadRequest(c, "Invalid request body")
		return false
	}
	return true
}

// getSession returns the caller's session or writes a 401
func getSession(c *gin.Context) (session.Session, bool) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return session.Session{}, false
	}
	return sess, true
}

// parseID reads a UUID path parameter or writes a 400
func parseID(c *gin.Context, param, label string) (uuid.UUID, bool) {
	id, err := utils.ParseUUID(c.Param(param))
	if err != nil {
		response.BadRequest(c, "Invalid "+label+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// pageParams reads page and per_page from the query string
func pageParams(c *gin.Context) *pagination.PaginationParams {
	params := pagination.DefaultPagination()
	_ = c.ShouldBindQuery(params)
	params.Validate()
	return params
}
