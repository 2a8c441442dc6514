package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/electrostore-api/internal/domain/session"
	"github.com/sangkips/electrostore-api/internal/presentation/http/dto/request"
	"github.com/sangkips/electrostore-api/internal/presentation/http/middleware"
	"github.com/stretchr/testify/assert"
)

func TestBindJSON(t *testing.T) {
	middleware.SetupValidator()

	r := gin.New()
	r.POST("/login", func(c *gin.Context) {
		var req request.LoginRequest
		if !bindJSON(c, &req) {
			return
		}
		c.Status(http.StatusNoContent)
	})

	tests := []struct {
		name string
		body string
		want int
	}{
		{"valid", `{"username":"jane","password":"secret"}`, http.StatusNoContent},
		{"missing field", `{"username":"jane"}`, http.StatusUnprocessableEntity},
		{"malformed", `{"username":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestParseIDAndSession(t *testing.T) {
	r := gin.New()
	r.GET("/reports/:id", func(c *gin.Context) {
		if c.Query("auth") == "1" {
			c.Set(middleware.SessionKey, session.New(uuid.New(), session.KindAdmin, "admin"))
		}
		if _, ok := getSession(c); !ok {
			return
		}
		if _, ok := parseID(c, "id", "report"); !ok {
			return
		}
		c.Status(http.StatusNoContent)
	})

	serve := func(path string) int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w.Code
	}

	assert.Equal(t, http.StatusUnauthorized, serve("/reports/"+uuid.NewString()))
	assert.Equal(t, http.StatusBadRequest, serve("/reports/not-a-uuid?auth=1"))
	assert.Equal(t, http.StatusNoContent, serve("/reports/"+uuid.NewString()+"?auth=1"))
}
