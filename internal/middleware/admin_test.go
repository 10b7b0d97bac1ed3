package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bookkeeping_system/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAdminOnlyMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		user *domain.User
		want int
	}{
		{name: "no user", user: nil, want: http.StatusUnauthorized},
		{name: "staff", user: &domain.User{ID: 2, Role: domain.RoleStaff}, want: http.StatusForbidden},
		{name: "admin", user: &domain.User{ID: 1, Role: domain.RoleAdmin}, want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/", func(c *gin.Context) {
				if tt.user != nil {
					c.Set(ContextUserKey, *tt.user)
				}
				c.Next()
			}, AdminOnlyMiddleware(), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestCurrentUser(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := CurrentUser(c)
	assert.False(t, ok)

	c.Set(ContextUserKey, "not a user")
	_, ok = CurrentUser(c)
	assert.False(t, ok)

	c.Set(ContextUserKey, domain.User{ID: 5})
	user, ok := CurrentUser(c)
	assert.True(t, ok)
	assert.Equal(t, uint(5), user.ID)
}
