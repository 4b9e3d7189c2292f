package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ragi-1016/Geektwitter/internal/services"
)

// AuthRequired guards protected routes. Requests without a valid session
// cookie are redirected to the login form.
func AuthRequired(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := sessions.CurrentUserID(c)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
