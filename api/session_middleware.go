package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "cart_session"

// thirty days, matching how long an abandoned cart is worth keeping
const sessionMaxAge = 30 * 24 * 60 * 60

// CartSession resolves the caller's cart session from a cookie, issuing
// a fresh ID when none is present. Every cart and checkout route runs
// behind it.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := c.Cookie(sessionCookie)

		if err != nil || session == "" {
			session = uuid.NewString()
			c.SetCookie(sessionCookie, session, sessionMaxAge, "/", "", false, true)
		}

		c.Set("session", session)
	}
}

func sessionID(c *gin.Context) string {
	return c.MustGet("session").(string)
}
