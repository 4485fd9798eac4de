package middleware

import (
	"isms-api/internal/models"
	"isms-api/internal/repository"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const currentUserKey = "CurrentUser"

// InjectUser resolves the session's user and stores it on the request
// context, so handlers can attribute mutations in the audit log.
func InjectUser(users *repository.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uidRaw := sess.Get("user_id"); uidRaw != nil {
			if uid, ok := uidRaw.(uint); ok && uid > 0 {
				if user, err := users.Get(uid); err == nil {
					c.Set(currentUserKey, user)
				}
			}
		}

		c.Next()
	}
}

// CurrentUserID returns the acting user's id, or 0 for anonymous requests.
func CurrentUserID(c *gin.Context) uint {
	if uVal, ok := c.Get(currentUserKey); ok {
		if user, ok := uVal.(models.User); ok {
			return user.ID
		}
	}
	return 0
}
