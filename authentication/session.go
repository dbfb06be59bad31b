package authentication

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SessionName is the cookie carrying both the doctor identity and the
// flash queue.
const SessionName = "hms_session"

// Flash queues a transient notice for the next rendered page.
// Category is "success" or "error".
func Flash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, category)
	session.Save()
}

// TakeFlashes drains the queued notices, grouped by category.
func TakeFlashes(c *gin.Context) map[string][]string {
	session := sessions.Default(c)
	out := map[string][]string{}
	for _, category := range []string{"success", "error"} {
		for _, f := range session.Flashes(category) {
			if s, ok := f.(string); ok {
				out[category] = append(out[category], s)
			}
		}
	}
	session.Save()
	return out
}
