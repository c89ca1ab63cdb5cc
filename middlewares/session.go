package middlewares

import (
	"encoding/gob"
	"log"

	"backend/config"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const sessionName = "health_tracker_session"

var store *sessions.CookieStore

// Flash is a one-shot message shown on the next rendered page, mirroring
// the usual category/message pairs (success, info, warning, danger).
type Flash struct {
	Category string
	Message  string
}

func InitSessions() {
	gob.Register(Flash{})
	store = sessions.NewCookieStore([]byte(config.SessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
	}
}

func Session(c *gin.Context) *sessions.Session {
	// Get never fails for cookie stores; a bad cookie yields a fresh session.
	s, _ := store.Get(c.Request, sessionName)
	return s
}

func SaveSession(c *gin.Context, s *sessions.Session) {
	if err := s.Save(c.Request, c.Writer); err != nil {
		log.Printf("session save failed: %v", err)
	}
}

func SetSessionUser(c *gin.Context, userID uint, username string) {
	s := Session(c)
	s.Values["user_id"] = userID
	s.Values["username"] = username
	SaveSession(c, s)
}

func ClearSessionUser(c *gin.Context) {
	s := Session(c)
	delete(s.Values, "user_id")
	delete(s.Values, "username")
	delete(s.Values, "chat_history")
	SaveSession(c, s)
}

func SessionUserID(c *gin.Context) (uint, bool) {
	s := Session(c)
	id, ok := s.Values["user_id"].(uint)
	return id, ok
}

func AddFlash(c *gin.Context, category, message string) {
	s := Session(c)
	s.AddFlash(Flash{Category: category, Message: message})
	SaveSession(c, s)
}

// TakeFlashes drains pending flash messages for rendering.
func TakeFlashes(c *gin.Context) []Flash {
	s := Session(c)
	raw := s.Flashes()
	if len(raw) > 0 {
		SaveSession(c, s)
	}
	out := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			out = append(out, f)
		}
	}
	return out
}
