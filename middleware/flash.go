package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const flashSession = "forum_flash"

// FlashStore keeps one-shot messages in a signed cookie session.
type FlashStore struct {
	store sessions.Store
}

func NewFlashStore(secret []byte, secure bool) *FlashStore {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &FlashStore{store: store}
}

// Add queues message for the next rendered page.
func (f *FlashStore) Add(c *gin.Context, message string) {
	session, err := f.store.Get(c.Request, flashSession)
	if err != nil {
		log.Printf("flash: discarding unreadable session: %v", err)
	}
	session.AddFlash(message)
	if err := session.Save(c.Request, c.Writer); err != nil {
		log.Printf("flash: save failed: %v", err)
	}
}

// Pop returns and clears the queued messages.
func (f *FlashStore) Pop(c *gin.Context) []string {
	session, err := f.store.Get(c.Request, flashSession)
	if err != nil {
		return nil
	}
	flashes := session.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	if err := session.Save(c.Request, c.Writer); err != nil {
		log.Printf("flash: save failed: %v", err)
	}

	messages := make([]string, 0, len(flashes))
	for _, v := range flashes {
		if s, ok := v.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}
