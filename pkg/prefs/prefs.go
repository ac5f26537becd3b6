package prefs

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Keys used by the landing page
const (
	ThemeKey      = "theme"
	ModalSeenKey  = "hasSeenEarlyAccessModal"
	ThemeDark     = "dark"
	ThemeLight    = "light"
	cookieMaxAge  = int(10 * 365 * 24 * time.Hour / time.Second)
	colorSchemeCH = "Sec-CH-Prefers-Color-Scheme"
)

// Store is a simple key/value store for per-visitor preferences
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// MemoryStore keeps preferences in a map
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStore) Set(key, value string) {
	m.mu.Lock()
	m.values[key] = value
	m.mu.Unlock()
}

// CookieStore keeps preferences in cookies on the visitor's browser.
// Values set during a request are visible to later Gets in the same request.
type CookieStore struct {
	c       *gin.Context
	pending map[string]string
}

// NewCookieStore binds a CookieStore to the current request
func NewCookieStore(c *gin.Context) *CookieStore {
	return &CookieStore{c: c, pending: make(map[string]string)}
}

func (s *CookieStore) Get(key string) (string, bool) {
	if v, ok := s.pending[key]; ok {
		return v, true
	}
	v, err := s.c.Cookie(key)
	if err != nil {
		return "", false
	}
	return v, true
}

func (s *CookieStore) Set(key, value string) {
	s.pending[key] = value
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, value, cookieMaxAge, "/", "", false, false)
}

// PrefersDark reads the client hint for the visitor's color scheme
func PrefersDark(r *http.Request) bool {
	return strings.Trim(r.Header.Get(colorSchemeCH), `"`) == ThemeDark
}

// Theme returns the stored theme, falling back to the visitor's system
// preference when nothing valid is stored.
func Theme(s Store, prefersDark bool) string {
	switch v, _ := s.Get(ThemeKey); v {
	case ThemeDark, ThemeLight:
		return v
	}
	if prefersDark {
		return ThemeDark
	}
	return ThemeLight
}

// ToggleTheme flips the current theme, stores it and returns it
func ToggleTheme(s Store, prefersDark bool) string {
	next := ThemeDark
	if Theme(s, prefersDark) == ThemeDark {
		next = ThemeLight
	}
	s.Set(ThemeKey, next)
	return next
}

// ModalSeen reports whether the visitor has already been shown the
// early access prompt
func ModalSeen(s Store) bool {
	v, ok := s.Get(ModalSeenKey)
	return ok && v == "true"
}

// MarkModalSeen records that the early access prompt was shown
func MarkModalSeen(s Store) {
	s.Set(ModalSeenKey, "true")
}
