package middleware

import (
	"errors"

	"jobconnect/internal/session"

	"github.com/gofiber/fiber/v3"
)

const (
	CtxIdentityKey  = "identity"
	CtxSessionIDKey = "session_id"
)

// SessionMiddleware resolves the session cookie into an Identity for
// downstream handlers. An absent or unknown session is not an error here;
// the per-route gates decide what is protected.
type SessionMiddleware struct {
	store      session.Store
	cookieName string
}

func NewSessionMiddleware(store session.Store, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{store: store, cookieName: cookieName}
}

func (m *SessionMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		sessionID := c.Cookies(m.cookieName)
		if sessionID != "" {
			id, err := m.store.Get(c.Context(), sessionID)
			if err == nil {
				c.Locals(CtxIdentityKey, id)
				c.Locals(CtxSessionIDKey, sessionID)
			} else if !errors.Is(err, session.ErrNotFound) {
				return NewAppError(fiber.StatusInternalServerError, "", nil, err)
			}
		}
		return c.Next()
	}
}

// RequireCandidate rejects requests whose session has no candidate slot.
func RequireCandidate() fiber.Handler {
	return func(c fiber.Ctx) error {
		id, ok := IdentityFromCtx(c)
		if !ok || !id.IsCandidate() {
			return NewAppError(fiber.StatusUnauthorized, "candidate login required", nil, nil)
		}
		return c.Next()
	}
}

// RequireRecruiter rejects requests whose session has no recruiter slot.
func RequireRecruiter() fiber.Handler {
	return func(c fiber.Ctx) error {
		id, ok := IdentityFromCtx(c)
		if !ok || !id.IsRecruiter() {
			return NewAppError(fiber.StatusUnauthorized, "recruiter login required", nil, nil)
		}
		return c.Next()
	}
}

func IdentityFromCtx(c fiber.Ctx) (session.Identity, bool) {
	id, ok := c.Locals(CtxIdentityKey).(session.Identity)
	return id, ok
}

func SessionIDFromCtx(c fiber.Ctx) (string, bool) {
	sid, ok := c.Locals(CtxSessionIDKey).(string)
	return sid, ok
}
