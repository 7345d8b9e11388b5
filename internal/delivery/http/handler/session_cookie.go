package handler

import (
	"time"

	"jobconnect/internal/delivery/http/middleware"
	"jobconnect/internal/session"

	"github.com/gofiber/fiber/v3"
)

// establishSession replaces whatever session the request carried with a fresh
// one holding the given identity, keeping the candidate and recruiter slots
// mutually exclusive.
func establishSession(c fiber.Ctx, store session.Store, cookieName string, id session.Identity) error {
	if old, ok := middleware.SessionIDFromCtx(c); ok {
		_ = store.Destroy(c.Context(), old)
	}

	sid, err := store.Create(c.Context(), id)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    sid,
		Path:     "/",
		HTTPOnly: true,
	})
	return nil
}

func clearSessionCookie(c fiber.Ctx, cookieName string) {
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Unix(0, 0),
	})
}
