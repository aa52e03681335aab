// path: controllers/helpers.go
package controllers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/pcgaming-glitch/SafeNet-Blacklist/database"
	"github.com/pcgaming-glitch/SafeNet-Blacklist/models"
	"github.com/pcgaming-glitch/SafeNet-Blacklist/uploads"
)

// API bundles the handlers' collaborators. Everything is injected so
// tests can stand up an app against a temp dir and an in-memory session
// store; no package-level state.
type API struct {
	Reports   database.Store
	Uploads   *uploads.Saver
	Sessions  *session.Store
	AdminCode string
}

func New(reports database.Store, saver *uploads.Saver, sessions *session.Store, adminCode string) *API {
	return &API{Reports: reports, Uploads: saver, Sessions: sessions, AdminCode: adminCode}
}

// fail maps a RequestError to its status and message; anything else is
// a server error and stays opaque to the client.
func fail(c *fiber.Ctx, err error) error {
	var re *models.RequestError
	if errors.As(err, &re) {
		return c.Status(re.Status).JSON(models.StatusResp{OK: false, Message: re.Message})
	}
	return serverErr(c, err)
}

func serverErr(c *fiber.Ctx, err error) error {
	log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).
		JSON(models.StatusResp{OK: false, Message: "Server error"})
}

// parseBool understands common truthy strings.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}
