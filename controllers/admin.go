// path: controllers/admin.go
package controllers

import (
	"crypto/subtle"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/pcgaming-glitch/SafeNet-Blacklist/models"
)

// Login handles POST /admin/login. The failure message is deliberately
// generic; it never says why the code was rejected.
func (a *API) Login(c *fiber.Ctx) error {
	var req models.LoginReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(models.StatusResp{OK: false, Message: "Invalid JSON"})
	}

	if subtle.ConstantTimeCompare([]byte(req.Code), []byte(a.AdminCode)) != 1 {
		return c.Status(fiber.StatusUnauthorized).
			JSON(models.StatusResp{OK: false, Message: "Incorrect code"})
	}

	sess, err := a.Sessions.Get(c)
	if err != nil {
		return serverErr(c, err)
	}
	sess.Set("isAdmin", true)
	if err := sess.Save(); err != nil {
		return serverErr(c, err)
	}
	return c.JSON(models.StatusResp{OK: true})
}

// Logout handles POST /admin/logout. Destroying an absent or already
// destroyed session is not an error.
func (a *API) Logout(c *fiber.Ctx) error {
	sess, err := a.Sessions.Get(c)
	if err == nil {
		if err := sess.Destroy(); err != nil {
			log.Printf("logout: destroy: %v", err)
		}
	}
	return c.JSON(models.StatusResp{OK: true})
}

// isAdmin is the gate predicate for admin-only endpoints.
func (a *API) isAdmin(c *fiber.Ctx) bool {
	sess, err := a.Sessions.Get(c)
	if err != nil {
		return false
	}
	v, _ := sess.Get("isAdmin").(bool)
	return v
}
