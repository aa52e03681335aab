// path: controllers/reports_list.go
package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pcgaming-glitch/SafeNet-Blacklist/models"
)

// ListReports handles GET /api/reports (admin only). Records come back
// newest first.
func (a *API) ListReports(c *fiber.Ctx) error {
	if !a.isAdmin(c) {
		return c.Status(fiber.StatusUnauthorized).
			JSON(models.StatusResp{OK: false, Message: "Unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 8*time.Second)
	defer cancel()

	reports, err := a.Reports.All(ctx)
	if err != nil {
		return serverErr(c, err)
	}
	if reports == nil {
		reports = []models.Report{}
	}
	return c.JSON(models.ReportsResp{OK: true, Reports: reports})
}
