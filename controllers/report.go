// path: controllers/report.go
package controllers

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/pcgaming-glitch/SafeNet-Blacklist/models"
)

// SubmitReport handles POST /report (multipart form).
//
// Validation order matters: field checks first, then the file, and the
// proof must be durably stored before the record referencing it is
// appended. If the append fails after the file landed, the orphaned
// file is tolerated.
func (a *API) SubmitReport(c *fiber.Ctx) error {
	person := strings.TrimSpace(c.FormValue("person"))
	userID := strings.TrimSpace(c.FormValue("userId"))
	reason := strings.TrimSpace(c.FormValue("reason"))
	anonymous := parseBool(c.FormValue("anonymous"))

	if reason == "" {
		return fail(c, models.ErrFill)
	}
	if anonymous {
		person = models.AnonymousPerson
		userID = models.AnonymousUserID
	} else if person == "" || userID == "" {
		return fail(c, models.ErrFill)
	}

	fh, err := c.FormFile("proof")
	if err != nil || fh == nil {
		return fail(c, models.ErrNoFile)
	}

	stored, err := a.Uploads.Save(fh)
	if err != nil {
		return fail(c, err)
	}

	rec := models.Report{
		ID:                uuid.NewString(),
		Person:            person,
		UserID:            userID,
		Reason:            reason,
		ProofFilename:     stored,
		ProofOriginalName: filepath.Base(fh.Filename),
		CreatedAt:         time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(c.Context(), 8*time.Second)
	defer cancel()
	if err := a.Reports.Append(ctx, rec); err != nil {
		return serverErr(c, err)
	}
	return c.JSON(models.StatusResp{OK: true, Message: "Report received."})
}
