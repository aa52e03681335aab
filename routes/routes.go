// path: routes/routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pcgaming-glitch/SafeNet-Blacklist/controllers"
)

// Register attaches all API endpoints to the app.
func Register(app *fiber.App, api *controllers.API) {
	app.Post("/report", api.SubmitReport)

	app.Post("/admin/login", api.Login)
	app.Post("/admin/logout", api.Logout)

	app.Get("/api/reports", api.ListReports)
}
