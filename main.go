// path: main.go
package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/joho/godotenv"

	"github.com/pcgaming-glitch/SafeNet-Blacklist/controllers"
	"github.com/pcgaming-glitch/SafeNet-Blacklist/database"
	"github.com/pcgaming-glitch/SafeNet-Blacklist/routes"
	"github.com/pcgaming-glitch/SafeNet-Blacklist/uploads"
)

const defaultAdminCode = "gKY5u7y62013"

func main() {
	_ = godotenv.Load()

	port := getenv("PORT", "3000")
	uploadDir := getenv("UPLOAD_DIR", "uploads")
	adminCode := getenv("ADMIN_CODE", defaultAdminCode)
	if adminCode == defaultAdminCode {
		log.Println("WARNING: using default admin code; set ADMIN_CODE in production")
	}

	maxUpload := int64(envInt("MAX_UPLOAD_MB", 10)) << 20
	sessionTTL := time.Duration(envInt("SESSION_TTL_HOURS", 12)) * time.Hour

	store, err := database.Open(context.Background())
	if err != nil {
		log.Fatalf("store open failed: %v", err)
	}
	saver, err := uploads.New(uploadDir, maxUpload)
	if err != nil {
		log.Fatalf("upload dir init failed: %v", err)
	}

	sessions := session.New(session.Config{
		KeyLookup:      "cookie:safenet_session",
		Expiration:     sessionTTL,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})

	api := controllers.New(store, saver, sessions, adminCode)

	app := fiber.New(fiber.Config{
		// Headroom over the proof ceiling so the saver, not the body
		// parser, produces the size rejection.
		BodyLimit: int(maxUpload) + (512 << 10),
	})
	app.Use(recover.New())

	// Log concise request lines
	app.Use(logger.New(logger.Config{
		TimeFormat: "15:04:05",
	}))

	// CORS (dev-friendly)
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000, http://localhost:3001",
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Content-Type",
		AllowCredentials: true,
		MaxAge:           int((12 * time.Hour).Seconds()),
	}))

	// Stored proofs and the static site
	app.Static("/uploads", uploadDir)
	app.Static("/", "./public")

	// Health
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	// API
	routes.Register(app, api)

	log.Printf("SafeNet Blacklist server listening on :%s", port)
	log.Fatal(app.Listen(":" + port))
}

// getenv returns env var value or default.
func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v, err := strconv.Atoi(getenv(k, "")); err == nil && v > 0 {
		return v
	}
	return def
}
