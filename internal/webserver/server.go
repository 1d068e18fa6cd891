// Package webserver serves the embedded browser UI next to the game API.
package webserver

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

//go:embed web
var webFS embed.FS

var contentTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".js":   "application/javascript; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".json": "application/json; charset=utf-8",
	".svg":  "image/svg+xml",
	".png":  "image/png",
}

func newApp(apiURL string) (*fiber.App, error) {
	assets, err := fs.Sub(webFS, "web")
	if err != nil {
		return nil, fmt.Errorf("embedded web assets: %w", err)
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	})
	app.Use(logger.New(logger.Config{
		Format: "${time} WEB ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New())

	// The page asks here for the API address instead of hardcoding it.
	app.Get("/config", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"apiUrl": apiURL})
	})

	app.Get("*", func(c *fiber.Ctx) error {
		return serveAsset(c, assets, strings.TrimPrefix(c.Path(), "/"))
	})

	return app, nil
}

func serveAsset(c *fiber.Ctx, assets fs.FS, name string) error {
	if name == "" {
		name = "index.html"
	}
	data, err := fs.ReadFile(assets, name)
	if err != nil {
		// Unknown paths get the page itself, which routes client-side.
		name = "index.html"
		if data, err = fs.ReadFile(assets, name); err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("index.html not found")
		}
	}

	contentType := contentTypes[path.Ext(name)]
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Set(fiber.HeaderContentType, contentType)

	return c.Send(data)
}

// Start serves the web UI until the listener fails or the process exits.
func Start(host string, port int, apiURL string) error {
	app, err := newApp(apiURL)
	if err != nil {
		return err
	}
	return app.Listen(fmt.Sprintf("%s:%d", host, port))
}
