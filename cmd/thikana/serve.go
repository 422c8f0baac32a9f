package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rasel530/thikana"
)

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the hierarchy over HTTP for address forms",
		Long: `Serve starts a read-only HTTP facade with the endpoints a cascading
address form consumes: division and child lists, coordinate lookup and
record reconciliation. The listen address comes from --addr, or from
APP_HOST/APP_PORT (a .env file next to the binary is honored).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil {
				log.Debug().Err(err).Msg("no .env file loaded")
			}

			g, err := newGazetteer()
			if err != nil {
				return fmt.Errorf("loading reference data: %w", err)
			}
			if err := g.Verify(); err != nil {
				return fmt.Errorf("refusing to serve unverified data: %w", err)
			}

			if addr == "" {
				addr = os.Getenv("APP_HOST") + ":" + envOr("APP_PORT", "3000")
			}
			log.Info().
				Str("addr", addr).
				Int("divisions", g.DivisionCount()).
				Int("districts", g.DistrictCount()).
				Int("upazilas", g.UpazilaCount()).
				Msg("address hierarchy facade listening")
			return newServer(g).Listen(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides APP_HOST/APP_PORT)")
	return cmd
}

// newServer builds the fiber app with every facade route registered.
// Split from serveCmd so tests can drive the routes without listening.
func newServer(g *thikana.Gazetteer) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "thikana " + Version,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	app.Use(requestLogger())
	app.Use(cors.New(corsConfig()))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"divisions": g.DivisionCount(),
			"districts": g.DistrictCount(),
			"upazilas":  g.UpazilaCount(),
		})
	})

	app.Get("/divisions", func(c *fiber.Ctx) error {
		return c.JSON(g.Divisions())
	})

	app.Get("/divisions/:id/districts", func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, ok := g.DivisionByID(id); !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "unknown division " + id,
			})
		}
		return c.JSON(g.DistrictsByDivision(id))
	})

	app.Get("/districts/:id/upazilas", func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, ok := g.DistrictByID(id); !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "unknown district " + id,
			})
		}
		return c.JSON(g.UpazilasByDistrict(id))
	})

	app.Get("/locate", func(c *fiber.Ctx) error {
		lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
		lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
		if errLat != nil || errLng != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "lat and lng must be decimal degrees",
			})
		}
		district, ok := g.NearestDistrict(lat, lng)
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "no district within range",
			})
		}
		division, _ := g.DivisionByID(district.DivisionID)
		return c.JSON(locateResult{
			Division: division,
			District: district,
			Geohash:  district.Geohash(),
		})
	})

	app.Post("/reconcile", func(c *fiber.Ctx) error {
		var rec thikana.Record
		if err := c.BodyParser(&rec); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "body must be a JSON record {division, district, upazila}",
			})
		}
		sel, report := g.Reconcile(rec)
		return c.JSON(reconcileResult{
			Selection: sel,
			Record:    g.ToRecord(sel),
			Report:    report,
		})
	})

	return app
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("took", time.Since(start)).
			Msg("request")
		return err
	}
}

// corsConfig allows every origin unless ALLOW_ORIGINS names a
// comma-separated allowlist for the address form's hosts.
func corsConfig() cors.Config {
	raw := strings.TrimSpace(os.Getenv("ALLOW_ORIGINS"))
	if raw == "" {
		return cors.Config{}
	}
	allowlist := make(map[string]struct{})
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			allowlist[origin] = struct{}{}
		}
	}
	return cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			_, ok := allowlist[origin]
			return ok
		},
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
