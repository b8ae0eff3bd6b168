package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/robfig/cron"

	config "github.com/photoflow/photoflow/configs"
	"github.com/photoflow/photoflow/internal/api/handlers"
	"github.com/photoflow/photoflow/internal/client"
	job "github.com/photoflow/photoflow/internal/jobs"
	"github.com/photoflow/photoflow/internal/notify"
	"github.com/photoflow/photoflow/internal/viewmodel"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	api := client.New(cfg.APIBaseURL, cfg.HTTPTimeout)
	notifier := notify.NewCenter()

	app := fiber.New(fiber.Config{
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       3600,
	}))

	dashboardView := viewmodel.NewDashboardView(api, notifier)
	analyticsView := viewmodel.NewAnalyticsView(api)
	calendarView := viewmodel.NewCalendarView(api, notifier, time.Now())
	creator := viewmodel.NewCreator(api, notifier)
	saver := viewmodel.NewDraftSaver(api, notifier, cfg.HTTPTimeout)

	dashboard := handlers.NewDashboardHandler(dashboardView, notifier)
	app.Get("/", dashboard.GetDashboard)

	content := handlers.NewContentHandler(creator, api, notifier)
	app.Get("/create", content.GetCreatePage)
	app.Post("/create/caption", content.GenerateCaption)
	app.Post("/create/image", content.GenerateImage)
	app.Post("/create/save", content.SaveContent)
	app.Post("/create/clear-image", content.ClearImage)
	app.Get("/create/hashtags/:niche", content.GetNicheHashtags)

	calendar := handlers.NewCalendarHandler(calendarView, notifier)
	app.Get("/calendar", calendar.GetCalendar)
	app.Post("/calendar/navigate", calendar.Navigate)
	app.Post("/calendar/dialog/open", calendar.OpenDialog)
	app.Post("/calendar/dialog/close", calendar.CloseDialog)
	app.Post("/calendar/schedule", calendar.Schedule)
	app.Get("/calendar/:id", calendar.ViewItem)
	app.Delete("/calendar/:id", calendar.CancelSchedule)

	ideas := handlers.NewIdeasHandler(
		viewmodel.NewIdeasForm(api, notifier),
		viewmodel.NewTipsForm(api, notifier),
		viewmodel.NewContentMixForm(api, notifier),
		viewmodel.NewSeasonalForm(api, notifier),
		saver, notifier)
	app.Get("/ideas", ideas.GetIdeasPage)
	app.Post("/ideas/generate", ideas.GenerateIdeas)
	app.Post("/ideas/tips", ideas.GenerateTips)
	app.Post("/ideas/content-mix", ideas.GenerateContentMix)
	app.Get("/ideas/seasonal", ideas.GetSeasonal)
	app.Post("/ideas/save", ideas.SaveIdea)
	app.Post("/ideas/copy", ideas.Copy)

	growth := handlers.NewGrowthHandler(
		viewmodel.NewHooksForm(api, notifier),
		viewmodel.NewReelsForm(api, notifier),
		viewmodel.NewMagnetForm(api, notifier),
		api, notifier)
	app.Get("/growth", growth.GetGrowthPage)
	app.Post("/growth/hooks", growth.GenerateHooks)
	app.Post("/growth/reels", growth.GenerateReels)
	app.Post("/growth/magnet", growth.GenerateMagnet)
	app.Get("/growth/cta/:type", growth.GetCTATemplates)
	app.Post("/growth/copy", growth.Copy)

	analytics := handlers.NewAnalyticsHandler(analyticsView, notifier)
	app.Get("/analytics", analytics.GetAnalytics)

	// cron jobs
	if cfg.AnalyticsRefresh != "" {
		refreshJob := job.NewAnalyticsRefreshJob(dashboardView)
		c := cron.New()
		c.AddFunc(cfg.AnalyticsRefresh, refreshJob.Refresh)
		c.Start()
	}

	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Println("Server is running on", cfg.ListenAddr)

	gracefulShutdown(app)
}

func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	log.Println("Server shutdown complete.")
}
