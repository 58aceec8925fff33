package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	echoSwagger "github.com/swaggo/echo-swagger"

	"weather-planner/configs"
	_ "weather-planner/docs"
	"weather-planner/internal/application/controller"
	"weather-planner/internal/application/middleware"
	"weather-planner/internal/application/schedule"
	"weather-planner/pkg/log"
	"weather-planner/pkg/msg"
	"weather-planner/pkg/resource"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long:  "Start the HTTP API, the session sweeper and, when enabled, the forecast warmer",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Info(msg.GetMessage("app.start", configs.Env.ApplicationName))

			app, err := newApplication(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			// Init infra
			e := echo.New()
			e.HideBanner = true
			middleware.SetupRequestLogger(e)

			contextPath := resource.GetString("app.server.context-path")
			e.GET(contextPath+"/swagger/*", echoSwagger.WrapHandler)

			api := e.Group(contextPath)
			api.Use(middleware.Sessions(app.sessions))

			// Init Controller
			apiController := controller.NewApiController(api, app.weather, app.locations, app.health)
			weatherController := controller.NewWeatherController(api, app.weather)
			locationController := controller.NewLocationController(api, app.locations)
			plannerController := controller.NewPlannerController(api, app.planner)
			sessionController := controller.NewSessionController(api, app.sessions)
			healthController := controller.NewHealthController(api, app.health)

			// Init Routes
			apiController.InitApiRoutes()
			weatherController.InitWeatherRoutes()
			locationController.InitLocationRoutes()
			plannerController.InitPlannerRoutes()
			sessionController.InitSessionRoutes()
			healthController.InitHealthRoutes()

			// Init Schedule
			sessionScheduler := schedule.NewSessionScheduler(app.sessions)
			sessionScheduler.InitSessionScheduleTasks(resource.GetString("app.session.sweep-cron"))
			defer sessionScheduler.Stop()

			if resource.GetBool("app.warmer.enabled") {
				warmer := schedule.NewForecastWarmer(app.weather, app.locations, app.redisClient, schedule.ForecastWarmerConfig{
					CronExpression: resource.GetString("app.warmer.cron"),
					Source:         resource.GetString("app.planner.source"),
					LockTTL:        resource.GetDuration("app.warmer.lock-ttl"),
				})
				if err := warmer.InitForecastWarmerTasks(ctx); err != nil {
					return err
				}
				defer warmer.Stop()
			}

			// Start Routes
			port := resource.GetString("app.server.port")
			go func() {
				if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Errorf("server stopped: %v", err)
					stop()
				}
			}()
			log.Info(msg.GetMessage("app.started", configs.Env.ApplicationName, port))

			<-ctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := e.Shutdown(shutdownCtx); err != nil {
				return err
			}
			log.Info(msg.GetMessage("app.stop", configs.Env.ApplicationName))
			return nil
		},
	}
}
