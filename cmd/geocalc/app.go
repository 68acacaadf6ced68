package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"geocalc/internal/controllers"
	"geocalc/internal/logger"
	"geocalc/internal/models"
	"geocalc/internal/services"
	"geocalc/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

// Application owns the fyne app and the MVC components behind the window.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller *controllers.MainController
	view       *views.MainView
}

func NewApplication(log logger.Logger) *Application {
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: version,
	})
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.SetFixedSize(true)
	window.SetMaster()

	display := models.NewDisplay()
	controller := controllers.NewMainController(
		services.NewCalculatorService(),
		services.NewAreaService(),
		display,
		log,
	)
	view := views.NewMainView(window)

	view.SetEventHandler(controller)
	controller.SetRenderer(view)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		controller: controller,
		view:       view,
	}
	application.setupWindowEvents()

	log.Info("Application", "application initialized", map[string]interface{}{
		"version":    version,
		"go_version": runtime.Version(),
	})

	return application
}

// Run shows the window and blocks until it is closed or ctx is cancelled.
func (a *Application) Run(ctx context.Context) {
	stop := a.setupGracefulShutdown(ctx)
	defer stop()

	a.view.Show()
	a.fyneApp.Run()
}

func (a *Application) setupWindowEvents() {
	a.window.SetOnClosed(func() {
		a.logger.Info("Application", "window closed", nil)
		a.controller.Shutdown()
	})
}

// setupGracefulShutdown closes the window on SIGINT/SIGTERM or when ctx ends.
// The returned func stops listening once the UI loop has returned.
func (a *Application) setupGracefulShutdown(ctx context.Context) func() {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	exited := make(chan struct{})

	go func() {
		defer close(exited)
		select {
		case <-ctx.Done():
			a.logger.Info("Application", "shutdown signal received", nil)
			fyne.Do(func() {
				a.window.Close()
			})
		case <-done:
		}
	}()

	return func() {
		close(done)
		<-exited
		stop()
	}
}

func runGUI(ctx context.Context, log logger.Logger) error {
	NewApplication(log).Run(ctx)
	return nil
}
