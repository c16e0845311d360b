package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"owusu1946/portfolio-chat/chat"
	"owusu1946/portfolio-chat/config"
	"owusu1946/portfolio-chat/handlers"
	"owusu1946/portfolio-chat/llm"
	"owusu1946/portfolio-chat/middleware"
	"owusu1946/portfolio-chat/routes"
	"owusu1946/portfolio-chat/supabase"
	"owusu1946/portfolio-chat/tools"
)

func main() {

	config.LoadEnv()
	settings := config.Load()
	config.InitLogger(settings.LogLevel)

	classifier := tools.NewClassifier()
	provider := llm.Provider(settings.Provider)

	h := &handlers.Handler{
		Engine:     chat.NewEngine(classifier, llm.SystemPrompt, config.Logger),
		Classifier: classifier,
		NewModel: func() (llm.Model, error) {
			return llm.FromEnv(provider)
		},
		Logger: config.Logger,
	}

	var tracker *supabase.Tracker
	if settings.AnalyticsEnabled() {
		client, err := supabase.Init(settings.SupabaseURL, settings.SupabaseKey)
		if err != nil {
			config.Logger.WithError(err).Warn("Analytics disabled")
		} else {
			tracker = supabase.NewTracker(client, config.Logger)
			h.Track = tracker.Track
			config.Logger.Info("Analytics enabled")
		}
	}

	mux := http.NewServeMux()
	routes.RegisterAllRoutes(mux, h)

	handler := middleware.Stack(config.Logger, middleware.Options{
		AllowedOrigin:  settings.AllowedOrigin,
		RateLimitRPS:   settings.RateLimitRPS,
		RateLimitBurst: settings.RateLimitBurst,
		Timeout:        config.MaxDuration,
	})(mux)

	srv := &http.Server{
		Addr:              ":" + settings.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		config.Logger.Infof("Server is running on port %s (provider: %s)", settings.Port, provider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.Fatal(err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), config.MaxDuration)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		config.Logger.WithError(err).Error("Server shutdown failed")
	}
	if tracker != nil {
		if err := tracker.Wait(ctx); err != nil {
			config.Logger.WithError(err).Warn("Pending turn activities dropped")
		}
	}
	config.Logger.Info("Server stopped")
}
