package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/mbolis/quick-form/app"
	"github.com/mbolis/quick-form/config"
	"github.com/mbolis/quick-form/log"
	"github.com/mbolis/quick-form/routes"
	"github.com/mbolis/quick-form/store"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	form, jsonOutput, err := config.LoadForm(cfg.FormPath)
	if err != nil {
		log.Fatal("main.form:", err)
	}
	if jsonOutput != "" && cfg.Output == config.DefaultOutput {
		cfg.Output = jsonOutput
	}
	log.Infof("Loaded form '%s' (%d fields), writing answers to '%s'",
		cfg.FormPath, len(form.Fields), cfg.Output)

	app := app.App{
		Form:   form,
		Store:  store.New(cfg.Output, store.DiscardCorrupt),
		Config: cfg,
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
