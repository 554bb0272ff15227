package app

import (
	"github.com/mbolis/quick-form/config"
	"github.com/mbolis/quick-form/model"
	"github.com/mbolis/quick-form/store"
)

type App struct {
	*model.Form
	*store.Store
	config.Config
}
