package routes

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/mbolis/quick-form/app"
	"github.com/mbolis/quick-form/httpx"
	"github.com/mbolis/quick-form/log"
	"github.com/mbolis/quick-form/model"
	"github.com/mbolis/quick-form/view"
)

func RenderForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "text/html; charset=utf-8")
		err := view.Form(w, app.Form)
		if err != nil {
			httpx.LogInternalError(w, "view.render_form", err)
		}
	}
}

func Submit(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := r.ParseForm()
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		// flatten to one value per key; a repeated key keeps its last value
		raw := make(map[string]string, len(r.PostForm))
		for key, values := range r.PostForm {
			raw[key] = values[len(values)-1]
		}

		submission := model.Normalize(app.Form, raw)

		err = app.Append(submission)
		if err != nil {
			httpx.LogInternalError(w, "store.append", err)
			return
		}
		log.Debugf("submission saved to %s (%d answers)", app.Path(), len(submission.Answers))

		w.Header().Set("content-type", "text/html; charset=utf-8")
		err = view.Saved(w)
		if err != nil {
			log.Errorf("view.render_saved: %s", err)
		}
	}
}

func ListSubmissions(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submissions, err := app.All()
		if err != nil {
			httpx.LogInternalError(w, "store.list", err)
			return
		}

		render.JSON(w, r, submissions)
	}
}
