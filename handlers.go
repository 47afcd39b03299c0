package main

import (
	"bytes"
	"errors"
	"net/http"

	"fan-survey/templates"

	"github.com/a-h/templ"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

func (app *application) viewHandler(v View) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		app.renderView(w, r, v, nil)
	}
}

// renderView gathers the inputs the view needs and renders the whole page.
func (app *application) renderView(w http.ResponseWriter, r *http.Request, v View, echo *templates.SurveyEcho) {
	in := pageInputs{Now: app.now(), Echo: echo}

	switch v {
	case ViewStatistics:
		clubs, err := app.stats.ClubTrophies(r.Context())
		if err != nil {
			app.serverError(w, r, err)
			return
		}
		in.Clubs = clubs
	case ViewMap:
		in.Locations = randomFanLocations(fanLocationCount, app.random)
	}

	templ.Handler(templates.PageView(renderPage(v, in))).ServeHTTP(w, r)
}

func (app *application) navigateHandler(w http.ResponseWriter, r *http.Request) {
	v, err := ParseView(r.URL.Query().Get("view"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, v.Path(), http.StatusSeeOther)
}

func (app *application) submitSurveyHandler(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())
	now := app.now()

	upload, err := readSurveyUpload(r, app.config.MaxPhotoBytes)
	if err != nil {
		logger.Warn("could not read survey upload", zap.Error(err))
	}

	resp, warnings := surveyResponseFromForm(upload.Form, now)
	switch {
	case upload.PhotoErr != nil:
		warnings = append(warnings, "Photo not shown: "+upload.PhotoErr.Error()+".")
	case upload.Photo != nil:
		resp.Photo = upload.Photo
	case err != nil:
		warnings = append(warnings, "The upload could not be read completely.")
	}

	logger.Debug("survey submitted",
		zap.String("club", resp.FavoriteClub),
		zap.String("league", resp.FavoriteLeague),
		zap.Bool("photo", resp.Photo != nil))

	echo := resp.Echo(now, warnings)
	app.renderView(w, r, ViewSurvey, &echo)
}

func (app *application) chartHandler(w http.ResponseWriter, r *http.Request) {
	kind := httprouter.ParamsFromContext(r.Context()).ByName("kind")

	clubs, err := app.stats.ClubTrophies(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	trend, err := app.stats.TrendPoints(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	chart, err := buildChart(kind, clubs, trend)
	if errors.Is(err, ErrUnknownChart) {
		app.notFoundHandler(w, r)
		return
	} else if err != nil {
		app.serverError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := chart.Render(&buf); err != nil {
		app.serverError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (app *application) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "page not found", http.StatusNotFound)
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	loggerFromContext(r.Context()).Error("request failed",
		zap.String("path", r.URL.Path),
		zap.Error(err))
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
