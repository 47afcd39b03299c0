package main

import (
	"net/http"

	"fan-survey/templates"

	"github.com/a-h/templ"
	"github.com/davecgh/go-spew/spew"
	"github.com/julienschmidt/httprouter"
)

var debugDatasets = []string{"clubs", "trends", "locations", "views"}

type debugView struct {
	Slug  string
	Label string
	Path  string
}

func (app *application) debugHandler(w http.ResponseWriter, r *http.Request) {
	dataset := httprouter.ParamsFromContext(r.Context()).ByName("dataset")

	var data interface{}
	var title string

	switch dataset {
	case "clubs":
		clubs, err := app.stats.ClubTrophies(r.Context())
		if err != nil {
			app.serverError(w, r, err)
			return
		}
		data = clubs
		title = "Statistics - Club Trophies"
	case "trends":
		points, err := app.stats.TrendPoints(r.Context())
		if err != nil {
			app.serverError(w, r, err)
			return
		}
		data = points
		title = "Statistics - Trophy Trend (long form)"
	case "locations":
		data = randomFanLocations(fanLocationCount, app.random)
		title = "Map - Random Fan Locations"
	case "views":
		views := make([]debugView, len(allViews))
		for i, v := range allViews {
			views[i] = debugView{Slug: v.Slug(), Label: v.Label(), Path: v.Path()}
		}
		data = views
		title = "Navigation - Views"
	default:
		data = map[string]string{
			"error": "Please use one of the following: clubs, trends, locations, views.",
		}
		title = "Choose a dataset"
	}

	templ.Handler(templates.Debug(templates.DebugData{
		Title:    title,
		Pre:      spew.Sdump(data),
		Datasets: debugDatasets,
	})).ServeHTTP(w, r)
}
