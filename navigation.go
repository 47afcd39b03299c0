package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fan-survey/templates"
)

// View selects which screen a page shows.
type View int

const (
	ViewSurvey View = iota
	ViewStatistics
	ViewMap
	ViewAbout
)

// allViews is the sidebar menu, in display order.
var allViews = []View{ViewSurvey, ViewStatistics, ViewMap, ViewAbout}

var ErrUnknownView = errors.New("unknown view")

func (v View) Slug() string {
	switch v {
	case ViewSurvey:
		return "survey"
	case ViewStatistics:
		return "statistics"
	case ViewMap:
		return "map"
	case ViewAbout:
		return "about"
	}
	return ""
}

func (v View) Label() string {
	switch v {
	case ViewSurvey:
		return "📋 Fill Survey"
	case ViewStatistics:
		return "📊 Statistics"
	case ViewMap:
		return "🌍 Map"
	case ViewAbout:
		return "ℹ️ About"
	}
	return ""
}

func (v View) Path() string {
	return "/" + v.Slug()
}

func (v View) String() string {
	return v.Slug()
}

// ParseView matches a menu selection against the view slugs.
func ParseView(s string) (View, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, v := range allViews {
		if v.Slug() == s {
			return v, nil
		}
	}
	return ViewSurvey, fmt.Errorf("%w: %q", ErrUnknownView, s)
}

// pageInputs carries whatever the active view needs for one render.
// Fields that the view does not use are ignored.
type pageInputs struct {
	Now       time.Time
	Echo      *templates.SurveyEcho
	Clubs     []ClubTrophyRecord
	Locations []RandomFanLocation
}

// renderPage maps a view and its inputs to page data. Only the section for
// the active view is populated.
func renderPage(v View, in pageInputs) templates.Page {
	page := templates.Page{
		Title:    "⚽ Football Fan Survey ⚽",
		Subtitle: "Join us and tell us your favorite club & player!",
		AudioURL: backgroundAudio,
		View:     v.Slug(),
		Nav:      navItems(v),
	}

	switch v {
	case ViewSurvey:
		page.Survey = &templates.SurveyData{
			Clubs:   surveyClubs,
			Leagues: surveyLeagues,
			Today:   in.Now.Format(dateLayout),
			Accept:  strings.Join(photoExtensions, ","),
			Echo:    in.Echo,
		}
	case ViewStatistics:
		page.Statistics = statisticsData(in.Clubs)
	case ViewMap:
		data := fanMapData(in.Locations)
		page.Map = &data
	case ViewAbout:
		data := aboutData()
		page.About = &data
	}
	return page
}

func navItems(active View) []templates.NavItem {
	items := make([]templates.NavItem, len(allViews))
	for i, v := range allViews {
		items[i] = templates.NavItem{
			Slug:   v.Slug(),
			Label:  v.Label(),
			Path:   v.Path(),
			Active: v == active,
		}
	}
	return items
}

func statisticsData(records []ClubTrophyRecord) *templates.StatisticsData {
	rows := make([]templates.ClubRow, len(records))
	for i, r := range records {
		rows[i] = templates.ClubRow{Index: i, Club: r.Club, Trophies: r.Trophies}
	}
	return &templates.StatisticsData{
		Rows:          rows,
		Total:         totalTrophies(records),
		BarChartURL:   "/charts/" + chartBar,
		PieChartURL:   "/charts/" + chartPie,
		TrendChartURL: "/charts/" + chartTrend,
	}
}
