package templates

import "html/template"

type NavItem struct {
	Slug   string
	Label  string
	Path   string
	Active bool
}

// Page is everything the layout needs. Exactly one of the view fields is set.
type Page struct {
	Title    string
	Subtitle string
	AudioURL string
	View     string
	Nav      []NavItem

	Survey     *SurveyData
	Statistics *StatisticsData
	Map        *MapData
	About      *AboutData
}

type SurveyData struct {
	Clubs   []string
	Leagues []string
	Today   string
	Accept  string
	Echo    *SurveyEcho
}

type SurveyEcho struct {
	FullName       string
	FavoriteClub   string
	FavoritePlayer string
	FavoriteLeague string
	FanSince       string
	FanSinceAgo    string
	Photo          *Photo
	Warnings       []string
}

type Photo struct {
	Src     template.URL
	Caption string
	Size    string
}

type ClubRow struct {
	Index    int
	Club     string
	Trophies int
}

type StatisticsData struct {
	Rows          []ClubRow
	Total         int
	BarChartURL   string
	PieChartURL   string
	TrendChartURL string
}

type MapPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type MapData struct {
	Points      []MapPoint `json:"points"`
	CenterLat   float64    `json:"centerLat"`
	CenterLon   float64    `json:"centerLon"`
	Zoom        int        `json:"zoom"`
	Color       string     `json:"color"`
	Opacity     float64    `json:"opacity"`
	Radius      int        `json:"radius"`
	TileURL     string     `json:"tileUrl"`
	Attribution string     `json:"attribution"`
}

type AboutData struct {
	VideoURL   string
	EmbedURL   string
	Paragraphs []string
}

type DebugData struct {
	Title    string
	Pre      string
	Datasets []string
}
