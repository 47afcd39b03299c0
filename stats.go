package main

import "slices"

// ClubTrophyRecord is one row of the club trophy table.
type ClubTrophyRecord struct {
	Club     string
	Trophies int
}

// TrophySeries holds one club's trophy counts, aligned with TrophyTrend.Years.
type TrophySeries struct {
	Club     string
	Trophies []int
}

// TrophyTrend is the wide form of the trend data: one column per club.
type TrophyTrend struct {
	Years  []int
	Series []TrophySeries
}

// TrendPoint is one row of the long form of TrophyTrend.
type TrendPoint struct {
	Year     int
	Club     string
	Trophies int
}

var clubTrophies = []ClubTrophyRecord{
	{Club: "Real Madrid", Trophies: 95},
	{Club: "Barcelona", Trophies: 92},
	{Club: "Manchester United", Trophies: 68},
	{Club: "Liverpool", Trophies: 65},
	{Club: "Bayern Munich", Trophies: 82},
	{Club: "Arsenal", Trophies: 45},
	{Club: "Juventus", Trophies: 67},
	{Club: "Inter Milan", Trophies: 55},
	{Club: "Paris Saint-Germain", Trophies: 48},
	{Club: "AC Milan", Trophies: 50},
}

var trophyTrend = TrophyTrend{
	Years: []int{2010, 2011, 2012, 2013, 2014, 2015, 2016, 2017, 2018, 2019, 2020},
	Series: []TrophySeries{
		{Club: "Real Madrid", Trophies: []int{60, 62, 64, 66, 69, 71, 74, 78, 82, 90, 95}},
		{Club: "Barcelona", Trophies: []int{58, 60, 63, 65, 68, 70, 73, 76, 80, 87, 92}},
		{Club: "Man United", Trophies: []int{60, 61, 61, 62, 63, 64, 65, 66, 66, 67, 68}},
		{Club: "Liverpool", Trophies: []int{55, 56, 57, 58, 59, 60, 61, 62, 63, 64, 65}},
	},
}

// Melt reshapes the trend from wide to long form, series by series.
// Years without a value in a series are skipped, so every point is complete.
func (t TrophyTrend) Melt() []TrendPoint {
	points := make([]TrendPoint, 0, len(t.Years)*len(t.Series))
	for _, s := range t.Series {
		for i, year := range t.Years {
			if i >= len(s.Trophies) {
				break
			}
			points = append(points, TrendPoint{Year: year, Club: s.Club, Trophies: s.Trophies[i]})
		}
	}
	return points
}

// pivotTrend turns long-form points back into per-club series for charting.
// Clubs keep their first-seen order; years are returned ascending.
func pivotTrend(points []TrendPoint) TrophyTrend {
	var trend TrophyTrend
	seenYear := make(map[int]bool)
	clubIndex := make(map[string]int)
	byClub := make(map[string]map[int]int)

	for _, p := range points {
		if !seenYear[p.Year] {
			seenYear[p.Year] = true
			trend.Years = append(trend.Years, p.Year)
		}
		if _, ok := clubIndex[p.Club]; !ok {
			clubIndex[p.Club] = len(trend.Series)
			trend.Series = append(trend.Series, TrophySeries{Club: p.Club})
			byClub[p.Club] = make(map[int]int)
		}
		byClub[p.Club][p.Year] = p.Trophies
	}

	slices.Sort(trend.Years)

	for i, s := range trend.Series {
		counts := make([]int, len(trend.Years))
		for j, year := range trend.Years {
			counts[j] = byClub[s.Club][year]
		}
		trend.Series[i].Trophies = counts
	}
	return trend
}

func totalTrophies(records []ClubTrophyRecord) int {
	total := 0
	for _, r := range records {
		total += r.Trophies
	}
	return total
}
