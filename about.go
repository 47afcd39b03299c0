package main

import (
	"net/url"
	"strings"

	"fan-survey/templates"
)

const (
	aboutVideoURL   = "https://youtu.be/fn9ZQRO6F88?si=A1AvirHLTLteTa3d"
	backgroundAudio = "https://files.freemusicarchive.org/storage-freemusicarchive-org/music/no_curator/Scott_Holmes/Corporate__Motivational_Music/Scott_Holmes_-_Energy.mp3"
)

var aboutParagraphs = []string{
	"This app was built to bring football fans together from every corner of the world.",
	"Our goal is to follow the trends of favorite clubs, idol players and the most loved leagues.",
	"Made by Nahdatunnisa",
}

func aboutData() templates.AboutData {
	return templates.AboutData{
		VideoURL:   aboutVideoURL,
		EmbedURL:   youtubeEmbedURL(aboutVideoURL),
		Paragraphs: aboutParagraphs,
	}
}

// youtubeEmbedURL maps a youtu.be or youtube.com/watch link to its embeddable
// player URL. Anything else is returned unchanged.
func youtubeEmbedURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	var id string
	switch strings.TrimPrefix(u.Host, "www.") {
	case "youtu.be":
		id = strings.Trim(u.Path, "/")
	case "youtube.com", "m.youtube.com":
		id = u.Query().Get("v")
	}
	if id == "" {
		return raw
	}
	return "https://www.youtube.com/embed/" + id
}
