package main

import (
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"fan-survey/templates"

	"github.com/dustin/go-humanize"
)

const dateLayout = "2006-01-02"

var surveyClubs = []string{
	"Real Madrid", "Barcelona", "Man City", "Liverpool", "MU",
	"Arsenal", "Bayern", "PSG", "Juventus", "Inter Milan",
}

var surveyLeagues = []string{
	"La Liga", "Premier League", "Bundesliga", "Serie A", "Ligue 1", "Liga Indonesia",
}

var photoExtensions = []string{".jpg", ".jpeg", ".png"}

var (
	ErrPhotoTooLarge    = errors.New("photo exceeds the upload limit")
	ErrUnsupportedPhoto = errors.New("photo must be a jpg, jpeg or png image")
)

// SurveyResponse is a single form submission. It lives for one request.
type SurveyResponse struct {
	FullName       string
	FavoriteClub   string
	FavoritePlayer string
	FavoriteLeague string
	FanSince       time.Time
	Photo          *SurveyPhoto
}

type SurveyPhoto struct {
	Filename    string
	ContentType string
	Data        []byte
}

// surveyResponseFromForm reads the text fields of a submission. Nothing is
// rejected: unknown clubs and leagues fall back to the first option and a
// missing or unreadable date falls back to today.
func surveyResponseFromForm(form url.Values, now time.Time) (SurveyResponse, []string) {
	var warnings []string

	resp := SurveyResponse{
		FullName:       strings.TrimSpace(form.Get("full_name")),
		FavoriteClub:   pickOption(surveyClubs, form.Get("favorite_club")),
		FavoritePlayer: strings.TrimSpace(form.Get("favorite_player")),
		FavoriteLeague: pickOption(surveyLeagues, form.Get("favorite_league")),
		FanSince:       startOfDay(now),
	}

	if raw := strings.TrimSpace(form.Get("fan_since")); raw != "" {
		since, err := time.ParseInLocation(dateLayout, raw, now.Location())
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Could not read the date %q, showing today instead.", raw))
		} else {
			resp.FanSince = since
		}
	}
	return resp, warnings
}

func pickOption(options []string, value string) string {
	value = strings.TrimSpace(value)
	if slices.Contains(options, value) {
		return value
	}
	return options[0]
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Text fields are small; anything longer is cut at this size.
const maxFieldBytes = 64 << 10

// surveyUpload is what a submission body carried. PhotoErr is set when a photo
// was attached but rejected.
type surveyUpload struct {
	Form     url.Values
	Photo    *SurveyPhoto
	PhotoErr error
}

// readSurveyUpload streams a submission. Multipart parts are read one at a
// time so an oversized photo is cut off and drained without losing the text
// fields around it. Whatever was collected is returned even when the body
// breaks part way.
func readSurveyUpload(r *http.Request, maxPhotoBytes int64) (surveyUpload, error) {
	upload := surveyUpload{Form: url.Values{}}

	mr, err := r.MultipartReader()
	if errors.Is(err, http.ErrNotMultipart) {
		if err := r.ParseForm(); err != nil {
			return upload, fmt.Errorf("parse form: %w", err)
		}
		upload.Form = r.Form
		return upload, nil
	}
	if err != nil {
		return upload, fmt.Errorf("read multipart body: %w", err)
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return upload, nil
		}
		if err != nil {
			return upload, fmt.Errorf("read multipart body: %w", err)
		}

		if err := readSurveyPart(&upload, part, maxPhotoBytes); err != nil {
			part.Close()
			return upload, err
		}
		part.Close()
	}
}

func readSurveyPart(upload *surveyUpload, part *multipart.Part, maxPhotoBytes int64) error {
	name := part.FormName()
	switch {
	case name == "":
	case part.FileName() == "":
		value, err := io.ReadAll(io.LimitReader(part, maxFieldBytes))
		if err != nil {
			return fmt.Errorf("read field %s: %w", name, err)
		}
		upload.Form.Add(name, string(value))
	case name == "photo" && upload.Photo == nil && upload.PhotoErr == nil:
		data, err := io.ReadAll(io.LimitReader(part, maxPhotoBytes+1))
		if err != nil {
			return fmt.Errorf("read photo: %w", err)
		}
		upload.Photo, upload.PhotoErr = validatePhoto(part.FileName(), data, maxPhotoBytes)
	}

	// Drop whatever is left of the part so the next one can be read
	if _, err := io.Copy(io.Discard, part); err != nil {
		return fmt.Errorf("skip part %s: %w", name, err)
	}
	return nil
}

// validatePhoto checks the declared extension, the sniffed content type and
// the size of an upload.
func validatePhoto(filename string, data []byte, maxBytes int64) (*SurveyPhoto, error) {
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w (%s)", ErrPhotoTooLarge, humanize.IBytes(uint64(maxBytes)))
	}
	if !slices.Contains(photoExtensions, strings.ToLower(filepath.Ext(filename))) {
		return nil, ErrUnsupportedPhoto
	}

	contentType := http.DetectContentType(data)
	if contentType != "image/jpeg" && contentType != "image/png" {
		return nil, ErrUnsupportedPhoto
	}

	return &SurveyPhoto{Filename: filename, ContentType: contentType, Data: data}, nil
}

// Echo formats a response for display.
func (s SurveyResponse) Echo(now time.Time, warnings []string) templates.SurveyEcho {
	echo := templates.SurveyEcho{
		FullName:       s.FullName,
		FavoriteClub:   s.FavoriteClub,
		FavoritePlayer: s.FavoritePlayer,
		FavoriteLeague: s.FavoriteLeague,
		FanSince:       s.FanSince.Format(dateLayout),
		FanSinceAgo:    humanize.RelTime(s.FanSince, now, "ago", "from now"),
		Warnings:       warnings,
	}

	if s.Photo != nil {
		echo.Photo = &templates.Photo{
			Src:     template.URL("data:" + s.Photo.ContentType + ";base64," + base64.StdEncoding.EncodeToString(s.Photo.Data)),
			Caption: "Your favorite",
			Size:    humanize.Bytes(uint64(len(s.Photo.Data))),
		}
	}
	return echo
}
