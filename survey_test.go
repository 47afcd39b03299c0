package main

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngBytes  = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 32)...)
	jpegBytes = append([]byte("\xff\xd8\xff\xe0"), bytes.Repeat([]byte{0}, 32)...)
)

func testNow() time.Time {
	return time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC)
}

func TestSurveyResponseFromForm(t *testing.T) {
	t.Run("echoes submitted values", func(t *testing.T) {
		form := url.Values{
			"full_name":       {"Ana"},
			"favorite_club":   {"Barcelona"},
			"favorite_player": {"Messi"},
			"favorite_league": {"La Liga"},
			"fan_since":       {"2015-01-01"},
		}

		resp, warnings := surveyResponseFromForm(form, testNow())
		assert.Empty(t, warnings)

		echo := resp.Echo(testNow(), warnings)
		assert.Equal(t, "Ana", echo.FullName)
		assert.Equal(t, "Barcelona", echo.FavoriteClub)
		assert.Equal(t, "Messi", echo.FavoritePlayer)
		assert.Equal(t, "La Liga", echo.FavoriteLeague)
		assert.Equal(t, "2015-01-01", echo.FanSince)
		assert.Equal(t, "10 years ago", echo.FanSinceAgo)
		assert.Nil(t, echo.Photo)
	})

	t.Run("tolerates an empty submission", func(t *testing.T) {
		resp, warnings := surveyResponseFromForm(url.Values{}, testNow())
		assert.Empty(t, warnings)
		assert.Empty(t, resp.FullName)
		assert.Empty(t, resp.FavoritePlayer)
		assert.Equal(t, "Real Madrid", resp.FavoriteClub)
		assert.Equal(t, "La Liga", resp.FavoriteLeague)
		assert.Equal(t, "2025-03-10", resp.FanSince.Format(dateLayout))
	})

	t.Run("falls back for values outside the menus", func(t *testing.T) {
		form := url.Values{
			"favorite_club":   {"Atletico"},
			"favorite_league": {"MLS"},
		}
		resp, _ := surveyResponseFromForm(form, testNow())
		assert.Equal(t, surveyClubs[0], resp.FavoriteClub)
		assert.Equal(t, surveyLeagues[0], resp.FavoriteLeague)
	})

	t.Run("warns about an unreadable date", func(t *testing.T) {
		resp, warnings := surveyResponseFromForm(url.Values{"fan_since": {"last year"}}, testNow())
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "last year")
		assert.Equal(t, "2025-03-10", resp.FanSince.Format(dateLayout))
	})
}

func TestValidatePhoto(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
		max      int64
		wantErr  error
		wantType string
	}{
		{name: "png", filename: "crest.png", data: pngBytes, max: 1024, wantType: "image/png"},
		{name: "jpeg upper case extension", filename: "crest.JPEG", data: jpegBytes, max: 1024, wantType: "image/jpeg"},
		{name: "jpg", filename: "crest.jpg", data: jpegBytes, max: 1024, wantType: "image/jpeg"},
		{name: "too large", filename: "crest.png", data: pngBytes, max: 8, wantErr: ErrPhotoTooLarge},
		{name: "gif extension", filename: "crest.gif", data: pngBytes, max: 1024, wantErr: ErrUnsupportedPhoto},
		{name: "text posing as png", filename: "notes.png", data: []byte("hello world"), max: 1024, wantErr: ErrUnsupportedPhoto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			photo, err := validatePhoto(tt.filename, tt.data, tt.max)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, photo)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, photo.ContentType)
			assert.Equal(t, tt.filename, photo.Filename)
		})
	}
}

func TestSurveyEchoPhoto(t *testing.T) {
	resp := SurveyResponse{
		FullName: "Ana",
		FanSince: testNow(),
		Photo:    &SurveyPhoto{Filename: "crest.png", ContentType: "image/png", Data: pngBytes},
	}

	echo := resp.Echo(testNow(), nil)
	require.NotNil(t, echo.Photo)
	assert.True(t, strings.HasPrefix(string(echo.Photo.Src), "data:image/png;base64,"))
	assert.Equal(t, "Your favorite", echo.Photo.Caption)
	assert.Equal(t, "40 B", echo.Photo.Size)
	assert.Equal(t, "now", echo.FanSinceAgo)
}

type formPart struct {
	name     string
	filename string
	data     []byte
}

func newUploadRequest(t *testing.T, parts ...formPart) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, p := range parts {
		if p.filename == "" {
			require.NoError(t, mw.WriteField(p.name, string(p.data)))
			continue
		}
		w, err := mw.CreateFormFile(p.name, p.filename)
		require.NoError(t, err)
		_, err = w.Write(p.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/survey", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestReadSurveyUpload(t *testing.T) {
	t.Run("keeps fields around an oversized photo", func(t *testing.T) {
		big := append(append([]byte{}, pngBytes...), bytes.Repeat([]byte{0}, 2<<20)...)
		req := newUploadRequest(t,
			formPart{name: "full_name", data: []byte("Ana")},
			formPart{name: "photo", filename: "crest.png", data: big},
			formPart{name: "favorite_club", data: []byte("Barcelona")},
		)

		upload, err := readSurveyUpload(req, 1024)
		require.NoError(t, err)
		assert.Equal(t, "Ana", upload.Form.Get("full_name"))
		assert.Equal(t, "Barcelona", upload.Form.Get("favorite_club"))
		assert.Nil(t, upload.Photo)
		assert.ErrorIs(t, upload.PhotoErr, ErrPhotoTooLarge)
	})

	t.Run("accepts a photo within the limit", func(t *testing.T) {
		req := newUploadRequest(t,
			formPart{name: "photo", filename: "crest.png", data: pngBytes},
			formPart{name: "full_name", data: []byte("Ana")},
		)

		upload, err := readSurveyUpload(req, 1024)
		require.NoError(t, err)
		require.NotNil(t, upload.Photo)
		assert.Equal(t, "image/png", upload.Photo.ContentType)
		assert.Equal(t, pngBytes, upload.Photo.Data)
		assert.NoError(t, upload.PhotoErr)
		assert.Equal(t, "Ana", upload.Form.Get("full_name"))
	})

	t.Run("skips other file parts", func(t *testing.T) {
		req := newUploadRequest(t,
			formPart{name: "attachment", filename: "notes.txt", data: []byte("hello")},
			formPart{name: "favorite_player", data: []byte("Messi")},
		)

		upload, err := readSurveyUpload(req, 1024)
		require.NoError(t, err)
		assert.Nil(t, upload.Photo)
		assert.NoError(t, upload.PhotoErr)
		assert.Empty(t, upload.Form.Get("attachment"))
		assert.Equal(t, "Messi", upload.Form.Get("favorite_player"))
	})

	t.Run("reads an urlencoded body", func(t *testing.T) {
		body := url.Values{"full_name": {"Ana"}, "favorite_league": {"Serie A"}}.Encode()
		req := httptest.NewRequest(http.MethodPost, "/survey", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		upload, err := readSurveyUpload(req, 1024)
		require.NoError(t, err)
		assert.Equal(t, "Ana", upload.Form.Get("full_name"))
		assert.Equal(t, "Serie A", upload.Form.Get("favorite_league"))
		assert.Nil(t, upload.Photo)
	})

	t.Run("returns what it read before a broken body", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("full_name", "Ana"))
		truncated := buf.String() + "\r\n--" + mw.Boundary() + "\r\nContent-Disposition: form-data; name=\"favorite_club\"\r\n\r\nBarc"

		req := httptest.NewRequest(http.MethodPost, "/survey", strings.NewReader(truncated))
		req.Header.Set("Content-Type", mw.FormDataContentType())

		upload, err := readSurveyUpload(req, 1024)
		assert.Error(t, err)
		assert.Equal(t, "Ana", upload.Form.Get("full_name"))
	})
}
