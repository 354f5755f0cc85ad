package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/handiism/zvuk-downloader/internal/auth"
	zvukhttp "github.com/handiism/zvuk-downloader/internal/http"
	"github.com/handiism/zvuk-downloader/internal/model"
)

func newTestCatalog(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	session := &auth.Session{Token: "0123456789abcdef0123456789abcdef", RunID: "test"}
	client := NewClient(zvukhttp.NewClient(session, nil, zap.NewNop(), 1, time.Millisecond), zap.NewNop())
	client.BaseURL = srv.URL
	return client
}

func TestGetTrack(t *testing.T) {
	catalog := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tiny/tracks" {
			t.Errorf("path = %s, want /api/tiny/tracks", r.URL.Path)
		}
		if ids := r.URL.Query().Get("ids"); ids != "12776890" {
			t.Errorf("ids = %q, want 12776890", ids)
		}
		io.WriteString(w, `{"result":{"tracks":{"12776890":{
			"title":"КУКЛА КОЛДУНА",
			"credits":"Король и Шут",
			"release_id":123,
			"release_title":"Акустический альбом",
			"position":7,
			"duration":196,
			"release_date":19980101,
			"has_flac":true,
			"image":{"src":"https://cdn.zvuk.com/pic?id=1&size={size}&ext=jpg"}
		}}}}`)
	}))

	track, err := catalog.GetTrack(context.Background(), "12776890")
	if err != nil {
		t.Fatalf("GetTrack failed: %v", err)
	}
	if track.ID != "12776890" {
		t.Errorf("ID = %q, want 12776890", track.ID)
	}
	if track.Title != "КУКЛА КОЛДУНА" {
		t.Errorf("Title = %q", track.Title)
	}
	if track.Credits != "Король и Шут" {
		t.Errorf("Credits = %q", track.Credits)
	}
	if track.Position != 7 {
		t.Errorf("Position = %d, want 7", track.Position)
	}
	if track.ReleaseYear != "1998" {
		t.Errorf("ReleaseYear = %q, want 1998", track.ReleaseYear)
	}
	if !track.HasFLAC {
		t.Error("HasFLAC = false, want true")
	}
	want := "https://cdn.zvuk.com/pic?id=1&size=1000x1000&ext=jpg"
	if track.CoverURL != want {
		t.Errorf("CoverURL = %q, want %q", track.CoverURL, want)
	}
}

func TestGetTracks_Batched(t *testing.T) {
	var requests int
	catalog := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if ids := r.URL.Query().Get("ids"); ids != "1,2" {
			t.Errorf("ids = %q, want 1,2", ids)
		}
		io.WriteString(w, `{"result":{"tracks":{
			"1":{"title":"First","position":1},
			"2":{"title":"Second","position":2}
		}}}`)
	}))

	tracks, err := catalog.GetTracks(context.Background(), []string{"1", "2"})
	if err != nil {
		t.Fatalf("GetTracks failed: %v", err)
	}
	if requests != 1 {
		t.Errorf("requests = %d, want 1", requests)
	}
	if len(tracks) != 2 {
		t.Fatalf("len(tracks) = %d, want 2", len(tracks))
	}
	if tracks["1"].Title != "First" || tracks["2"].Title != "Second" {
		t.Errorf("unexpected tracks: %+v", tracks)
	}
}

func TestGetTrack_NotFound(t *testing.T) {
	catalog := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"result":{"tracks":{}}}`)
	}))

	if _, err := catalog.GetTrack(context.Background(), "404404"); err == nil {
		t.Fatal("expected error for unknown track")
	}
}

func TestGetRelease(t *testing.T) {
	catalog := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"result":{"releases":{"29015282":{
			"title":"Герой асфальта",
			"credits":"Ария",
			"date":19871101,
			"track_ids":[101,102,103],
			"image":{"src":"https://cdn.zvuk.com/pic?id=2&size={size}&ext=jpg"}
		}}}}`)
	}))

	release, err := catalog.GetRelease(context.Background(), "29015282")
	if err != nil {
		t.Fatalf("GetRelease failed: %v", err)
	}
	if release.Title != "Герой асфальта" {
		t.Errorf("Title = %q", release.Title)
	}
	if release.Year != "1987" {
		t.Errorf("Year = %q, want 1987", release.Year)
	}
	wantIDs := []string{"101", "102", "103"}
	if len(release.TrackIDs) != len(wantIDs) {
		t.Fatalf("TrackIDs = %v, want %v", release.TrackIDs, wantIDs)
	}
	for i, id := range wantIDs {
		if release.TrackIDs[i] != id {
			t.Errorf("TrackIDs[%d] = %q, want %q", i, release.TrackIDs[i], id)
		}
	}
	if !release.HasCover() {
		t.Error("HasCover = false, want true")
	}
}

func TestGetRelease_StringDate(t *testing.T) {
	catalog := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"result":{"releases":{"5":{
			"title":"Later Album","credits":"Someone","date":"2021-06-15","track_ids":[]
		}}}}`)
	}))

	release, err := catalog.GetRelease(context.Background(), "5")
	if err != nil {
		t.Fatalf("GetRelease failed: %v", err)
	}
	if release.Year != "2021" {
		t.Errorf("Year = %q, want 2021", release.Year)
	}
}

func TestGetArtistReleaseIDs(t *testing.T) {
	catalog := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("artist_id"); got != "852542" {
			t.Errorf("artist_id = %q, want 852542", got)
		}
		io.WriteString(w, `{"result":[{"id":11},{"id":22},{"id":33}]}`)
	}))

	ids, err := catalog.GetArtistReleaseIDs(context.Background(), "852542")
	if err != nil {
		t.Fatalf("GetArtistReleaseIDs failed: %v", err)
	}
	want := []string{"11", "22", "33"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestGetPlaylist(t *testing.T) {
	catalog := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if inc := r.URL.Query().Get("include"); inc != "track,release" {
			t.Errorf("include = %q, want track,release", inc)
		}
		io.WriteString(w, `{"result":{"playlists":{"8545187":{
			"title":"Рок на века","track_ids":[7,8]
		}}}}`)
	}))

	playlist, err := catalog.GetPlaylist(context.Background(), "8545187")
	if err != nil {
		t.Fatalf("GetPlaylist failed: %v", err)
	}
	if playlist.Title != "Рок на века" {
		t.Errorf("Title = %q", playlist.Title)
	}
	if len(playlist.TrackIDs) != 2 {
		t.Errorf("TrackIDs = %v, want 2 ids", playlist.TrackIDs)
	}
}

func TestGetSelection(t *testing.T) {
	catalog := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"result":{"selection":{
			"id":1,"title":"Выбор редакции","track_ids":[42]
		}}}`)
	}))

	selection, err := catalog.GetSelection(context.Background(), "1")
	if err != nil {
		t.Fatalf("GetSelection failed: %v", err)
	}
	if selection.Title != "Выбор редакции" {
		t.Errorf("Title = %q", selection.Title)
	}
	if len(selection.TrackIDs) != 1 || selection.TrackIDs[0] != "42" {
		t.Errorf("TrackIDs = %v, want [42]", selection.TrackIDs)
	}
}

func TestGetPodcastAndEpisode(t *testing.T) {
	catalog := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/tiny/podcasts":
			io.WriteString(w, `{"result":{"podcasts":{"14574115":{
				"title":"Ночной эфир","episodes":[{"id":900},{"id":901}]
			}}}}`)
		case "/api/tiny/podcast_episodes":
			io.WriteString(w, `{"result":{"episodes":{"900":{
				"title":"Выпуск 1","author":"Ведущий","stream_url":"https://cdn.zvuk.com/ep900.mp3"
			}}}}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	podcast, err := catalog.GetPodcast(context.Background(), "14574115")
	if err != nil {
		t.Fatalf("GetPodcast failed: %v", err)
	}
	if podcast.Title != "Ночной эфир" {
		t.Errorf("Title = %q", podcast.Title)
	}
	if len(podcast.EpisodeIDs) != 2 || podcast.EpisodeIDs[0] != "900" {
		t.Errorf("EpisodeIDs = %v", podcast.EpisodeIDs)
	}

	episode, err := catalog.GetEpisode(context.Background(), "900")
	if err != nil {
		t.Fatalf("GetEpisode failed: %v", err)
	}
	if episode.Author != "Ведущий" {
		t.Errorf("Author = %q", episode.Author)
	}
	if episode.StreamURL != "https://cdn.zvuk.com/ep900.mp3" {
		t.Errorf("StreamURL = %q", episode.StreamURL)
	}
}

func TestGetAudiobook(t *testing.T) {
	catalog := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/graphql" {
			t.Errorf("got %s %s, want POST /api/v1/graphql", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var req struct {
			OperationName string         `json:"operationName"`
			Variables     map[string]any `json:"variables"`
		}
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.OperationName != "getAudioBookData" {
			t.Errorf("operationName = %q", req.OperationName)
		}
		if id, ok := req.Variables["id"].(float64); !ok || int(id) != 24072774 {
			t.Errorf("variables.id = %v, want 24072774", req.Variables["id"])
		}
		io.WriteString(w, `{"data":{"book":{
			"id":24072774,"title":"Мастер и Маргарита","authorName":"Михаил Булгаков",
			"chapters":[{"id":5001,"title":"Никогда не разговаривайте с неизвестными"},{"id":5002,"title":"Понтий Пилат"}]
		}}}`)
	}))

	book, err := catalog.GetAudiobook(context.Background(), "24072774")
	if err != nil {
		t.Fatalf("GetAudiobook failed: %v", err)
	}
	if book.Title != "Мастер и Маргарита" {
		t.Errorf("Title = %q", book.Title)
	}
	if book.Author != "Михаил Булгаков" {
		t.Errorf("Author = %q", book.Author)
	}
	if len(book.Chapters) != 2 {
		t.Fatalf("len(Chapters) = %d, want 2", len(book.Chapters))
	}
	if book.Chapters[0].Position != 1 || book.Chapters[1].Position != 2 {
		t.Errorf("chapter positions = %d, %d, want 1, 2", book.Chapters[0].Position, book.Chapters[1].Position)
	}
	if book.Chapters[1].ID != "5002" {
		t.Errorf("Chapters[1].ID = %q, want 5002", book.Chapters[1].ID)
	}
}

func TestGetAudiobook_GraphQLError(t *testing.T) {
	catalog := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":{"book":null},"errors":[{"message":"not available in region"}]}`)
	}))

	if _, err := catalog.GetAudiobook(context.Background(), "1"); err == nil {
		t.Fatal("expected graphql error")
	}
}

func TestGetChapterStreamURL(t *testing.T) {
	catalog := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req struct {
			OperationName string `json:"operationName"`
		}
		json.Unmarshal(body, &req)
		if req.OperationName != "getAudioBookChapter" {
			t.Errorf("operationName = %q", req.OperationName)
		}
		io.WriteString(w, `{"data":{"chapter":{
			"id":5001,"title":"Глава 1","mid":"https://cdn.zvuk.com/abook/5001.mp3"
		}}}`)
	}))

	url, err := catalog.GetChapterStreamURL(context.Background(), "5001")
	if err != nil {
		t.Fatalf("GetChapterStreamURL failed: %v", err)
	}
	if url != "https://cdn.zvuk.com/abook/5001.mp3" {
		t.Errorf("url = %q", url)
	}
}

func TestGetStreamURL(t *testing.T) {
	catalog := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tiny/track/stream" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if q := r.URL.Query().Get("quality"); q != "flac" {
			t.Errorf("quality = %q, want flac", q)
		}
		if id := r.URL.Query().Get("id"); id != "12776890" {
			t.Errorf("id = %q, want 12776890", id)
		}
		io.WriteString(w, `{"result":{"stream":"https://cdn.zvuk.com/stream/track.flac?sign=abc"}}`)
	}))

	url, err := catalog.GetStreamURL(context.Background(), "12776890", model.QualityFLAC)
	if err != nil {
		t.Fatalf("GetStreamURL failed: %v", err)
	}
	if url != "https://cdn.zvuk.com/stream/track.flac?sign=abc" {
		t.Errorf("url = %q", url)
	}
}

func TestVerifySubscription(t *testing.T) {
	catalog := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/tiny/profile" {
			t.Errorf("path = %s, want /api/v2/tiny/profile", r.URL.Path)
		}
		io.WriteString(w, `{"result":{"is_prime":true}}`)
	}))

	if err := catalog.VerifySubscription(context.Background()); err != nil {
		t.Fatalf("VerifySubscription failed: %v", err)
	}
}

func TestVerifySubscription_NoSubscription(t *testing.T) {
	catalog := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"result":{"is_prime":false}}`)
	}))

	err := catalog.VerifySubscription(context.Background())
	if !errors.Is(err, auth.ErrNoSubscription) {
		t.Fatalf("err = %v, want ErrNoSubscription", err)
	}
}
