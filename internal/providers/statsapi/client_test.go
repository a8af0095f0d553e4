package statsapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/preston-bernstein/mlb-lineups/internal/domain/games"
	"github.com/preston-bernstein/mlb-lineups/internal/providers"
)

const scheduleBody = `{
	"totalGames": 1,
	"dates": [{
		"date": "2025-04-15",
		"games": [{
			"gamePk": 778518,
			"gameDate": "2025-04-15T23:10:00Z",
			"officialDate": "2025-04-15",
			"status": {"abstractGameState": "Preview", "codedGameState": "S", "detailedState": "Scheduled"},
			"teams": {
				"away": {"team": {"id": 121, "name": "New York Mets"}, "probablePitcher": {"id": 1001, "fullName": "Kodai Senga"}},
				"home": {"team": {"id": 142, "name": "Minnesota Twins"}}
			},
			"venue": {"id": 3312, "name": "Target Field"},
			"doubleHeader": "N",
			"gameNumber": 1
		}]
	}]
}`

const boxscoreBody = `{
	"teams": {
		"away": {
			"team": {"id": 121, "name": "New York Mets"},
			"battingOrder": [11, 0, 12],
			"pitchers": [1001, 1003],
			"players": {
				"ID11": {"person": {"id": 11, "fullName": "Francisco Lindor"}, "jerseyNumber": "12", "position": {"abbreviation": "SS"}},
				"ID12": {"person": {"id": 12, "fullName": "Juan Soto"}, "jerseyNumber": "22", "position": {"abbreviation": "RF"}},
				"ID1001": {"person": {"id": 1001, "fullName": "Kodai Senga"}, "jerseyNumber": "34", "position": {"abbreviation": "P"}}
			}
		},
		"home": {
			"team": {"id": 142, "name": "Minnesota Twins"},
			"battingOrder": [],
			"pitchers": [],
			"players": {}
		}
	},
	"officials": [
		{"official": {"id": 1, "fullName": "Pat Hoberg"}, "officialType": "Home Plate"},
		{"official": {"id": 2, "fullName": "Dan Bellino"}, "officialType": "First Base"},
		{"official": {"id": 3, "fullName": "Replay Person"}, "officialType": "Left Field"}
	]
}`

const peopleBody = `{"people": [{"id": 1001, "fullName": "Kodai Senga", "primaryNumber": "34", "pitchHand": {"code": "R", "description": "Right"}}]}`

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

type routes map[string]string

func newTestClient(t *testing.T, r routes, hits *atomic.Int32) *Client {
	t.Helper()
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if hits != nil {
			hits.Add(1)
		}
		body, ok := r[req.URL.Path]
		if !ok {
			return jsonResponse(http.StatusNotFound, "not found"), nil
		}
		return jsonResponse(http.StatusOK, body), nil
	})
	return NewClient(Config{
		BaseURL:    "http://example.com/api/v1/",
		HTTPClient: &http.Client{Transport: rt},
		Timezone:   "America/New_York",
	})
}

func TestListGamesHitsScheduleAndMapsResponse(t *testing.T) {
	var captured string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/api/v1/schedule" {
			t.Fatalf("unexpected path %s", req.URL.Path)
		}
		captured = req.URL.RawQuery
		return jsonResponse(http.StatusOK, scheduleBody), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com/api/v1", HTTPClient: &http.Client{Transport: rt}})

	got, err := client.ListGames(context.Background(), "121", "2025-04-15")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for _, want := range []string{"teamId=121", "date=2025-04-15", "sportId=1", "hydrate=probablePitcher"} {
		if !strings.Contains(captured, want) {
			t.Fatalf("expected %s in query %s", want, captured)
		}
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 game, got %d", len(got))
	}
	g := got[0]
	if g.ID != "778518" || g.Venue != "Target Field" || g.Date != "2025-04-15" {
		t.Fatalf("unexpected game %+v", g)
	}
	if g.HomeTeam.ID != "142" || g.AwayTeam.ID != "121" {
		t.Fatalf("unexpected teams home=%s away=%s", g.HomeTeam.ID, g.AwayTeam.ID)
	}
	if g.StartTime == nil || g.StartTime.UTC().Hour() != 23 {
		t.Fatalf("unexpected start time %v", g.StartTime)
	}
	if g.Status != games.StatusScheduled {
		t.Fatalf("unexpected status %s", g.Status)
	}
}

func TestListGamesEmptySchedule(t *testing.T) {
	client := newTestClient(t, routes{"/api/v1/schedule": `{"totalGames": 0, "dates": []}`}, nil)
	got, err := client.ListGames(context.Background(), "121", "2025-12-25")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no games, got %d", len(got))
	}
}

func TestListGamesIgnoresReportedTotal(t *testing.T) {
	body := strings.Replace(scheduleBody, `"totalGames": 1`, `"totalGames": -1`, 1)
	client := newTestClient(t, routes{"/api/v1/schedule": body}, nil)

	got, err := client.ListGames(context.Background(), "121", "2025-04-15")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 || got[0].ID != "778518" {
		t.Fatalf("expected the listed game, got %+v", got)
	}
}

func TestListGamesHandlesNon200(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, "boom"), nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.ListGames(context.Background(), "121", "2025-04-15")
	if err == nil || !strings.Contains(err.Error(), "502") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestListGamesHandlesDecodeError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, "{bad json"), nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	if _, err := client.ListGames(context.Background(), "121", "2025-04-15"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestListGamesRateLimited(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		resp := jsonResponse(http.StatusTooManyRequests, "slow down")
		resp.Header.Set("Retry-After", "2")
		return resp, nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.ListGames(context.Background(), "121", "2025-04-15")
	rl, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rl.RetryAfter != 2*time.Second || rl.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("unexpected rate limit error %+v", rl)
	}
}

func TestListGamesTransportError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("dial tcp: refused")
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	if _, err := client.ListGames(context.Background(), "121", "2025-04-15"); err == nil {
		t.Fatal("expected transport error")
	}
}

func TestProbablePitcherUsesScheduleAndPeople(t *testing.T) {
	client := newTestClient(t, routes{
		"/api/v1/schedule":    scheduleBody,
		"/api/v1/people/1001": peopleBody,
	}, nil)

	p, err := client.ProbablePitcher(context.Background(), "778518", games.SideAway)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p == nil || p.Name != "Kodai Senga" || p.Confirmed {
		t.Fatalf("unexpected probable pitcher %+v", p)
	}
	if p.Jersey == nil || *p.Jersey != 34 || p.Arm != games.ArmRight {
		t.Fatalf("expected jersey and arm from people endpoint, got %+v", p)
	}

	home, err := client.ProbablePitcher(context.Background(), "778518", games.SideHome)
	if err != nil || home != nil {
		t.Fatalf("expected no home probable, got %+v err=%v", home, err)
	}

	missing, err := client.ProbablePitcher(context.Background(), "1", games.SideHome)
	if err != nil || missing != nil {
		t.Fatalf("expected unknown game to yield nothing, got %+v err=%v", missing, err)
	}
}

func TestConfirmedPitcherFromBoxscore(t *testing.T) {
	client := newTestClient(t, routes{
		"/api/v1/game/778518/boxscore": boxscoreBody,
		"/api/v1/people/1001":          peopleBody,
	}, nil)

	p, err := client.ConfirmedPitcher(context.Background(), "778518", games.SideAway)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p == nil || !p.Confirmed || p.Name != "Kodai Senga" || p.Arm != games.ArmRight {
		t.Fatalf("unexpected confirmed pitcher %+v", p)
	}

	home, err := client.ConfirmedPitcher(context.Background(), "778518", games.SideHome)
	if err != nil || home != nil {
		t.Fatalf("expected no home starter yet, got %+v err=%v", home, err)
	}
}

func TestConfirmedPitcherKeepsStarterWhenPeopleFails(t *testing.T) {
	client := newTestClient(t, routes{"/api/v1/game/778518/boxscore": boxscoreBody}, nil)

	p, err := client.ConfirmedPitcher(context.Background(), "778518", games.SideAway)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p == nil || p.Arm != games.ArmUnknown || p.Jersey == nil || *p.Jersey != 34 {
		t.Fatalf("expected starter with unknown arm, got %+v", p)
	}
}

func TestLineupAndUmpiresFromBoxscore(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, routes{"/api/v1/game/778518/boxscore": boxscoreBody}, &hits)
	ctx := context.Background()

	away, err := client.Lineup(ctx, "778518", games.SideAway)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if away == nil || len(away.Slots) != 2 {
		t.Fatalf("expected 2 slots, got %+v", away)
	}
	if away.Slots[1].Order != 2 || away.Slots[1].Name != "Juan Soto" || away.Slots[1].Position != "RF" {
		t.Fatalf("unexpected second slot %+v", away.Slots[1])
	}

	home, err := client.Lineup(ctx, "778518", games.SideHome)
	if err != nil || home != nil {
		t.Fatalf("expected unposted home lineup, got %+v err=%v", home, err)
	}

	crew, err := client.Umpires(ctx, "778518")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if crew.Len() != 2 || crew.Assignments[games.UmpireHomePlate].Name != "Pat Hoberg" {
		t.Fatalf("unexpected crew %+v", crew)
	}

	if hits.Load() != 1 {
		t.Fatalf("expected boxscore to be fetched once, got %d", hits.Load())
	}
}

func TestBoxscoreNotFoundIsAbsent(t *testing.T) {
	client := newTestClient(t, routes{}, nil)
	ctx := context.Background()

	if l, err := client.Lineup(ctx, "1", games.SideHome); err != nil || l != nil {
		t.Fatalf("expected absent lineup, got %+v err=%v", l, err)
	}
	if crew, err := client.Umpires(ctx, "1"); err != nil || crew != nil {
		t.Fatalf("expected absent crew, got %+v err=%v", crew, err)
	}
	if p, err := client.ConfirmedPitcher(ctx, "1", games.SideHome); err != nil || p != nil {
		t.Fatalf("expected absent pitcher, got %+v err=%v", p, err)
	}
}

func TestBoxscoreServerErrorPropagates(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusInternalServerError, "oops"), nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	if _, err := client.Lineup(context.Background(), "1", games.SideHome); err == nil {
		t.Fatal("expected hard failure on 500")
	}
}

func TestSharedFetchOutlivesCancelledCaller(t *testing.T) {
	var hits atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if hits.Add(1) == 1 {
			close(started)
		}
		<-release
		return jsonResponse(http.StatusOK, boxscoreBody), nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := client.Umpires(ctx, "778518")
		errCh <- err
	}()

	<-started
	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancelled caller to stop waiting, got %v", err)
	}

	close(release)
	crew, err := client.Umpires(context.Background(), "778518")
	if err != nil {
		t.Fatalf("expected shared fetch to succeed, got %v", err)
	}
	if crew.Len() != 2 {
		t.Fatalf("unexpected crew %+v", crew)
	}
	if hits.Load() != 1 {
		t.Fatalf("expected a single boxscore fetch, got %d", hits.Load())
	}
}

func TestCacheExpires(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, routes{"/api/v1/game/778518/boxscore": boxscoreBody}, &hits)
	now := time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)
	client.now = func() time.Time { return now }

	_, _ = client.Umpires(context.Background(), "778518")
	now = now.Add(cacheTTL + time.Second)
	_, _ = client.Umpires(context.Background(), "778518")

	if hits.Load() != 2 {
		t.Fatalf("expected refetch after ttl, got %d fetches", hits.Load())
	}
}

func TestNewClientSetsDefaults(t *testing.T) {
	c := NewClient(Config{})
	httpClient, ok := c.httpClient.(*http.Client)
	if !ok {
		t.Fatalf("expected default http client")
	}
	if httpClient.Timeout == 0 {
		t.Fatalf("expected timeout to be set on default http client")
	}
	if c.baseURL != defaultBaseURL {
		t.Fatalf("expected default base url, got %s", c.baseURL)
	}
	if c.Name() != "statsapi" {
		t.Fatalf("unexpected provider name %s", c.Name())
	}
	if c.loc.String() != "America/New_York" {
		t.Fatalf("expected default timezone, got %s", c.loc)
	}
}

func TestNewClientFallsBackOnUnknownTimezone(t *testing.T) {
	c := NewClient(Config{Timezone: "Not/AZone"})
	if c.loc.String() != "America/New_York" {
		t.Fatalf("expected fallback timezone, got %s", c.loc)
	}
}
