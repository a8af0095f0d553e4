package statsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/preston-bernstein/mlb-lineups/internal/domain/games"
	"github.com/preston-bernstein/mlb-lineups/internal/providers"
	"github.com/preston-bernstein/mlb-lineups/internal/store"
	"github.com/preston-bernstein/mlb-lineups/internal/timeutil"
)

// errNotFound marks a 404 from the upstream API; facet lookups treat it as "not published".
var errNotFound = errors.New("statsapi: not found")

// Config controls how the Stats API client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timezone   string
}

// Client fetches schedules, boxscores, and people from the MLB Stats API and maps them to domain models.
// Boxscore and person lookups are shared between concurrent callers and cached for cacheTTL.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
	loc        *time.Location

	group singleflight.Group
	cache *store.MemoryStore[any]
}

var _ providers.SportsDataProvider = (*Client)(nil)

// NewClient constructs a Stats API client with the provided configuration.
func NewClient(cfg Config) *Client {
	c := &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
		loc:        timeutil.LoadLocation(cfg.Timezone),
	}
	c.cache = store.NewMemoryStore[any](cacheTTL, func() time.Time { return c.now() })
	return c
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// ListGames returns every game the team plays on date.
func (c *Client) ListGames(ctx context.Context, teamID, date string) ([]games.Game, error) {
	q := url.Values{}
	q.Set("sportId", sportIDMLB)
	q.Set("teamId", teamID)
	q.Set("date", date)
	q.Set("hydrate", scheduleHydrate)

	var payload scheduleResponse
	if err := c.getJSON(ctx, "/schedule", q, &payload); err != nil {
		return nil, err
	}

	var out []games.Game
	for _, d := range payload.Dates {
		for _, g := range d.Games {
			out = append(out, mapGame(g, c.loc))
		}
	}
	return out, nil
}

// ProbablePitcher returns the announced starter from the schedule feed.
func (c *Client) ProbablePitcher(ctx context.Context, gameID string, side games.Side) (*games.Pitcher, error) {
	q := url.Values{}
	q.Set("sportId", sportIDMLB)
	q.Set("gamePk", gameID)
	q.Set("hydrate", scheduleHydrate)

	var payload scheduleResponse
	if err := c.getJSON(ctx, "/schedule", q, &payload); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, nil
		}
		return nil, err
	}

	g, ok := findScheduleGame(payload, gameID)
	if !ok {
		return nil, nil
	}
	ref := scheduleSide(g.Teams, side).ProbablePitcher
	if ref == nil || ref.ID == 0 {
		return nil, nil
	}
	return c.describePitcher(ctx, ref.ID, ref.FullName, "", false), nil
}

// ConfirmedPitcher returns the actual starter, which the boxscore lists first once the game begins.
func (c *Client) ConfirmedPitcher(ctx context.Context, gameID string, side games.Side) (*games.Pitcher, error) {
	box, err := c.boxscore(ctx, gameID)
	if err != nil || box == nil {
		return nil, err
	}
	team := boxscoreSide(box.Teams, side)
	if len(team.Pitchers) == 0 {
		return nil, nil
	}
	id := team.Pitchers[0]
	player := team.Players[playerKey(id)]
	return c.describePitcher(ctx, id, player.Person.FullName, player.JerseyNumber, true), nil
}

// Lineup returns the posted batting order for side.
func (c *Client) Lineup(ctx context.Context, gameID string, side games.Side) (*games.Lineup, error) {
	box, err := c.boxscore(ctx, gameID)
	if err != nil || box == nil {
		return nil, err
	}
	return mapLineup(boxscoreSide(box.Teams, side)), nil
}

// Umpires returns the base umpires listed on the boxscore.
func (c *Client) Umpires(ctx context.Context, gameID string) (*games.UmpireCrew, error) {
	box, err := c.boxscore(ctx, gameID)
	if err != nil || box == nil {
		return nil, err
	}
	return mapUmpires(box.Officials), nil
}

// describePitcher enriches a starter with throwing hand and jersey from the people endpoint.
// A failed people lookup keeps the starter with whatever the caller already knew.
func (c *Client) describePitcher(ctx context.Context, id int, name, jersey string, confirmed bool) *games.Pitcher {
	p := &games.Pitcher{
		Name:      name,
		Jersey:    parseJersey(jersey),
		Arm:       games.ArmUnknown,
		Confirmed: confirmed,
	}
	details, err := c.person(ctx, id)
	if err != nil || details == nil {
		return p
	}
	if p.Name == "" {
		p.Name = details.FullName
	}
	if p.Jersey == nil {
		p.Jersey = parseJersey(details.PrimaryNumber)
	}
	p.Arm = mapHand(details.PitchHand.Code)
	return p
}

func (c *Client) boxscore(ctx context.Context, gameID string) (*boxscoreResponse, error) {
	v, err := c.shared(ctx, "boxscore:"+gameID, func(ctx context.Context) (any, error) {
		var payload boxscoreResponse
		if err := c.getJSON(ctx, "/game/"+url.PathEscape(gameID)+"/boxscore", nil, &payload); err != nil {
			return nil, err
		}
		return &payload, nil
	})
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v.(*boxscoreResponse), nil
}

func (c *Client) person(ctx context.Context, id int) (*person, error) {
	key := strconv.Itoa(id)
	v, err := c.shared(ctx, "person:"+key, func(ctx context.Context) (any, error) {
		var payload peopleResponse
		if err := c.getJSON(ctx, "/people/"+key, nil, &payload); err != nil {
			return nil, err
		}
		if len(payload.People) == 0 {
			return (*person)(nil), nil
		}
		return &payload.People[0], nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*person), nil
}

// shared collapses concurrent fetches of key and caches successful results for cacheTTL.
// The fetch outlives a cancelled caller and is bounded by sharedFetchTimeout instead.
func (c *Client) shared(ctx context.Context, key string, fetch func(context.Context) (any, error)) (any, error) {
	if v, ok := c.cache.Get(key); ok {
		return v, nil
	}

	ch := c.group.DoChan(key, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedFetchTimeout)
		defer cancel()
		value, err := fetch(fetchCtx)
		if err != nil {
			return nil, err
		}
		c.cache.Set(key, value)
		return value, nil
	})
	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return errNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Message:    "statsapi: rate limited",
		}
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		return fmt.Errorf("statsapi: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("statsapi: decode %s: %w", path, err)
	}
	return nil
}

func findScheduleGame(payload scheduleResponse, gameID string) (scheduleGame, bool) {
	for _, d := range payload.Dates {
		for _, g := range d.Games {
			if strconv.Itoa(g.GamePk) == gameID {
				return g, true
			}
		}
	}
	return scheduleGame{}, false
}

func scheduleSide(t scheduleTeams, side games.Side) scheduleTeam {
	if side == games.SideHome {
		return t.Home
	}
	return t.Away
}

func boxscoreSide(t boxscoreTeams, side games.Side) boxscoreTeam {
	if side == games.SideHome {
		return t.Home
	}
	return t.Away
}

func playerKey(id int) string {
	return "ID" + strconv.Itoa(id)
}
