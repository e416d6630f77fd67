package upstream

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"github.com/railgate/railgate/pkg/transfer"
)

// ErrBlocked means the portal's anti-bot layer redirected or garbled the
// response. The query can be retried later; there is nothing else to do.
var ErrBlocked = errors.New("upstream rejected the request (anti-bot)")

const initPath = "/otn/leftTicket/init"

type Options struct {
	BaseURL    string
	FeedURL    string
	UserAgent  string
	Timeout    time.Duration
	MaxRetries int
}

// Client talks to the railway booking portal. It only fetches and decodes
// response envelopes - all record decoding lives in the tickets and
// transfer packages.
type Client struct {
	options Options
}

func NewClient(options Options) *Client {
	return &Client{options: options}
}

// session is one logical query's cookie-holding HTTP client. The portal
// hands out a session cookie on the init page and expects it back on every
// data request, so each query primes a fresh jar first.
type session struct {
	client  *http.Client
	options Options
}

func (c *Client) newSession(ctx context.Context) (*session, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	s := &session{
		options: c.options,
		client: &http.Client{
			Jar:     jar,
			Timeout: c.options.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
			Transport: &http.Transport{
				// The portal's certificate chain is incomplete on some edges.
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
	}

	if _, err := s.get(ctx, c.options.BaseURL+initPath, nil); err != nil {
		return nil, fmt.Errorf("priming session cookie: %w", err)
	}

	return s, nil
}

func (s *session) get(ctx context.Context, rawURL string, params url.Values) ([]byte, error) {
	requestURL := rawURL
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	var body []byte

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		// The portal is fronted by an anti-bot layer that drops requests
		// without a browser user agent and referer.
		req.Header.Set("User-Agent", s.options.UserAgent)
		req.Header.Set("Referer", s.options.BaseURL+initPath)
		req.Header.Set("Accept", "application/json, text/javascript, */*; q=0.01")
		req.Header.Set("X-Requested-With", "XMLHttpRequest")

		resp, err := s.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusFound || strings.Contains(resp.Header.Get("Location"), "error.html") {
			return backoff.Permanent(ErrBlocked)
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("upstream status %d", resp.StatusCode)
		}

		body, err = io.ReadAll(resp.Body)
		return err
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(s.options.MaxRetries))
	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return nil, err
	}

	return body, nil
}

func decodeEnvelope(body []byte, target any) error {
	if err := json.Unmarshal(body, target); err != nil {
		// Blocked requests come back as an HTML error page instead of JSON.
		log.Debug().Err(err).Msg("Upstream response was not JSON")
		return ErrBlocked
	}
	return nil
}

// LeftTickets runs one direct left-ticket query and returns the raw
// |-delimited rows for the decoder.
func (c *Client) LeftTickets(ctx context.Context, fromCode string, toCode string, trainDate string, purposeCodes string) ([]string, error) {
	s, err := c.newSession(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("leftTicketDTO.train_date", trainDate)
	params.Set("leftTicketDTO.from_station", fromCode)
	params.Set("leftTicketDTO.to_station", toCode)
	params.Set("purpose_codes", purposeCodes)

	body, err := s.get(ctx, c.options.BaseURL+"/otn/leftTicket/queryU", params)
	if err != nil {
		return nil, err
	}

	var envelope leftTicketEnvelope
	if err := decodeEnvelope(body, &envelope); err != nil {
		return nil, err
	}

	return envelope.Data.Result, nil
}

// TransferParams identifies one transfer query. MiddleStation is optional;
// ShowNoSeat and PurposeCodes carry the portal's Y/N and 00/0X switches.
type TransferParams struct {
	FromCode      string
	ToCode        string
	TrainDate     string
	MiddleStation string
	ShowNoSeat    string
	PurposeCodes  string
}

type transferPageSource struct {
	session *session
	baseURL string
	params  TransferParams
}

func (t *transferPageSource) FetchPage(ctx context.Context, offset int) ([]transfer.RawGroup, error) {
	params := url.Values{}
	params.Set("train_date", t.params.TrainDate)
	params.Set("from_station_telecode", t.params.FromCode)
	params.Set("to_station_telecode", t.params.ToCode)
	params.Set("middle_station", t.params.MiddleStation)
	params.Set("result_index", strconv.Itoa(offset))
	params.Set("can_query", "Y")
	params.Set("isShowWZ", t.params.ShowNoSeat)
	params.Set("purpose_codes", t.params.PurposeCodes)
	params.Set("channel", "E")

	body, err := t.session.get(ctx, t.baseURL+"/lcquery/queryU", params)
	if err != nil {
		return nil, err
	}

	var envelope transferEnvelope
	if err := decodeEnvelope(body, &envelope); err != nil {
		return nil, err
	}

	return envelope.Data.MiddleList, nil
}

// TransferSource opens a session for one transfer query and returns a page
// source over it. Pages must be fetched sequentially - every page reuses
// the session cookie obtained here.
func (c *Client) TransferSource(ctx context.Context, params TransferParams) (transfer.PageSource, error) {
	s, err := c.newSession(ctx)
	if err != nil {
		return nil, err
	}

	return &transferPageSource{session: s, baseURL: c.options.BaseURL, params: params}, nil
}

// TrainRoute fetches the stop list for the given internal train number.
func (c *Client) TrainRoute(ctx context.Context, trainNo string, fromCode string, toCode string, trainDate string) ([]RouteStation, error) {
	s, err := c.newSession(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("train_no", trainNo)
	params.Set("from_station_telecode", fromCode)
	params.Set("to_station_telecode", toCode)
	params.Set("depart_date", trainDate)

	body, err := s.get(ctx, c.options.BaseURL+"/otn/czxx/queryByTrainNo", params)
	if err != nil {
		return nil, err
	}

	var envelope routeEnvelope
	if err := decodeEnvelope(body, &envelope); err != nil {
		return nil, err
	}

	return envelope.Data.Stations(), nil
}

// FetchStationFeed downloads the raw station master-data javascript.
func (c *Client) FetchStationFeed(ctx context.Context) (string, error) {
	s, err := c.newSession(ctx)
	if err != nil {
		return "", err
	}

	body, err := s.get(ctx, c.options.FeedURL, nil)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
