package gamerpower

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/pivolan/giveaway_stats/domain/models"
	"github.com/pivolan/giveaway_stats/logger"
)

type Options struct {
	BaseURL string
	Timeout time.Duration
	Retries int
}

// Client talks to the GamerPower giveaways API.
type Client struct {
	client *resty.Client
	log    *logger.Logger
}

func New(opts Options, log *logger.Logger) *Client {
	client := resty.New()
	client.SetBaseURL(opts.BaseURL)
	client.SetTimeout(opts.Timeout)
	client.SetRetryCount(opts.Retries)
	client.SetRetryWaitTime(500 * time.Millisecond)
	client.SetRetryMaxWaitTime(5 * time.Second)
	client.SetHeader("Accept", "application/json")
	client.AddRetryCondition(func(r *resty.Response, err error) bool {
		return err == nil && r.StatusCode() >= http.StatusInternalServerError
	})

	return &Client{client: client, log: log}
}

// Fetch requests the giveaways matching filter; an empty filter returns the full set.
func (c *Client) Fetch(ctx context.Context, filter Filter) ([]models.GiveawayRecord, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(filter.params()).
		Get("/giveaways")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: GET %s returned %s", ErrNetwork, resp.Request.URL, resp.Status())
	}

	records, err := Decode(resp.Body())
	if err != nil {
		return nil, err
	}
	c.log.Debug("fetched giveaways",
		"platform", filter.Platform,
		"type", filter.Type,
		"sort_by", filter.SortBy,
		"status", resp.StatusCode(),
		"records", len(records),
		"elapsed", resp.Time())
	return records, nil
}
