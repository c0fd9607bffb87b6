// Package iosearch implements the search index client. Dataset
// metadata documents are upserted into an Elasticsearch-compatible
// service, keyed by dataset UUID so a replaced dataset overwrites its
// previous document.
package iosearch

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/biohub"
)

type client struct {
	http *resty.Client
}

// NewClient creates a search index client for the given base URL.
func NewClient(baseURL string) biohub.SearchIndex {
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(time.Minute)
	return &client{http: http}
}

// Index upserts a document. The document must already be valid JSON;
// it is shipped as-is.
func (c *client) Index(
	ctx context.Context,
	index, id, document string,
) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(document).
		Put(fmt.Sprintf("/%s/_doc/%s", index, id))
	if err != nil {
		return IndexError(index, id, err)
	}
	if resp.IsError() {
		return IndexError(index, id,
			fmt.Errorf("unexpected status %s", resp.Status()))
	}
	return nil
}
