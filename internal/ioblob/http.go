package ioblob

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/biohub"
)

type httpStore struct {
	client *resty.Client
}

// NewHTTPStore creates a blob store backed by an S3-style HTTP object
// gateway. Objects live at {baseURL}/{key}; metadata travels as
// x-amz-meta headers.
func NewHTTPStore(baseURL, token string) biohub.BlobStore {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(5 * time.Minute)
	if token != "" {
		client.SetAuthToken(token)
	}
	return &httpStore{client: client}
}

func (s *httpStore) Put(
	ctx context.Context,
	key string,
	data []byte,
	metadata map[string]string,
) error {
	req := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(data)
	for k, v := range metadata {
		req.SetHeader("x-amz-meta-"+k, v)
	}

	resp, err := req.Put("/" + key)
	if err != nil {
		return PutError(key, err)
	}
	if resp.IsError() {
		return PutError(key,
			fmt.Errorf("unexpected status %s", resp.Status()))
	}
	return nil
}

func (s *httpStore) Get(
	ctx context.Context,
	key string,
) ([]byte, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get("/" + key)
	if err != nil {
		return nil, GetError(key, err)
	}
	if resp.IsError() {
		return nil, GetError(key,
			fmt.Errorf("unexpected status %s", resp.Status()))
	}
	return resp.Body(), nil
}
