package iosearch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/biohub"
)

var _ biohub.SearchIndex = &client{}

func TestIndex(t *testing.T) {
	var (
		gotMethod, gotPath, gotBody string
	)
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)
			w.WriteHeader(http.StatusOK)
		}))
	defer srv.Close()

	c := NewClient(srv.URL)
	doc := `{"title":"Moose Survey 2023"}`
	err := c.Index(context.Background(),
		"eml", "6bc32bb7-b9c6-4506-bc1b-0e5b10a82fc7", doc)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/eml/_doc/6bc32bb7-b9c6-4506-bc1b-0e5b10a82fc7", gotPath)
	assert.Equal(t, doc, gotBody)
}

func TestIndexServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.Index(context.Background(), "eml", "abc", `{}`)
	assert.Error(t, err)
}
