package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/docsearch"
	dochttp "github.com/fwojciec/docsearch/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_ReturnsBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("corpus text"))
	}))
	defer srv.Close()

	fetcher := dochttp.NewFetcher()

	body, err := fetcher.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "corpus text", string(data))
}

func TestFetcher_NonSuccessStatusIsUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	fetcher := dochttp.NewFetcher()

	_, err := fetcher.Fetch(context.Background(), srv.URL)

	assert.Equal(t, docsearch.EUNAVAILABLE, docsearch.ErrorCode(err))
	assert.Contains(t, docsearch.ErrorMessage(err), "404")
}

func TestFetcher_ConnectionErrorIsUnavailable(t *testing.T) {
	t.Parallel()

	// Server closed before the request is made
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	fetcher := dochttp.NewFetcher()

	_, err := fetcher.Fetch(context.Background(), url)

	assert.Equal(t, docsearch.EUNAVAILABLE, docsearch.ErrorCode(err))
}

func TestFetcher_InvalidURLIsInvalid(t *testing.T) {
	t.Parallel()

	fetcher := dochttp.NewFetcher()

	_, err := fetcher.Fetch(context.Background(), "://not-a-url")

	assert.Equal(t, docsearch.EINVALID, docsearch.ErrorCode(err))
}

func TestFetcher_ContextCancellation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	fetcher := dochttp.NewFetcher()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fetcher.Fetch(ctx, srv.URL)

	assert.Equal(t, docsearch.EUNAVAILABLE, docsearch.ErrorCode(err))
}
