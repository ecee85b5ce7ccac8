package netx

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string `json:"name"`
}

func TestDoJSON(t *testing.T) {
	ctx := context.Background()

	t.Run("sends body and headers, decodes response", func(t *testing.T) {
		var gotMethod, gotCT, gotAccept, gotExtra, gotBody string

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotCT = r.Header.Get("Content-Type")
			gotAccept = r.Header.Get("Accept")
			gotExtra = r.Header.Get("X-Request-Id")
			b, _ := io.ReadAll(r.Body)
			gotBody = string(b)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"name":"Ana"}`))
		}))
		defer ts.Close()

		h := http.Header{}
		h.Set("X-Request-Id", "rid-1")

		var out payload
		err := DoJSON(ctx, ts.Client(), http.MethodPost, ts.URL, h, payload{Name: "in"}, &out)
		require.NoError(t, err)

		require.Equal(t, http.MethodPost, gotMethod)
		require.Equal(t, "application/json", gotCT)
		require.Equal(t, "application/json", gotAccept)
		require.Equal(t, "rid-1", gotExtra)
		require.JSONEq(t, `{"name":"in"}`, gotBody)
		require.Equal(t, "Ana", out.Name)
	})

	t.Run("no body, no content type", func(t *testing.T) {
		var gotCT string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotCT = r.Header.Get("Content-Type")
			w.WriteHeader(http.StatusNoContent)
		}))
		defer ts.Close()

		err := DoJSON(ctx, ts.Client(), http.MethodDelete, ts.URL, nil, nil, nil)
		require.NoError(t, err)
		require.Empty(t, gotCT)
	})

	t.Run("empty 2xx body with out is not an error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer ts.Close()

		var out payload
		require.NoError(t, DoJSON(ctx, ts.Client(), http.MethodGet, ts.URL, nil, nil, &out))
		require.Empty(t, out.Name)
	})

	t.Run("non-2xx -> StatusError with body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"contact not found"}`))
		}))
		defer ts.Close()

		err := DoJSON(ctx, ts.Client(), http.MethodGet, ts.URL, nil, nil, nil)

		var se *StatusError
		require.True(t, errors.As(err, &se))
		require.Equal(t, http.StatusNotFound, se.StatusCode)
		require.Contains(t, string(se.Body), "contact not found")
		require.True(t, strings.Contains(se.Error(), "404"))
	})

	t.Run("malformed JSON -> decode error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"name":`))
		}))
		defer ts.Close()

		var out payload
		err := DoJSON(ctx, ts.Client(), http.MethodGet, ts.URL, nil, nil, &out)
		require.Error(t, err)
		require.ErrorIs(t, err, ErrDecode)
		require.Contains(t, err.Error(), "decode response")
	})

	t.Run("transport error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := ts.URL
		ts.Close()

		err := DoJSON(ctx, http.DefaultClient, http.MethodGet, url, nil, nil, nil)
		require.Error(t, err)
		var se *StatusError
		require.False(t, errors.As(err, &se))
	})
}
