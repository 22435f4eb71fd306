package sylverapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/sylver/apps/go-viz/internal/generators"
	"github.com/robalobadob/sylver/apps/go-viz/internal/position"
)

func newService(t *testing.T, status int, body string, seen *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			*seen = r.URL.Path + "?" + r.URL.RawQuery
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRequestQuery(t *testing.T) {
	req := Request{Length: 100, Input: generators.Parse("9,11"), Children: true}
	assert.Equal(t, "length=100&input=9,11&children=true", req.Query())
}

func TestFetch_Success(t *testing.T) {
	var seen string
	srv := newService(t, http.StatusOK, `{
		"name": "{9, 11}", "bitarray": [true, false, true], "multiplicity": 9,
		"generators": [9, 11], "gcd": 1, "frobenius": 79, "genus": 40,
		"irreducible": "s", "status": "N", "children": {"1": {"status": "P"}}
	}`, &seen)

	c := New(srv.URL + "/")
	pos, err := c.Fetch(context.Background(), Request{Length: 100, Input: generators.Parse("9,11"), Children: true})
	require.NoError(t, err)

	assert.Equal(t, "/api/get?length=100&input=9,11&children=true", seen)
	assert.Equal(t, "{9, 11}", pos.Name)
	assert.Equal(t, []bool{true, false, true}, pos.BitArray)
	assert.Equal(t, position.IrreducibleQuietEnder, pos.Irreducible)
	assert.Equal(t, position.StatusP, pos.ChildStatus(1))
}

func TestFetch_NullErrorFieldIsSuccess(t *testing.T) {
	srv := newService(t, http.StatusOK, `{"error": null, "name": "{5}", "status": "P"}`, nil)
	pos, err := New(srv.URL).Fetch(context.Background(), Request{Length: 100, Input: generators.Parse("5")})
	require.NoError(t, err)
	assert.Equal(t, "{5}", pos.Name)
}

func TestFetch_ServiceError(t *testing.T) {
	srv := newService(t, http.StatusBadRequest, `{"error": "invalid input"}`, nil)
	pos, err := New(srv.URL).Fetch(context.Background(), Request{Length: 100, Input: generators.Parse("0")})

	assert.Nil(t, pos)
	var se *ServiceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "invalid input", se.Message)
	assert.Equal(t, http.StatusBadRequest, se.Status)
}

func TestFetch_ErrorFieldWithOKStatus(t *testing.T) {
	srv := newService(t, http.StatusOK, `{"error": "Length insufficient", "name": "{2, 3}"}`, nil)
	pos, err := New(srv.URL).Fetch(context.Background(), Request{Length: 100, Input: generators.Parse("2,3")})

	assert.Nil(t, pos, "error payloads are never merged into a position")
	var se *ServiceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "Length insufficient", se.Message)
}

func TestFetch_NonJSONErrorStatus(t *testing.T) {
	srv := newService(t, http.StatusBadGateway, `<html>bad gateway</html>`, nil)
	_, err := New(srv.URL).Fetch(context.Background(), Request{Length: 100, Input: generators.Parse("9")})

	var se *ServiceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadGateway, se.Status)
}

func TestFetch_UndecodableBody(t *testing.T) {
	srv := newService(t, http.StatusOK, `not json`, nil)
	_, err := New(srv.URL).Fetch(context.Background(), Request{Length: 100, Input: generators.Parse("9")})

	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "decode", te.Op)
}

func TestFetch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url).Fetch(context.Background(), Request{Length: 100, Input: generators.Parse("9")})
	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "get", te.Op)
}

func TestFetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	_, err := New(srv.URL, WithTimeout(50*time.Millisecond)).
		Fetch(context.Background(), Request{Length: 100, Input: generators.Parse("9")})
	var te *TransportError
	assert.True(t, errors.As(err, &te))
}

func TestFetch_ThrottleHonoursContext(t *testing.T) {
	srv := newService(t, http.StatusOK, `{"name": "{5}"}`, nil)
	c := New(srv.URL, WithRateLimit(0.001, 1))

	_, err := c.Fetch(context.Background(), Request{Length: 100, Input: generators.Parse("5")})
	require.NoError(t, err, "burst admits the first lookup")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = c.Fetch(ctx, Request{Length: 100, Input: generators.Parse("5")})
	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "throttle", te.Op)
}
