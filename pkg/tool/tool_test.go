package tool

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHttpGet(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`["12.6.1"]`))
	}))
	defer srv.Close()

	body, err := HttpGet(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, `["12.6.1"]`, string(body))
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestHttpGetGivesUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	body, err := HttpGet(context.Background(), srv.URL)
	assert.Nil(t, body)
	assert.True(t, errors.Is(err, ErrUnexpectedStatus))
}

func TestIsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "Game.db")
	require.NoError(t, os.WriteFile(file, nil, 0600))

	assert.True(t, IsFile(file))
	assert.False(t, IsFile(dir))
	assert.True(t, IsExist(dir))
	assert.False(t, IsExist(filepath.Join(dir, "missing")))
}
