package lcu

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLcuServer(t *testing.T, token, body string) *httptest.Server {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != mySelectionPath || r.Method != http.MethodGet {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewClient(t *testing.T) {
	c := NewClient(BuildToken("abc123"), 54321)
	assert.Equal(t, "https://127.0.0.1:54321", c.BaseUrl())
	assert.EqualValues(t, 54321, c.Port())

	s := NewSession(&Lockfile{Port: 2999, Password: "pw"})
	assert.Equal(t, "https://127.0.0.1:2999", s.BaseUrl())
	assert.Equal(t, BuildToken("pw"), s.token)
}

func TestGetHoveredChampion(t *testing.T) {
	token := BuildToken("abc123")
	tests := []struct {
		name string
		body string
		want *Champion
	}{
		{name: "hovering", body: `{"championId": 103}`, want: &Champion{Name: "Ahri", Role: RoleUnsure}},
		{name: "full selection", body: `{"assignedPosition":"middle","cellId":2,"championId":1,"spell1Id":4}`, want: &Champion{Name: "Annie", Role: RoleUnsure}},
		{name: "unknown id", body: `{"championId": 99999}`, want: &Champion{Name: "Unknown", Role: RoleUnsure}},
		{name: "empty object", body: `{}`},
		{name: "not in champ select", body: `{"errorCode":"RPC_ERROR","httpStatus":404,"message":"No active delegate"}`},
		{name: "not json", body: `<html></html>`},
		{name: "empty body", body: ``},
		{name: "string id", body: `{"championId": "103"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newLcuServer(t, token, tt.body)
			c := newClient(srv.URL, token, 0)

			got, err := c.GetHoveredChampion(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetHoveredChampionWrongToken(t *testing.T) {
	srv := newLcuServer(t, BuildToken("right"), `{"championId": 103}`)
	c := newClient(srv.URL, BuildToken("wrong"), 0)

	got, err := c.GetHoveredChampion(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetHoveredChampionTransportError(t *testing.T) {
	srv := newLcuServer(t, "", `{}`)
	url := srv.URL
	srv.Close()
	c := newClient(url, "", 0)

	got, err := c.GetHoveredChampion(context.Background())
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestGetHoveredChampionCanceled(t *testing.T) {
	srv := newLcuServer(t, "", `{"championId": 103}`)
	c := newClient(srv.URL, "", 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetHoveredChampion(ctx)
	assert.Error(t, err)
}
