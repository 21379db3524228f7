package lcu

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/beastars1/fiddleless/champion"
	"github.com/pkg/errors"
)

const (
	mySelectionPath = "/lol-champ-select/v1/session/my-selection"
)

// Client talks to the local client API of one running client instance.
type Client struct {
	baseUrl string
	token   string
	port    uint16
	cli     *http.Client
}

// NewClient builds a client for https://127.0.0.1:<port>.
//
// The local client API serves a self-signed certificate, so certificate verification is
// turned off. This is only acceptable because the host is pinned to the loopback
// address; never reuse this transport for a remote host.
func NewClient(token string, port uint16) *Client {
	return newClient(fmt.Sprintf("https://%s:%d", loopbackHost, port), token, port)
}

// NewSession builds a Client from a freshly read lockfile.
func NewSession(lf *Lockfile) *Client {
	return NewClient(BuildToken(lf.Password), lf.Port)
}

func newClient(baseUrl, token string, port uint16) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: true,
	}
	return &Client{
		baseUrl: baseUrl,
		token:   token,
		port:    port,
		cli:     &http.Client{Transport: transport},
	}
}

func (c *Client) BaseUrl() string {
	return c.baseUrl
}

func (c *Client) Port() uint16 {
	return c.port
}

// GetHoveredChampion returns the champion currently hovered in champ select.
// A nil champion without error means the response had no champion id, which is what the
// client answers outside of champ select. Errors are transport failures only.
func (c *Client) GetHoveredChampion(ctx context.Context) (*Champion, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseUrl+mySelectionPath, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build my-selection request")
	}
	req.Header.Set("Authorization", c.token)
	req.Header.Set("Accept", "application/json")
	resp, err := c.cli.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "query my-selection")
	}
	defer resp.Body.Close()
	bts, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read my-selection")
	}
	selection := &mySelection{}
	if err = json.Unmarshal(bts, selection); err != nil || selection.ChampionID == nil {
		return nil, nil
	}
	return &Champion{
		Name: champion.Name(*selection.ChampionID),
		Role: RoleUnsure,
	}, nil
}
