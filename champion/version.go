package champion

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/beastars1/fiddleless/pkg/tool"
	"github.com/pkg/errors"
)

const (
	versionUrl = "%s/api/versions.json"
)

var ErrNoVersion = errors.New("no data dragon version")

// GetVersions returns at most the five newest Data Dragon versions, newest first.
func GetVersions(ctx context.Context) ([]string, error) {
	body, err := tool.HttpGet(ctx, fmt.Sprintf(versionUrl, ddragonBaseUrl))
	if err != nil {
		return nil, err
	}
	var versions []string
	if err = json.Unmarshal(body, &versions); err != nil {
		return nil, errors.Wrap(err, "decode versions")
	}
	if len(versions) > 5 {
		return versions[:5], nil
	}
	return versions, nil
}

func LatestVersion(ctx context.Context) (string, error) {
	versions, err := GetVersions(ctx)
	if err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", ErrNoVersion
	}
	return versions[0], nil
}
