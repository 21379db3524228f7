package league

import (
	"os"
	"os/user"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

const (
	cacheKey      = "league_dir"
	cacheDirName  = "fiddleless"
	cacheFileName = "config.txt"
)

var ErrInvalidCacheFormat = errors.New("cache file has invalid format")

// LocationCache persists the chosen installation directory as a single league_dir=<path> line.
// Paths containing '=' are stored as is and read back up to the first '='.
type LocationCache struct {
	path string
}

func NewLocationCache(path string) *LocationCache {
	return &LocationCache{path: path}
}

// DefaultLocationCache resolves the per-user cache location of the current OS user.
func DefaultLocationCache() (*LocationCache, error) {
	u, err := user.Current()
	if err != nil {
		return nil, errors.Wrap(err, "lookup current user")
	}
	return NewLocationCache(CachePath(runtime.GOOS, u.Username)), nil
}

// CachePath returns the cache file location for username on goos.
func CachePath(goos, username string) string {
	// windows reports DOMAIN\user
	if i := strings.LastIndex(username, `\`); i >= 0 {
		username = username[i+1:]
	}
	username = strings.TrimSpace(username)
	switch goos {
	case "windows":
		return path.Join("C:/Users", username, "AppData/Local", cacheDirName, cacheFileName)
	case "darwin":
		return path.Join("/Users", username, "Library/Application Support", cacheDirName, cacheFileName)
	default:
		return path.Join("/home", username, ".config", cacheDirName, cacheFileName)
	}
}

func (c *LocationCache) Path() string {
	return c.path
}

func (c *LocationCache) Save(leagueDir string) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0700); err != nil {
		return errors.Wrap(err, "create cache dir")
	}
	if err := os.WriteFile(c.path, []byte(cacheKey+"="+leagueDir), 0600); err != nil {
		return errors.Wrap(err, "write cache")
	}
	return nil
}

// Load returns the cached directory without checking that it is still valid.
func (c *LocationCache) Load() (string, error) {
	bts, err := os.ReadFile(c.path)
	if err != nil {
		return "", errors.Wrap(err, "read cache")
	}
	key, val, ok := strings.Cut(string(bts), "=")
	if !ok || key != cacheKey {
		return "", errors.Wrapf(ErrInvalidCacheFormat, "%s", c.path)
	}
	return val, nil
}
