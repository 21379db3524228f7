package champion

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/beastars1/fiddleless/pkg/tool"
	"github.com/beastars1/fiddleless/services/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	Unknown = "Unknown"

	championListUrl = "%s/cdn/%s/data/%s/champion.json"
)

var (
	ErrEmptyChampionList = errors.New("empty champion list")

	ddragonBaseUrl = "https://ddragon.leagueoflegends.com"

	mu    = sync.RWMutex{}
	names = copyTable(defaultNames)
)

type (
	championList struct {
		Version string                  `json:"version"`
		Data    map[string]championInfo `json:"data"`
	}
	championInfo struct {
		ID    string `json:"id"`
		Key   string `json:"key"`
		Name  string `json:"name"`
		Title string `json:"title"`
	}
)

// Lookup returns the display name of a champion id.
func Lookup(id int) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()
	name, ok := names[id]
	return name, ok
}

// Name is Lookup with Unknown for ids missing from the table.
func Name(id int) string {
	if name, ok := Lookup(id); ok {
		return name
	}
	return Unknown
}

func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(names)
}

// Replace swaps the whole table.
func Replace(table map[int]string) {
	table = copyTable(table)
	mu.Lock()
	names = table
	mu.Unlock()
}

// Reset restores the built-in table.
func Reset() {
	Replace(defaultNames)
}

// Refresh loads the champion list of a Data Dragon version and locale into the table.
// An empty version resolves to the latest one.
func Refresh(ctx context.Context, version, locale string) (string, error) {
	if version == "" {
		latest, err := LatestVersion(ctx)
		if err != nil {
			return "", err
		}
		version = latest
	}
	table, err := GetChampionList(ctx, version, locale)
	if err != nil {
		return "", err
	}
	Replace(table)
	logger.Info("champion table refreshed", "version", version, "locale", locale, "count", len(table))
	return version, nil
}

func GetChampionList(ctx context.Context, version, locale string) (map[int]string, error) {
	body, err := tool.HttpGet(ctx, fmt.Sprintf(championListUrl, ddragonBaseUrl, version, locale))
	if err != nil {
		return nil, err
	}
	list := &championList{}
	if err = json.Unmarshal(body, list); err != nil {
		return nil, errors.Wrap(err, "decode champion list")
	}
	table := make(map[int]string, len(list.Data))
	for _, info := range list.Data {
		key, err := strconv.Atoi(info.Key)
		if err != nil {
			logger.Warn("skip champion with bad key", zap.Error(err), "id", info.ID)
			continue
		}
		table[key] = info.Name
	}
	if len(table) == 0 {
		return nil, errors.Wrapf(ErrEmptyChampionList, "version %s", version)
	}
	return table, nil
}

func copyTable(table map[int]string) map[int]string {
	c := make(map[int]string, len(table))
	for k, v := range table {
		c[k] = v
	}
	return c
}
