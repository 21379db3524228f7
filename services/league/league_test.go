package league

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	require.NoError(t, os.WriteFile(path, nil, 0600))
}

func TestIsLeagueDir(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  bool
	}{
		{name: "both markers", files: []string{clientExeName, gameDbName}, want: true},
		{name: "missing db", files: []string{clientExeName}},
		{name: "missing exe", files: []string{gameDbName}},
		{name: "empty dir"},
		{name: "unrelated files", files: []string{"League of Legends.exe", "lockfile"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tt.files {
				touch(t, filepath.Join(dir, f))
			}
			assert.Equal(t, tt.want, IsLeagueDir(dir))
		})
	}
}

func TestIsLeagueDirNonexistent(t *testing.T) {
	assert.False(t, IsLeagueDir(filepath.Join(t.TempDir(), "nope")))
	assert.False(t, IsLeagueDir(""))
}

func TestLocationCacheRoundTrip(t *testing.T) {
	for _, dir := range []string{
		`C:\Riot Games\League of Legends`,
		"/opt/league of legends/",
		"relative/dir",
		"with trailing newline\n",
		"",
	} {
		c := NewLocationCache(filepath.Join(t.TempDir(), "nested", "fiddleless", cacheFileName))
		require.NoError(t, c.Save(dir))

		got, err := c.Load()
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	}
}

func TestLocationCacheFileFormat(t *testing.T) {
	c := NewLocationCache(filepath.Join(t.TempDir(), cacheFileName))
	require.NoError(t, c.Save(`C:\Riot Games\League of Legends`))

	bts, err := os.ReadFile(c.Path())
	require.NoError(t, err)
	assert.Equal(t, `league_dir=C:\Riot Games\League of Legends`, string(bts))
}

func TestLocationCacheOverwrite(t *testing.T) {
	c := NewLocationCache(filepath.Join(t.TempDir(), cacheFileName))
	require.NoError(t, c.Save("/first"))
	require.NoError(t, c.Save("/second"))

	got, err := c.Load()
	require.NoError(t, err)
	assert.Equal(t, "/second", got)
}

func TestLocationCacheLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{name: "wrong key", contents: "foo=bar"},
		{name: "no separator", contents: "league_dir"},
		{name: "empty file", contents: ""},
		{name: "key with spaces", contents: " league_dir=/x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), cacheFileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.contents), 0600))

			got, err := NewLocationCache(path).Load()
			assert.True(t, errors.Is(err, ErrInvalidCacheFormat))
			assert.Empty(t, got)
		})
	}
}

func TestLocationCacheLoadMissing(t *testing.T) {
	_, err := NewLocationCache(filepath.Join(t.TempDir(), cacheFileName)).Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.False(t, errors.Is(err, ErrInvalidCacheFormat))
}

func TestLocationCacheSaveFails(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	touch(t, blocker)

	err := NewLocationCache(filepath.Join(blocker, "fiddleless", cacheFileName)).Save("/x")
	assert.Error(t, err)
}

func TestCachePath(t *testing.T) {
	assert.Equal(t, "C:/Users/faker/AppData/Local/fiddleless/config.txt", CachePath("windows", `DESKTOP-1\faker`))
	assert.Equal(t, "C:/Users/faker/AppData/Local/fiddleless/config.txt", CachePath("windows", "faker\r\n"))
	assert.Equal(t, "/Users/faker/Library/Application Support/fiddleless/config.txt", CachePath("darwin", "faker"))
	assert.Equal(t, "/home/faker/.config/fiddleless/config.txt", CachePath("linux", "faker"))
	assert.Equal(t, CachePath("linux", "faker"), CachePath("linux", "faker"))
}
