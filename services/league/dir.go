package league

import (
	"path/filepath"

	"github.com/beastars1/fiddleless/pkg/tool"
)

const (
	clientExeName = "LeagueClient.exe"
	gameDbName    = "Game.db"
)

// IsLeagueDir reports whether dir looks like a League of Legends installation.
func IsLeagueDir(dir string) bool {
	if dir == "" {
		return false
	}
	return tool.IsExist(filepath.Join(dir, clientExeName)) && tool.IsExist(filepath.Join(dir, gameDbName))
}
