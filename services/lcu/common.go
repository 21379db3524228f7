package lcu

import (
	"github.com/pkg/errors"
)

const (
	lockfileName     = "lockfile"
	lockfileFieldNum = 5
	// DefaultPort is used when the lockfile port field does not parse.
	DefaultPort uint16 = 1234
	authUser           = "riot"
	loopbackHost       = "127.0.0.1"
)

var (
	ErrClientNotRunning  = errors.New("league client is not running")
	ErrMalformedLockfile = errors.New("malformed lockfile")
)
