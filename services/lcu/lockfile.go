package lcu

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Lockfile holds the connection credentials the running client writes next to its executable.
type Lockfile struct {
	Port     uint16
	Password string
}

// ReadLockfile parses <leagueDir>/lockfile, laid out as name:pid:port:password:protocol.
// A missing file means the client is not running and is reported as ErrClientNotRunning.
func ReadLockfile(leagueDir string) (*Lockfile, error) {
	path := filepath.Join(leagueDir, lockfileName)
	bts, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &notRunningError{path: path, err: err}
		}
		return nil, errors.Wrap(err, "read lockfile")
	}
	return ParseLockfile(string(bts))
}

// ParseLockfile extracts port and password. The password is kept verbatim and a bad
// port falls back to DefaultPort.
func ParseLockfile(contents string) (*Lockfile, error) {
	fields := strings.Split(contents, ":")
	if len(fields) < lockfileFieldNum {
		return nil, errors.Wrapf(ErrMalformedLockfile, "want %d fields, got %d", lockfileFieldNum, len(fields))
	}
	port, err := strconv.ParseUint(fields[2], 10, 16)
	if err != nil {
		port = uint64(DefaultPort)
	}
	return &Lockfile{
		Port:     uint16(port),
		Password: fields[3],
	}, nil
}

// notRunningError matches both ErrClientNotRunning and the underlying fs error.
type notRunningError struct {
	path string
	err  error
}

func (e *notRunningError) Error() string {
	return ErrClientNotRunning.Error() + ": " + e.path
}

func (e *notRunningError) Unwrap() error {
	return e.err
}

func (e *notRunningError) Is(target error) bool {
	return target == ErrClientNotRunning
}
