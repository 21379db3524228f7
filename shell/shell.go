// Package shell holds the presentation state machine. Transition is pure: effects such as
// validating or persisting a directory and reading the lockfile happen in the caller, which
// reports their outcome through events.
package shell

import (
	"github.com/beastars1/fiddleless/services/lcu"
)

type (
	Mode   int
	Status int

	Modal struct {
		Header string `json:"header"`
		Text   string `json:"text"`
	}

	State struct {
		Mode       Mode          `json:"mode"`
		Status     Status        `json:"status"`
		InstallDir string        `json:"installDir,omitempty"`
		Modal      *Modal        `json:"modal,omitempty"`
		Champion   *lcu.Champion `json:"champion,omitempty"`
		Label      string        `json:"label"`
	}

	Event interface {
		isEvent()
	}

	// Started carries the result of loading the cached install directory.
	Started struct {
		Dir string
		Err error
	}
	// DirPicked carries a folder chosen in the configurator, its validation and save outcome.
	DirPicked struct {
		Path    string
		Valid   bool
		SaveErr error
	}
	ModalDismissed struct{}
	// LockfileRead carries the outcome of the one lockfile read done when entering Main.
	LockfileRead struct {
		Err error
	}
	// Polled carries one hovered champion query.
	Polled struct {
		Champion *lcu.Champion
		Err      error
	}
	CloseRequested struct{}
)

const (
	ModeConfigurator Mode = iota
	ModeMain
	ModeClosed
)

const (
	StatusNone Status = iota
	StatusConnecting
	StatusNotRunning
	StatusPolling
)

const (
	InvalidDirHeader = "Invalid directory given"
	InvalidDirText   = "This directory isn't a valid LoL game folder."
	SaveFailedHeader = "Could not save directory"
	SaveFailedText   = "The chosen folder could not be remembered, please try again."

	LabelNotInChampSelect = "Not in champion select!"
	LabelError            = "Could not reach the League client"
)

func (Started) isEvent()        {}
func (DirPicked) isEvent()      {}
func (ModalDismissed) isEvent() {}
func (LockfileRead) isEvent()   {}
func (Polled) isEvent()         {}
func (CloseRequested) isEvent() {}

func (m Mode) String() string {
	switch m {
	case ModeConfigurator:
		return "configurator"
	case ModeMain:
		return "main"
	case ModeClosed:
		return "closed"
	}
	return "unknown"
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (s Status) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusConnecting:
		return "connecting"
	case StatusNotRunning:
		return "notRunning"
	case StatusPolling:
		return "polling"
	}
	return "unknown"
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Initial is the state before the cache has been looked at.
func Initial() State {
	return State{Mode: ModeConfigurator}
}

// Transition returns the state that follows evt. Events that make no sense in the current
// state leave it unchanged.
func Transition(s State, evt Event) State {
	if s.Mode == ModeClosed {
		return s
	}
	switch e := evt.(type) {
	case CloseRequested:
		s.Mode = ModeClosed
		s.Modal = nil
	case ModalDismissed:
		s.Modal = nil
	case Started:
		if e.Err != nil || e.Dir == "" {
			return State{Mode: ModeConfigurator}
		}
		return enterMain(e.Dir)
	case DirPicked:
		if s.Mode != ModeConfigurator {
			return s
		}
		// the picked path is dropped on failure, otherwise the error would be raised again
		// on every cycle
		if !e.Valid {
			s.InstallDir = ""
			s.Modal = &Modal{Header: InvalidDirHeader, Text: InvalidDirText}
			return s
		}
		if e.SaveErr != nil {
			s.InstallDir = ""
			s.Modal = &Modal{Header: SaveFailedHeader, Text: SaveFailedText}
			return s
		}
		return enterMain(e.Path)
	case LockfileRead:
		if s.Mode != ModeMain || s.Status != StatusConnecting {
			return s
		}
		if e.Err != nil {
			s.Status = StatusNotRunning
			return s
		}
		s.Status = StatusPolling
	case Polled:
		if s.Mode != ModeMain || s.Status != StatusPolling {
			return s
		}
		switch {
		case e.Err != nil:
			s.Champion = nil
			s.Label = LabelError
		case e.Champion == nil:
			s.Champion = nil
			s.Label = LabelNotInChampSelect
		default:
			champ := *e.Champion
			s.Champion = &champ
			s.Label = champ.Name
		}
	}
	return s
}

func enterMain(dir string) State {
	return State{
		Mode:       ModeMain,
		Status:     StatusConnecting,
		InstallDir: dir,
	}
}
