package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/cinteza-dev/cinteza/internal/config"
	"github.com/cinteza-dev/cinteza/internal/profile"
	"github.com/cinteza-dev/cinteza/internal/workspace"
)

// openWorkspace loads the profiles file named by the --file flag, or
// by cinteza.yaml when the flag is empty. A missing profiles file
// yields an empty workspace at that path.
func openWorkspace(flagPath string) (*workspace.Workspace, string, error) {
	cfg, err := config.Load(config.FileName)
	if err != nil {
		return nil, "", err
	}

	path := flagPath
	if path == "" {
		path = cfg.Workspace
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return workspace.New(cfg.Export.Options()), path, nil
	}

	ws, err := workspace.Load(path, cfg.Export.Options())
	if err != nil {
		return nil, "", err
	}
	return ws, path, nil
}

// findProfile resolves a profile by name with a friendly error.
func findProfile(ws *workspace.Workspace, name string) (*profile.Profile, error) {
	if name == "" {
		return nil, fmt.Errorf("no profile given (use --profile)")
	}
	p, ok := ws.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown profile %q", name)
	}
	return p, nil
}
