// Package workspace owns the open company profiles. It is the
// top-level application context: every command loads a workspace,
// mutates it and saves it back.
package workspace

import (
	"fmt"

	"github.com/cinteza-dev/cinteza/internal/export"
	"github.com/cinteza-dev/cinteza/internal/profile"
)

// Workspace is an ordered list of company profiles.
type Workspace struct {
	profiles []*profile.Profile
	defaults export.Options
}

// New creates an empty workspace. New profiles start with the given
// export option defaults.
func New(defaults export.Options) *Workspace {
	return &Workspace{defaults: defaults}
}

// Load reads a profiles document into a fresh workspace, replacing
// nothing: the caller decides what to do with the previous one.
func Load(path string, defaults export.Options) (*Workspace, error) {
	profiles, err := profile.LoadAll(path)
	if err != nil {
		return nil, err
	}
	return &Workspace{profiles: profiles, defaults: defaults}, nil
}

// Save writes all profiles to path.
func (w *Workspace) Save(path string) error {
	return profile.SaveAll(path, w.profiles)
}

// Add creates a profile. An empty name gets a "Company N" default.
// Duplicate names are rejected so profiles stay addressable.
func (w *Workspace) Add(name string) (*profile.Profile, error) {
	if name == "" {
		name = fmt.Sprintf("Company %d", len(w.profiles)+1)
	}
	if _, ok := w.Get(name); ok {
		return nil, fmt.Errorf("profile %q already exists", name)
	}
	p := profile.New(name, w.defaults)
	w.profiles = append(w.profiles, p)
	return p, nil
}

// Remove deletes the named profile. Returns false if absent.
func (w *Workspace) Remove(name string) bool {
	for i, p := range w.profiles {
		if p.Name == name {
			w.profiles = append(w.profiles[:i], w.profiles[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the named profile.
func (w *Workspace) Get(name string) (*profile.Profile, bool) {
	for _, p := range w.profiles {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Profiles returns the profiles in display order.
func (w *Workspace) Profiles() []*profile.Profile {
	return w.profiles
}

// Len returns the number of open profiles.
func (w *Workspace) Len() int {
	return len(w.profiles)
}
