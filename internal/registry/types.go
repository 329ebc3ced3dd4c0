package registry

import (
	"context"
	"encoding/json"
)

// Entry is one known plugin. Name is the natural key.
//
// Keys other than name, dir and port are kept in Extra and written back
// after the known keys, so other tools sharing the file do not lose data.
type Entry struct {
	Name  string                     `json:"name"`
	Dir   string                     `json:"dir"`
	Port  int                        `json:"port"`
	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the known keys and keeps the rest in Extra.
func (e *Entry) UnmarshalJSON(data []byte) error {
	raw, err := decodeObject(data)
	if err != nil {
		return err
	}
	var out Entry
	if err := takeField(raw, "name", &out.Name); err != nil {
		return err
	}
	if err := takeField(raw, "dir", &out.Dir); err != nil {
		return err
	}
	if out.Port, err = takePort(raw); err != nil {
		return err
	}
	out.Extra = extraFields(raw)
	*e = out
	return nil
}

// MarshalJSON writes name, dir and port first, then Extra in key order.
func (e Entry) MarshalJSON() ([]byte, error) {
	return encodeObject([]field{
		{"name", e.Name},
		{"dir", e.Dir},
		{"port", e.Port},
	}, e.Extra)
}

// File is the whole persisted registry. Top-level keys other than plugins
// are kept in Extra.
type File struct {
	Plugins []Entry                    `json:"plugins"`
	Extra   map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes plugins and keeps the rest in Extra.
func (f *File) UnmarshalJSON(data []byte) error {
	raw, err := decodeObject(data)
	if err != nil {
		return err
	}
	var out File
	if err := takeField(raw, "plugins", &out.Plugins); err != nil {
		return err
	}
	out.Extra = extraFields(raw)
	*f = out
	return nil
}

// MarshalJSON writes plugins first, then Extra in key order. A nil plugin
// list is written as [].
func (f File) MarshalJSON() ([]byte, error) {
	plugins := f.Plugins
	if plugins == nil {
		plugins = []Entry{}
	}
	return encodeObject([]field{{"plugins", plugins}}, f.Extra)
}

// Find returns a pointer to the entry named name, or nil.
func (f *File) Find(name string) *Entry {
	for i := range f.Plugins {
		if f.Plugins[i].Name == name {
			return &f.Plugins[i]
		}
	}
	return nil
}

// Outcome describes what Reconcile did to the registry.
type Outcome int

const (
	// Added means a new entry was appended and the file written.
	Added Outcome = iota
	// Unchanged means the entry already pointed at the directory.
	Unchanged
	// Updated means the user confirmed and the entry's dir was rewritten.
	Updated
	// Declined means the user kept the stored directory.
	Declined
)

func (o Outcome) String() string {
	switch o {
	case Added:
		return "added"
	case Unchanged:
		return "unchanged"
	case Updated:
		return "updated"
	case Declined:
		return "declined"
	default:
		return "unknown"
	}
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, question string, defaultYes bool) (bool, error)
}

// ConfirmFunc adapts a plain function to Confirmer.
type ConfirmFunc func(ctx context.Context, question string, defaultYes bool) (bool, error)

// Confirm calls f.
func (f ConfirmFunc) Confirm(ctx context.Context, question string, defaultYes bool) (bool, error) {
	return f(ctx, question, defaultYes)
}
