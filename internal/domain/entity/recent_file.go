package entity

import "time"

// RecentFile is a config file that was opened with the editor.
type RecentFile struct {
	ID        string    `json:"id" yaml:"id"`
	Path      string    `json:"path" yaml:"path"`
	OpenCount int64     `json:"open_count" yaml:"open_count"`
	OpenedAt  time.Time `json:"opened_at" yaml:"opened_at"`
	// SavedAt is zero until the file is saved.
	SavedAt time.Time `json:"saved_at,omitzero" yaml:"saved_at,omitempty"`
}

// Saved reports whether the file was ever saved from the editor.
func (f *RecentFile) Saved() bool {
	return !f.SavedAt.IsZero()
}
