package entity

// ChangeSet classifies keys that differ between the live and the original values.
type ChangeSet struct {
	Modified []string `json:"modified" yaml:"modified"`
	Added    []string `json:"added" yaml:"added"`
	Removed  []string `json:"removed" yaml:"removed"`
}

// Empty reports whether nothing changed.
func (c ChangeSet) Empty() bool {
	return len(c.Modified) == 0 && len(c.Added) == 0 && len(c.Removed) == 0
}

// Len returns the total number of changed keys.
func (c ChangeSet) Len() int {
	return len(c.Modified) + len(c.Added) + len(c.Removed)
}
