package dataset

import "sync"

// Source is a memoized Load: the file is read and parsed at most once, and
// every later call returns the same Table (or the same error). Safe for
// concurrent use.
type Source struct {
	path string
	opts Options
	load func(string, Options) (*Table, error)

	once  sync.Once
	table *Table
	err   error
}

// NewSource returns a Source for the file at path. Nothing is read until
// the first call to Table.
func NewSource(path string, opts Options) *Source {
	return &Source{path: path, opts: opts, load: Load}
}

// Table returns the loaded table, loading it on first use.
func (s *Source) Table() (*Table, error) {
	s.once.Do(func() {
		s.table, s.err = s.load(s.path, s.opts)
	})
	return s.table, s.err
}

// Path returns the location the Source reads from.
func (s *Source) Path() string { return s.path }
