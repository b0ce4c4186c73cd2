package index

// HymnIndex defines the catalogue operations. Consumers depend on this
// interface rather than the concrete *DB type.
type HymnIndex interface {
	UpsertHymn(h HymnRow, lyrics string, chords []string) error
	DeleteByPath(path string) error
	GetChecksum(path string) (string, error)
	GetHymn(code string) (*HymnRow, error)
	ListHymns(limit, offset int, rhythm, sort string) ([]HymnRow, int, error)
	Search(query string, limit int) ([]SearchResult, error)
	HymnsWithChord(name string) ([]HymnRow, error)
	ChordUsage() ([]ChordCount, error)
	AllChecksums() (map[string]string, error)
	Close() error
}

// Verify *DB satisfies HymnIndex at compile time.
var _ HymnIndex = (*DB)(nil)
