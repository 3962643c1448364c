package pipeline

// RunStats aggregates counters across one run.
type RunStats struct {
	ProposedFiles int
	ProposedDirs  int
	RenamedFiles  int
	RenamedDirs   int
	Failed        int
	LongPaths     int
	BytesCopied   int64
}

// Proposed returns the total number of proposed changes across kinds.
func (s RunStats) Proposed() int { return s.ProposedFiles + s.ProposedDirs }

// Renamed returns the total number of completed renames across kinds.
func (s RunStats) Renamed() int { return s.RenamedFiles + s.RenamedDirs }
