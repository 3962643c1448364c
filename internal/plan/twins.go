package plan

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// A twin is one member of a group of paths that collapse to the same
// case-folded target, which a case-insensitive filesystem treats as one name.
type twin struct {
	fsPath   string // path as it exists on disk now
	proposed string // target path, fsPath when nothing was proposed
	order    int64  // creation time (unix nanos) or alphabetical rank
}

// identifyTwins finds groups of two or more paths whose proposed targets
// are equal under case folding. Paths without a proposed change participate
// with their current path: a rename can collide with a file that is not
// being renamed at all.
func identifyTwins(paths []string, p *Proposal) [][]twin {
	byFolded := make(map[string]int) // folded target -> family index, -1 = single so far
	firstSeen := make(map[string]twin)
	var families [][]twin

	for _, path := range paths {
		proposed, ok := p.Get(path)
		if !ok {
			proposed = path
		}
		member := twin{fsPath: path, proposed: proposed}
		folded := strings.ToLower(proposed)

		idx, seen := byFolded[folded]
		switch {
		case !seen:
			byFolded[folded] = -1
			firstSeen[folded] = member
		case idx < 0:
			families = append(families, []twin{firstSeen[folded], member})
			byFolded[folded] = len(families) - 1
		default:
			families[idx] = append(families[idx], member)
		}
	}
	return families
}

// ResolveTwins rewrites the proposal so every member of a case-folded
// collision group gets a distinct "tw<N>_" prefix on its target base name.
// Ranks follow creation time via probe, oldest first; when a creation time
// cannot be read the whole group falls back to case-insensitive alphabetical
// order of the current paths, which keeps the result deterministic. Ties
// keep discovery order.
func ResolveTwins(paths []string, p *Proposal, probe Prober) {
	for _, fam := range identifyTwins(paths, p) {
		rankFamily(fam, probe)

		sort.SliceStable(fam, func(i, j int) bool {
			return fam[i].order < fam[j].order
		})

		for i, tw := range fam {
			dir := filepath.Dir(tw.proposed)
			base := "tw" + strconv.Itoa(i) + "_" + filepath.Base(tw.proposed)
			p.Set(tw.fsPath, filepath.Join(dir, base))
		}
	}
}

func rankFamily(twins []twin, probe Prober) {
	if probe != nil {
		ok := true
		for i := range twins {
			t, err := probe.CreationTime(twins[i].fsPath)
			if err != nil {
				ok = false
				break
			}
			twins[i].order = t.UnixNano()
		}
		if ok {
			return
		}
	}

	// Alphabetical fallback: rank by case-folded current path. Family
	// members fold to the same string by construction, so the raw path
	// breaks the tie; ranks must not depend on discovery order.
	ranked := make([]int, len(twins))
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		pa, pb := twins[ranked[a]].fsPath, twins[ranked[b]].fsPath
		la, lb := strings.ToLower(pa), strings.ToLower(pb)
		if la != lb {
			return la < lb
		}
		return pa < pb
	})
	for rank, i := range ranked {
		twins[i].order = int64(rank)
	}
}
