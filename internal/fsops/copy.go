package fsops

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// CopyDirectory recursively copies the contents of src into dst, creating
// dst if needed, and then verifies the copy with [IsIdenticalDir]. It
// returns the number of content bytes copied. A verification mismatch is an
// error: renaming would then proceed on an incomplete copy.
func CopyDirectory(src, dst string) (int64, error) {
	written, err := copyTree(src, dst)
	if err != nil {
		return written, err
	}

	identical, mismatches, err := IsIdenticalDir(src, dst)
	if err != nil {
		return written, err
	}
	if !identical {
		return written, fmt.Errorf("copy of %s does not match the original: %s", src, mismatches[0])
	}
	return written, nil
}

func copyTree(src, dst string) (int64, error) {
	if err := os.MkdirAll(dst, 0755); err != nil {
		return 0, err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return 0, err
	}

	var written int64
	for _, entry := range entries {
		s := filepath.Join(src, entry.Name())
		d := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			n, err := copyTree(s, d)
			written += n
			if err != nil {
				return written, err
			}
			continue
		}
		n, err := copyFile(s, d)
		written += n
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// copyFile copies one regular file, preserving its mode. Symlinks are
// recreated pointing at the same target.
func copyFile(src, dst string) (int64, error) {
	info, err := os.Lstat(src)
	if err != nil {
		return 0, err
	}

	if info.Mode()&os.ModeSymlink != 0 {
		target, err := os.Readlink(src)
		if err != nil {
			return 0, err
		}
		return 0, os.Symlink(target, dst)
	}

	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return n, err
	}
	return n, out.Close()
}

// IsIdenticalDir verifies recursively that dst is an exact copy of src:
// same entries, same file contents. Junk files are ignored on both sides.
// The mismatch list names what differs, prefixed with the subdirectory it
// was found in.
func IsIdenticalDir(src, dst string) (bool, []string, error) {
	srcInfo, err := os.Stat(src)
	if err != nil || !srcInfo.IsDir() {
		return false, []string{fmt.Sprintf("%s is not a directory", src)}, nil
	}
	dstInfo, err := os.Stat(dst)
	if err != nil || !dstInfo.IsDir() {
		return false, []string{fmt.Sprintf("%s is not a directory", dst)}, nil
	}

	mismatches, err := compareDirs(src, dst, "")
	if err != nil {
		return false, nil, err
	}
	return len(mismatches) == 0, mismatches, nil
}

func compareDirs(src, dst, rel string) ([]string, error) {
	srcNames, err := contentNames(src)
	if err != nil {
		return nil, err
	}
	dstNames, err := contentNames(dst)
	if err != nil {
		return nil, err
	}

	var mismatches []string
	at := func(name string) string { return filepath.Join(rel, name) }

	for name := range srcNames {
		if _, ok := dstNames[name]; !ok {
			mismatches = append(mismatches, fmt.Sprintf("only in %s: %s", src, at(name)))
		}
	}
	for name := range dstNames {
		if _, ok := srcNames[name]; !ok {
			mismatches = append(mismatches, fmt.Sprintf("only in %s: %s", dst, at(name)))
		}
	}

	var common []string
	for name := range srcNames {
		if _, ok := dstNames[name]; ok {
			common = append(common, name)
		}
	}
	sort.Strings(common)

	for _, name := range common {
		s, d := filepath.Join(src, name), filepath.Join(dst, name)
		if srcNames[name] != dstNames[name] {
			mismatches = append(mismatches, fmt.Sprintf("kind mismatch: %s", at(name)))
			continue
		}
		if srcNames[name] { // directory
			sub, err := compareDirs(s, d, at(name))
			if err != nil {
				return nil, err
			}
			mismatches = append(mismatches, sub...)
			continue
		}
		same, err := sameFileContent(s, d)
		if err != nil {
			mismatches = append(mismatches, fmt.Sprintf("error comparing %s: %v", at(name), err))
			continue
		}
		if !same {
			mismatches = append(mismatches, fmt.Sprintf("content differs: %s", at(name)))
		}
	}

	sort.Strings(mismatches)
	return mismatches, nil
}

// contentNames maps entry name to isDir for a directory, junk excluded.
func contentNames(dir string) (map[string]bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		if IsJunk(e.Name()) {
			continue
		}
		names[e.Name()] = e.IsDir()
	}
	return names, nil
}

func sameFileContent(a, b string) (bool, error) {
	ia, err := os.Lstat(a)
	if err != nil {
		return false, err
	}
	ib, err := os.Lstat(b)
	if err != nil {
		return false, err
	}

	// Symlinks compare by target, not by content behind them.
	if ia.Mode()&os.ModeSymlink != 0 || ib.Mode()&os.ModeSymlink != 0 {
		if ia.Mode()&os.ModeSymlink == 0 || ib.Mode()&os.ModeSymlink == 0 {
			return false, nil
		}
		ta, err := os.Readlink(a)
		if err != nil {
			return false, err
		}
		tb, err := os.Readlink(b)
		if err != nil {
			return false, err
		}
		return ta == tb, nil
	}

	if ia.Size() != ib.Size() {
		return false, nil
	}

	fa, err := os.Open(a)
	if err != nil {
		return false, err
	}
	defer fa.Close()
	fb, err := os.Open(b)
	if err != nil {
		return false, err
	}
	defer fb.Close()

	bufA := make([]byte, 64*1024)
	bufB := make([]byte, 64*1024)
	for {
		na, errA := io.ReadFull(fa, bufA)
		nb, errB := io.ReadFull(fb, bufB)
		if !bytes.Equal(bufA[:na], bufB[:nb]) {
			return false, nil
		}
		if errA == io.EOF || errA == io.ErrUnexpectedEOF {
			return errB == io.EOF || errB == io.ErrUnexpectedEOF, nil
		}
		if errA != nil {
			return false, errA
		}
		if errB != nil {
			return false, errB
		}
	}
}
