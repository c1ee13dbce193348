// Package pathsplit decomposes filesystem paths into the ordered display
// segments the selector operates on.
package pathsplit

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Split breaks a path into display segments. Every segment except the last
// keeps its trailing separator, so concatenating segments[0..i] yields the
// ancestor path at depth i. A root or drive prefix becomes the first
// segment, with the root marker merged into it. `.` and `..` components
// are dropped. A path with no usable components collapses to ".".
//
// Split is total: any string yields at least one segment.
func Split(path string) []string {
	sep := string(filepath.Separator)

	var segs []string
	rest := path
	if vol := filepath.VolumeName(path); vol != "" {
		rest = path[len(vol):]
		if len(rest) > 0 && os.IsPathSeparator(rest[0]) {
			segs = append(segs, vol+sep)
		} else {
			segs = append(segs, vol)
		}
	} else if len(rest) > 0 && os.IsPathSeparator(rest[0]) {
		segs = append(segs, sep)
	}

	var names []string
	for _, name := range strings.FieldsFunc(rest, isSep) {
		if name == "." || name == ".." {
			continue
		}
		names = append(names, name)
	}
	for i, name := range names {
		if i < len(names)-1 {
			name += sep
		}
		segs = append(segs, name)
	}

	if len(segs) == 0 {
		segs = []string{"."}
	}
	return segs
}

func isSep(r rune) bool {
	return r < utf8.RuneSelf && os.IsPathSeparator(byte(r))
}
