package scan

import (
	"io/fs"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// dirMatcher is one compiled .gitignore, scoped to the directory it lives in.
type dirMatcher struct {
	base    string
	matcher *ignore.GitIgnore
}

// FindFiles walks root and returns every regular file, in lexical order,
// skipping .git directories, paths matched by a .gitignore at the root or in
// any parent directory along the walk, and files whose base name matches any
// of the exclude globs.
func FindFiles(root string, excludes []string) ([]string, error) {
	var matchers []dirMatcher
	addMatcher := func(dir string) {
		if m, err := ignore.CompileIgnoreFile(filepath.Join(dir, ".gitignore")); err == nil {
			matchers = append(matchers, dirMatcher{base: dir, matcher: m})
		}
	}

	// A .gitignore applies only to paths under its own directory. The walk
	// is depth-first, so matchers from already-left subtrees simply never
	// see a descendant path again.
	ignored := func(path string) bool {
		for _, dm := range matchers {
			rel, err := filepath.Rel(dm.base, path)
			if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
				continue
			}
			if dm.matcher.MatchesPath(filepath.ToSlash(rel)) {
				return true
			}
		}
		return false
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			if path != root && ignored(path) {
				return filepath.SkipDir
			}
			addMatcher(path)
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		if ignored(path) {
			return nil
		}
		for _, pattern := range excludes {
			if ok, _ := filepath.Match(pattern, d.Name()); ok {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
