// Package source reads the candidate commit message and locates the
// enclosing git worktree.
//
// Message files are read through a go-billy filesystem so the same code path
// serves the OS filesystem in production and an in-memory filesystem in tests.
package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/input-output-hk/catalyst-forge-libs/commitcheck/errors"
)

// Stdin is the path that selects standard input as the message source.
const Stdin = "-"

// ReadFile reads the message at path from fs.
func ReadFile(fs billy.Filesystem, path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.CodeMissingInput, "no commit message file given")
	}

	data, err := util.ReadFile(fs, path)
	if err != nil {
		return "", errors.WrapWithContext(err, errors.CodeReadFailed,
			"failed to read commit message", map[string]interface{}{"path": path})
	}
	return string(data), nil
}

// Read reads the message named by path. The path "-" reads stdin; any other
// path is read from the OS filesystem.
func Read(path string, stdin io.Reader) (string, error) {
	switch path {
	case "":
		return "", errors.New(errors.CodeMissingInput, "no commit message file given")
	case Stdin:
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(err, errors.CodeReadFailed, "failed to read commit message from stdin")
		}
		return string(data), nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.WrapWithContext(err, errors.CodeReadFailed,
			"failed to resolve commit message path", map[string]interface{}{"path": path})
	}
	return ReadFile(osfs.New(filepath.Dir(abs)), filepath.Base(abs))
}

// Describe returns a short human name for a source path, used in logs.
func Describe(path string) string {
	if path == Stdin {
		return "stdin"
	}
	return fmt.Sprintf("file %s", path)
}
