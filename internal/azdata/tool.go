package azdata

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	version "github.com/hashicorp/go-version"
	"github.com/pkg/errors"

	"arcctl/internal/system"
)

// BinaryName is the executable this package manages.
const BinaryName = "azdata"

// Tool is a handle to a discovered azdata binary. Version always reflects
// the most recent successful `--version` call against Path; it is never
// guessed or defaulted. Found flips to false when an invocation discovers
// the binary has gone missing from disk.
type Tool struct {
	Path    string
	Version *version.Version
	Found   bool
}

// Find locates azdata on PATH (falling back to well-known install
// locations) and loads its version. Returns *NotFoundError when no binary
// exists anywhere we know to look.
func Find(ctx context.Context, run system.RunFunc) (*Tool, error) {
	path, err := exec.LookPath(BinaryName)
	if err != nil {
		path = ""
		for _, cand := range defaultLocations() {
			if st, serr := os.Stat(cand); serr == nil && !st.IsDir() {
				path = cand
				break
			}
		}
	}
	if path == "" {
		return nil, &NotFoundError{}
	}

	t := &Tool{Path: path, Found: true}
	if err := t.RefreshVersion(ctx, run); err != nil {
		return t, errors.Wrap(err, "reading azdata version")
	}
	return t, nil
}

// RefreshVersion re-invokes `azdata --version` and updates the cached
// version on success. On failure the previous value is left untouched.
func (t *Tool) RefreshVersion(ctx context.Context, run system.RunFunc) error {
	out, err := run(ctx, t.Path, []string{"--version"}, nil)
	if err != nil {
		return err
	}
	v, err := ParseVersion(out.Stdout)
	if err != nil {
		return err
	}
	t.Version = v
	return nil
}

// defaultLocations lists install paths probed when azdata is not on PATH.
func defaultLocations() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			filepath.Join(os.Getenv("ProgramFiles(x86)"), "Microsoft SDKs", "Azdata", "CLI", "wbin", "azdata.cmd"),
		}
	case "darwin":
		return []string{
			"/usr/local/bin/azdata",
			"/opt/homebrew/bin/azdata",
		}
	default:
		return []string{"/usr/local/bin/azdata", "/usr/bin/azdata"}
	}
}
