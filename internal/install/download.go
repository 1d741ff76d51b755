package install

import (
	"context"
	"io"
	"net/http"
	"os"

	"arcctl/internal/azdata"
)

// downloadFunc fetches url into a temp file and returns its path.
type downloadFunc func(ctx context.Context, url, pattern string) (string, error)

// downloadToTemp streams url into a file created from pattern under the
// system temp dir. The file is left in place for the caller; temp-dir
// cleanup is the OS's concern.
func downloadToTemp(ctx context.Context, url, pattern string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &azdata.NetworkError{URL: url, Err: err}
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", &azdata.NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", &azdata.NetworkError{URL: url, Err: errStatus(resp.Status)}
	}

	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, resp.Body); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

type errStatus string

func (e errStatus) Error() string { return "unexpected status " + string(e) }
