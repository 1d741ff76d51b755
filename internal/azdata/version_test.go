package azdata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	version "github.com/hashicorp/go-version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcctl/internal/channel"
	"arcctl/internal/system"
)

func TestParseVersion_FirstLineOnly(t *testing.T) {
	banners := map[string]string{
		"20.3.2\n":                          "20.3.2",
		"  20.3.2  \nBuild: abc123\nPython": "20.3.2",
		"15.0.4153\r\nextra":                "15.0.4153",
		"\n1.2.3\nrest":                     "1.2.3",
	}
	for banner, want := range banners {
		v, err := ParseVersion(banner)
		require.NoError(t, err, "banner %q", banner)
		assert.Equal(t, version.Must(version.NewVersion(want)), v)
	}
}

func TestParseVersion_Garbage(t *testing.T) {
	_, err := ParseVersion("not a version\n20.3.2")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Raw, "not a version")
}

func TestCompare_Antisymmetric(t *testing.T) {
	vers := []string{"1.0.0", "1.0.1", "1.1.0", "2.0.0", "20.3.2"}
	for _, a := range vers {
		for _, b := range vers {
			va := version.Must(version.NewVersion(a))
			vb := version.Must(version.NewVersion(b))
			assert.Equal(t, va.Compare(vb), -vb.Compare(va), "%s vs %s", a, b)
		}
		va := version.Must(version.NewVersion(a))
		assert.Zero(t, va.Compare(va))
	}
}

func TestUpdateAvailable_StrictlyGreaterOnly(t *testing.T) {
	v := func(s string) *version.Version { return version.Must(version.NewVersion(s)) }

	assert.True(t, UpdateAvailable(v("20.3.1"), v("20.3.2")))
	assert.False(t, UpdateAvailable(v("20.3.2"), v("20.3.2")))
	assert.False(t, UpdateAvailable(v("20.3.2"), v("20.3.1")))
	assert.False(t, UpdateAvailable(nil, v("20.3.2")))
	assert.False(t, UpdateAvailable(v("20.3.2"), nil))
}

func descriptorResolver(t *testing.T, body string, status int) (*Resolver, func()) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	ch := channel.Default()
	ch.ReleaseURL = srv.URL
	r := NewResolver(ch)
	r.HTTP = srv.Client()
	return r, srv.Close
}

func TestLatest_FromDescriptor(t *testing.T) {
	r, done := descriptorResolver(t, `{"linux":{"version":"20.3.5"},"windows":{"version":"20.3.4"}}`, http.StatusOK)
	defer done()

	v, err := r.Latest(context.Background(), "linux")
	require.NoError(t, err)
	assert.Equal(t, "20.3.5", v.String())
}

func TestLatest_DescriptorMissingPlatform(t *testing.T) {
	r, done := descriptorResolver(t, `{"linux":{"version":"20.3.5"}}`, http.StatusOK)
	defer done()

	_, err := r.Latest(context.Background(), "windows")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
}

func TestLatest_DescriptorMalformedJSON(t *testing.T) {
	r, done := descriptorResolver(t, `<html>maintenance</html>`, http.StatusOK)
	defer done()

	_, err := r.Latest(context.Background(), "linux")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Raw, "maintenance")
	assert.Equal(t, pe.Source, r.Channel.ReleaseURL)
}

func TestLatest_DescriptorHTTPError(t *testing.T) {
	r, done := descriptorResolver(t, `oops`, http.StatusInternalServerError)
	defer done()

	_, err := r.Latest(context.Background(), "linux")
	var ne *NetworkError
	require.True(t, errors.As(err, &ne))
}

func TestLatest_FromBrew(t *testing.T) {
	r := NewResolver(channel.Default())
	r.Run = func(ctx context.Context, name string, args []string, env map[string]string) (system.Output, error) {
		assert.Equal(t, "brew", name)
		assert.Equal(t, []string{"info", "azdata-cli", "--json"}, args)
		return system.Output{Stdout: `[{"versions":{"stable":"20.3.2"}}]`}, nil
	}

	v, err := r.Latest(context.Background(), "darwin")
	require.NoError(t, err)
	assert.Equal(t, "20.3.2", v.String())
}

func TestLatest_BrewMalformed(t *testing.T) {
	r := NewResolver(channel.Default())
	r.Run = func(ctx context.Context, name string, args []string, env map[string]string) (system.Output, error) {
		return system.Output{Stdout: `Error: no formulae found`}, nil
	}

	_, err := r.Latest(context.Background(), "darwin")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Raw, "no formulae found")
}
