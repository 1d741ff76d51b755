package consent

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePrompter replies with a scripted response and records whether it
// was consulted.
type fakePrompter struct {
	resp  Response
	err   error
	asked int
	// last observed userInitiated flag
	userInitiated bool
}

func (f *fakePrompter) Ask(ctx context.Context, message string, userInitiated bool) (Response, error) {
	f.asked++
	f.userInitiated = userInitiated
	return f.resp, f.err
}

func newTestController(t *testing.T, resp Response) (*Controller, *fakePrompter) {
	t.Helper()
	p := &fakePrompter{resp: resp}
	return &Controller{
		Store:    NewStore(filepath.Join(t.TempDir(), "consent.json")),
		Prompter: p,
	}, p
}

func TestStore_ZeroStateDefaults(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "consent.json"))
	assert.Equal(t, PolicyPrompt, s.Policy(KeyInstall))
	assert.Equal(t, PolicyPrompt, s.Policy(KeyUpdate))
	assert.Equal(t, PolicyPrompt, s.Policy(KeyEULA))
	assert.False(t, s.EULAAccepted())
}

func TestStore_KeysAreIndependent(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "consent.json"))
	require.NoError(t, s.SetPolicy(KeyInstall, PolicyDontPrompt))

	assert.Equal(t, PolicyDontPrompt, s.Policy(KeyInstall))
	assert.Equal(t, PolicyPrompt, s.Policy(KeyUpdate))
	assert.Equal(t, PolicyPrompt, s.Policy(KeyEULA))
}

func TestStore_EULAMemento(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "consent.json"))
	require.NoError(t, s.SetEULAAccepted(true))
	assert.True(t, s.EULAAccepted())
	// policies untouched
	assert.Equal(t, PolicyPrompt, s.Policy(KeyEULA))
}

func TestConfirm_DontPromptSkipsSilently(t *testing.T) {
	ctrl, p := newTestController(t, ResponseYes)
	require.NoError(t, ctrl.Store.SetPolicy(KeyInstall, PolicyDontPrompt))

	ran := false
	ok, err := ctrl.Confirm(context.Background(), KeyInstall, false, "install?", func(context.Context) error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, ran, "action must not run")
	assert.Zero(t, p.asked, "prompter must not be consulted")
}

func TestConfirm_UserInitiatedOverridesDontPrompt(t *testing.T) {
	ctrl, p := newTestController(t, ResponseYes)
	require.NoError(t, ctrl.Store.SetPolicy(KeyInstall, PolicyDontPrompt))

	ok, err := ctrl.Confirm(context.Background(), KeyInstall, true, "install?", nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, p.asked)
	assert.True(t, p.userInitiated)
}

func TestConfirm_YesRunsActionAndReportsSuccess(t *testing.T) {
	ctrl, _ := newTestController(t, ResponseYes)

	ran := false
	ok, err := ctrl.Confirm(context.Background(), KeyUpdate, false, "update?", func(context.Context) error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, ran)
}

func TestConfirm_ActionFailurePropagates(t *testing.T) {
	ctrl, _ := newTestController(t, ResponseYes)
	boom := errors.New("apt broke")

	ok, err := ctrl.Confirm(context.Background(), KeyInstall, false, "install?", func(context.Context) error {
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.False(t, ok)
}

func TestConfirm_NeverPersistsAndThenSkips(t *testing.T) {
	ctrl, p := newTestController(t, ResponseNever)

	ok, err := ctrl.Confirm(context.Background(), KeyInstall, false, "install?", nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, PolicyDontPrompt, ctrl.Store.Policy(KeyInstall))

	// a later system-initiated check now skips without prompting
	p.resp = ResponseYes
	asked := p.asked
	ok, err = ctrl.Confirm(context.Background(), KeyInstall, false, "install?", nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, asked, p.asked)
}

func TestConfirm_LaterLeavesStateUnchanged(t *testing.T) {
	ctrl, _ := newTestController(t, ResponseLater)

	ok, err := ctrl.Confirm(context.Background(), KeyUpdate, false, "update?", nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, PolicyPrompt, ctrl.Store.Policy(KeyUpdate))
}

func TestReset_RestoresPrompting(t *testing.T) {
	ctrl, p := newTestController(t, ResponseNever)

	_, err := ctrl.Confirm(context.Background(), KeyInstall, false, "install?", nil)
	require.NoError(t, err)
	require.Equal(t, PolicyDontPrompt, ctrl.Store.Policy(KeyInstall))

	require.NoError(t, ctrl.Reset(KeyInstall))
	assert.Equal(t, PolicyPrompt, ctrl.Store.Policy(KeyInstall))

	p.resp = ResponseYes
	ok, err := ctrl.Confirm(context.Background(), KeyInstall, false, "install?", nil)
	require.NoError(t, err)
	assert.True(t, ok)
}
