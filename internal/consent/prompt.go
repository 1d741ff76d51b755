package consent

import (
	"context"

	"github.com/charmbracelet/huh"
)

// HuhPrompter renders consent questions as interactive forms.
type HuhPrompter struct{}

// Ask presents message and returns the chosen response. User-initiated
// questions collapse to a confirm; system-initiated ones offer deferral
// and permanent opt-out.
func (HuhPrompter) Ask(ctx context.Context, message string, userInitiated bool) (Response, error) {
	if userInitiated {
		accepted := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(message).
				Affirmative("Yes").
				Negative("No").
				Value(&accepted),
		))
		if err := form.RunWithContext(ctx); err != nil {
			return ResponseNo, err
		}
		if accepted {
			return ResponseYes, nil
		}
		return ResponseNo, nil
	}

	choice := ResponseLater
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[Response]().
			Title(message).
			Options(
				huh.NewOption("Yes", ResponseYes),
				huh.NewOption("Ask me later", ResponseLater),
				huh.NewOption("Don't ask again", ResponseNever),
			).
			Value(&choice),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return ResponseNo, err
	}
	return choice, nil
}
