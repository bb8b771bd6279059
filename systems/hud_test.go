package systems

import (
	"testing"

	"github.com/automoto/penaltykick/components"
	cfg "github.com/automoto/penaltykick/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestControlsHintFollowsInputMethod(t *testing.T) {
	cases := []struct {
		method components.InputMethod
		want   string
	}{
		{components.InputKeyboard, cfg.UI.ControlsHint},
		{components.InputXbox, cfg.UI.XboxHint},
		{components.InputPlayStation, cfg.UI.PlayStationHint},
	}
	for _, tc := range cases {
		if got := getControlsHint(tc.method); got != tc.want {
			t.Errorf("method %d: hint = %q, want %q", tc.method, got, tc.want)
		}
	}
}

func TestUpdateHUDWordsPromptForLastDevice(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	input := getOrCreateInput(e)
	hud := getOrCreateHUD(e)
	hud.Prompt = cfg.Kick.ResetPrompt

	UpdateHUD(e)
	if hud.PromptShown != cfg.Kick.ResetPrompt || hud.Hint != cfg.UI.ControlsHint {
		t.Errorf("keyboard: prompt %q hint %q", hud.PromptShown, hud.Hint)
	}

	input.LastInputMethod = components.InputXbox
	UpdateHUD(e)
	if want := "*A to Reset*"; hud.PromptShown != want {
		t.Errorf("xbox: prompt = %q, want %q", hud.PromptShown, want)
	}
	if hud.Hint != cfg.UI.XboxHint {
		t.Errorf("xbox: hint = %q", hud.Hint)
	}

	input.LastInputMethod = components.InputPlayStation
	UpdateHUD(e)
	if want := "*CROSS to Reset*"; hud.PromptShown != want {
		t.Errorf("playstation: prompt = %q, want %q", hud.PromptShown, want)
	}

	input.LastInputMethod = components.InputKeyboard
	UpdateHUD(e)
	if hud.PromptShown != cfg.Kick.ResetPrompt {
		t.Errorf("back on keyboard: prompt = %q", hud.PromptShown)
	}
	if hud.Prompt != cfg.Kick.ResetPrompt {
		t.Errorf("raw prompt rewritten to %q", hud.Prompt)
	}
}
