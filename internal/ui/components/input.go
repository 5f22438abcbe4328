package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// Input is a single line text field for the sidebar, typically a search box
// in the header. It is hidden on the icon strip.
type Input struct {
	BaseComponent
	model textinput.Model
}

// NewInput creates an unfocused input showing placeholder while empty.
func NewInput(placeholder string) *Input {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "⌕ "
	return &Input{BaseComponent: NewBaseComponent(), model: ti}
}

// WithAppliers applies theme-based style modifiers.
func (in *Input) WithAppliers(appliers ...StyleFunc) *Input {
	in.SetAppliers(appliers...)
	return in
}

// Focus starts routing keys to the input and returns the cursor blink command.
func (in *Input) Focus() tea.Cmd { return in.model.Focus() }


func (in *Input) Blur()               { in.model.Blur() }
func (in *Input) Focused() bool       { return in.model.Focused() }
func (in *Input) Value() string       { return in.model.Value() }
func (in *Input) SetValue(v string)   { in.model.SetValue(v) }
func (in *Input) Placeholder() string { return in.model.Placeholder }

// Update feeds msg to the text field. Keys are ignored unless focused.
func (in *Input) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	in.model, cmd = in.model.Update(msg)
	return cmd
}

func (in *Input) View() string { return in.ViewWithContext(DefaultContext()) }

// ViewWithContext renders the field on the surface colour, sized to the width
// constraint.
func (in *Input) ViewWithContext(ctx RenderContext) string {
	if ctx.IconOnly {
		return ""
	}
	style := in.ComputeStyleWith(ctx.Theme, Background(PaletteSurface), PaddingX(SpacingSizeExtraSmall))
	if width := ctx.Constraints.MaxWidth; width > 0 {
		inner := max(width-style.GetHorizontalFrameSize(), 1)
		in.model.Width = max(inner-ansi.StringWidth(in.model.Prompt)-1, 1)
		return style.Width(width).Render(in.model.View())
	}
	return style.Render(in.model.View())
}
