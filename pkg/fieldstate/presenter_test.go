package fieldstate

import (
	"testing"

	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/materialfield/pkg/binding"
	"github.com/go-drift/materialfield/pkg/fieldstyle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type focusRecorder struct {
	calls []string
}

func (f *focusRecorder) RequestFocus() { f.calls = append(f.calls, "request") }
func (f *focusRecorder) Unfocus()      { f.calls = append(f.calls, "unfocus") }

type change struct {
	visual     Visual
	transition Transition
}

type fixture struct {
	text    *platform.TextEditingController
	editing *binding.Value[bool]
	valid   *binding.Value[bool]
	focus   *focusRecorder
	p       *Presenter
	changes []change
}

func newFixture(t *testing.T, text string, editing, valid bool) *fixture {
	t.Helper()
	f := &fixture{
		text:    platform.NewTextEditingController(text),
		editing: binding.New(editing),
		valid:   binding.New(valid),
		focus:   &focusRecorder{},
	}
	f.p = NewPresenter(fieldstyle.Default(), f.text, f.editing, f.valid, f.focus)
	f.p.OnChange(func(v Visual, tr Transition) {
		f.changes = append(f.changes, change{v, tr})
	})
	t.Cleanup(f.p.Attach())
	return f
}

func TestPresenter_ScenarioA_InitialDefaults(t *testing.T) {
	f := newFixture(t, "", false, true)

	v := f.p.Visual()
	assert.Equal(t, gray, v.BorderColor)
	assert.Equal(t, 1.0, v.BorderWidth)
	assert.Equal(t, 16.0, v.PlaceholderFontSize)
	assert.Equal(t, 0.0, v.PlaceholderBackgroundOpacity)
	assert.Equal(t, 2.0, v.PlaceholderLeadingPadding)
	assert.Empty(t, f.changes, "construction must not recompute")
	assert.Empty(t, f.focus.calls)
	assert.Equal(t, FieldNone, f.p.Focused())
}

func TestPresenter_ScenarioB_EditingBegins(t *testing.T) {
	f := newFixture(t, "", false, true)

	f.editing.Set(true)

	v := f.p.Visual()
	assert.Equal(t, blue, v.BorderColor)
	assert.Equal(t, 2.0, v.BorderWidth)
	assert.Equal(t, 10.0, v.PlaceholderFontSize)
	assert.Equal(t, 1.0, v.PlaceholderBackgroundOpacity)
	assert.Equal(t, blue, v.PlaceholderColor)
	assert.Equal(t, 8.0, v.PlaceholderLeadingPadding)
	assert.Equal(t, FieldText, f.p.Focused())
	assert.Equal(t, []string{"request"}, f.focus.calls)

	require.Len(t, f.changes, 1)
	assert.True(t, f.changes[0].transition.Animated())
	assert.Equal(t, fieldstyle.Default().Transition.Duration, f.changes[0].transition.Duration)
}

func TestPresenter_ScenarioC_InvalidWithText(t *testing.T) {
	f := newFixture(t, "", true, true)

	f.editing.Set(false)
	f.text.SetText("abc")
	f.valid.Set(false)

	v := f.p.Visual()
	assert.Equal(t, red, v.BorderColor)
	assert.Equal(t, 1.0, v.BorderWidth)
	assert.Equal(t, red, v.PlaceholderColor)
	assert.Equal(t, FieldNone, f.p.Focused())
	assert.Equal(t, []string{"unfocus"}, f.focus.calls)
}

func TestPresenter_EditingConstructedTrueDoesNotFocus(t *testing.T) {
	f := newFixture(t, "", true, true)

	assert.Equal(t, FieldNone, f.p.Focused())
	assert.Empty(t, f.focus.calls)

	f.editing.Set(false)
	assert.Equal(t, FieldNone, f.p.Focused())
	assert.Equal(t, []string{"unfocus"}, f.focus.calls)

	f.editing.Set(true)
	assert.Equal(t, FieldText, f.p.Focused())
	assert.Equal(t, []string{"unfocus", "request"}, f.focus.calls)
}

func TestPresenter_TextAndValidRecomputeImmediately(t *testing.T) {
	f := newFixture(t, "", false, true)

	f.text.SetText("hello")
	require.Len(t, f.changes, 1)
	assert.False(t, f.changes[0].transition.Animated())
	assert.Equal(t, 10.0, f.changes[0].visual.PlaceholderFontSize)

	f.valid.Set(false)
	require.Len(t, f.changes, 2)
	assert.False(t, f.changes[1].transition.Animated())
	assert.Equal(t, red, f.changes[1].visual.BorderColor)
	assert.Empty(t, f.focus.calls, "only editing changes move focus")
}

func TestPresenter_IgnoresNotificationsWithoutChange(t *testing.T) {
	f := newFixture(t, "abc", false, true)

	f.text.SetSelection(platform.TextSelection{BaseOffset: 0, ExtentOffset: 1})
	f.text.SetText("abc")
	f.editing.Notify()
	f.valid.Notify()

	assert.Empty(t, f.changes)
}

func TestPresenter_Detach(t *testing.T) {
	f := newFixture(t, "", false, true)
	f.p.Detach()

	f.editing.Set(true)
	f.text.SetText("abc")

	assert.Empty(t, f.changes)
	assert.Equal(t, 0, f.editing.ListenerCount())
	assert.Equal(t, 0, f.valid.ListenerCount())
}

func TestPresenter_NilSources(t *testing.T) {
	p := NewPresenter(fieldstyle.Default(), nil, nil, nil, nil)
	detach := p.Attach()
	defer detach()

	assert.Equal(t, Signals{Valid: true}, p.Signals())
	p.EditingChanged()
	p.TextChanged()
	p.ValidChanged()
	assert.Equal(t, Initial(fieldstyle.Default()), p.Visual())
}

func TestPresenter_SetStyle(t *testing.T) {
	f := newFixture(t, "", false, true)

	style := fieldstyle.Default()
	style.Colors.Idle = graphics.RGB(10, 10, 10)
	f.p.SetStyle(style)

	require.Len(t, f.changes, 1)
	assert.False(t, f.changes[0].transition.Animated())
	assert.Equal(t, style.Colors.Idle, f.p.Visual().BorderColor)
	assert.Equal(t, style, f.p.Style())
}
