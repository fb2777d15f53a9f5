package materialfield

import (
	"testing"
	"time"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/errors"
	"github.com/go-drift/drift/pkg/focus"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/platform"
	drifttest "github.com/go-drift/drift/pkg/testing"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"
	"github.com/go-drift/materialfield/pkg/binding"
	"github.com/go-drift/materialfield/pkg/fieldstyle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = graphics.RGB(255, 0, 0)
	blue = graphics.RGB(0, 0, 255)
	gray = graphics.RGB(128, 128, 128)
)

type harness struct {
	tester  *drifttest.WidgetTester
	text    *platform.TextEditingController
	hint    *binding.Value[string]
	editing *binding.Value[bool]
	valid   *binding.Value[bool]
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	// Focus is global; drop it before the tester unmounts the tree.
	t.Cleanup(func() {
		if primary := focus.GetFocusManager().PrimaryFocus; primary != nil {
			primary.Unfocus()
		}
	})
	return &harness{
		tester:  drifttest.NewWidgetTesterWithT(t),
		text:    platform.NewTextEditingController(""),
		hint:    binding.New("Required"),
		editing: binding.New(false),
		valid:   binding.New(true),
	}
}

func (h *harness) field() TextField {
	return New(h.text, "Email", h.hint, h.editing, h.valid)
}

func (h *harness) mount(t *testing.T, w core.Widget) {
	t.Helper()
	require.NoError(t, h.tester.PumpWidget(w))
}

func (h *harness) input(t *testing.T) widgets.TextInput {
	t.Helper()
	result := h.tester.Find(drifttest.ByType[widgets.TextInput]())
	require.True(t, result.Exists(), "expected a TextInput")
	return result.Widget().(widgets.TextInput)
}

func (h *harness) label(t *testing.T) widgets.Text {
	t.Helper()
	result := h.tester.Find(drifttest.ByText("Email"))
	require.True(t, result.Exists(), "expected the placeholder label")
	return result.Widget().(widgets.Text)
}

func (h *harness) backgroundOpacity(t *testing.T) float64 {
	t.Helper()
	result := h.tester.Find(drifttest.ByType[widgets.Opacity]())
	require.True(t, result.Exists(), "expected the placeholder background")
	return result.Widget().(widgets.Opacity).Opacity
}

func (h *harness) settle(t *testing.T) {
	t.Helper()
	require.NoError(t, h.tester.PumpAndSettle(time.Second))
}

func TestNew_Defaults(t *testing.T) {
	f := New(nil, "Name", nil, nil, nil)
	assert.Equal(t, platform.TextCapitalizationSentences, f.Capitalization)
	assert.Equal(t, "Name", f.Placeholder)
	assert.Nil(t, f.Style)

	f = f.WithCapitalization(platform.TextCapitalizationWords)
	assert.Equal(t, platform.TextCapitalizationWords, f.Capitalization)

	style := fieldstyle.Default()
	assert.Same(t, &style, f.WithStyle(&style).Style)
}

func TestTextField_InitialState(t *testing.T) {
	h := newHarness(t)
	h.mount(t, h.field())

	in := h.input(t)
	assert.Equal(t, gray, in.BorderColor)
	assert.Equal(t, 1.0, in.BorderWidth)
	assert.Equal(t, 4.0, in.BorderRadius)
	assert.Equal(t, platform.TextCapitalizationSentences, in.Capitalization)
	assert.Same(t, h.text, in.Controller)

	label := h.label(t)
	assert.Equal(t, 16.0, label.Style.FontSize)
	assert.Equal(t, gray, label.Style.Color)
	assert.Equal(t, 0.0, h.backgroundOpacity(t))

	assert.True(t, h.tester.Find(drifttest.ByText("Required")).Exists())
	assert.Nil(t, focus.GetFocusManager().PrimaryFocus, "construction must not move focus")
}

func TestTextField_EditingAnimates(t *testing.T) {
	h := newHarness(t)
	h.mount(t, h.field())

	h.editing.Set(true)
	require.NoError(t, h.tester.Pump())

	h.tester.Clock().Advance(50 * time.Millisecond)
	require.NoError(t, h.tester.Pump())

	mid := h.input(t)
	assert.Greater(t, mid.BorderWidth, 1.0)
	assert.Less(t, mid.BorderWidth, 2.0)
	midFont := h.label(t).Style.FontSize
	assert.Greater(t, midFont, 10.0)
	assert.Less(t, midFont, 16.0)

	h.tester.Clock().Advance(100 * time.Millisecond)
	h.settle(t)

	in := h.input(t)
	assert.Equal(t, blue, in.BorderColor)
	assert.Equal(t, 2.0, in.BorderWidth)
	label := h.label(t)
	assert.Equal(t, 10.0, label.Style.FontSize)
	assert.Equal(t, blue, label.Style.Color)
	assert.Equal(t, 1.0, h.backgroundOpacity(t))
}

// inputNodes returns the focus nodes of every mounted TextInput, in the
// order they registered.
func inputNodes() []*focus.FocusNode {
	var nodes []*focus.FocusNode
	for _, child := range focus.GetFocusManager().RootScope.Children {
		if child.DebugLabel == inputDebugLabel {
			nodes = append(nodes, child)
		}
	}
	return nodes
}

func TestTextField_EditingMovesFocus(t *testing.T) {
	h := newHarness(t)
	h.mount(t, h.field())
	manager := focus.GetFocusManager()

	nodes := inputNodes()
	require.Len(t, nodes, 1)
	input := nodes[0]

	h.editing.Set(true)
	assert.Same(t, input, manager.PrimaryFocus, "editing focuses the field's own input")
	assert.True(t, input.HasPrimaryFocus())

	h.editing.Set(false)
	assert.Nil(t, manager.PrimaryFocus)
	assert.False(t, input.HasPrimaryFocus())
}

func TestTextField_EditingKeepsFocusedInput(t *testing.T) {
	h := newHarness(t)
	h.mount(t, h.field())

	input := inputNodes()[0]
	input.RequestFocus()

	h.editing.Set(true)
	assert.Same(t, input, focus.GetFocusManager().PrimaryFocus)
}

func TestTextField_AnchorIsNotTraversed(t *testing.T) {
	h := newHarness(t)
	h.mount(t, h.field())
	manager := focus.GetFocusManager()

	require.True(t, manager.MoveFocus(1))
	assert.Equal(t, inputDebugLabel, manager.PrimaryFocus.DebugLabel)
	require.True(t, manager.MoveFocus(1))
	assert.Equal(t, inputDebugLabel, manager.PrimaryFocus.DebugLabel)
}

func TestTextField_FocusStaysWithItsField(t *testing.T) {
	h := newHarness(t)
	secondEditing := binding.New(false)
	second := New(platform.NewTextEditingController(""), "Name", binding.New(""), secondEditing, binding.New(true))
	h.mount(t, widgets.Column{
		Children: []core.Widget{h.field(), second},
	})
	manager := focus.GetFocusManager()

	nodes := inputNodes()
	require.Len(t, nodes, 2)

	secondEditing.Set(true)
	assert.Same(t, nodes[1], manager.PrimaryFocus, "the second field focuses its own input")

	h.editing.Set(true)
	assert.Same(t, nodes[0], manager.PrimaryFocus)

	secondEditing.Set(false)
	assert.Same(t, nodes[0], manager.PrimaryFocus, "ending editing elsewhere leaves focus alone")
}

func TestTextField_TextChangeSnaps(t *testing.T) {
	h := newHarness(t)
	h.mount(t, h.field())

	h.text.SetText("abc")
	require.NoError(t, h.tester.Pump())

	assert.Equal(t, 10.0, h.label(t).Style.FontSize)
	assert.Equal(t, 1.0, h.backgroundOpacity(t))
	assert.Equal(t, gray, h.input(t).BorderColor)
}

func TestTextField_TypingDuringEditingKeepsAnimating(t *testing.T) {
	h := newHarness(t)
	h.mount(t, h.field())

	h.editing.Set(true)
	require.NoError(t, h.tester.Pump())
	h.tester.Clock().Advance(30 * time.Millisecond)
	require.NoError(t, h.tester.Pump())

	h.text.SetText("a")
	require.NoError(t, h.tester.Pump())
	h.tester.Clock().Advance(20 * time.Millisecond)
	require.NoError(t, h.tester.Pump())

	mid := h.input(t)
	assert.Greater(t, mid.BorderWidth, 1.0)
	assert.Less(t, mid.BorderWidth, 2.0, "a text change must not cut the transition short")

	h.tester.Clock().Advance(100 * time.Millisecond)
	h.settle(t)

	assert.Equal(t, 2.0, h.input(t).BorderWidth)
	assert.Equal(t, blue, h.input(t).BorderColor)
}

func TestTextField_InvalidDuringEditingRetargets(t *testing.T) {
	h := newHarness(t)
	h.mount(t, h.field())

	h.editing.Set(true)
	require.NoError(t, h.tester.Pump())
	h.tester.Clock().Advance(30 * time.Millisecond)
	require.NoError(t, h.tester.Pump())

	h.valid.Set(false)
	h.tester.Clock().Advance(100 * time.Millisecond)
	h.settle(t)

	in := h.input(t)
	assert.Equal(t, red, in.BorderColor, "the running transition ends at the new target")
	assert.Equal(t, 2.0, in.BorderWidth)
	assert.Equal(t, red, h.label(t).Style.Color)
}

func TestTextField_InvalidWithText(t *testing.T) {
	h := newHarness(t)
	h.mount(t, h.field())

	h.text.SetText("abc")
	h.valid.Set(false)
	require.NoError(t, h.tester.Pump())

	in := h.input(t)
	assert.Equal(t, red, in.BorderColor)
	assert.Equal(t, 1.0, in.BorderWidth)
	assert.Equal(t, red, h.label(t).Style.Color)
}

func TestTextField_HintFollowsBinding(t *testing.T) {
	h := newHarness(t)
	h.mount(t, h.field())

	h.hint.Set("Use your work address")
	require.NoError(t, h.tester.Pump())

	assert.True(t, h.tester.Find(drifttest.ByText("Use your work address")).Exists())
	assert.False(t, h.tester.Find(drifttest.ByText("Required")).Exists())

	hint := h.tester.Find(drifttest.ByText("Use your work address")).Widget().(widgets.Text)
	assert.Equal(t, 10.0, hint.Style.FontSize)
	assert.Equal(t, gray, hint.Style.Color)
}

func TestTextField_CustomStyle(t *testing.T) {
	h := newHarness(t)
	style := fieldstyle.Default()
	style.Colors.Focus = graphics.RGB(0, 128, 0)
	style.Transition.Duration = 0
	h.mount(t, h.field().WithStyle(&style))

	h.editing.Set(true)
	require.NoError(t, h.tester.Pump())

	in := h.input(t)
	assert.Equal(t, graphics.RGB(0, 128, 0), in.BorderColor)
	assert.Equal(t, 2.0, in.BorderWidth, "zero duration applies without animating")
}

type recordingHandler struct {
	errs []*errors.DriftError
}

func (r *recordingHandler) HandleError(err *errors.DriftError)            { r.errs = append(r.errs, err) }
func (r *recordingHandler) HandlePanic(err *errors.PanicError)            {}
func (r *recordingHandler) HandleBoundaryError(err *errors.BoundaryError) {}

func TestTextField_InvalidStyleReported(t *testing.T) {
	rec := &recordingHandler{}
	errors.SetHandler(rec)
	t.Cleanup(func() { errors.SetHandler(nil) })

	h := newHarness(t)
	style := fieldstyle.Default()
	style.Metrics.Height = -1
	h.mount(t, h.field().WithStyle(&style))

	require.Len(t, rec.errs, 1)
	assert.Equal(t, "materialfield.TextField", rec.errs[0].Op)
	assert.Equal(t, errors.KindInit, rec.errs[0].Kind)

	var verr *fieldstyle.ValidationError
	assert.ErrorAs(t, rec.errs[0].Err, &verr)
	assert.Equal(t, gray, h.input(t).BorderColor, "falls back to the default style")
}

type themedField struct {
	core.StatelessBase
	h    *harness
	seen *theme.TextFieldThemeData
}

func (w themedField) Build(ctx core.BuildContext) core.Widget {
	*w.seen = theme.ThemeOf(ctx).TextFieldThemeOf()
	return Of(ctx, w.h.text, "Email", w.h.hint, w.h.editing, w.h.valid)
}

func TestOf_UsesThemePalette(t *testing.T) {
	h := newHarness(t)
	var seen theme.TextFieldThemeData
	h.mount(t, themedField{h: h, seen: &seen})

	want := fieldstyle.FromTextFieldTheme(seen)
	assert.Equal(t, want.Colors.Idle, h.input(t).BorderColor)
	assert.Equal(t, want.Colors.PlaceholderBackground, h.input(t).BackgroundColor)
}

// bindingHost rebuilds a field with whichever validity binding its state
// holds, so tests can swap bindings without remounting.
type bindingHost struct {
	core.StatefulBase
	h       *harness
	onState func(*bindingHostState)
}

func (w bindingHost) CreateState() core.State { return &bindingHostState{} }

type bindingHostState struct {
	core.StateBase
	valid *binding.Value[bool]
}

func (s *bindingHostState) InitState() {
	w := s.Element().Widget().(bindingHost)
	s.valid = w.h.valid
	w.onState(s)
}

func (s *bindingHostState) setValid(v *binding.Value[bool]) {
	s.SetState(func() { s.valid = v })
}

func (s *bindingHostState) Build(ctx core.BuildContext) core.Widget {
	h := s.Element().Widget().(bindingHost).h
	return New(h.text, "Email", h.hint, h.editing, s.valid)
}

func TestTextField_SwappedValidBinding(t *testing.T) {
	h := newHarness(t)
	var host *bindingHostState
	h.mount(t, bindingHost{h: h, onState: func(s *bindingHostState) { host = s }})
	require.NotNil(t, host)

	replacement := binding.New(false)
	host.setValid(replacement)
	require.NoError(t, h.tester.Pump())
	assert.Equal(t, red, h.input(t).BorderColor, "the new binding's value applies on swap")

	assert.Zero(t, h.valid.ListenerCount(), "the old binding is released")

	replacement.Set(true)
	require.NoError(t, h.tester.Pump())
	assert.Equal(t, gray, h.input(t).BorderColor)

	h.valid.Set(false)
	require.NoError(t, h.tester.Pump())
	assert.Equal(t, gray, h.input(t).BorderColor, "the old binding no longer drives the field")
}
