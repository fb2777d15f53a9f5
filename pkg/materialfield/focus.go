package materialfield

import (
	"github.com/go-drift/drift/pkg/focus"
)

const (
	focusDebugLabel = "materialfield.TextField"
	// inputDebugLabel is the label widgets.TextInput gives its focus node.
	inputDebugLabel = "TextInput"
)

// fieldFocus moves focus for a presenter through the focus node of the
// field's own TextInput.
//
// The TextInput registers its node in the root scope when it mounts, which
// happens right after the field registers its anchor. The node following the
// anchor is therefore the field's input.
type fieldFocus struct {
	anchor *focus.FocusNode
}

// input returns the TextInput's focus node, or nil before it has mounted.
func (f fieldFocus) input() *focus.FocusNode {
	scope := focus.GetFocusManager().RootScope
	if scope == nil || f.anchor == nil {
		return nil
	}
	for i, child := range scope.Children {
		if child != f.anchor {
			continue
		}
		if i+1 < len(scope.Children) && scope.Children[i+1].DebugLabel == inputDebugLabel {
			return scope.Children[i+1]
		}
		return nil
	}
	return nil
}

// RequestFocus gives the input primary focus, which shows the native
// keyboard through the input's own focus handler.
func (f fieldFocus) RequestFocus() {
	if node := f.input(); node != nil {
		node.RequestFocus()
	}
}

// Unfocus clears focus only if this field's input holds it.
func (f fieldFocus) Unfocus() {
	if node := f.input(); node != nil && node.HasPrimaryFocus() {
		node.Unfocus()
	}
}

// registerFocusAnchor adds a marker node to the root scope and returns a
// function that removes it again. The anchor never takes focus and is skipped
// by traversal.
func registerFocusAnchor() (*focus.FocusNode, func()) {
	node := &focus.FocusNode{
		SkipTraversal: true,
		DebugLabel:    focusDebugLabel,
	}
	manager := focus.GetFocusManager()
	if manager.RootScope != nil {
		manager.RootScope.Children = append(manager.RootScope.Children, node)
	}
	return node, func() {
		if manager.RootScope == nil {
			return
		}
		children := manager.RootScope.Children
		for i, child := range children {
			if child == node {
				manager.RootScope.Children = append(children[:i], children[i+1:]...)
				break
			}
		}
	}
}
