// Package rocket implements the arcade simulation core: the authoritative
// game state, the input/time/collisions controllers and the event buffer
// that decouples gameplay from presentation. The package performs no I/O;
// the platform layer drives it once per frame with a time delta and the
// currently held actions.
package rocket

// Action represents a semantic game action, abstracted from physical key
// presses. Multiple actions may be active at once; the set is unordered.
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionFire
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionFire:
		return "Fire"
	default:
		return "Unknown"
	}
}

// ActionSet is the set of actions active during one update cycle.
type ActionSet struct {
	// Actions maps action types to whether they are currently active.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewActionSet creates an empty action set.
func NewActionSet() ActionSet {
	return ActionSet{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active.
func (s *ActionSet) Set(a Action) {
	if s.Actions == nil {
		s.Actions = make(map[Action]bool)
	}
	s.Actions[a] = true
}

// Has returns true if the given action is active.
func (s ActionSet) Has(a Action) bool {
	if s.Actions == nil {
		return false
	}
	return s.Actions[a]
}

// Empty returns true if no action is active.
func (s ActionSet) Empty() bool {
	for _, v := range s.Actions {
		if v {
			return false
		}
	}
	return true
}

// Clear resets all actions.
func (s *ActionSet) Clear() {
	for k := range s.Actions {
		delete(s.Actions, k)
	}
}

// Clone creates a copy of this action set.
func (s ActionSet) Clone() ActionSet {
	clone := NewActionSet()
	for k, v := range s.Actions {
		clone.Actions[k] = v
	}
	return clone
}
