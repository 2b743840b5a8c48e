package rocket

// Key is a logical key identifier supplied by the platform layer
// ("left", "a", "space", ...). The core never touches the terminal; the
// driver translates raw input into Key values and press/release calls.
type Key string

// Mod is a bitmask of modifier keys held with a key event. The default
// bindings ignore modifiers, but the contract carries them so alternate
// binding sets can use them.
type Mod uint8

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
)

// InputController tracks which keys are currently held and maps them to
// the set of active actions. It is queried once per update cycle.
//
// Repeated KeyPress calls for an already-held key are idempotent; only a
// matching KeyRelease clears the hold. Unrecognized keys are silently
// ignored.
type InputController struct {
	bindings map[Key]Action
	held     map[Key]bool
}

// NewInputController creates an input controller with the default
// bindings: arrow keys and WASD for movement, space for fire.
func NewInputController() *InputController {
	c := &InputController{
		bindings: make(map[Key]Action),
		held:     make(map[Key]bool),
	}
	c.Bind("left", ActionMoveLeft)
	c.Bind("a", ActionMoveLeft)
	c.Bind("right", ActionMoveRight)
	c.Bind("d", ActionMoveRight)
	c.Bind("up", ActionMoveUp)
	c.Bind("w", ActionMoveUp)
	c.Bind("down", ActionMoveDown)
	c.Bind("s", ActionMoveDown)
	c.Bind("space", ActionFire)
	return c
}

// Bind maps a key to an action, replacing any previous binding for it.
func (c *InputController) Bind(k Key, a Action) {
	c.bindings[k] = a
}

// KeyPress marks a key as held. Unknown keys are ignored.
func (c *InputController) KeyPress(k Key, mods Mod) {
	if _, ok := c.bindings[k]; !ok {
		return
	}
	c.held[k] = true
}

// KeyRelease clears a held key. Releasing a key that was never pressed is
// a no-op.
func (c *InputController) KeyRelease(k Key, mods Mod) {
	delete(c.held, k)
}

// Actions returns a snapshot of the currently active actions. The snapshot
// reflects state at call time; later presses and releases do not affect it.
func (c *InputController) Actions() ActionSet {
	set := NewActionSet()
	for k, down := range c.held {
		if !down {
			continue
		}
		if a, ok := c.bindings[k]; ok {
			set.Set(a)
		}
	}
	return set
}
