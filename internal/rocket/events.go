package rocket

// Event is an immutable record of something that happened during one update
// cycle. Events are appended in the order they occur and consumed by the
// presentation layer (sound cues, status flashes, metrics) after each cycle.
type Event int

const (
	// EventGameStart is appended by the first update after New or Reset.
	EventGameStart Event = iota
	// EventShotFired is appended when the rocket fires a bullet.
	EventShotFired
	// EventEnemySpawned is appended when a new enemy enters the arena.
	EventEnemySpawned
	// EventEnemyDestroyed is appended when a bullet destroys an enemy.
	EventEnemyDestroyed
	// EventRocketDestroyed is appended when an enemy reaches the rocket.
	// The game state message is set in the same pass.
	EventRocketDestroyed
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventGameStart:
		return "game_start"
	case EventShotFired:
		return "shot_fired"
	case EventEnemySpawned:
		return "enemy_spawned"
	case EventEnemyDestroyed:
		return "enemy_destroyed"
	case EventRocketDestroyed:
		return "rocket_destroyed"
	default:
		return "unknown"
	}
}

// EventBuffer is an append-only ordered sequence of events for one update
// cycle. It is owned by the application driver, passed into the time and
// collisions controllers for appending, and drained by the driver after
// the update cycle completes. Repeated identical events are kept; there is
// no deduplication.
type EventBuffer struct {
	events []Event
}

// NewEventBuffer creates an empty event buffer.
func NewEventBuffer() *EventBuffer {
	return &EventBuffer{}
}

// Push appends an event, preserving chronological order within the cycle.
func (b *EventBuffer) Push(e Event) {
	b.events = append(b.events, e)
}

// Len returns the number of buffered events.
func (b *EventBuffer) Len() int {
	return len(b.events)
}

// Events returns the buffered events in order, without clearing them.
func (b *EventBuffer) Events() []Event {
	return b.events
}

// Drain returns all buffered events in order and clears the buffer.
// The returned slice is owned by the caller.
func (b *EventBuffer) Drain() []Event {
	drained := b.events
	b.events = nil
	return drained
}
