package event

// Event is a single game event delivered from the engine's event feed.
// Field access mirrors the feed's typed getters; a missing field reads as
// the zero value.
type Event struct {
	Name string

	ints map[string]int
	strs map[string]string
}

func New(name string) *Event {
	return &Event{
		Name: name,
		ints: make(map[string]int),
		strs: make(map[string]string),
	}
}

// Int returns the named integer field (0 when absent).
func (e *Event) Int(key string) int {
	return e.ints[key]
}

// SetInt sets an integer field. Handlers may rewrite fields before
// forwarding an event (e.g. moving userid into defender on death).
func (e *Event) SetInt(key string, v int) {
	e.ints[key] = v
}

// Str returns the named string field ("" when absent).
func (e *Event) Str(key string) string {
	return e.strs[key]
}

func (e *Event) SetStr(key, v string) {
	e.strs[key] = v
}
