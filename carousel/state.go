package carousel

type State string

const (
	StateLoading    State = "loading"
	StateEmpty      State = "empty"
	StateDisplaying State = "displaying"
)

// StateOf derives the display state from the load status and item count.
func StateOf(loading bool, count int) State {
	switch {
	case loading:
		return StateLoading
	case count == 0:
		return StateEmpty
	}
	return StateDisplaying
}
