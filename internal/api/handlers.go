package api

// Handlers carries the dependency container; endpoint methods hang off
// it and close over nothing else.
type Handlers struct {
	deps *Dependencies
}

func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		deps: deps,
	}
}
