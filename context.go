package scenario

// Context is the keyed side channel shared by the step bodies of one
// scenario. It is not safe for concurrent use.
type Context struct {
	data map[string]any
}

// NewContext creates an empty context store.
func NewContext() *Context {
	return &Context{data: make(map[string]any)}
}

// Set stores data under key, replacing any previous entry.
func (c *Context) Set(key string, data any) {
	c.data[key] = data
}

// Get returns the data stored under key, or an ErrCodeKeyNotFound error.
func (c *Context) Get(key string) (any, error) {
	data, ok := c.data[key]
	if !ok {
		return nil, newKeyNotFound(key)
	}
	return data, nil
}

// ContextData implements ContextReader.
func (c *Context) ContextData(key string) (any, error) {
	return c.Get(key)
}

// ContextReader is implemented by everything that exposes a scenario's
// context store: Context, Runner and StepRunner.
type ContextReader interface {
	ContextData(key string) (any, error)
}

// ContextValue reads key from r as a T.
//
// The store does not validate types: asking for a T that does not match the
// stored value is a caller error and panics like any failed type assertion.
// A stored nil reads as the zero T.
func ContextValue[T any](r ContextReader, key string) (T, error) {
	var zero T
	data, err := r.ContextData(key)
	if err != nil {
		return zero, err
	}
	if data == nil {
		return zero, nil
	}
	return data.(T), nil
}
