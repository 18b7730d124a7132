// Package hooking lets observers attach to instrumented objects without the
// objects knowing who is listening. Containers fire hooks on push/pop and
// the drill runner fires them around each drill run.
package hooking

// Pos names a position in an instrumented object's lifecycle where hooks
// fire.
type Pos struct {
	Name string
}

// Ctx carries everything about the site that triggered a hook.
type Ctx struct {
	Domain Hookable
	Pos    *Pos
	Item   any
	Detail any
}

// Hook is a function invoked by a hookable object.
type Hook func(Ctx)

// Hookable is an object that accepts hooks.
type Hookable interface {
	// AcceptHook registers a hook.
	AcceptHook(h Hook)

	// NumHooks returns the number of registered hooks.
	NumHooks() int
}

// Base provides the Hookable plumbing for embedding.
type Base struct {
	hooks []Hook
}

// AcceptHook registers a hook.
func (b *Base) AcceptHook(h Hook) {
	b.hooks = append(b.hooks, h)
}

// NumHooks returns the number of registered hooks.
func (b *Base) NumHooks() int {
	return len(b.hooks)
}

// Invoke triggers the registered hooks in registration order.
func (b *Base) Invoke(ctx Ctx) {
	for _, h := range b.hooks {
		h(ctx)
	}
}
