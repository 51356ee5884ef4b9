package access

import "context"

// Actor is the staff member performing a request, with the role resolved
// from their current profile.
type Actor struct {
	StaffID string
	Name    string
	Role    Role
}

// Can reports whether the actor's role allows action in module.
func (a Actor) Can(module Module, action Action) bool {
	return HasPermission(a.Role, module, action)
}

// Capability returns the actor's capability in module.
func (a Actor) Capability(module Module) Capability {
	return Lookup(a.Role, module)
}

type actorKey struct{}

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorFrom returns the actor stored in ctx.
func ActorFrom(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorKey{}).(Actor)
	return a, ok
}
