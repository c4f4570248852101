// Package runtime drives script behaviors attached to entities.
//
// Every callback runs on the goroutine that calls Start, Update and Stop. An
// entity that disappears gets its OnDestroy call from the next of those calls,
// never from a finalizer.
package runtime

import (
	"github.com/zeusync/scriptcore/internal/core/models/interfaces"
	"github.com/zeusync/scriptcore/internal/core/script"
)

// Behavior is the per-entity script contract.
type Behavior interface {
	OnCreate(ctx *Context) error
	OnUpdate(ctx *Context, ts float32) error
}

// Destroyer is implemented by behaviors that release resources when their
// entity is destroyed or the runtime stops.
type Destroyer interface {
	OnDestroy(ctx *Context)
}

// Context is what a behavior sees of the engine.
type Context struct {
	Self   script.Entity
	Engine interfaces.EngineBoundary
	Input  script.Input
	Log    script.Logger
}

func newContext(engine interfaces.EngineBoundary, self script.Entity) *Context {
	return &Context{
		Self:   self,
		Engine: engine,
		Input:  script.NewInput(engine),
		Log:    script.NewLogger(engine),
	}
}

// CreateEntity creates an entity in the same engine as Self.
func (c *Context) CreateEntity(name string) script.Entity {
	return script.CreateEntity(c.Engine, name)
}

func (c *Context) FindEntityByName(name string) (script.Entity, bool) {
	return script.FindEntityByName(c.Engine, name)
}
