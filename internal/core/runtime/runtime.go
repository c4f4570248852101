package runtime

import (
	"errors"
	"fmt"
	"sync"

	"github.com/zeusync/scriptcore/internal/core/events/bus"
	"github.com/zeusync/scriptcore/internal/core/models"
	"github.com/zeusync/scriptcore/internal/core/models/interfaces"
	"github.com/zeusync/scriptcore/internal/core/observability/log"
	"github.com/zeusync/scriptcore/internal/core/scene"
	"github.com/zeusync/scriptcore/internal/core/script"
)

type instance struct {
	name     string
	behavior Behavior
	ctx      *Context
	created  bool
	failed   bool
}

// Stats counts callbacks since the runtime was built.
type Stats struct {
	Attached  int    `json:"attached"`
	Frames    uint64 `json:"frames"`
	Errors    uint64 `json:"errors"`
	Destroyed uint64 `json:"destroyed"`
}

// Runtime owns the behavior instances of one engine.
type Runtime struct {
	mu        sync.Mutex
	engine    interfaces.EngineBoundary
	registry  Registry
	logger    log.Log
	order     []models.UUID
	instances map[models.UUID]*instance
	pending   []models.UUID
	sub       bus.Subscription
	started   bool
	stopped   bool
	stats     Stats
}

// New builds a runtime. When events is not nil, entity destruction published on
// it schedules OnDestroy for the entity's behavior.
func New(engine interfaces.EngineBoundary, events bus.EventBus, registry Registry, logger log.Log) (*Runtime, error) {
	if logger == nil {
		logger = log.Provide()
	}
	r := &Runtime{
		engine:    engine,
		registry:  registry,
		logger:    logger.With(log.String("component", "runtime")),
		instances: make(map[models.UUID]*instance),
	}
	if events != nil {
		sub, err := events.Subscribe(scene.EventEntityDestroyed, r.onEntityDestroyed)
		if err != nil {
			return nil, err
		}
		r.sub = sub
	}
	return r, nil
}

func (r *Runtime) onEntityDestroyed(e bus.Event) error {
	payload, ok := e.Data().(scene.EntityEvent)
	if !ok {
		return nil
	}
	r.mu.Lock()
	if _, attached := r.instances[payload.ID]; attached {
		r.pending = append(r.pending, payload.ID)
	}
	r.mu.Unlock()
	return nil
}

// Attach binds the named behavior to entity. After Start the behavior's
// OnCreate runs immediately.
func (r *Runtime) Attach(entity script.Entity, name string, params map[string]any) error {
	if !entity.IsValid() {
		return fmt.Errorf("attach %s: %w", name, ErrInvalidEntity)
	}
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return ErrRuntimeStopped
	}
	if existing, ok := r.instances[entity.ID()]; ok {
		r.mu.Unlock()
		return fmt.Errorf("%s already runs %s: %w", entity, existing.name, ErrAlreadyAttached)
	}
	r.mu.Unlock()

	behavior, err := r.registry.New(name, params)
	if err != nil {
		return fmt.Errorf("attach to %s: %w", entity, err)
	}

	inst := &instance{name: name, behavior: behavior, ctx: newContext(r.engine, entity)}
	r.mu.Lock()
	if _, ok := r.instances[entity.ID()]; ok {
		r.mu.Unlock()
		return fmt.Errorf("%s: %w", entity, ErrAlreadyAttached)
	}
	r.instances[entity.ID()] = inst
	r.order = append(r.order, entity.ID())
	r.stats.Attached++
	started := r.started
	r.mu.Unlock()

	r.logger.Debug("Behavior attached", log.String("behavior", name), log.Stringer("entity", entity.ID()))
	if started {
		return r.create(inst)
	}
	return nil
}

// Start runs OnCreate for every attached behavior in attach order.
func (r *Runtime) Start() error {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return ErrRuntimeStopped
	}
	r.started = true
	insts := r.snapshot()
	r.mu.Unlock()

	var all error
	for _, inst := range insts {
		if err := r.create(inst); err != nil {
			all = errors.Join(all, err)
		}
	}
	return all
}

// Update runs one frame: OnDestroy for entities destroyed since the last call,
// then OnUpdate for every live behavior, then OnDestroy for entities destroyed
// during the frame.
func (r *Runtime) Update(ts float32) error {
	r.mu.Lock()
	if r.stopped || !r.started {
		r.mu.Unlock()
		return nil
	}
	r.stats.Frames++
	r.mu.Unlock()

	r.drain()

	var all error
	for _, inst := range r.live() {
		if !inst.ctx.Self.IsValid() {
			r.schedule(inst.ctx.Self.ID())
			continue
		}
		if !inst.created || inst.failed {
			continue
		}
		if err := inst.behavior.OnUpdate(inst.ctx, ts); err != nil {
			all = errors.Join(all, r.fail(inst, "OnUpdate", err))
		}
	}

	r.drain()
	return all
}

// Stop runs OnDestroy for every remaining behavior and detaches from the bus.
func (r *Runtime) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	insts := r.snapshot()
	r.instances = make(map[models.UUID]*instance)
	r.order = nil
	r.pending = nil
	sub := r.sub
	r.mu.Unlock()

	if sub != nil {
		_ = sub.Cancel()
	}
	for _, inst := range insts {
		r.destroy(inst)
	}
}

// Behavior returns the behavior attached to id.
func (r *Runtime) Behavior(id models.UUID) (Behavior, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inst, ok := r.instances[id]
	if !ok {
		return nil, false
	}
	return inst.behavior, true
}

func (r *Runtime) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.instances)
}

func (r *Runtime) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

func (r *Runtime) create(inst *instance) error {
	if inst.created {
		return nil
	}
	inst.created = true
	if err := inst.behavior.OnCreate(inst.ctx); err != nil {
		return r.fail(inst, "OnCreate", err)
	}
	return nil
}

// fail disables a behavior after a callback error.
func (r *Runtime) fail(inst *instance, callback string, err error) error {
	inst.failed = true
	r.mu.Lock()
	r.stats.Errors++
	r.mu.Unlock()
	r.logger.Error("Behavior callback failed",
		log.String("behavior", inst.name),
		log.String("callback", callback),
		log.Stringer("entity", inst.ctx.Self.ID()),
		log.Error(err))
	return fmt.Errorf("%s.%s: %w", inst.name, callback, err)
}

func (r *Runtime) destroy(inst *instance) {
	if d, ok := inst.behavior.(Destroyer); ok && inst.created {
		d.OnDestroy(inst.ctx)
	}
	r.mu.Lock()
	r.stats.Destroyed++
	r.mu.Unlock()
}

func (r *Runtime) schedule(id models.UUID) {
	r.mu.Lock()
	r.pending = append(r.pending, id)
	r.mu.Unlock()
}

// drain detaches every pending instance and runs its OnDestroy.
func (r *Runtime) drain() {
	for {
		r.mu.Lock()
		if len(r.pending) == 0 {
			r.mu.Unlock()
			return
		}
		ids := r.pending
		r.pending = nil
		var gone []*instance
		for _, id := range ids {
			inst, ok := r.instances[id]
			if !ok {
				continue
			}
			delete(r.instances, id)
			r.removeOrder(id)
			gone = append(gone, inst)
		}
		r.mu.Unlock()

		for _, inst := range gone {
			r.logger.Debug("Behavior detached", log.String("behavior", inst.name), log.Stringer("entity", inst.ctx.Self.ID()))
			r.destroy(inst)
		}
	}
}

func (r *Runtime) live() []*instance {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

// snapshot must be called with r.mu held.
func (r *Runtime) snapshot() []*instance {
	out := make([]*instance, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.instances[id])
	}
	return out
}

func (r *Runtime) removeOrder(id models.UUID) {
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i:i], r.order[i+1:]...)
			return
		}
	}
}
