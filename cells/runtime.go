// Package cells is a fine-grained reactive engine.
//
// Reads of a Cell or Computed inside a running effect record a dependency on
// that (owner, property) pair; writes re-run every effect that depends on it,
// synchronously, before the write returns. All state lives in a Runtime, which
// is confined to a single goroutine.
package cells

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// OwnerKey identifies one trackable object. Keys are slots in the runtime's
// owner arena; a released key never compares equal to a later allocation.
type OwnerKey struct {
	slot uint32
	gen  uint32
}

func (k OwnerKey) IsZero() bool {
	return k.gen == 0
}

func (k OwnerKey) String() string {
	return fmt.Sprintf("owner#%d.%d", k.slot, k.gen)
}

// EffectID identifies a registered effect by identity, not by content.
type EffectID struct {
	slot uint32
	gen  uint32
}

func (id EffectID) IsZero() bool {
	return id.gen == 0
}

func (id EffectID) String() string {
	return fmt.Sprintf("effect#%d.%d", id.slot, id.gen)
}

type ownerSlot struct {
	gen  uint32
	live bool
}

type effectSlot struct {
	gen     uint32
	live    bool
	running int
	fn      func()
	deps    mapset.Set[dependency]
}

// TriggerHook observes every Trigger call, including those with no
// subscribers.
type TriggerHook func(owner OwnerKey, prop string)

// Option configures a Runtime.
type Option func(*Runtime)

// WithTriggerHook installs a hook called at the start of every trigger.
func WithTriggerHook(hook TriggerHook) Option {
	return func(rt *Runtime) {
		rt.onTrigger = hook
	}
}

// WithCapacity preallocates room for n owners and n effects.
func WithCapacity(n int) Option {
	return func(rt *Runtime) {
		rt.owners = make([]ownerSlot, 0, n)
		rt.effects = make([]*effectSlot, 0, n)
	}
}

// WithPruneThreshold runs Prune automatically once n owners have been released
// since the last sweep. Zero disables automatic pruning.
func WithPruneThreshold(n int) Option {
	return func(rt *Runtime) {
		rt.pruneThreshold = n
	}
}

const DefaultPruneThreshold = 256

// Runtime is the execution context and subscription registry. It is not safe
// for concurrent use.
type Runtime struct {
	// stack of active effects; the zero EffectID is the gap marker.
	stack []EffectID

	owners      []ownerSlot
	freeOwners  []uint32
	effects     []*effectSlot
	freeEffects []uint32

	registry registry

	onTrigger      TriggerHook
	pruneThreshold int
	released       int
}

// NewRuntime creates an empty runtime with the given options applied.
func NewRuntime(opts ...Option) *Runtime {
	rt := &Runtime{
		registry:       newRegistry(),
		pruneThreshold: DefaultPruneThreshold,
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// NewOwner allocates a key for a new trackable object.
func (rt *Runtime) NewOwner() OwnerKey {
	if n := len(rt.freeOwners); n > 0 {
		slot := rt.freeOwners[n-1]
		rt.freeOwners = rt.freeOwners[:n-1]
		o := &rt.owners[slot]
		o.live = true
		return OwnerKey{slot: slot, gen: o.gen}
	}
	rt.owners = append(rt.owners, ownerSlot{gen: 1, live: true})
	return OwnerKey{slot: uint32(len(rt.owners) - 1), gen: 1}
}

// Alive reports whether owner has been allocated and not yet released.
func (rt *Runtime) Alive(owner OwnerKey) bool {
	if owner.IsZero() || int(owner.slot) >= len(rt.owners) {
		return false
	}
	o := rt.owners[owner.slot]
	return o.live && o.gen == owner.gen
}

// Release frees owner. Its registry entries stop firing immediately and are
// reclaimed by the next Prune.
func (rt *Runtime) Release(owner OwnerKey) {
	if !rt.Alive(owner) {
		panic(fmt.Errorf("%w: %s", ErrReleased, owner))
	}
	o := &rt.owners[owner.slot]
	o.live = false
	o.gen = nextGen(o.gen)
	rt.freeOwners = append(rt.freeOwners, owner.slot)

	rt.released++
	if rt.pruneThreshold > 0 && rt.released >= rt.pruneThreshold && len(rt.stack) == 0 {
		rt.Prune()
	}
}

// Prune drops registry entries of released owners and frees every idle effect
// left without subscriptions.
func (rt *Runtime) Prune() (owners, effects int) {
	owners = rt.registry.sweep(rt.Alive, func(id EffectID, d dependency) {
		if e := rt.effect(id); e != nil {
			e.deps.Remove(d)
		}
	})
	for i, e := range rt.effects {
		if e.live && e.running == 0 && e.deps.Cardinality() == 0 {
			rt.freeEffect(EffectID{slot: uint32(i), gen: e.gen})
			effects++
		}
	}
	rt.released = 0
	return owners, effects
}

// Track subscribes the active effect, if any, to (owner, prop).
func (rt *Runtime) Track(owner OwnerKey, prop string) {
	rt.track(owner, newProperty(prop))
}

// Trigger re-runs every effect subscribed to (owner, prop). The subscriber set
// is snapshotted first; effects subscribed during the cycle wait for the next
// trigger.
func (rt *Runtime) Trigger(owner OwnerKey, prop string) {
	rt.trigger(owner, newProperty(prop))
}

func (rt *Runtime) track(owner OwnerKey, p property) {
	id := rt.top()
	if id.IsZero() || !rt.Alive(owner) {
		return
	}
	e := rt.effect(id)
	if e == nil {
		return
	}
	d := dependency{owner: owner, prop: p.hash}
	rt.registry.add(d, p.name, id)
	e.deps.Add(d)
}

func (rt *Runtime) trigger(owner OwnerKey, p property) {
	if rt.onTrigger != nil {
		rt.onTrigger(owner, p.name)
	}
	if !rt.Alive(owner) {
		return
	}
	for _, id := range rt.registry.snapshot(dependency{owner: owner, prop: p.hash}) {
		rt.run(id)
	}
}

// Gap runs scope with no active effect, so reads inside it subscribe nothing.
func (rt *Runtime) Gap(scope func()) {
	rt.push(EffectID{})
	defer rt.pop()
	scope()
}

// Active reports whether reads would currently be tracked.
func (rt *Runtime) Active() bool {
	id := rt.top()
	return !id.IsZero() && rt.effect(id) != nil
}

// Depth is the number of frames on the execution stack, gaps included.
func (rt *Runtime) Depth() int {
	return len(rt.stack)
}

// WatchEffect runs body immediately as an effect and re-runs it whenever a
// dependency it read is triggered. Subscriptions accumulate across runs.
func (rt *Runtime) WatchEffect(body func()) (stop func()) {
	id := rt.newEffect(body)
	rt.run(id)
	return rt.settle(id)
}

// watch registers rerun as the effect body but performs the initial tracking
// run with initial instead.
func (rt *Runtime) watch(initial, rerun func()) (stop func()) {
	id := rt.newEffect(rerun)
	rt.within(id, initial)
	return rt.settle(id)
}

// settle frees an effect that subscribed to nothing on its first run.
func (rt *Runtime) settle(id EffectID) (stop func()) {
	if e := rt.effect(id); e != nil && e.running == 0 && e.deps.Cardinality() == 0 {
		rt.freeEffect(id)
	}
	return func() {
		rt.stop(id)
	}
}

func (rt *Runtime) run(id EffectID) {
	e := rt.effect(id)
	if e == nil {
		return
	}
	rt.within(id, e.fn)
}

func (rt *Runtime) within(id EffectID, fn func()) {
	e := rt.effect(id)
	if e == nil {
		return
	}
	e.running++
	rt.push(id)
	defer func() {
		rt.pop()
		e.running--
		if !e.live && e.running == 0 {
			rt.freeEffects = append(rt.freeEffects, id.slot)
		}
	}()
	fn()
}

func (rt *Runtime) stop(id EffectID) {
	e := rt.effect(id)
	if e == nil {
		return
	}
	e.deps.Each(func(d dependency) bool {
		rt.registry.remove(d, id)
		return false
	})
	rt.freeEffect(id)
}

func (rt *Runtime) newEffect(fn func()) EffectID {
	if n := len(rt.freeEffects); n > 0 {
		slot := rt.freeEffects[n-1]
		rt.freeEffects = rt.freeEffects[:n-1]
		e := rt.effects[slot]
		e.live = true
		e.fn = fn
		e.deps = mapset.NewThreadUnsafeSet[dependency]()
		return EffectID{slot: slot, gen: e.gen}
	}
	rt.effects = append(rt.effects, &effectSlot{
		gen:  1,
		live: true,
		fn:   fn,
		deps: mapset.NewThreadUnsafeSet[dependency](),
	})
	return EffectID{slot: uint32(len(rt.effects) - 1), gen: 1}
}

func (rt *Runtime) freeEffect(id EffectID) {
	e := rt.effects[id.slot]
	e.live = false
	e.fn = nil
	e.deps = nil
	e.gen = nextGen(e.gen)
	// a running slot is recycled once its last frame unwinds
	if e.running == 0 {
		rt.freeEffects = append(rt.freeEffects, id.slot)
	}
}

func (rt *Runtime) effect(id EffectID) *effectSlot {
	if id.IsZero() || int(id.slot) >= len(rt.effects) {
		return nil
	}
	e := rt.effects[id.slot]
	if !e.live || e.gen != id.gen {
		return nil
	}
	return e
}

func (rt *Runtime) push(id EffectID) {
	rt.stack = append(rt.stack, id)
}

func (rt *Runtime) pop() {
	rt.stack = rt.stack[:len(rt.stack)-1]
}

func (rt *Runtime) top() EffectID {
	if len(rt.stack) == 0 {
		return EffectID{}
	}
	return rt.stack[len(rt.stack)-1]
}

// Stats is a point-in-time census of the runtime.
type Stats struct {
	Owners        int
	Effects       int
	Subscriptions int
	Depth         int
}

func (rt *Runtime) Stats() Stats {
	s := Stats{
		Owners:        len(rt.owners) - len(rt.freeOwners),
		Effects:       len(rt.effects) - len(rt.freeEffects),
		Subscriptions: rt.registry.count(),
		Depth:         len(rt.stack),
	}
	return s
}

func nextGen(gen uint32) uint32 {
	gen++
	if gen == 0 {
		gen = 1
	}
	return gen
}
