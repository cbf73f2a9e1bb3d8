package cells

import (
	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
)

// property is an interned property name.
type property struct {
	name string
	hash uint64
}

func newProperty(name string) property {
	return property{name: name, hash: xxhash.Sum64String(name)}
}

var (
	propValue      = newProperty("Value")
	propCount      = newProperty("Count")
	propItems      = newProperty("Item[]")
	propCanExecute = newProperty("CanExecute")
)

// dependency is one observed key: an owner and one of its properties.
type dependency struct {
	owner OwnerKey
	prop  uint64
}

// registry maps owner -> property -> subscribed effects. It holds arena keys
// only, so it never keeps an owner alive.
type registry struct {
	subs  map[OwnerKey]map[uint64]mapset.Set[EffectID]
	names map[uint64]string
}

func newRegistry() registry {
	return registry{
		subs:  map[OwnerKey]map[uint64]mapset.Set[EffectID]{},
		names: map[uint64]string{},
	}
}

func (r *registry) add(d dependency, name string, id EffectID) {
	props, ok := r.subs[d.owner]
	if !ok {
		props = map[uint64]mapset.Set[EffectID]{}
		r.subs[d.owner] = props
	}
	effects, ok := props[d.prop]
	if !ok {
		effects = mapset.NewThreadUnsafeSet[EffectID]()
		props[d.prop] = effects
	}
	effects.Add(id)
	if _, ok := r.names[d.prop]; !ok {
		r.names[d.prop] = name
	}
}

func (r *registry) remove(d dependency, id EffectID) {
	props, ok := r.subs[d.owner]
	if !ok {
		return
	}
	effects, ok := props[d.prop]
	if !ok {
		return
	}
	effects.Remove(id)
	if effects.Cardinality() == 0 {
		delete(props, d.prop)
	}
	if len(props) == 0 {
		delete(r.subs, d.owner)
	}
}

func (r *registry) snapshot(d dependency) []EffectID {
	effects, ok := r.subs[d.owner][d.prop]
	if !ok || effects.Cardinality() == 0 {
		return nil
	}
	return effects.ToSlice()
}

// sweep deletes the entries of every owner for which alive is false, calling
// detach for each (effect, dependency) pair it drops.
func (r *registry) sweep(alive func(OwnerKey) bool, detach func(EffectID, dependency)) (swept int) {
	for owner, props := range r.subs {
		if alive(owner) {
			continue
		}
		for prop, effects := range props {
			d := dependency{owner: owner, prop: prop}
			for _, id := range effects.ToSlice() {
				detach(id, d)
			}
		}
		delete(r.subs, owner)
		swept++
	}
	return swept
}

func (r *registry) count() (n int) {
	for _, props := range r.subs {
		for _, effects := range props {
			n += effects.Cardinality()
		}
	}
	return n
}

// Subscribers reports, per tracked property name, how many effects are
// subscribed to owner.
func (rt *Runtime) Subscribers(owner OwnerKey) map[string]int {
	props := rt.registry.subs[owner]
	out := make(map[string]int, len(props))
	for prop, effects := range props {
		out[rt.registry.names[prop]] = effects.Cardinality()
	}
	return out
}
