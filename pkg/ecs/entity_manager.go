package ecs

import (
	"reflect"

	"github.com/gonewx/survivor/pkg/utils"
)

// EntityID is the unique identifier of an entity.
// IDs start at 1 and are never reused; 0 is reserved as the invalid ID.
type EntityID uint64

// EntityManager owns every entity and its components.
//
// Storage is EntityID -> component type -> component instance. An entity with no
// components is invisible to queries but can still receive components until it is
// destroyed.
type EntityManager struct {
	nextID uint64
	// EntityID -> ComponentType -> component instance
	components map[EntityID]map[reflect.Type]interface{}
	// creation order of ids, compacted lazily after destructions
	order     []EntityID
	destroyed int
	// ids queued by MarkForDestroy, removed by RemoveMarkedEntities
	entitiesToDestroy []EntityID
}

// NewEntityManager creates an empty EntityManager.
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // 0 is the invalid id
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		order:             make([]EntityID, 0),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity allocates a fresh entity with an empty component set.
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	em.order = append(em.order, id)
	return id
}

// Exists reports whether id has been created and not destroyed.
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// EntityCount returns the number of live entities.
func (em *EntityManager) EntityCount() int {
	return len(em.components)
}

// DestroyEntity removes the entity and all of its components at once.
// Destroying an unknown or already destroyed id is reported as an invariant
// violation and returns false.
func (em *EntityManager) DestroyEntity(id EntityID) bool {
	if _, exists := em.components[id]; !exists {
		utils.Invariant(false, "[EntityManager] destroy of unknown entity %d", id)
		return false
	}
	delete(em.components, id)
	em.destroyed++
	if em.destroyed > len(em.order)/2 {
		em.compact()
	}
	return true
}

// MarkForDestroy queues the entity for removal by RemoveMarkedEntities.
func (em *EntityManager) MarkForDestroy(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// RemoveMarkedEntities destroys every queued entity that still exists.
func (em *EntityManager) RemoveMarkedEntities() int {
	removed := 0
	for _, id := range em.entitiesToDestroy {
		if em.Exists(id) && em.DestroyEntity(id) {
			removed++
		}
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
	return removed
}

// AddComponent inserts or overwrites the component of the same type.
// It is a no-op when the entity does not exist.
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	if component == nil {
		return
	}
	componentType := reflect.TypeOf(component)
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
	}
}

// RemoveComponent removes the component of the given type if present.
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponent returns the component of the given type.
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent reports whether the entity holds a component of the given type.
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// GetEntitiesWith returns every entity holding all of the given component types,
// in creation order. The slice is built at call time; later mutations are not
// reflected in it.
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for _, id := range em.order {
		compMap, alive := em.components[id]
		if !alive || len(compMap) == 0 {
			continue
		}
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	return result
}

// compact drops destroyed ids from the creation-order index.
func (em *EntityManager) compact() {
	kept := em.order[:0]
	for _, id := range em.order {
		if _, alive := em.components[id]; alive {
			kept = append(kept, id)
		}
	}
	// clear the tail so the backing array does not pin stale ids
	for i := len(kept); i < len(em.order); i++ {
		em.order[i] = 0
	}
	em.order = kept
	em.destroyed = 0
}
