package store

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Memory is an in-process Store with Realtime-Database-like tree semantics:
// values live at slash paths, writing nil deletes, and nodes emptied by a
// delete disappear entirely. Used by tests and for credential-less local runs.
type Memory struct {
	mu   sync.RWMutex
	root map[string]interface{}
}

func NewMemory() *Memory {
	return &Memory{root: make(map[string]interface{})}
}

func (m *Memory) Get(ctx context.Context, path string, dest interface{}) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, ok := m.lookup(path)
	if !ok {
		return nil
	}
	return decode(node, dest)
}

func (m *Memory) Set(ctx context.Context, path string, value interface{}) error {
	normalized, err := normalize(value)
	if err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrTaskFailed, path, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.write(path, normalized)
	return nil
}

func (m *Memory) Delete(ctx context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.remove(path)
	return nil
}

func (m *Memory) Update(ctx context.Context, values map[string]interface{}) error {
	normalized := make(map[string]interface{}, len(values))
	for path, value := range values {
		if value == nil {
			normalized[path] = nil
			continue
		}
		v, err := normalize(value)
		if err != nil {
			return fmt.Errorf("%w: update %s: %v", ErrTaskFailed, path, err)
		}
		normalized[path] = v
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for path, value := range normalized {
		if value == nil {
			m.remove(path)
		} else {
			m.write(path, value)
		}
	}
	return nil
}

func (m *Memory) Query(ctx context.Context, path, field string, value interface{}, dest interface{}) error {
	want, err := normalize(value)
	if err != nil {
		return fmt.Errorf("%w: query %s: %v", ErrTaskFailed, path, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	matches := make(map[string]interface{})
	node, ok := m.lookup(path)
	if ok {
		children, isMap := node.(map[string]interface{})
		if !isMap {
			return fmt.Errorf("%w: query %s: not a collection", ErrTaskFailed, path)
		}
		for key, child := range children {
			record, isMap := child.(map[string]interface{})
			if !isMap {
				continue
			}
			if reflect.DeepEqual(record[field], want) {
				matches[key] = record
			}
		}
	}
	return decode(matches, dest)
}

// lookup walks the tree; callers hold at least a read lock.
func (m *Memory) lookup(path string) (interface{}, bool) {
	var node interface{} = m.root
	for _, part := range splitPath(path) {
		children, ok := node.(map[string]interface{})
		if !ok {
			return nil, false
		}
		node, ok = children[part]
		if !ok {
			return nil, false
		}
	}
	return node, true
}

// write sets a leaf, creating intermediate maps; callers hold the write lock.
func (m *Memory) write(path string, value interface{}) {
	parts := splitPath(path)
	parent := m.root
	for _, part := range parts[:len(parts)-1] {
		child, ok := parent[part].(map[string]interface{})
		if !ok {
			child = make(map[string]interface{})
			parent[part] = child
		}
		parent = child
	}
	parent[parts[len(parts)-1]] = value
}

// remove deletes a subtree and prunes parents left empty, matching the
// backend's behavior of never keeping empty nodes around.
func (m *Memory) remove(path string) {
	parts := splitPath(path)
	parents := make([]map[string]interface{}, 0, len(parts))
	parent := m.root
	for _, part := range parts[:len(parts)-1] {
		parents = append(parents, parent)
		child, ok := parent[part].(map[string]interface{})
		if !ok {
			return
		}
		parent = child
	}
	delete(parent, parts[len(parts)-1])

	for i := len(parents) - 1; i >= 0; i-- {
		child, _ := parents[i][parts[i]].(map[string]interface{})
		if len(child) > 0 {
			return
		}
		delete(parents[i], parts[i])
	}
}

func splitPath(path string) []string {
	return strings.Split(strings.Trim(path, "/"), "/")
}

// normalize round-trips a value through JSON so stored nodes are plain
// maps/slices/primitives, the same shape a remote backend would return.
func normalize(value interface{}) (interface{}, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decode(node interface{}, dest interface{}) error {
	raw, err := json.Marshal(node)
	if err != nil {
		return fmt.Errorf("%w: decode: %v", ErrTaskFailed, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrTaskFailed, err)
	}
	return nil
}
