/*
 * Graph datastore engine
 *
 * Copyright 2026 Graph Datastore Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package memstore

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/krotik/graphdb"
	"github.com/krotik/graphdb/data"
	"github.com/krotik/graphdb/query"
)

/*
engine holds the actual graph data and indexes. It has no locking of its
own - Store and txn are responsible for guarding every call with their
mutex. Keeping the unlocked core separate from the locking wrapper is what
lets a transaction operate on its own private clone without needing a
second lock-free code path.
*/
type engine struct {
	vertices    map[uuid.UUID]data.Vertex
	vertexOrder []uuid.UUID // kept sorted for deterministic Range order
	vertexProps map[uuid.UUID]map[string]graphdb.Value

	edges       map[data.EdgeKey]data.Edge
	edgeOrder   []data.EdgeKey // kept sorted (outbound, type, inbound)
	edgeProps   map[data.EdgeKey]map[string]graphdb.Value

	outAdj map[uuid.UUID][]data.EdgeKey // edges where the vertex is outbound, sorted
	inAdj  map[uuid.UUID][]data.EdgeKey // edges where the vertex is inbound, sorted

	vertexIdx map[string]*propertyIndex[uuid.UUID]
	edgeIdx   map[string]*propertyIndex[data.EdgeKey]
}

func newEngine() *engine {
	return &engine{
		vertices:    make(map[uuid.UUID]data.Vertex),
		vertexProps: make(map[uuid.UUID]map[string]graphdb.Value),
		edges:       make(map[data.EdgeKey]data.Edge),
		edgeProps:   make(map[data.EdgeKey]map[string]graphdb.Value),
		outAdj:      make(map[uuid.UUID][]data.EdgeKey),
		inAdj:       make(map[uuid.UUID][]data.EdgeKey),
		vertexIdx:   make(map[string]*propertyIndex[uuid.UUID]),
		edgeIdx:     make(map[string]*propertyIndex[data.EdgeKey]),
	}
}

func (e *engine) clone() *engine {
	out := newEngine()

	for id, v := range e.vertices {
		out.vertices[id] = v
	}
	out.vertexOrder = append([]uuid.UUID(nil), e.vertexOrder...)
	for id, props := range e.vertexProps {
		out.vertexProps[id] = cloneValueMap(props)
	}

	for k, ed := range e.edges {
		out.edges[k] = ed
	}
	out.edgeOrder = append([]data.EdgeKey(nil), e.edgeOrder...)
	for k, props := range e.edgeProps {
		out.edgeProps[k] = cloneValueMap(props)
	}

	for id, keys := range e.outAdj {
		out.outAdj[id] = append([]data.EdgeKey(nil), keys...)
	}
	for id, keys := range e.inAdj {
		out.inAdj[id] = append([]data.EdgeKey(nil), keys...)
	}

	for name, idx := range e.vertexIdx {
		out.vertexIdx[name] = idx.clone()
	}
	for name, idx := range e.edgeIdx {
		out.edgeIdx[name] = idx.clone()
	}

	return out
}

func cloneValueMap(m map[string]graphdb.Value) map[string]graphdb.Value {
	out := make(map[string]graphdb.Value, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Vertices
// ========

func vertexInsertPos(order []uuid.UUID, id uuid.UUID) int {
	return sort.Search(len(order), func(i int) bool {
		return compareUUID(order[i], id) >= 0
	})
}

func compareUUID(a, b uuid.UUID) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

/*
createVertex inserts v if its id is not already taken. Returns false, not an
error, on a pre-existing id.
*/
func (e *engine) createVertex(v data.Vertex) bool {
	if _, exists := e.vertices[v.Id]; exists {
		return false
	}

	e.vertices[v.Id] = v
	pos := vertexInsertPos(e.vertexOrder, v.Id)
	e.vertexOrder = append(e.vertexOrder, uuid.UUID{})
	copy(e.vertexOrder[pos+1:], e.vertexOrder[pos:])
	e.vertexOrder[pos] = v.Id

	return true
}

func (e *engine) hasVertex(id uuid.UUID) bool {
	_, ok := e.vertices[id]
	return ok
}

func (e *engine) vertexCount() uint64 {
	return uint64(len(e.vertices))
}

/*
deleteVertex removes the vertex and, first, its incident edges (and their
properties), then its own properties, then the vertex itself - so a reader
never observes an edge whose endpoint vertex is gone.
*/
func (e *engine) deleteVertex(id uuid.UUID) {
	if !e.hasVertex(id) {
		return
	}

	for _, k := range append([]data.EdgeKey(nil), e.outAdj[id]...) {
		e.deleteEdge(k)
	}
	for _, k := range append([]data.EdgeKey(nil), e.inAdj[id]...) {
		e.deleteEdge(k)
	}

	for name, val := range e.vertexProps[id] {
		e.deindexVertexProperty(name, id, val)
	}
	delete(e.vertexProps, id)

	delete(e.vertices, id)
	pos := vertexInsertPos(e.vertexOrder, id)
	if pos < len(e.vertexOrder) && e.vertexOrder[pos] == id {
		e.vertexOrder = append(e.vertexOrder[:pos], e.vertexOrder[pos+1:]...)
	}
	delete(e.outAdj, id)
	delete(e.inAdj, id)
}

// Edges
// =====

func edgeInsertPos(order []data.EdgeKey, key data.EdgeKey) int {
	return sort.Search(len(order), func(i int) bool {
		return !order[i].Less(key)
	})
}

func insertSortedEdgeKey(order []data.EdgeKey, key data.EdgeKey) []data.EdgeKey {
	pos := edgeInsertPos(order, key)
	order = append(order, data.EdgeKey{})
	copy(order[pos+1:], order[pos:])
	order[pos] = key
	return order
}

func removeEdgeKey(order []data.EdgeKey, key data.EdgeKey) []data.EdgeKey {
	pos := edgeInsertPos(order, key)
	if pos < len(order) && order[pos] == key {
		return append(order[:pos], order[pos+1:]...)
	}
	return order
}

/*
createEdge upserts the edge at key: inserts it if absent, or refreshes its
CreatedAt if present. Returns false if either endpoint vertex does not
exist; createdAt is the caller-supplied "now".
*/
func (e *engine) createEdge(key data.EdgeKey, createdAt time.Time) bool {
	if !e.hasVertex(key.Outbound) || !e.hasVertex(key.Inbound) {
		return false
	}

	if _, exists := e.edges[key]; !exists {
		e.edgeOrder = insertSortedEdgeKey(e.edgeOrder, key)
		e.outAdj[key.Outbound] = insertSortedEdgeKey(e.outAdj[key.Outbound], key)
		e.inAdj[key.Inbound] = insertSortedEdgeKey(e.inAdj[key.Inbound], key)
	}

	e.edges[key] = data.NewEdge(key, createdAt)

	return true
}

func (e *engine) hasEdge(key data.EdgeKey) bool {
	_, ok := e.edges[key]
	return ok
}

/*
deleteEdge removes the edge and all of its properties.
*/
func (e *engine) deleteEdge(key data.EdgeKey) {
	if !e.hasEdge(key) {
		return
	}

	for name, val := range e.edgeProps[key] {
		e.deindexEdgeProperty(name, key, val)
	}
	delete(e.edgeProps, key)

	delete(e.edges, key)
	e.edgeOrder = removeEdgeKey(e.edgeOrder, key)
	e.outAdj[key.Outbound] = removeEdgeKey(e.outAdj[key.Outbound], key)
	e.inAdj[key.Inbound] = removeEdgeKey(e.inAdj[key.Inbound], key)
}

func (e *engine) edgeCount(id uuid.UUID, edgeType *graphdb.Identifier, dir query.Direction) uint64 {
	var keys []data.EdgeKey
	if dir == query.Outbound {
		keys = e.outAdj[id]
	} else {
		keys = e.inAdj[id]
	}

	if edgeType == nil {
		return uint64(len(keys))
	}

	var count uint64
	for _, k := range keys {
		if k.T.Equal(*edgeType) {
			count++
		}
	}
	return count
}

// Properties
// ==========

func (e *engine) setVertexProperty(id uuid.UUID, name graphdb.Identifier, value graphdb.Value) {
	props, ok := e.vertexProps[id]
	if !ok {
		props = make(map[string]graphdb.Value)
		e.vertexProps[id] = props
	}

	props[name.String()] = value
	e.indexVertexProperty(name.String(), id, value)
}

func (e *engine) deleteVertexProperty(id uuid.UUID, name graphdb.Identifier) {
	props, ok := e.vertexProps[id]
	if !ok {
		return
	}

	old, had := props[name.String()]
	if !had {
		return
	}

	delete(props, name.String())
	e.deindexVertexProperty(name.String(), id, old)
}

func (e *engine) vertexProperty(id uuid.UUID, name graphdb.Identifier) (graphdb.Value, bool) {
	props, ok := e.vertexProps[id]
	if !ok {
		return graphdb.Value{}, false
	}
	v, ok := props[name.String()]
	return v, ok
}

func (e *engine) setEdgeProperty(key data.EdgeKey, name graphdb.Identifier, value graphdb.Value) {
	props, ok := e.edgeProps[key]
	if !ok {
		props = make(map[string]graphdb.Value)
		e.edgeProps[key] = props
	}

	props[name.String()] = value
	e.indexEdgeProperty(name.String(), key, value)
}

func (e *engine) deleteEdgeProperty(key data.EdgeKey, name graphdb.Identifier) {
	props, ok := e.edgeProps[key]
	if !ok {
		return
	}

	old, had := props[name.String()]
	if !had {
		return
	}

	delete(props, name.String())
	e.deindexEdgeProperty(name.String(), key, old)
}

func (e *engine) edgeProperty(key data.EdgeKey, name graphdb.Identifier) (graphdb.Value, bool) {
	props, ok := e.edgeProps[key]
	if !ok {
		return graphdb.Value{}, false
	}
	v, ok := props[name.String()]
	return v, ok
}

// Indexes
// =======

func (e *engine) indexVertexProperty(name string, id uuid.UUID, value graphdb.Value) {
	idx, ok := e.vertexIdx[name]
	if !ok {
		return
	}
	idx.set(id, value)
}

func (e *engine) deindexVertexProperty(name string, id uuid.UUID, _ graphdb.Value) {
	idx, ok := e.vertexIdx[name]
	if !ok {
		return
	}
	idx.unset(id)
}

func (e *engine) indexEdgeProperty(name string, key data.EdgeKey, value graphdb.Value) {
	idx, ok := e.edgeIdx[name]
	if !ok {
		return
	}
	idx.set(key, value)
}

func (e *engine) deindexEdgeProperty(name string, key data.EdgeKey, _ graphdb.Value) {
	idx, ok := e.edgeIdx[name]
	if !ok {
		return
	}
	idx.unset(key)
}

/*
ensureVertexIndex declares name as an indexed vertex property, scanning all
existing vertices to populate it. A second call for an already-Ready name is
a no-op.
*/
func (e *engine) ensureVertexIndex(name graphdb.Identifier) {
	key := name.String()
	if idx, ok := e.vertexIdx[key]; ok && idx.state == indexReady {
		return
	}

	idx := newPropertyIndex[uuid.UUID]()
	e.vertexIdx[key] = idx

	for id, props := range e.vertexProps {
		if v, ok := props[key]; ok {
			idx.set(id, v)
		}
	}

	idx.state = indexReady
}

/*
ensureEdgeIndex is the edge-owner analogue of ensureVertexIndex.
*/
func (e *engine) ensureEdgeIndex(name graphdb.Identifier) {
	key := name.String()
	if idx, ok := e.edgeIdx[key]; ok && idx.state == indexReady {
		return
	}

	idx := newPropertyIndex[data.EdgeKey]()
	e.edgeIdx[key] = idx

	for k, props := range e.edgeProps {
		if v, ok := props[key]; ok {
			idx.set(k, v)
		}
	}

	idx.state = indexReady
}

func (e *engine) vertexIndexed(name graphdb.Identifier) (*propertyIndex[uuid.UUID], bool) {
	idx, ok := e.vertexIdx[name.String()]
	return idx, ok && idx.state == indexReady
}

func (e *engine) edgeIndexed(name graphdb.Identifier) (*propertyIndex[data.EdgeKey], bool) {
	idx, ok := e.edgeIdx[name.String()]
	return idx, ok && idx.state == indexReady
}
