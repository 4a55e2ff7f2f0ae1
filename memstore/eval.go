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
	"github.com/google/uuid"
	"github.com/krotik/graphdb/data"
	"github.com/krotik/graphdb/graphutil"
	"github.com/krotik/graphdb/query"
)

/*
evalVertexQuery walks a VertexQuery tree bottom-up and returns the matching
vertices. It is the heart of the index manager and query evaluator:
PropertyPresence/PropertyValue variants and PropertyPipe filters consult the
declared index for their property name and fail NotIndexed before touching
any data if the name is undeclared.
*/
func (e *engine) evalVertexQuery(q query.VertexQuery) ([]data.Vertex, error) {
	switch v := q.(type) {

	case *query.RangeVertexQuery:
		return e.evalRangeVertex(v)

	case *query.SpecificVertexQuery:
		out := make([]data.Vertex, 0, len(v.Ids))
		for _, id := range v.Ids {
			if vx, ok := e.vertices[id]; ok {
				out = append(out, vx)
			}
		}
		return out, nil

	case *query.PropertyPresenceVertexQuery:
		idx, ok := e.vertexIndexed(v.Name)
		if !ok {
			return nil, notIndexedErr(v.Name.String())
		}
		return e.vertexSubsetInOrder(setOfUUID(idx.owners())), nil

	case *query.PropertyValueVertexQuery:
		idx, ok := e.vertexIndexed(v.Name)
		if !ok {
			return nil, notIndexedErr(v.Name.String())
		}
		return e.vertexSubsetInOrder(setOfUUID(idx.ownersWithValue(v.Value))), nil

	case *query.PipeVertexQuery:
		edges, err := e.evalEdgeQuery(v.Inner)
		if err != nil {
			return nil, err
		}

		var out []data.Vertex
		seen := make(map[uuid.UUID]struct{})
		for _, ed := range edges {
			id := ed.Key.Outbound
			if v.Side == query.Inbound {
				id = ed.Key.Inbound
			}
			if _, dup := seen[id]; dup {
				continue
			}
			if vx, ok := e.vertices[id]; ok {
				seen[id] = struct{}{}
				out = append(out, vx)
			}
		}
		return out, nil

	case *query.PropertyPipeVertexQuery:
		idx, ok := e.vertexIndexed(v.Filter.Name)
		if !ok {
			return nil, notIndexedErr(v.Filter.Name.String())
		}

		inner, err := e.evalVertexQuery(v.Inner)
		if err != nil {
			return nil, err
		}

		equalSet := setOfUUID(idx.ownersWithValue(v.Filter.Value))

		out := make([]data.Vertex, 0, len(inner))
		for _, vx := range inner {
			if filterMatchesVertex(v.Filter.Kind, idx, equalSet, vx.Id) {
				out = append(out, vx)
			}
		}
		return out, nil

	default:
		return nil, graphutil.New(graphutil.ErrBackend, "unknown vertex query variant")
	}
}

func filterMatchesVertex(kind query.FilterKind, idx *propertyIndex[uuid.UUID], equalSet map[uuid.UUID]struct{}, id uuid.UUID) bool {
	switch kind {
	case query.FilterPresence:
		_, present := idx.presence[id]
		return present
	case query.FilterEqual:
		_, eq := equalSet[id]
		return eq
	default: // FilterNotEqual
		_, eq := equalSet[id]
		return !eq
	}
}

func (e *engine) evalRangeVertex(v *query.RangeVertexQuery) ([]data.Vertex, error) {
	out := make([]data.Vertex, 0)

	started := v.StartID == nil
	for _, id := range e.vertexOrder {
		if uint32(len(out)) >= v.Limit {
			break
		}

		if !started {
			if compareUUID(id, *v.StartID) > 0 {
				started = true
			} else {
				continue
			}
		}

		vx := e.vertices[id]
		if v.Type != nil && !vx.T.Equal(*v.Type) {
			continue
		}

		out = append(out, vx)
	}

	return out, nil
}

func setOfUUID(ids []uuid.UUID) map[uuid.UUID]struct{} {
	out := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

/*
vertexSubsetInOrder filters the authoritative id order down to the given
set, so index-backed queries still return results in the same deterministic
id order as a Range query. Per-backend determinism is required of every
query variant, and reusing the id order is the simplest way to guarantee it.
*/
func (e *engine) vertexSubsetInOrder(set map[uuid.UUID]struct{}) []data.Vertex {
	out := make([]data.Vertex, 0, len(set))
	for _, id := range e.vertexOrder {
		if _, ok := set[id]; ok {
			out = append(out, e.vertices[id])
		}
	}
	return out
}

/*
evalEdgeQuery is the edge-side counterpart of evalVertexQuery.
*/
func (e *engine) evalEdgeQuery(q query.EdgeQuery) ([]data.Edge, error) {
	switch v := q.(type) {

	case *query.RangeEdgeQuery:
		return e.evalRangeEdge(v)

	case *query.SpecificEdgeQuery:
		out := make([]data.Edge, 0, len(v.Keys))
		for _, k := range v.Keys {
			if ed, ok := e.edges[k]; ok {
				out = append(out, ed)
			}
		}
		return out, nil

	case *query.PropertyPresenceEdgeQuery:
		idx, ok := e.edgeIndexed(v.Name)
		if !ok {
			return nil, notIndexedErr(v.Name.String())
		}
		return e.edgeSubsetInOrder(setOfEdgeKey(idx.owners())), nil

	case *query.PropertyValueEdgeQuery:
		idx, ok := e.edgeIndexed(v.Name)
		if !ok {
			return nil, notIndexedErr(v.Name.String())
		}
		return e.edgeSubsetInOrder(setOfEdgeKey(idx.ownersWithValue(v.Value))), nil

	case *query.PipeEdgeQuery:
		return e.evalPipeEdge(v)

	case *query.PropertyPipeEdgeQuery:
		idx, ok := e.edgeIndexed(v.Filter.Name)
		if !ok {
			return nil, notIndexedErr(v.Filter.Name.String())
		}

		inner, err := e.evalEdgeQuery(v.Inner)
		if err != nil {
			return nil, err
		}

		equalSet := setOfEdgeKey(idx.ownersWithValue(v.Filter.Value))

		out := make([]data.Edge, 0, len(inner))
		for _, ed := range inner {
			if filterMatchesEdge(v.Filter.Kind, idx, equalSet, ed.Key) {
				out = append(out, ed)
			}
		}
		return out, nil

	default:
		return nil, graphutil.New(graphutil.ErrBackend, "unknown edge query variant")
	}
}

func filterMatchesEdge(kind query.FilterKind, idx *propertyIndex[data.EdgeKey], equalSet map[data.EdgeKey]struct{}, key data.EdgeKey) bool {
	switch kind {
	case query.FilterPresence:
		_, present := idx.presence[key]
		return present
	case query.FilterEqual:
		_, eq := equalSet[key]
		return eq
	default: // FilterNotEqual
		_, eq := equalSet[key]
		return !eq
	}
}

func (e *engine) evalRangeEdge(v *query.RangeEdgeQuery) ([]data.Edge, error) {
	out := make([]data.Edge, 0)

	started := v.StartKey == nil
	for _, k := range e.edgeOrder {
		if uint32(len(out)) >= v.Limit {
			break
		}

		if !started {
			if k.Less(*v.StartKey) || k == *v.StartKey {
				continue
			}
			started = true
		}

		out = append(out, e.edges[k])
	}

	return out, nil
}

func (e *engine) evalPipeEdge(v *query.PipeEdgeQuery) ([]data.Edge, error) {
	vertices, err := e.evalVertexQuery(v.Inner)
	if err != nil {
		return nil, err
	}

	var out []data.Edge
	seen := make(map[data.EdgeKey]struct{})

	for _, vx := range vertices {
		var keys []data.EdgeKey
		if v.Side == query.Outbound {
			keys = e.outAdj[vx.Id]
		} else {
			keys = e.inAdj[vx.Id]
		}

		for _, k := range keys {
			if v.Type != nil && !k.T.Equal(*v.Type) {
				continue
			}

			ed := e.edges[k]
			if !v.Window.Contains(ed.CreatedAt) {
				continue
			}

			if _, dup := seen[k]; dup {
				continue
			}

			if uint32(len(out)) >= v.Limit {
				return out, nil
			}

			seen[k] = struct{}{}
			out = append(out, ed)
		}
	}

	return out, nil
}

func setOfEdgeKey(keys []data.EdgeKey) map[data.EdgeKey]struct{} {
	out := make(map[data.EdgeKey]struct{}, len(keys))
	for _, k := range keys {
		out[k] = struct{}{}
	}
	return out
}

func (e *engine) edgeSubsetInOrder(set map[data.EdgeKey]struct{}) []data.Edge {
	out := make([]data.Edge, 0, len(set))
	for _, k := range e.edgeOrder {
		if _, ok := set[k]; ok {
			out = append(out, e.edges[k])
		}
	}
	return out
}

func notIndexedErr(name string) error {
	return graphutil.New(graphutil.ErrNotIndexed, "property "+name+" has no declared index")
}
