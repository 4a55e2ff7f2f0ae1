/*
 * Graph datastore engine
 *
 * Copyright 2026 Graph Datastore Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package query

import (
	"github.com/krotik/graphdb"
	"github.com/krotik/graphdb/data"
)

/*
EdgeQuery is a selection over edges. It is a closed sum type: the only
implementations are the ones in this package.
*/
type EdgeQuery interface {
	isEdgeQuery()

	/*
	   WithProperty keeps only the edges produced by this query that have any
	   value for name.
	*/
	WithProperty(name graphdb.Identifier) EdgeQuery

	/*
	   WithPropertyEqualTo keeps only the edges whose value for name equals
	   value.
	*/
	WithPropertyEqualTo(name graphdb.Identifier, value graphdb.Value) EdgeQuery

	/*
	   WithPropertyNotEqualTo keeps only the edges whose value for name is
	   absent or does not equal value.
	*/
	WithPropertyNotEqualTo(name graphdb.Identifier, value graphdb.Value) EdgeQuery

	/*
	   Outbound pipes this edge query into a vertex query: the outbound
	   endpoint of every edge produced by this query.
	*/
	Outbound() VertexQuery

	/*
	   Inbound pipes this edge query into a vertex query: the inbound
	   endpoint of every edge produced by this query.
	*/
	Inbound() VertexQuery
}

/*
edgeQueryMixin mirrors vertexQueryMixin: it supplies the builder methods
shared by every EdgeQuery variant.
*/
type edgeQueryMixin struct {
	self EdgeQuery
}

func (m edgeQueryMixin) WithProperty(name graphdb.Identifier) EdgeQuery {
	return newPropertyPipeEdgeQuery(m.self, PropertyFilter{Name: name, Kind: FilterPresence})
}

func (m edgeQueryMixin) WithPropertyEqualTo(name graphdb.Identifier, value graphdb.Value) EdgeQuery {
	return newPropertyPipeEdgeQuery(m.self, PropertyFilter{Name: name, Kind: FilterEqual, Value: value})
}

func (m edgeQueryMixin) WithPropertyNotEqualTo(name graphdb.Identifier, value graphdb.Value) EdgeQuery {
	return newPropertyPipeEdgeQuery(m.self, PropertyFilter{Name: name, Kind: FilterNotEqual, Value: value})
}

func (m edgeQueryMixin) Outbound() VertexQuery {
	return newPipeVertexQuery(m.self, Outbound)
}

func (m edgeQueryMixin) Inbound() VertexQuery {
	return newPipeVertexQuery(m.self, Inbound)
}

/*
EdgeTraversalOption configures a vertex-to-edge pipe: optional edge type,
optional timestamp window, max count. The direction is chosen by calling
Outbound or Inbound, not by an option.
*/
type EdgeTraversalOption func(*PipeEdgeQuery)

/*
OfType restricts a traversal to edges of the given type.
*/
func OfType(t graphdb.Identifier) EdgeTraversalOption {
	return func(q *PipeEdgeQuery) { q.Type = &t }
}

/*
Within restricts a traversal to edges whose CreatedAt falls in the inclusive
window [low, high].
*/
func Within(window TimeWindow) EdgeTraversalOption {
	return func(q *PipeEdgeQuery) { q.Window = window }
}

/*
Limit caps the number of edges a traversal returns. The cap applies after
direction/type/time filtering.
*/
func Limit(n uint32) EdgeTraversalOption {
	return func(q *PipeEdgeQuery) { q.Limit = n }
}

// RangeEdgeQuery
// ==============

/*
RangeEdgeQuery selects all edges, optionally bounded by a starting key
(exclusive) and a maximum count. Results are returned in
(outbound, type, inbound) order.
*/
type RangeEdgeQuery struct {
	edgeQueryMixin
	StartKey *data.EdgeKey
	Limit    uint32
}

func (*RangeEdgeQuery) isEdgeQuery() {}

/*
NewRangeEdgeQuery builds an unbounded edge range query with the default
limit.
*/
func NewRangeEdgeQuery() *RangeEdgeQuery {
	q := &RangeEdgeQuery{Limit: DefaultLimit}
	q.self = q
	return q
}

/*
After returns a copy of q starting strictly after key.
*/
func (q *RangeEdgeQuery) After(key data.EdgeKey) *RangeEdgeQuery {
	clone := *q
	clone.StartKey = &key
	clone.self = &clone
	return &clone
}

/*
Limited returns a copy of q with its result count bounded by n.
*/
func (q *RangeEdgeQuery) Limited(n uint32) *RangeEdgeQuery {
	clone := *q
	clone.Limit = n
	clone.self = &clone
	return &clone
}

// SpecificEdgeQuery
// =================

/*
SpecificEdgeQuery selects an explicit list of edge keys. Results preserve
caller order and duplicates.
*/
type SpecificEdgeQuery struct {
	edgeQueryMixin
	Keys []data.EdgeKey
}

func (*SpecificEdgeQuery) isEdgeQuery() {}

/*
NewSpecificEdgeQuery builds a query over the given keys, in the given order.
*/
func NewSpecificEdgeQuery(keys ...data.EdgeKey) *SpecificEdgeQuery {
	q := &SpecificEdgeQuery{Keys: keys}
	q.self = q
	return q
}

// PropertyPresenceEdgeQuery
// =========================

/*
PropertyPresenceEdgeQuery selects all edges that have any value for Name.
*/
type PropertyPresenceEdgeQuery struct {
	edgeQueryMixin
	Name graphdb.Identifier
}

func (*PropertyPresenceEdgeQuery) isEdgeQuery() {}

/*
NewPropertyPresenceEdgeQuery builds a presence query for the given property
name.
*/
func NewPropertyPresenceEdgeQuery(name graphdb.Identifier) *PropertyPresenceEdgeQuery {
	q := &PropertyPresenceEdgeQuery{Name: name}
	q.self = q
	return q
}

// PropertyValueEdgeQuery
// ======================

/*
PropertyValueEdgeQuery selects all edges whose value for Name equals Value.
*/
type PropertyValueEdgeQuery struct {
	edgeQueryMixin
	Name  graphdb.Identifier
	Value graphdb.Value
}

func (*PropertyValueEdgeQuery) isEdgeQuery() {}

/*
NewPropertyValueEdgeQuery builds a value query for the given property name
and value.
*/
func NewPropertyValueEdgeQuery(name graphdb.Identifier, value graphdb.Value) *PropertyValueEdgeQuery {
	q := &PropertyValueEdgeQuery{Name: name, Value: value}
	q.self = q
	return q
}

// PipeEdgeQuery
// =============

/*
PipeEdgeQuery selects the edges incident to the vertices produced by Inner,
on the given Side, optionally filtered by Type and Window, and capped at
Limit.
*/
type PipeEdgeQuery struct {
	edgeQueryMixin
	Inner  VertexQuery
	Side   Direction
	Type   *graphdb.Identifier
	Window TimeWindow
	Limit  uint32
}

func (*PipeEdgeQuery) isEdgeQuery() {}

func newPipeEdgeQuery(inner VertexQuery, side Direction, opts []EdgeTraversalOption) *PipeEdgeQuery {
	q := &PipeEdgeQuery{Inner: inner, Side: side, Limit: DefaultLimit}
	for _, opt := range opts {
		opt(q)
	}
	q.self = q
	return q
}

// PropertyPipeEdgeQuery
// =====================

/*
PropertyPipeEdgeQuery materializes Inner, then retains exactly the edges
whose property under Filter.Name matches Filter.
*/
type PropertyPipeEdgeQuery struct {
	edgeQueryMixin
	Inner  EdgeQuery
	Filter PropertyFilter
}

func (*PropertyPipeEdgeQuery) isEdgeQuery() {}

func newPropertyPipeEdgeQuery(inner EdgeQuery, filter PropertyFilter) *PropertyPipeEdgeQuery {
	q := &PropertyPipeEdgeQuery{Inner: inner, Filter: filter}
	q.self = q
	return q
}
