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
	"github.com/google/uuid"
	"github.com/krotik/graphdb"
)

/*
VertexQuery is a selection over vertices. It is a closed sum type: the only
implementations are the ones in this package. Builder methods never mutate
the receiver - they always return a new tree wrapping it.
*/
type VertexQuery interface {
	isVertexQuery()

	/*
	   WithProperty keeps only the vertices produced by this query that have
	   any value for name. Fails evaluation with NotIndexed if name has no
	   declared index.
	*/
	WithProperty(name graphdb.Identifier) VertexQuery

	/*
	   WithPropertyEqualTo keeps only the vertices whose value for name
	   equals value.
	*/
	WithPropertyEqualTo(name graphdb.Identifier, value graphdb.Value) VertexQuery

	/*
	   WithPropertyNotEqualTo keeps only the vertices whose value for name is
	   absent or does not equal value.
	*/
	WithPropertyNotEqualTo(name graphdb.Identifier, value graphdb.Value) VertexQuery

	/*
	   Outbound pipes this vertex query into an edge query: the edges for
	   which a result of this query is the outbound endpoint.
	*/
	Outbound(opts ...EdgeTraversalOption) EdgeQuery

	/*
	   Inbound pipes this vertex query into an edge query: the edges for
	   which a result of this query is the inbound endpoint.
	*/
	Inbound(opts ...EdgeTraversalOption) EdgeQuery
}

/*
vertexQueryMixin gives every concrete VertexQuery variant its builder
methods without repeating the bodies on each type: a variant embeds this
mixin and sets self to its own pointer at construction, so WithProperty and
friends can wrap "the query that was just built" regardless of which
variant that is.
*/
type vertexQueryMixin struct {
	self VertexQuery
}

func (m vertexQueryMixin) WithProperty(name graphdb.Identifier) VertexQuery {
	return newPropertyPipeVertexQuery(m.self, PropertyFilter{Name: name, Kind: FilterPresence})
}

func (m vertexQueryMixin) WithPropertyEqualTo(name graphdb.Identifier, value graphdb.Value) VertexQuery {
	return newPropertyPipeVertexQuery(m.self, PropertyFilter{Name: name, Kind: FilterEqual, Value: value})
}

func (m vertexQueryMixin) WithPropertyNotEqualTo(name graphdb.Identifier, value graphdb.Value) VertexQuery {
	return newPropertyPipeVertexQuery(m.self, PropertyFilter{Name: name, Kind: FilterNotEqual, Value: value})
}

func (m vertexQueryMixin) Outbound(opts ...EdgeTraversalOption) EdgeQuery {
	return newPipeEdgeQuery(m.self, Outbound, opts)
}

func (m vertexQueryMixin) Inbound(opts ...EdgeTraversalOption) EdgeQuery {
	return newPipeEdgeQuery(m.self, Inbound, opts)
}

// RangeVertexQuery
// ================

/*
RangeVertexQuery selects all vertices, optionally bounded by a starting id
(exclusive), a maximum count and a vertex type. Results are returned in id
order.
*/
type RangeVertexQuery struct {
	vertexQueryMixin
	StartID *uuid.UUID
	Type    *graphdb.Identifier
	Limit   uint32
}

func (*RangeVertexQuery) isVertexQuery() {}

/*
NewRangeVertexQuery builds an unbounded vertex range query with the default
limit.
*/
func NewRangeVertexQuery() *RangeVertexQuery {
	q := &RangeVertexQuery{Limit: DefaultLimit}
	q.self = q
	return q
}

/*
After returns a copy of q starting strictly after id.
*/
func (q *RangeVertexQuery) After(id uuid.UUID) *RangeVertexQuery {
	clone := *q
	clone.StartID = &id
	clone.self = &clone
	return &clone
}

/*
OfType returns a copy of q restricted to vertices of the given type.
*/
func (q *RangeVertexQuery) OfType(t graphdb.Identifier) *RangeVertexQuery {
	clone := *q
	clone.Type = &t
	clone.self = &clone
	return &clone
}

/*
Limited returns a copy of q with its result count bounded by n.
*/
func (q *RangeVertexQuery) Limited(n uint32) *RangeVertexQuery {
	clone := *q
	clone.Limit = n
	clone.self = &clone
	return &clone
}

// SpecificVertexQuery
// ===================

/*
SpecificVertexQuery selects an explicit list of vertex ids. Results preserve
caller order and duplicates.
*/
type SpecificVertexQuery struct {
	vertexQueryMixin
	Ids []uuid.UUID
}

func (*SpecificVertexQuery) isVertexQuery() {}

/*
NewSpecificVertexQuery builds a query over the given ids, in the given
order.
*/
func NewSpecificVertexQuery(ids ...uuid.UUID) *SpecificVertexQuery {
	q := &SpecificVertexQuery{Ids: ids}
	q.self = q
	return q
}

// PropertyPresenceVertexQuery
// ===========================

/*
PropertyPresenceVertexQuery selects all vertices that have any value for
Name. Evaluation fails NotIndexed unless Name is a declared vertex index.
*/
type PropertyPresenceVertexQuery struct {
	vertexQueryMixin
	Name graphdb.Identifier
}

func (*PropertyPresenceVertexQuery) isVertexQuery() {}

/*
NewPropertyPresenceVertexQuery builds a presence query for the given
property name.
*/
func NewPropertyPresenceVertexQuery(name graphdb.Identifier) *PropertyPresenceVertexQuery {
	q := &PropertyPresenceVertexQuery{Name: name}
	q.self = q
	return q
}

// PropertyValueVertexQuery
// ========================

/*
PropertyValueVertexQuery selects all vertices whose value for Name equals
Value. Evaluation fails NotIndexed unless Name is a declared vertex index.
*/
type PropertyValueVertexQuery struct {
	vertexQueryMixin
	Name  graphdb.Identifier
	Value graphdb.Value
}

func (*PropertyValueVertexQuery) isVertexQuery() {}

/*
NewPropertyValueVertexQuery builds a value query for the given property
name and value.
*/
func NewPropertyValueVertexQuery(name graphdb.Identifier, value graphdb.Value) *PropertyValueVertexQuery {
	q := &PropertyValueVertexQuery{Name: name, Value: value}
	q.self = q
	return q
}

// PipeVertexQuery
// ===============

/*
PipeVertexQuery selects the endpoints (Outbound or Inbound side) of the
edges produced by Inner.
*/
type PipeVertexQuery struct {
	vertexQueryMixin
	Inner EdgeQuery
	Side  Direction
}

func (*PipeVertexQuery) isVertexQuery() {}

func newPipeVertexQuery(inner EdgeQuery, side Direction) *PipeVertexQuery {
	q := &PipeVertexQuery{Inner: inner, Side: side}
	q.self = q
	return q
}

// PropertyPipeVertexQuery
// =======================

/*
PropertyPipeVertexQuery materializes Inner, then retains exactly the
vertices whose property under Filter.Name matches Filter.
*/
type PropertyPipeVertexQuery struct {
	vertexQueryMixin
	Inner  VertexQuery
	Filter PropertyFilter
}

func (*PropertyPipeVertexQuery) isVertexQuery() {}

func newPropertyPipeVertexQuery(inner VertexQuery, filter PropertyFilter) *PropertyPipeVertexQuery {
	q := &PropertyPipeVertexQuery{Inner: inner, Filter: filter}
	q.self = q
	return q
}
