/*
 * Graph datastore engine
 *
 * Copyright 2026 Graph Datastore Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package store

import (
	"github.com/google/uuid"
	"github.com/krotik/graphdb"
	"github.com/krotik/graphdb/data"
)

/*
BulkInsertItem is one entry of a BulkInsert call: a closed sum type over the
four things bulk_insert can create. It exists so the default
sequential-apply implementation can dispatch on a single switch instead of
four parallel slices.
*/
type BulkInsertItem interface {
	isBulkInsertItem()
}

/*
VertexItem inserts a vertex, equivalent to CreateVertex.
*/
type VertexItem struct {
	Vertex data.Vertex
}

func (VertexItem) isBulkInsertItem() {}

/*
NewVertexItem builds a bulk insert item for a vertex.
*/
func NewVertexItem(v data.Vertex) VertexItem {
	return VertexItem{Vertex: v}
}

/*
EdgeItem inserts an edge, equivalent to CreateEdge.
*/
type EdgeItem struct {
	Key data.EdgeKey
}

func (EdgeItem) isBulkInsertItem() {}

/*
NewEdgeItem builds a bulk insert item for an edge.
*/
func NewEdgeItem(key data.EdgeKey) EdgeItem {
	return EdgeItem{Key: key}
}

/*
VertexPropertyItem sets a single vertex property, equivalent to
SetVertexProperties over a Specific query of one id.
*/
type VertexPropertyItem struct {
	Id    uuid.UUID
	Name  graphdb.Identifier
	Value graphdb.Value
}

func (VertexPropertyItem) isBulkInsertItem() {}

/*
NewVertexPropertyItem builds a bulk insert item setting a property on a
vertex.
*/
func NewVertexPropertyItem(id uuid.UUID, name graphdb.Identifier, value graphdb.Value) VertexPropertyItem {
	return VertexPropertyItem{Id: id, Name: name, Value: value}
}

/*
EdgePropertyItem sets a single edge property, equivalent to
SetEdgeProperties over a Specific query of one key.
*/
type EdgePropertyItem struct {
	Key   data.EdgeKey
	Name  graphdb.Identifier
	Value graphdb.Value
}

func (EdgePropertyItem) isBulkInsertItem() {}

/*
NewEdgePropertyItem builds a bulk insert item setting a property on an edge.
*/
func NewEdgePropertyItem(key data.EdgeKey, name graphdb.Identifier, value graphdb.Value) EdgePropertyItem {
	return EdgePropertyItem{Key: key, Name: name, Value: value}
}
