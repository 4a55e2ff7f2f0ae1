/*
 * Graph datastore engine
 *
 * Copyright 2026 Graph Datastore Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package store defines the datastore contract: the capability every backend -
an in-memory graph, a log-structured disk engine, a transactional KV engine -
implements identically, so callers can be written once against the
Datastore interface and handed any backend.

The contract is deliberately free of generic type parameters so that
backends stay interchangeable behind dynamic dispatch: a plugin host can
hold a Datastore value without knowing which concrete backend produced it.
Every operation takes a context.Context as its suspension point, so a caller
can cancel at any I/O boundary the way it would for any other blocking Go
call.
*/
package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/krotik/graphdb"
	"github.com/krotik/graphdb/data"
	"github.com/krotik/graphdb/query"
)

/*
Direction re-exports query.Direction so callers of GetEdgeCount do not need
to import the query package just for this one type.
*/
type Direction = query.Direction

const (
	Outbound = query.Outbound
	Inbound  = query.Inbound
)

/*
IndexTarget selects whether an indexed property name applies to vertices or
to edges - the two owner kinds never share an index: the owner is a Uuid for
a vertex index and an EdgeKey for an edge index.
*/
type IndexTarget int

const (
	VertexIndex IndexTarget = iota
	EdgeIndex
)

func (t IndexTarget) String() string {
	if t == VertexIndex {
		return "vertex"
	}
	return "edge"
}

/*
Datastore is the capability every backend implements. Implementations must
keep data and its declared indexes mutually consistent at every quiescent
point, and every single method call must be observed either fully applied
(including its index side effects) or not at all.
*/
type Datastore interface {

	/*
	   Sync flushes to durable storage. In-memory backends may treat this as
	   a no-op; backends that cannot sync return ErrUnsupported.
	*/
	Sync(ctx context.Context) error

	/*
	   Transaction opens a nested datastore handle on which a sequence of
	   operations is atomic with respect to external observers. Dropping the
	   handle without calling Commit aborts it. Backends without
	   transactional support return ErrUnsupported.
	*/
	Transaction(ctx context.Context) (Transaction, error)

	/*
	   CreateVertex inserts v. Returns false, not an error, if a vertex with
	   v.Id already exists.
	*/
	CreateVertex(ctx context.Context, v data.Vertex) (bool, error)

	/*
	   CreateVertexFromType generates a fresh v1 Uuid, inserts a vertex of
	   the given type under it, and returns the new id.
	*/
	CreateVertexFromType(ctx context.Context, t graphdb.Identifier) (uuid.UUID, error)

	/*
	   GetVertices evaluates q and returns the matching vertices in the
	   query's documented order. Fails ErrNotIndexed if q references an
	   undeclared property index.
	*/
	GetVertices(ctx context.Context, q query.VertexQuery) ([]data.Vertex, error)

	/*
	   DeleteVertices evaluates q and deletes every matching vertex,
	   cascading to incident edges and all properties.
	*/
	DeleteVertices(ctx context.Context, q query.VertexQuery) error

	/*
	   GetVertexCount returns the exact vertex count at call time.
	*/
	GetVertexCount(ctx context.Context) (uint64, error)

	/*
	   CreateEdge upserts the edge identified by key: refreshes CreatedAt to
	   now on every successful call, including when the edge already
	   existed. Returns false if either endpoint vertex is absent.
	*/
	CreateEdge(ctx context.Context, key data.EdgeKey) (bool, error)

	/*
	   GetEdges evaluates q and returns the matching edges in the query's
	   documented order.
	*/
	GetEdges(ctx context.Context, q query.EdgeQuery) ([]data.Edge, error)

	/*
	   DeleteEdges evaluates q and deletes every matching edge and its
	   properties.
	*/
	DeleteEdges(ctx context.Context, q query.EdgeQuery) error

	/*
	   GetEdgeCount counts edges touching id, optionally restricted to
	   edgeType, on the given side.
	*/
	GetEdgeCount(ctx context.Context, id uuid.UUID, edgeType *graphdb.Identifier, dir Direction) (uint64, error)

	/*
	   GetVertexProperties returns one VertexProperty per vertex selected by
	   q that currently holds a value for name.
	*/
	GetVertexProperties(ctx context.Context, q query.VertexQuery, name graphdb.Identifier) ([]data.VertexProperty, error)

	/*
	   GetAllVertexProperties returns every vertex selected by q together
	   with its full property set.
	*/
	GetAllVertexProperties(ctx context.Context, q query.VertexQuery) ([]data.VertexProperties, error)

	/*
	   SetVertexProperties overwrites the value of name on every vertex
	   selected by q, updating any declared index synchronously. An empty
	   selection is success, not an error.
	*/
	SetVertexProperties(ctx context.Context, q query.VertexQuery, name graphdb.Identifier, value graphdb.Value) error

	/*
	   DeleteVertexProperties removes the value of name from every vertex
	   selected by q. Idempotent.
	*/
	DeleteVertexProperties(ctx context.Context, q query.VertexQuery, name graphdb.Identifier) error

	/*
	   GetEdgeProperties returns one EdgeProperty per edge selected by q that
	   currently holds a value for name.
	*/
	GetEdgeProperties(ctx context.Context, q query.EdgeQuery, name graphdb.Identifier) ([]data.EdgeProperty, error)

	/*
	   GetAllEdgeProperties returns every edge selected by q together with
	   its full property set.
	*/
	GetAllEdgeProperties(ctx context.Context, q query.EdgeQuery) ([]data.EdgeProperties, error)

	/*
	   SetEdgeProperties overwrites the value of name on every edge selected
	   by q, updating any declared index synchronously.
	*/
	SetEdgeProperties(ctx context.Context, q query.EdgeQuery, name graphdb.Identifier, value graphdb.Value) error

	/*
	   DeleteEdgeProperties removes the value of name from every edge
	   selected by q. Idempotent.
	*/
	DeleteEdgeProperties(ctx context.Context, q query.EdgeQuery, name graphdb.Identifier) error

	/*
	   BulkInsert applies items in order. The default semantics is exactly
	   the corresponding sequence of single-item calls; backends may batch
	   internally but the externally observable end state, including index
	   consistency, must be identical.
	*/
	BulkInsert(ctx context.Context, items []BulkInsertItem) error

	/*
	   IndexProperty declares name as indexed for the given target (vertex or
	   edge owners), scanning all existing owners and populating both the
	   presence and value index before returning. Idempotent.
	*/
	IndexProperty(ctx context.Context, target IndexTarget, name graphdb.Identifier) error
}

/*
Transaction is the handle returned by Datastore.Transaction: the full
Datastore capability, plus Commit. Operations issued on a Transaction are
not visible to other callers of the parent Datastore until Commit succeeds;
dropping the handle without committing aborts it.
*/
type Transaction interface {
	Datastore

	/*
	   Commit writes every operation performed on this handle to the parent
	   datastore as a single atomic unit. A transaction that has already been
	   committed or rolled back cannot be committed again.
	*/
	Commit(ctx context.Context) error

	/*
	   Rollback discards every operation performed on this handle. Safe to
	   call after a failed Commit; a no-op if the transaction is already
	   closed.
	*/
	Rollback(ctx context.Context) error
}
