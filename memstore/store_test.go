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
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/krotik/graphdb"
	"github.com/krotik/graphdb/data"
	"github.com/krotik/graphdb/graphutil"
	"github.com/krotik/graphdb/query"
	"github.com/krotik/graphdb/store"
	"github.com/stretchr/testify/require"
)

var (
	typePerson = graphdb.MustIdentifier("person")
	typeKnows  = graphdb.MustIdentifier("knows")
	attrAge    = graphdb.MustIdentifier("age")
)

func newVertex(t graphdb.Identifier) data.Vertex {
	id, err := uuid.NewUUID()
	if err != nil {
		panic(err)
	}
	return data.NewVertex(id, t)
}

// Creating a vertex is reflected in both the count and a Specific lookup.
func TestScenarioCreateVertexAndFetch(t *testing.T) {
	ctx := context.Background()
	s := New()

	v := newVertex(typePerson)
	ok, err := s.CreateVertex(ctx, v)
	require.NoError(t, err)
	require.True(t, ok)

	count, err := s.GetVertexCount(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	got, err := s.GetVertices(ctx, query.NewSpecificVertexQuery(v.Id))
	require.NoError(t, err)
	require.Equal(t, []data.Vertex{v}, got)
}

// Edge creation is reflected in directional counts, per endpoint and type.
func TestScenarioEdgeCounts(t *testing.T) {
	ctx := context.Background()
	s := New()

	v1 := newVertex(typePerson)
	v2 := newVertex(typePerson)
	require.NoError(t, mustCreate(ctx, s, v1))
	require.NoError(t, mustCreate(ctx, s, v2))

	ok, err := s.CreateEdge(ctx, data.NewEdgeKey(v1.Id, typeKnows, v2.Id))
	require.NoError(t, err)
	require.True(t, ok)

	out, err := s.GetEdgeCount(ctx, v1.Id, &typeKnows, query.Outbound)
	require.NoError(t, err)
	require.EqualValues(t, 1, out)

	in, err := s.GetEdgeCount(ctx, v2.Id, &typeKnows, query.Inbound)
	require.NoError(t, err)
	require.EqualValues(t, 1, in)

	none, err := s.GetEdgeCount(ctx, v1.Id, nil, query.Inbound)
	require.NoError(t, err)
	require.EqualValues(t, 0, none)
}

// Property writes succeed without an index, but a query against an
// unindexed name fails NotIndexed; declaring the index makes it succeed.
func TestScenarioNotIndexedThenIndexed(t *testing.T) {
	ctx := context.Background()
	s := New()

	v1 := newVertex(typePerson)
	require.NoError(t, mustCreate(ctx, s, v1))

	err := s.SetVertexProperties(ctx, query.NewSpecificVertexQuery(v1.Id), attrAge, graphdb.MustValue(30))
	require.NoError(t, err)

	_, err = s.GetVertices(ctx, query.NewPropertyPresenceVertexQuery(attrAge))
	require.ErrorIs(t, err, graphutil.ErrNotIndexed)

	require.NoError(t, s.IndexProperty(ctx, store.VertexIndex, attrAge))

	got, err := s.GetVertices(ctx, query.NewPropertyPresenceVertexQuery(attrAge))
	require.NoError(t, err)
	require.Equal(t, []data.Vertex{v1}, got)
}

// Overwriting a value is reflected correctly in the value index: the old
// value no longer matches and the new one does.
func TestScenarioValueIndexFollowsOverwrite(t *testing.T) {
	ctx := context.Background()
	s := New()

	v1 := newVertex(typePerson)
	require.NoError(t, mustCreate(ctx, s, v1))
	require.NoError(t, s.IndexProperty(ctx, store.VertexIndex, attrAge))

	require.NoError(t, s.SetVertexProperties(ctx, query.NewSpecificVertexQuery(v1.Id), attrAge, graphdb.MustValue(30)))
	require.NoError(t, s.SetVertexProperties(ctx, query.NewSpecificVertexQuery(v1.Id), attrAge, graphdb.MustValue(31)))

	thirty, err := s.GetVertices(ctx, query.NewPropertyValueVertexQuery(attrAge, graphdb.MustValue(30)))
	require.NoError(t, err)
	require.Empty(t, thirty)

	thirtyOne, err := s.GetVertices(ctx, query.NewPropertyValueVertexQuery(attrAge, graphdb.MustValue(31)))
	require.NoError(t, err)
	require.Equal(t, []data.Vertex{v1}, thirtyOne)

	notEq, err := s.GetVertices(ctx, query.NewSpecificVertexQuery(v1.Id).WithPropertyNotEqualTo(attrAge, graphdb.MustValue(31)))
	require.NoError(t, err)
	require.Empty(t, notEq)
}

// Deleting a vertex cascades to its self-loop edge and its properties.
func TestScenarioCascadingDelete(t *testing.T) {
	ctx := context.Background()
	s := New()

	v1 := newVertex(typePerson)
	require.NoError(t, mustCreate(ctx, s, v1))

	selfType := graphdb.MustIdentifier("e")
	key := data.NewEdgeKey(v1.Id, selfType, v1.Id)
	ok, err := s.CreateEdge(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, s.DeleteVertices(ctx, query.NewSpecificVertexQuery(v1.Id)))

	edges, err := s.GetEdges(ctx, query.NewSpecificEdgeQuery(key))
	require.NoError(t, err)
	require.Empty(t, edges)

	count, err := s.GetVertexCount(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}

// Bulk insert of 100 vertices and a complete 100x100 edge set lands every
// edge.
func TestScenarioBulkInsertRange(t *testing.T) {
	ctx := context.Background()
	s := New()

	const n = 100

	ids := make([]uuid.UUID, n)
	var items []store.BulkInsertItem
	for i := 0; i < n; i++ {
		v := newVertex(typePerson)
		ids[i] = v.Id
		items = append(items, store.NewVertexItem(v))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			items = append(items, store.NewEdgeItem(data.NewEdgeKey(ids[i], typeKnows, ids[j])))
		}
	}

	require.NoError(t, s.BulkInsert(ctx, items))

	edges, err := s.GetEdges(ctx, query.NewRangeEdgeQuery().Limited(query.DefaultLimit))
	require.NoError(t, err)
	require.Len(t, edges, n*n)
}

// CreateEdge is an upsert: re-creating a key refreshes CreatedAt without
// duplicating the edge.
func TestCreateEdgeIsUpsert(t *testing.T) {
	ctx := context.Background()
	s := New()

	v1 := newVertex(typePerson)
	v2 := newVertex(typePerson)
	require.NoError(t, mustCreate(ctx, s, v1))
	require.NoError(t, mustCreate(ctx, s, v2))

	key := data.NewEdgeKey(v1.Id, typeKnows, v2.Id)

	_, err := s.CreateEdge(ctx, key)
	require.NoError(t, err)

	first, err := s.GetEdges(ctx, query.NewSpecificEdgeQuery(key))
	require.NoError(t, err)
	require.Len(t, first, 1)

	time.Sleep(time.Millisecond)

	_, err = s.CreateEdge(ctx, key)
	require.NoError(t, err)

	second, err := s.GetEdges(ctx, query.NewSpecificEdgeQuery(key))
	require.NoError(t, err)
	require.Len(t, second, 1)
	require.False(t, second[0].CreatedAt.Before(first[0].CreatedAt))
}

// CreateEdge fails (returns false, no error) if either endpoint is absent.
func TestCreateEdgeMissingEndpoint(t *testing.T) {
	ctx := context.Background()
	s := New()

	v1 := newVertex(typePerson)
	require.NoError(t, mustCreate(ctx, s, v1))

	missing, err := uuid.NewRandom()
	require.NoError(t, err)

	ok, err := s.CreateEdge(ctx, data.NewEdgeKey(v1.Id, typeKnows, missing))
	require.NoError(t, err)
	require.False(t, ok)
}

// Transactions isolate writes until Commit.
func TestTransactionIsolation(t *testing.T) {
	ctx := context.Background()
	s := New()

	v1 := newVertex(typePerson)
	require.NoError(t, mustCreate(ctx, s, v1))

	tx, err := s.Transaction(ctx)
	require.NoError(t, err)

	v2 := newVertex(typePerson)
	_, err = tx.CreateVertex(ctx, v2)
	require.NoError(t, err)

	// Not yet visible on the parent.
	count, err := s.GetVertexCount(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	require.NoError(t, tx.Commit(ctx))

	count, err = s.GetVertexCount(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}

func TestTransactionRollbackDiscardsWrites(t *testing.T) {
	ctx := context.Background()
	s := New()

	tx, err := s.Transaction(ctx)
	require.NoError(t, err)

	v := newVertex(typePerson)
	_, err = tx.CreateVertex(ctx, v)
	require.NoError(t, err)

	require.NoError(t, tx.Rollback(ctx))

	count, err := s.GetVertexCount(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}

func mustCreate(ctx context.Context, s *Store, v data.Vertex) error {
	_, err := s.CreateVertex(ctx, v)
	return err
}
