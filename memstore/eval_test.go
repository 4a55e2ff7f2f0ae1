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

	"github.com/krotik/graphdb"
	"github.com/krotik/graphdb/data"
	"github.com/krotik/graphdb/query"
	"github.com/krotik/graphdb/store"
	"github.com/stretchr/testify/require"
)

func TestPipeOutboundTraversalWithType(t *testing.T) {
	ctx := context.Background()
	s := New()

	hub := newVertex(typePerson)
	friend := newVertex(typePerson)
	colleague := newVertex(typePerson)
	require.NoError(t, mustCreate(ctx, s, hub))
	require.NoError(t, mustCreate(ctx, s, friend))
	require.NoError(t, mustCreate(ctx, s, colleague))

	worksWith := graphdb.MustIdentifier("works_with")

	_, err := s.CreateEdge(ctx, data.NewEdgeKey(hub.Id, typeKnows, friend.Id))
	require.NoError(t, err)
	_, err = s.CreateEdge(ctx, data.NewEdgeKey(hub.Id, worksWith, colleague.Id))
	require.NoError(t, err)

	edges, err := s.GetEdges(ctx, query.NewSpecificVertexQuery(hub.Id).Outbound(query.OfType(typeKnows)))
	require.NoError(t, err)
	require.Len(t, edges, 1)
	require.Equal(t, friend.Id, edges[0].Key.Inbound)
}

func TestPipeTimeWindowIsInclusive(t *testing.T) {
	e := newEngine()

	v1 := newVertex(typePerson)
	v2 := newVertex(typePerson)
	e.createVertex(v1)
	e.createVertex(v2)

	low := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	high := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	key := data.NewEdgeKey(v1.Id, typeKnows, v2.Id)
	e.createEdge(key, low)

	window := query.Within(query.NewTimeWindow(low, high))
	edges, err := e.evalEdgeQuery(query.NewSpecificVertexQuery(v1.Id).Outbound(window))
	require.NoError(t, err)
	require.Len(t, edges, 1, "edge created exactly at the low bound must be included")
}

func TestPipeVertexDeduplicatesPreservingFirstOccurrence(t *testing.T) {
	ctx := context.Background()
	s := New()

	hub := newVertex(typePerson)
	leaf := newVertex(typePerson)
	require.NoError(t, mustCreate(ctx, s, hub))
	require.NoError(t, mustCreate(ctx, s, leaf))

	a := graphdb.MustIdentifier("a")
	b := graphdb.MustIdentifier("b")

	_, err := s.CreateEdge(ctx, data.NewEdgeKey(hub.Id, a, leaf.Id))
	require.NoError(t, err)
	_, err = s.CreateEdge(ctx, data.NewEdgeKey(hub.Id, b, leaf.Id))
	require.NoError(t, err)

	vertices, err := s.GetVertices(ctx, query.NewSpecificVertexQuery(hub.Id).Outbound().Inbound())
	require.NoError(t, err)
	require.Len(t, vertices, 1)
	require.Equal(t, leaf.Id, vertices[0].Id)
}

// Deleting a vertex removes its incident edges and all properties of both.
func TestCascadingDeleteRemovesProperties(t *testing.T) {
	ctx := context.Background()
	s := New()

	v1 := newVertex(typePerson)
	v2 := newVertex(typePerson)
	require.NoError(t, mustCreate(ctx, s, v1))
	require.NoError(t, mustCreate(ctx, s, v2))

	key := data.NewEdgeKey(v1.Id, typeKnows, v2.Id)
	_, err := s.CreateEdge(ctx, key)
	require.NoError(t, err)

	weight := graphdb.MustIdentifier("weight")
	require.NoError(t, s.SetEdgeProperties(ctx, query.NewSpecificEdgeQuery(key), weight, graphdb.MustValue(1)))
	require.NoError(t, s.IndexProperty(ctx, store.EdgeIndex, weight))

	require.NoError(t, s.DeleteVertices(ctx, query.NewSpecificVertexQuery(v1.Id)))

	// The index must no longer report the deleted edge as an owner.
	owners, err := s.GetEdges(ctx, query.NewPropertyPresenceEdgeQuery(weight))
	require.NoError(t, err)
	require.Empty(t, owners)
}

// A property-referencing query against a non-indexed name fails NotIndexed
// and performs no mutation.
func TestSetPropertiesQueryFailsNotIndexedWithoutMutating(t *testing.T) {
	ctx := context.Background()
	s := New()

	v1 := newVertex(typePerson)
	require.NoError(t, mustCreate(ctx, s, v1))

	nick := graphdb.MustIdentifier("nickname")
	sel := query.NewSpecificVertexQuery(v1.Id).WithProperty(nick)

	err := s.SetVertexProperties(ctx, sel, attrAge, graphdb.MustValue(1))
	require.Error(t, err)

	val, err := s.GetVertexProperties(ctx, query.NewSpecificVertexQuery(v1.Id), attrAge)
	require.NoError(t, err)
	require.Empty(t, val, "the unindexed filter must fail before any property write happens")
}
