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
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/krotik/graphdb"
)

func mustID(t *testing.T, s string) graphdb.Identifier {
	t.Helper()
	id, err := graphdb.NewIdentifier(s)
	if err != nil {
		t.Fatalf("NewIdentifier(%q): %v", s, err)
	}
	return id
}

// Chaining two property filters must preserve the first filter in the
// second one's Inner, not drop it - this is what the self-referential
// mixin pattern has to get right on every variant.
func TestVertexQueryChainedPropertyFiltersPreserveInner(t *testing.T) {
	name := mustID(t, "name")
	age := mustID(t, "age")

	q := NewRangeVertexQuery().WithProperty(name).WithPropertyEqualTo(age, graphdb.MustValue(30))

	outer, ok := q.(*PropertyPipeVertexQuery)
	if !ok {
		t.Fatalf("expected *PropertyPipeVertexQuery, got %T", q)
	}
	if outer.Filter.Name != age || outer.Filter.Kind != FilterEqual {
		t.Fatalf("unexpected outer filter: %+v", outer.Filter)
	}

	inner, ok := outer.Inner.(*PropertyPipeVertexQuery)
	if !ok {
		t.Fatalf("expected outer.Inner to be *PropertyPipeVertexQuery, got %T (nil Inner means self aliasing broke)", outer.Inner)
	}
	if inner.Filter.Name != name || inner.Filter.Kind != FilterPresence {
		t.Fatalf("unexpected inner filter: %+v", inner.Filter)
	}
	if _, ok := inner.Inner.(*RangeVertexQuery); !ok {
		t.Fatalf("expected innermost query to be *RangeVertexQuery, got %T", inner.Inner)
	}
}

func TestEdgeQueryChainedPropertyFiltersPreserveInner(t *testing.T) {
	weight := mustID(t, "weight")
	since := mustID(t, "since")

	q := NewRangeEdgeQuery().WithProperty(weight).WithPropertyNotEqualTo(since, graphdb.MustValue(2020))

	outer, ok := q.(*PropertyPipeEdgeQuery)
	if !ok {
		t.Fatalf("expected *PropertyPipeEdgeQuery, got %T", q)
	}
	if outer.Filter.Name != since || outer.Filter.Kind != FilterNotEqual {
		t.Fatalf("unexpected outer filter: %+v", outer.Filter)
	}

	inner, ok := outer.Inner.(*PropertyPipeEdgeQuery)
	if !ok {
		t.Fatalf("expected outer.Inner to be *PropertyPipeEdgeQuery, got %T (nil Inner means self aliasing broke)", outer.Inner)
	}
	if inner.Filter.Name != weight || inner.Filter.Kind != FilterPresence {
		t.Fatalf("unexpected inner filter: %+v", inner.Filter)
	}
	if _, ok := inner.Inner.(*RangeEdgeQuery); !ok {
		t.Fatalf("expected innermost query to be *RangeEdgeQuery, got %T", inner.Inner)
	}
}

// Builder methods never mutate the receiver - After and Limited each
// return an independent copy.
func TestRangeVertexQueryBuildersDoNotMutateReceiver(t *testing.T) {
	base := NewRangeVertexQuery()
	id := uuid.Must(uuid.NewRandom())

	after := base.After(id)
	if base.StartID != nil {
		t.Fatal("After must not mutate the receiver's StartID")
	}
	if after.StartID == nil || *after.StartID != id {
		t.Fatal("After must set StartID on the returned copy")
	}

	limited := after.Limited(5)
	if after.Limit != DefaultLimit {
		t.Fatal("Limited must not mutate the receiver's Limit")
	}
	if limited.Limit != 5 {
		t.Fatal("Limited must set Limit on the returned copy")
	}
	if limited.StartID == nil || *limited.StartID != id {
		t.Fatal("Limited's copy must retain the prior After bound")
	}
}

func TestVertexOutboundInboundPipeBuildsChain(t *testing.T) {
	knows := mustID(t, "knows")
	window := NewTimeWindow(time.Unix(0, 0), time.Unix(100, 0))

	eq := NewRangeVertexQuery().Outbound(OfType(knows), Within(window), Limit(3))
	pe, ok := eq.(*PipeEdgeQuery)
	if !ok {
		t.Fatalf("expected *PipeEdgeQuery, got %T", eq)
	}
	if pe.Side != Outbound {
		t.Fatalf("expected Side == Outbound, got %v", pe.Side)
	}
	if pe.Type == nil || *pe.Type != knows {
		t.Fatalf("expected Type == knows, got %v", pe.Type)
	}
	if !pe.Window.IsSet() {
		t.Fatal("expected Window to be set")
	}
	if pe.Limit != 3 {
		t.Fatalf("expected Limit == 3, got %d", pe.Limit)
	}

	vq := eq.Inbound()
	pv, ok := vq.(*PipeVertexQuery)
	if !ok {
		t.Fatalf("expected *PipeVertexQuery, got %T", vq)
	}
	if pv.Side != Inbound {
		t.Fatalf("expected Side == Inbound, got %v", pv.Side)
	}
	if pv.Inner != pe {
		t.Fatal("expected PipeVertexQuery.Inner to be the PipeEdgeQuery it was built from")
	}
}

func TestTimeWindowUnsetAlwaysContains(t *testing.T) {
	var w TimeWindow
	if w.IsSet() {
		t.Fatal("zero-value TimeWindow must report IsSet() == false")
	}
	if !w.Contains(time.Now()) {
		t.Fatal("an unset window must contain every timestamp")
	}
}

func TestTimeWindowBoundsAreInclusive(t *testing.T) {
	low := time.Unix(1000, 0)
	high := time.Unix(2000, 0)
	w := NewTimeWindow(low, high)

	if !w.Contains(low) || !w.Contains(high) {
		t.Fatal("Contains must include both endpoints")
	}
	if w.Contains(low.Add(-time.Second)) || w.Contains(high.Add(time.Second)) {
		t.Fatal("Contains must exclude timestamps outside the window")
	}
}

func TestDirectionString(t *testing.T) {
	if Outbound.String() != "outbound" {
		t.Errorf("Outbound.String() = %q, want %q", Outbound.String(), "outbound")
	}
	if Inbound.String() != "inbound" {
		t.Errorf("Inbound.String() = %q, want %q", Inbound.String(), "inbound")
	}
}
