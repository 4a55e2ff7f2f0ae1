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
Package query is the query algebra: VertexQuery and EdgeQuery are
mutually-exclusive sum-typed trees describing a selection over the graph,
including composition (pipe) and property filters. Every variant is an
immutable value; builder methods return new trees rather than mutating the
receiver, which is what lets the evaluator in memstore recurse over a query
without any aliasing concerns.
*/
package query

import (
	"time"

	"github.com/krotik/graphdb"
)

/*
DefaultLimit is the maximum result count used when a Range or pipe query
does not specify one.
*/
const DefaultLimit uint32 = 4294967295

/*
Direction selects which side of an edge a pipe traversal follows.
*/
type Direction int

const (
	/*
	   Outbound traverses edges where the pivot vertex is the outbound end,
	   or - for get_edge_count - counts edges where the given vertex is the
	   outbound end.
	*/
	Outbound Direction = iota

	/*
	   Inbound traverses edges where the pivot vertex is the inbound end.
	*/
	Inbound
)

/*
String renders the direction for logs and test failures.
*/
func (d Direction) String() string {
	if d == Outbound {
		return "outbound"
	}
	return "inbound"
}

/*
FilterKind distinguishes the three property filter shapes a PropertyPipe can
apply.
*/
type FilterKind int

const (
	/*
	   FilterPresence keeps owners that have any value for the named
	   property.
	*/
	FilterPresence FilterKind = iota

	/*
	   FilterEqual keeps owners whose value for the named property equals
	   Value.
	*/
	FilterEqual

	/*
	   FilterNotEqual keeps owners whose value for the named property is
	   either absent or not equal to Value.
	*/
	FilterNotEqual
)

/*
PropertyFilter is the payload of a PropertyPipe node: a property name plus
the comparison to apply against each candidate owner's value for it.
*/
type PropertyFilter struct {
	Name  graphdb.Identifier
	Kind  FilterKind
	Value graphdb.Value
}

/*
TimeWindow is an inclusive [Low, High] bound on edge creation time, used by
edge pipe traversals. The zero value (a TimeWindow not built by
NewTimeWindow) means unbounded, whatever its Low and High hold.
*/
type TimeWindow struct {
	Low  time.Time
	High time.Time
	set  bool
}

/*
NewTimeWindow builds an inclusive time window.
*/
func NewTimeWindow(low, high time.Time) TimeWindow {
	return TimeWindow{Low: low, High: high, set: true}
}

/*
IsSet reports whether this window was explicitly constructed (as opposed to
the unbounded zero value).
*/
func (w TimeWindow) IsSet() bool {
	return w.set
}

/*
Contains reports whether t falls within the inclusive window, or is always
true if the window is unset.
*/
func (w TimeWindow) Contains(t time.Time) bool {
	if !w.set {
		return true
	}
	return !t.Before(w.Low) && !t.After(w.High)
}
