/*
 * Graph datastore engine
 *
 * Copyright 2026 Graph Datastore Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package data

import (
	"testing"

	"github.com/google/uuid"
	"github.com/krotik/graphdb"
)

func TestVertexString(t *testing.T) {
	id, err := uuid.Parse("00000000-0000-0000-0000-000000000001")
	if err != nil {
		t.Fatal(err)
	}
	v := NewVertex(id, graphdb.MustIdentifier("person"))
	want := id.String() + ":person"
	if got := v.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
