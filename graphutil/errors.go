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
Package graphutil contains the error model shared by the graph datastore
contract and its backends.
*/
package graphutil

import (
	"errors"
	"fmt"
)

/*
GraphError is a datastore related error. Type is a sentinel which callers can
compare with errors.Is; Detail carries backend-specific context.
*/
type GraphError struct {
	Type   error  // Error kind, comparable with errors.Is
	Detail string // Additional detail, may be empty
}

/*
Error returns a human-readable string representation of this error.
*/
func (ge *GraphError) Error() string {
	if ge.Detail != "" {
		return fmt.Sprintf("%v: %v", ge.Type, ge.Detail)
	}

	return ge.Type.Error()
}

/*
Unwrap exposes the sentinel Type so errors.Is/errors.As work through a
GraphError.
*/
func (ge *GraphError) Unwrap() error {
	return ge.Type
}

/*
New creates a new GraphError for the given sentinel kind and detail.
*/
func New(kind error, detail string) *GraphError {
	return &GraphError{Type: kind, Detail: detail}
}

// Sentinel error kinds
// ====================

var (

	/*
	   ErrInvalidIdentifier is returned when an identifier fails the charset
	   or length validation.
	*/
	ErrInvalidIdentifier = errors.New("invalid identifier")

	/*
	   ErrUuidTaken is returned on the astronomically unlikely event of a
	   generated vertex id colliding with an existing one.
	*/
	ErrUuidTaken = errors.New("uuid already taken")

	/*
	   ErrVertexNotFound is returned by explicit single-vertex lookups; query
	   operations that simply produce an empty result never use this.
	*/
	ErrVertexNotFound = errors.New("vertex not found")

	/*
	   ErrEdgeNotFound is returned by explicit single-edge lookups; query
	   operations that simply produce an empty result never use this.
	*/
	ErrEdgeNotFound = errors.New("edge not found")

	/*
	   ErrNotIndexed is returned when a query references a property name that
	   has no declared index. Raised before any data is touched.
	*/
	ErrNotIndexed = errors.New("property is not indexed")

	/*
	   ErrUnsupported is returned when a backend does not implement an
	   optional capability (sync, transaction).
	*/
	ErrUnsupported = errors.New("operation not supported by this backend")

	/*
	   ErrUnsupportedVersion is returned when persisted state carries a
	   schema version this build does not understand.
	*/
	ErrUnsupportedVersion = errors.New("unsupported persisted schema version")

	/*
	   ErrBackend wraps an opaque underlying storage error.
	*/
	ErrBackend = errors.New("backend error")
)
