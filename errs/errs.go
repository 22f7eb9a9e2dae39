// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs defines the error kinds returned by the partitioner core.
//
// The original HEC-MW partitioner propagates a tri-valued status
// {Ok, Warn, Error} out of every internal routine. This package keeps that
// vocabulary as a Kind enum but returns ordinary Go errors: Warn becomes a
// *Error whose Kind is NoEquationBlock (the only warning-level kind defined
// by the core), which callers log and continue past; every other Kind
// unwinds the current per-subdomain iteration.
package errs

import "github.com/cpmech/gosl/io"

// Kind identifies the class of failure.
type Kind int

const (
	InvalidArg Kind = iota
	InvalidPartType
	InvalidPartMethod
	InvalidRcbDir
	AllocError
	StackOverflow
	NoEquationBlock // warning-level: processing continues
	OrphanNode
	BackendMissing
)

func (k Kind) String() string {
	switch k {
	case InvalidArg:
		return "InvalidArg"
	case InvalidPartType:
		return "InvalidPartType"
	case InvalidPartMethod:
		return "InvalidPartMethod"
	case InvalidRcbDir:
		return "InvalidRcbDir"
	case AllocError:
		return "AllocError"
	case StackOverflow:
		return "StackOverflow"
	case NoEquationBlock:
		return "NoEquationBlock"
	case OrphanNode:
		return "OrphanNode"
	case BackendMissing:
		return "BackendMissing"
	}
	return "Unknown"
}

// Error is the concrete error type returned throughout the core.
type Error struct {
	Kind Kind   // failure class
	Op   string // routine that raised it; e.g. "partition.RCB"
	Msg  string // formatted message
	Err  error  // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return io.Sf("%s: %s: %s (%v)", e.Op, e.Kind, e.Msg, e.Err)
	}
	return io.Sf("%s: %s: %s", e.Op, e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Warn reports whether k is a warning-level kind (spec §7): the caller may
// log it and continue rather than abort the subdomain iteration.
func (k Kind) Warn() bool { return k == NoEquationBlock }

// New builds an *Error with a formatted message.
func New(kind Kind, op, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Msg: io.Sf(format, args...)}
}

// Wrap builds an *Error around an existing cause.
func Wrap(kind Kind, op string, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Msg: io.Sf(format, args...), Err: err}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Kind == kind
}
