// Copyright 2026 The Nabla Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autograd provides reverse-mode automatic differentiation.
//
// A Tensor wraps a numeric array and records the Operation that produced it,
// forming a directed acyclic computational graph as expressions are built.
// Calling Backward on any tensor propagates derivatives backward through the
// graph via the chain rule, accumulating each ancestor's contribution into
// its gradient buffer.
//
// Example:
//
//	a := autograd.MustNew(2.0)
//	b := autograd.MustNew(3.0)
//	f := a.Mul(b).Add(a) // f = a*b + a
//
//	if err := f.Backward(); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(a.Grad()) // df/da = b + 1 = 4
//	fmt.Println(b.Grad()) // df/db = a = 2
//
//	f.NullGradients() // reset the whole upstream graph
package autograd

import (
	"github.com/nabla-ml/nabla/internal/autograd"
)

// Tensor is a value node in the computational graph.
type Tensor = autograd.Tensor

// Operation is one node of the computational graph: it owns its input
// tensors and implements the forward computation and the per-input backward
// (vector-Jacobian product) computation.
type Operation = autograd.Operation

// Option configures Tensor construction.
type Option = autograd.Option

// InvalidDataTypeError reports construction from non-numeric data.
type InvalidDataTypeError = autograd.InvalidDataTypeError

// NonScalarBackpropError reports a Backward call with no explicit gradient
// on a non-scalar tensor that requires one.
type NonScalarBackpropError = autograd.NonScalarBackpropError

// New creates a Tensor from array-like data.
func New(data any, opts ...Option) (*Tensor, error) {
	return autograd.New(data, opts...)
}

// MustNew is like New but panics on failure. Intended for literals.
func MustNew(data any, opts ...Option) *Tensor {
	return autograd.MustNew(data, opts...)
}

// Constant marks the tensor as a non-differentiable constant.
func Constant() Option { return autograd.Constant() }

// WithScalarOnly marks the tensor as only differentiable from a 0-D value
// without an explicit incoming gradient.
func WithScalarOnly() Option { return autograd.WithScalarOnly() }

// WithCreator records the operation that produced the tensor.
func WithCreator(op Operation) Option { return autograd.WithCreator(op) }

// Add computes a + b through the graph. Either operand may be a *Tensor or
// any tensor-like value; raw values become constant leaves.
func Add(a, b any) *Tensor { return autograd.Add(a, b) }

// Sub computes a - b through the graph.
func Sub(a, b any) *Tensor { return autograd.Sub(a, b) }

// Mul computes a * b element-wise through the graph.
func Mul(a, b any) *Tensor { return autograd.Mul(a, b) }

// Div computes a / b element-wise through the graph.
func Div(a, b any) *Tensor { return autograd.Div(a, b) }
