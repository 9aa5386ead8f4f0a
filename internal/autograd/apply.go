package autograd

// apply runs an operation's forward pass and wires the result into the
// graph. Every arithmetic entry point funnels through this routine, which
// guarantees uniform flag propagation:
//
//  1. inputs that are not already tensors become constant leaves;
//  2. the operation binds its inputs and computes the raw result;
//  3. the result is constant iff every input is constant;
//  4. the result is scalar-only if the operation declares it (and the
//     result is not constant), or if any non-constant input is scalar-only;
//  5. the result records the operation as its creator. The creator is kept
//     even on constant results; backpropagation short-circuits at constant
//     boundaries, so the link is structural only.
func apply(op Operation, inputs ...any) (*Tensor, error) {
	tensors := make([]*Tensor, len(inputs))
	for i, in := range inputs {
		if t, ok := in.(*Tensor); ok {
			tensors[i] = t
			continue
		}
		t, err := New(in, Constant())
		if err != nil {
			return nil, err
		}
		tensors[i] = t
	}

	out, err := op.Forward(tensors...)
	if err != nil {
		return nil, err
	}

	isConst := true
	for _, t := range tensors {
		isConst = isConst && t.constant
	}
	scalarOnly := op.ScalarOnly() && !isConst
	for _, t := range tensors {
		scalarOnly = scalarOnly || (t.scalarOnly && !t.constant)
	}

	opts := []Option{WithCreator(op)}
	if isConst {
		opts = append(opts, Constant())
	}
	if scalarOnly {
		opts = append(opts, WithScalarOnly())
	}
	return New(out, opts...)
}

// mustApply backs the operator methods, which keep the fluent a.Mul(b).Add(c)
// surface by panicking on contract violations (non-numeric operands,
// incompatible shapes) instead of returning errors.
func mustApply(op Operation, inputs ...any) *Tensor {
	t, err := apply(op, inputs...)
	if err != nil {
		panic(err)
	}
	return t
}
