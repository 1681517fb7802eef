// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/gviegas/quater/linear"
)

// Exactly one of q and f is set.
type unaryOp struct {
	use   string
	short string
	q     func(linear.Q) (linear.Q, error)
	f     func(linear.Q) float64
}

type binaryOp struct {
	use   string
	short string
	q     func(linear.Q, linear.Q) (linear.Q, error)
	f     func(linear.Q, linear.Q) float64
}

func total(f func(linear.Q) linear.Q) func(linear.Q) (linear.Q, error) {
	return func(q linear.Q) (linear.Q, error) { return f(q), nil }
}

func total2(f func(linear.Q, linear.Q) linear.Q) func(linear.Q, linear.Q) (linear.Q, error) {
	return func(q, p linear.Q) (linear.Q, error) { return f(q, p), nil }
}

var unaryOps = [...]unaryOp{
	{use: "norm", short: "Norm of q", f: linear.Q.Norm},
	{use: "normsq", short: "Squared norm of q", f: linear.Q.NormSq},
	{use: "real", short: "Real part of q", f: linear.Q.Real},
	{use: "imag", short: "Vector part of q", q: total(linear.Q.Imag)},
	{use: "conj", short: "Conjugate of q", q: total(linear.Q.Conj)},
	{use: "neg", short: "Negation of q", q: total(linear.Q.Neg)},
	{use: "inv", short: "Inverse of q", q: linear.Q.Inverse},
	{use: "normalize", short: "q scaled to unit norm", q: linear.Q.Normalize},
	{use: "exp", short: "Exponential of q", q: total(linear.Q.Exp)},
	{use: "log", short: "Natural logarithm of q", q: total(linear.Q.Log)},
}

var binaryOps = [...]binaryOp{
	{use: "add", short: "Sum q + p", q: total2(linear.Q.Add)},
	{use: "sub", short: "Difference q - p", q: total2(linear.Q.Sub)},
	{use: "mul", short: "Hamilton product q ⋅ p", q: total2(linear.Q.Mul)},
	{use: "div", short: "Right quotient q ⋅ p⁻¹", q: linear.Q.Div},
	{use: "dot", short: "Dot product of q and p", f: linear.Q.Dot},
}

func (a *app) unaryCmd(op unaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   op.use + " <q>",
		Short: op.short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := a.parse(args[0])
			if err != nil {
				return err
			}
			if op.f != nil {
				a.printReal(cmd, op.f(q))
				return nil
			}
			if q, err = op.q(q); err != nil {
				return err
			}
			a.printQ(cmd, q)
			return nil
		},
	}
}

func (a *app) binaryCmd(op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   op.use + " <q> <p>",
		Short: op.short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qs, err := a.parseAll(args)
			if err != nil {
				return err
			}
			if op.f != nil {
				a.printReal(cmd, op.f(qs[0], qs[1]))
				return nil
			}
			q, err := op.q(qs[0], qs[1])
			if err != nil {
				return err
			}
			a.printQ(cmd, q)
			return nil
		},
	}
}
