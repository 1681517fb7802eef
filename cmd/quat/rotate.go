// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gviegas/quater/linear"
)

func (a *app) rotateCmds() []*cobra.Command {
	return []*cobra.Command{
		a.rotateCmd(),
		a.axisAngleCmd(),
		a.eulerCmd(),
		a.toAxisAngleCmd(),
		a.betweenCmd(),
	}
}

// printRotation prints q, or v rotated by q if args holds
// a vector.
func (a *app) printRotation(cmd *cobra.Command, q linear.Q, args []string) error {
	if len(args) == 0 {
		a.printQ(cmd, q)
		return nil
	}
	v, err := parseV3(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.vector(q.Rotate(v)))
	return nil
}

func (a *app) rotateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rotate <q> <x,y,z>",
		Short: "Rotate a vector by q (normalized first)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := a.parse(args[0])
			if err != nil {
				return err
			}
			if q, err = q.Normalize(); err != nil {
				return err
			}
			a.log.Debug().Stringer("unit", q).Msg("normalized")
			return a.printRotation(cmd, q, args[1:])
		},
	}
}

func (a *app) axisAngleCmd() *cobra.Command {
	var (
		axis  []float64
		angle float64
	)
	cmd := &cobra.Command{
		Use:   "axis-angle [x,y,z]",
		Short: "Quaternion of a rotation about an axis, optionally applied to a vector",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(axis) != 3 {
				return fmt.Errorf("axis: want 3 components, have %d", len(axis))
			}
			q, err := linear.FromAxisAngle(linear.V3(axis), a.cfg.Radians(angle))
			if err != nil {
				return err
			}
			return a.printRotation(cmd, q, args)
		},
	}
	cmd.Flags().Float64SliceVar(&axis, "axis", nil, "rotation axis x,y,z")
	cmd.Flags().Float64Var(&angle, "angle", 0, "rotation angle")
	cmd.MarkFlagRequired("axis")
	return cmd
}

func (a *app) eulerCmd() *cobra.Command {
	var angles []float64
	cmd := &cobra.Command{
		Use:   "euler [x,y,z]",
		Short: "Quaternion of Euler angles (Z, then X, then Y), optionally applied to a vector",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(angles) != 3 {
				return fmt.Errorf("angles: want phi,theta,psi, have %d values", len(angles))
			}
			q := linear.FromEuler(
				a.cfg.Radians(angles[0]),
				a.cfg.Radians(angles[1]),
				a.cfg.Radians(angles[2]),
			)
			return a.printRotation(cmd, q, args)
		},
	}
	cmd.Flags().Float64SliceVar(&angles, "angles", nil, "Euler angles phi,theta,psi")
	cmd.MarkFlagRequired("angles")
	return cmd
}

func (a *app) toAxisAngleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "to-axis-angle <q>",
		Short: "Axis and angle of the rotation described by q (normalized first)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := a.parse(args[0])
			if err != nil {
				return err
			}
			if q, err = q.Normalize(); err != nil {
				return err
			}
			axis, angle := q.AxisAngle()
			fmt.Fprintln(cmd.OutOrStdout(), a.vector(axis), a.fmtReal(a.cfg.Angle(angle)))
			return nil
		},
	}
}

func (a *app) betweenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "between <x,y,z> <x,y,z>",
		Short: "Shortest rotation from one direction to another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := parseV3(args[0])
			if err != nil {
				return err
			}
			v, err := parseV3(args[1])
			if err != nil {
				return err
			}
			q, err := linear.FromBetween(u, v)
			if err != nil {
				return err
			}
			a.printQ(cmd, q)
			return nil
		},
	}
}
