// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"

	"github.com/sgl3d/sgl/math3d"
)

// Op identifies one recorded backend call.
type Op int

const (
	OpPushMatrix Op = iota
	OpPopMatrix
	OpPushState
	OpPopState
	OpDrawTriangles
	OpDrawLines
	OpDrawPoints
)

func (o Op) String() string {
	switch o {
	case OpPushMatrix:
		return "PushMatrix"
	case OpPopMatrix:
		return "PopMatrix"
	case OpPushState:
		return "PushState"
	case OpPopState:
		return "PopState"
	case OpDrawTriangles:
		return "DrawTriangles"
	case OpDrawLines:
		return "DrawLines"
	case OpDrawPoints:
		return "DrawPoints"
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Call is one recorded backend call.
type Call struct {
	Op     Op
	Matrix math3d.Matrix4 // for OpPushMatrix
	States []State        // for OpPushState
	XYZ    []float32      // vertex coordinates, for draw ops
	Count  int            // number of vertices, for draw ops
}

// Recorder is a [Backend] that records calls instead of rendering.
// It tracks matrix and state stack depths so tests can assert that
// traversals leave both stacks balanced.
type Recorder struct {
	Calls []Call

	matrixDepth int
	stateDepth  int
}

// NewRecorder returns a new empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Reset discards all recorded calls and resets stack depths.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
	r.matrixDepth = 0
	r.stateDepth = 0
}

// Balanced returns true if every push has been matched by a pop.
func (r *Recorder) Balanced() bool {
	return r.matrixDepth == 0 && r.stateDepth == 0
}

// Ops returns the sequence of recorded operations.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

func (r *Recorder) PushMatrix(m math3d.Matrix4) {
	r.matrixDepth++
	r.Calls = append(r.Calls, Call{Op: OpPushMatrix, Matrix: m})
}

func (r *Recorder) PopMatrix() {
	r.matrixDepth--
	if r.matrixDepth < 0 {
		panic("render: PopMatrix without matching PushMatrix")
	}
	r.Calls = append(r.Calls, Call{Op: OpPopMatrix})
}

func (r *Recorder) PushState(states ...State) {
	r.stateDepth++
	s := make([]State, len(states))
	copy(s, states)
	r.Calls = append(r.Calls, Call{Op: OpPushState, States: s})
}

func (r *Recorder) PopState() {
	r.stateDepth--
	if r.stateDepth < 0 {
		panic("render: PopState without matching PushState")
	}
	r.Calls = append(r.Calls, Call{Op: OpPopState})
}

func (r *Recorder) DrawTriangles(xyz, uvw, rgb []float32) {
	r.Calls = append(r.Calls, Call{Op: OpDrawTriangles, XYZ: xyz, Count: len(xyz) / 3})
}

func (r *Recorder) DrawLines(xyz, rgb []float32) {
	r.Calls = append(r.Calls, Call{Op: OpDrawLines, XYZ: xyz, Count: len(xyz) / 3})
}

func (r *Recorder) DrawPoints(size float32, xyz, rgb []float32) {
	r.Calls = append(r.Calls, Call{Op: OpDrawPoints, XYZ: xyz, Count: len(xyz) / 3})
}
