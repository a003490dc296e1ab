// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sgl3d/sgl/math3d"
)

func TestRecorderRecordsCalls(t *testing.T) {
	r := NewRecorder()
	m := math3d.Translate(1, 2, 3)
	r.PushMatrix(m)
	r.PushState(StateColor, StateBlend)
	r.DrawTriangles([]float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, nil, nil)
	r.DrawLines([]float32{0, 0, 0, 1, 1, 1}, nil)
	r.DrawPoints(2, []float32{0, 0, 0}, nil)
	r.PopState()
	r.PopMatrix()

	assert.True(t, r.Balanced())
	assert.Equal(t, []Op{
		OpPushMatrix, OpPushState,
		OpDrawTriangles, OpDrawLines, OpDrawPoints,
		OpPopState, OpPopMatrix,
	}, r.Ops())
	assert.Equal(t, m, r.Calls[0].Matrix)
	assert.Equal(t, []State{StateColor, StateBlend}, r.Calls[1].States)
	assert.Equal(t, 3, r.Calls[2].Count)
	assert.Equal(t, 2, r.Calls[3].Count)
	assert.Equal(t, 1, r.Calls[4].Count)
}

func TestRecorderUnbalancedPops(t *testing.T) {
	assert.Panics(t, func() { NewRecorder().PopMatrix() })
	assert.Panics(t, func() { NewRecorder().PopState() })
}

func TestRecorderReset(t *testing.T) {
	r := NewRecorder()
	r.PushMatrix(math3d.Identity4())
	assert.False(t, r.Balanced())
	r.Reset()
	assert.True(t, r.Balanced())
	assert.Empty(t, r.Calls)
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "PushMatrix", OpPushMatrix.String())
	assert.Equal(t, "DrawPoints", OpDrawPoints.String())
	assert.Equal(t, "Op(99)", Op(99).String())
}
