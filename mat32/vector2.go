// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat32

// Vec2 is a 2D vector/point with X and Y float32 components.
type Vec2 struct {
	X float32
	Y float32
}

// V2 returns a new [Vec2] with the given x and y components.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// V2Scalar returns a new [Vec2] with all components set to the given scalar.
func V2Scalar(s float32) Vec2 {
	return Vec2{X: s, Y: s}
}

// Set sets this vector's X and Y components.
func (v *Vec2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

// Add returns the vector sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the vector difference of v and o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// MulScalar returns v with each component multiplied by s.
func (v Vec2) MulScalar(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}
