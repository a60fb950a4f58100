// Package quarkgl is a small software 3D pipeline for the orbit viewer.
//
// It draws one shared triangle mesh many times, once per scene instance, with a
// per-instance model matrix and a flat color. This mirrors a classic
// vertex+fragment shader pair with uniforms model, view, projection and color,
// but runs entirely on the CPU and writes into a caller-provided Target.
//
// Pipeline (fixed):
//
//	Mesh → Model → View → Projection → Clipping → Rasterization → Target.
//
// Meshes are position-only. NewSphere builds the latitude/longitude sphere used
// for every body.
package quarkgl
