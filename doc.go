// Package regioncurves extracts ordered 3D boundary curves from fused
// image+point-cloud bundles and emits oriented 6-DoF pose sequences along
// each curve, for driving robotic tool paths along the perimeter of
// painted, stickered, or printed regions on a physical part.
//
// The pipeline is single-threaded and synchronous: one Compute call owns
// all intermediate buffers and releases them on return. Construct an
// Engine with NewEngine, then call Compute once per batch of bundles.
package regioncurves
