// Package pointset defines data structures for collections of spatial points.
//
// Imaging data are sampled at points in space, and these points can be
// described by coordinates. The structures here operate on the points
// themselves, as opposed to the data sampled at them.
//
// Two kinds of point set get special treatment. A grid is a collection of
// regularly spaced points, canonically voxel indices and their affine
// projection into a reference space. A mesh is a collection of points plus
// structure identifying adjacent points; a triangular mesh uses triplets of
// vertex indices to describe faces.
//
// Every point set couples a coordinate table with an affine transform mapping
// it into a target space. Transforms compose by left-multiplication and never
// touch the coordinate data until the coordinates are requested.
package pointset
