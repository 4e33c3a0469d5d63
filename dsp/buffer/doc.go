// Package buffer provides a reusable planar multi-channel sample buffer and
// a pool for it. Processors accept raw [][]float64 channel slices; Planar
// is an optional convenience that keeps all channels in one backing array
// and hands out the channel views without allocating.
package buffer
