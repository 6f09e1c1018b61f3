// Package amfm decomposes bivariate signals into instantaneous amplitude,
// frequency, and orientation trajectories.
//
// The signal is embedded as a quaternion signal (see package symplectic),
// per-sample attributes are derived from the analytic channel pair, and
// windowed frames smooth them into the output sequences:
//
//   - amplitude: |q[n]| window-weighted over each frame
//   - frequency: power-weighted mean of the per-channel analytic phase
//     derivatives, window-weighted over each frame
//   - orientation: the unit quaternion of the frame-center sample, with
//     hemisphere continuity enforced between frames, optionally converted
//     to Euler triples
//
// Phase unwrapping and hemisphere alignment carry explicit state from
// frame to frame, so frames are processed strictly left to right.
//
// Edge handling is configurable: [EdgeMirror] (default) reflects the
// attribute sequences so every sample owns a full frame; [EdgeTrim] emits
// only frames fully inside the record and reports the lead-in via
// [Result.Offset].
package amfm
