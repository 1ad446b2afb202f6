// Package render draws the walkthrough's only visual artifact: a scatter
// plot of the centered observations with the principal axes overlaid as
// vectors from the origin, each scaled by √eigenvalue (one standard
// deviation along its component).
//
// This is presentation output, not an interface contract — the PNG exists so
// a reader can SEE that the dominant axis runs along the stretched direction
// of the point cloud.
package render
