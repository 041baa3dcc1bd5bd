// Package padding implements the PKCS#1 v1.5, OAEP, and PSS message
// encodings the RSA core drives through a single Scheme interface: a
// small capability set dispatching to pure functions rather than a class
// hierarchy.
package padding
