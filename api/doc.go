// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts of the objpool library: the raw block source boundary,
// pool statistics, and the error taxonomy shared by all packages.
package api
