// Package utils holds small HTTP helpers shared by the REST adapter and the
// fake API servers used in tests.
package utils
