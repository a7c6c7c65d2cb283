// Package integration_tests exercises the whole application, from manifest
// files on disk to rendered plan output.
package integration_tests
