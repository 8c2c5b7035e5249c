// Package testsupport provides shared fixtures for tests: a temp-directory
// backed config builder, reference spectra for the common vacuum scenarios, and
// helpers that write spectrum files.
package testsupport
