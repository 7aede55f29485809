// Package storage provides the object-storage client used to publish
// generated timetable artifacts (bell_times.json and friends) to a bucket
// the kiosk hosts can pull from.
//
// The Client interface is intentionally small; tests use the testify mock
// in the mocks subpackage instead of a live endpoint.
package storage
