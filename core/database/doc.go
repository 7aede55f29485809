// Package database provides the optional MySQL connection used for the
// generation audit log.
//
// Earlier versions of the pipeline appended "timestamp | response | range
// | validation" lines to a flat log file; the RunLog keeps the same fields
// as rows so runs can be queried. Everything else in the pipeline works
// without a database.
package database
