// Package server holds the configuration for the kiosk artifact server.
//
// The kiosk frontend loads bell_times.json and friends over HTTP from the
// same host; the serve command exposes the output directory with
// permissive CORS headers so a locally opened kiosk page can fetch them.
package server
