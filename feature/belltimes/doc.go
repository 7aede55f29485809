// Package belltimes ties the pipeline together for bell-time records:
// fetch the raw export, decode it, validate the result, publish the JSON
// artifact the kiosk consumes, and reconcile independently produced
// collections against each other.
//
// It also carries the school's timetable conventions: the fortnightly
// day-number cycle (MonA=1 .. FriB=10), period type classification
// (teaching / recess / other), and the HH:MM:SS to HH:MM normalization
// applied to times coming from the REST side.
package belltimes
