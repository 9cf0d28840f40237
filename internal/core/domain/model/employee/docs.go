// Package employee models workers as far as job dispatch cares about them: whether they are
// active and which coverage areas they serve.
//
// A coverage area is a home ZIP plus a travel radius of at most MaxTravelRadius miles.
// Areas are deactivated rather than deleted so that history stays intact.
package employee
