// Package requestid provides HTTP middleware and context helpers for request
// correlation identifiers. Invalid or missing client-supplied IDs are
// silently replaced by a freshly generated UUID; the package never returns
// errors.
package requestid
