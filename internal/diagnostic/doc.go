// Package diagnostic provides structured errors, warnings, and infos
// collected while checking user-supplied data: menu definitions and
// interactive topping selections.
//
// Diagnostics accumulate instead of aborting on the first problem, so a
// malformed menu file reports every defect in one pass and a topping
// selection keeps processing the remaining tokens after a bad one.
package diagnostic
