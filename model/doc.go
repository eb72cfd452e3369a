/*
Package model defines the three record types loaded from the tabular extracts.

Field tags carry the Russian column headers exactly as they appear in the
source files, so rows decoded by the tabular package map straight onto
Route, Driver and Trip.

# Identity

Names remain the join keys the source data uses. In addition every Route and
Driver gets a synthetic ID derived from its normalized name (trimmed,
whitespace-collapsed, case-folded), so that formatting drift between tables
does not break entity lookups.
*/
package model
