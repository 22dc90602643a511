// Package diagnostic provides structured errors, warnings and infos produced
// while checking a category schema.
//
// Key capabilities:
//   - Structural reference errors (missing parents, unknown attributes)
//   - Inheritance cycle and inconsistent linearization reports
//   - Required/optional promotion warnings
//   - "Did you mean" suggestions attached to a finding
package diagnostic
