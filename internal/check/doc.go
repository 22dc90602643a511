// Package check scans a whole schema and reports every problem it finds as
// diagnostics instead of failing on the first one.
//
// Errors mark schemas that resolution would reject or resolve wrongly:
// invalid names, duplicates, dangling references, inheritance cycles and
// parent orders C3 cannot reconcile. Warnings mark schemas that resolve but
// probably not as intended. A name listed as both required and optional is
// always reported as a warning, since resolution promotes it to required.
//
// Check never panics and never returns an error. Extra rules are plain
// functions handed to [Check]; there is no registry.
package check
