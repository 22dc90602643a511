// Package schema loads category, subobject and property definitions from
// YAML or JSONC files and turns them into immutable records.
//
// It is the adapter between wherever definitions are stored and the
// resolution core: the core only ever sees name-to-record maps.
//
// # Schema Overview
//
// A schema file has the following structure:
//
//	version: "1"
//	properties:
//	  - name: Has name
//	    datatype: Text
//	  - name: Has street
//	    datatype: Text
//	subobjects:
//	  - name: Address
//	    required_properties: [Has street]
//	    optional_properties: Has city     # a single string is accepted too
//	categories:
//	  - name: Entity
//	    required_properties: [Has ID]
//	  - name: Person
//	    label: Person
//	    parents: [Entity, Agent]          # order is the C3 precedence
//	    required_properties: [Has name]
//	    optional_properties: [Has email]
//	    optional_subobjects: [Address]
//	    display: {template: Person}       # passed through untouched
//	    forms: {create: PersonForm}
//
// The same structure may be written as JSON with comments and trailing
// commas (".json" or ".jsonc").
//
// # Loading
//
// [Load] accepts files and directories. Directory entries with a supported
// extension are collected recursively, all files are parsed concurrently,
// and definitions are appended in path order. Duplicate definitions are kept
// so that a consistency check can report them; record construction uses the
// first one.
//
// [Schema.Digest] is a BLAKE3 digest of every source in path order, printed
// with reports so that a result can be tied to the exact schema revision.
package schema
