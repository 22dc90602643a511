package check

// Diagnostic codes.
const (
	CodeInvalidName               = "invalid_name"
	CodeSelfParent                = "self_parent"
	CodeDuplicateCategory         = "duplicate_category"
	CodeDuplicateSubobject        = "duplicate_subobject"
	CodeDuplicateProperty         = "duplicate_property"
	CodeMissingParent             = "missing_parent"
	CodeUnknownProperty           = "unknown_property"
	CodeUnknownSubobject          = "unknown_subobject"
	CodeInheritanceCycle          = "inheritance_cycle"
	CodeInconsistentLinearization = "inconsistent_linearization"

	CodePromotedToRequired = "promoted_to_required"
	CodeUnusedProperty     = "unused_property"
	CodeUnusedSubobject    = "unused_subobject"
	CodeMissingLabel       = "missing_label"

	CodeEmptyCategory = "empty_category"
)
