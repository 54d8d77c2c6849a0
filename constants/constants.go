package constants

const Namespace = "doccheck"

// ErrorFieldNamespace for all exported error field keys.
const ErrorFieldNamespace = Namespace

// Type description grammar tokens.
const (
	UnionSeparator   = "|"
	UntypedSeparator = ":"
	ShapePrefix      = "array, shape"

	TokenFunction  = "function"
	TokenGenerator = "generator"
	TokenArray     = "array"
)
