package errors

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/doccheck/constants"
)

var namespace = errorc.Namespace(constants.Namespace)

// Sentinel errors. Use errors.Is to match.
var (
	// call time
	ErrTypeMismatch     = namespace.NewError("argument type mismatch")
	ErrUnknownParameter = namespace.NewError("unknown parameter")

	// decoration time
	ErrSignatureMismatch  = namespace.NewError("the arguments listed in the documentation do not match the arguments in the function signature")
	ErrInvalidDescription = namespace.NewError("invalid type description")
	ErrInvalidFunc        = namespace.NewError("invalid function")
	ErrDuplicateParameter = namespace.NewError("duplicate parameter")

	// type lookup
	ErrNameNotFound      = namespace.NewError("type name not found")
	ErrModuleNotFound    = namespace.NewError("could not import module")
	ErrAttributeNotFound = namespace.NewError("could not find type in module")
	ErrModuleLoad        = namespace.NewError("module load failed")
	ErrDuplicateType     = namespace.NewError("duplicate type")
	ErrDuplicateModule   = namespace.NewError("duplicate module")

	// argument binding
	ErrMissingArgument   = namespace.NewError("missing argument")
	ErrDuplicateArgument = namespace.NewError("argument bound more than once")
	ErrTooManyArguments  = namespace.NewError("too many positional arguments")
	ErrNotAssignable     = namespace.NewError("argument not assignable to parameter type")

	// manifest
	ErrInvalidManifest = namespace.NewError("invalid manifest")
)

var newKey = errorc.KeyFactory(constants.ErrorFieldNamespace)

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentFunc  = "func"
	keySegmentParam = "param"
	keySegmentType  = "type"
	keySegmentCall  = "call"
)

// Exported structured error field keys
var (
	ErrorFieldFuncName      = newKey("name", keySegmentFunc)        // doccheck.func.name
	ErrorFieldDocumented    = newKey("documented", keySegmentFunc)  // doccheck.func.documented
	ErrorFieldDeclared      = newKey("declared", keySegmentFunc)    // doccheck.func.declared
	ErrorFieldFuncType      = newKey("go_type", keySegmentFunc)     // doccheck.func.go_type
	ErrorFieldArgumentCount = newKey("arg_count", keySegmentFunc)   // doccheck.func.arg_count
	ErrorFieldParamName     = newKey("name", keySegmentParam)       // doccheck.param.name
	ErrorFieldParamGoType   = newKey("go_type", keySegmentParam)    // doccheck.param.go_type
	ErrorFieldValueType     = newKey("value_type", keySegmentParam) // doccheck.param.value_type
	ErrorFieldTypeName      = newKey("name", keySegmentType)        // doccheck.type.name
	ErrorFieldModulePath    = newKey("module", keySegmentType)      // doccheck.type.module
	ErrorFieldDescription   = newKey("description", keySegmentType) // doccheck.type.description
)

var (
	ErrorFieldCallIndex = newKey("index", keySegmentCall) // doccheck.call.index
	ErrorFieldPath      = newKey("path")
	ErrorFieldReason    = newKey("reason")
	ErrorFieldCause     = newKey("cause")
)
