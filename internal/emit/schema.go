package emit

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/roach88/qsgal/internal/ir"
)

//go:embed manifest.cue
var manifestSchema string

// ErrCodeSchema is the code of a manifest that failed the schema check.
const ErrCodeSchema = "E008"

// SchemaError reports a manifest that does not satisfy the manifest schema.
type SchemaError struct {
	Message string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return "manifest schema: " + e.Message
}

// ErrCode returns ErrCodeSchema.
func (e *SchemaError) ErrCode() string {
	return ErrCodeSchema
}

// CheckManifest validates a manifest against the embedded CUE schema.
func CheckManifest(m ir.Manifest) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(manifestSchema, cue.Filename("manifest.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling manifest schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Manifest"))

	val := ctx.Encode(m)
	if err := val.Err(); err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}

	if err := def.Unify(val).Validate(cue.Concrete(true)); err != nil {
		return &SchemaError{Message: cueerrors.Details(err, nil)}
	}
	return nil
}
