package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cybertec-postgresql/oraql/pkg/types"
)

// LoadContext reads a Context from a JSON file of the shape:
//
//	{"tables": {"persons": {"columns": {"id": {"type": "integer"}}}}}
//
// An empty path is not an error: it is the same as an empty Context, since
// %TYPE/%ROWTYPE resolution is best-effort and simply leaves references
// unresolved when no context is supplied.
func LoadContext(path string) (types.Context, error) {
	if path == "" {
		return types.Context{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Context{}, fmt.Errorf("failed to read context file: %w", err)
	}
	var ctx types.Context
	if err := json.Unmarshal(data, &ctx); err != nil {
		return types.Context{}, fmt.Errorf("failed to parse context file: %w", err)
	}
	return ctx, nil
}
