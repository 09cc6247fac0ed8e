package registry

import (
	"context"
	"fmt"
	"regexp"

	"github.com/dmitrymomot/recordkit/pkg/record"
)

// Store persists schemas by name. Implementations are safe for concurrent
// use. Get and Delete return ErrSchemaNotFound for unknown names; List
// returns names in ascending order.
type Store interface {
	Get(ctx context.Context, name string) (*record.Schema, error)
	Put(ctx context.Context, name string, schema *record.Schema) error
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]string, error)
}

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]{1,128}$`)

// ValidName reports whether name can be used as a schema name.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

func checkName(name string) error {
	if !ValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func notFound(name string) error {
	return fmt.Errorf("%w: %q", ErrSchemaNotFound, name)
}
