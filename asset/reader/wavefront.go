package reader

import (
	"fmt"
	"time"

	"github.com/achilleasa/meshc/asset"
	"github.com/achilleasa/meshc/asset/compiler"
	"github.com/achilleasa/meshc/asset/mesh"
	"github.com/achilleasa/meshc/asset/wavefront/lexer"
	"github.com/achilleasa/meshc/asset/wavefront/parser"
	"github.com/achilleasa/meshc/log"
)

type wavefrontReader struct {
	logger log.Logger

	// Name for faces outside a named object. Defaults to the resource name.
	defaultName string
}

// Create a new wavefront object reader.
func newWavefrontReader(defaultName string) *wavefrontReader {
	return &wavefrontReader{
		logger:      log.New("wavefront reader"),
		defaultName: defaultName,
	}
}

// Read and compile a wavefront object file.
func (r *wavefrontReader) Read(res *asset.Resource) ([]*mesh.Object3d, error) {
	r.logger.Noticef(`parsing objects from "%s"`, res.Path())
	start := time.Now()

	tokens, err := lexer.Lex(res)
	if err != nil {
		return nil, r.emitError(res, err)
	}
	r.logger.Debugf("lexed %d tokens", len(tokens))

	statements, err := parser.Parse(tokens)
	if err != nil {
		return nil, r.emitError(res, err)
	}
	r.logger.Debugf("parsed %d statements", len(statements))
	r.logger.Noticef("parsed objects in %d ms", time.Since(start).Nanoseconds()/1e6)

	defaultName := r.defaultName
	if defaultName == "" {
		defaultName = res.Name()
	}

	start = time.Now()
	objects, err := compiler.Compile(defaultName, statements)
	if err != nil {
		return nil, r.emitError(res, err)
	}
	r.logger.Noticef("compiled %d objects in %d ms", len(objects), time.Since(start).Nanoseconds()/1e6)

	return objects, nil
}

// Prefix an error with the resource path. The wrapped error keeps its type so
// callers can still inspect positional parse and compile errors.
func (r *wavefrontReader) emitError(res *asset.Resource, err error) error {
	return fmt.Errorf("%s: %w", res.Path(), err)
}
