package codegen

import "context"

/* The external model is hidden behind the narrowest possible
 * capability: text in, text out. Endpoints and the service never see
 * transport details, and tests swap in a mock.
 */

// Generator produces text from a prompt by calling an external
// text-generation model. The output is opaque to this package.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
