package codegen

import "fmt"

// promptTemplate is the fixed instruction set sent to the model. The
// %s slot receives the selected webhook bodies joined by blank lines.
const promptTemplate = `You are an expert TypeScript backend engineer.

You will receive multiple webhook request payload schemas and example bodies. Each webhook body is separated by a blank line.

Generate a single TypeScript module that:
- Exports a function named handleWebhooks that accepts a JSON-like payload (arrays/objects/strings/numbers) matching the incoming webhook data.
- Uses zod to validate the incoming payload. Infer the schema based on the provided webhook payloads. If multiple bodies are provided, infer a schema that is compatible with all of them (e.g. discriminated union, optional fields).
- After validation, iterate over each webhook event (if multiple) and call a placeholder async function processWebhook(event) with the validated data.
- Includes all necessary imports ` + "`z`" + ` from ` + "`zod`" + ` and any types needed.
- Adds descriptive inline comments only where important.

Return only the TypeScript code without markdown fences.

Webhook payloads:
%s`

func buildPrompt(bodies string) string {
	return fmt.Sprintf(promptTemplate, bodies)
}
