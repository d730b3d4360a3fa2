package jsonfile

import (
	"fmt"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "ptask://tasks.schema.json"

// tasksSchema describes the on-disk document shape: an array of objects
// carrying title, due_date and priority as strings. Field values are not
// re-validated here; a record with an odd priority or extra keys still loads.
const tasksSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["title", "due_date", "priority"],
    "properties": {
      "title": {"type": "string"},
      "due_date": {"type": "string"},
      "priority": {"type": "string"}
    }
  }
}`

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, strings.NewReader(tasksSchema)); err != nil {
		return nil, fmt.Errorf("add tasks schema: %w", err)
	}
	return compiler.Compile(schemaURL)
}

// schemaError flattens a jsonschema validation error into a single error
// naming the first offending location, e.g. "[2]: missing properties: 'priority'".
func schemaError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	path := pointerToPath(leaf.InstanceLocation)
	if path == "" {
		return fmt.Errorf("invalid task list: %s", leaf.Message)
	}
	return fmt.Errorf("invalid task list: %s: %s", path, leaf.Message)
}

func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
