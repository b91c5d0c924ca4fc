package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const seedSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "name", "description", "category", "materials", "applications"],
    "properties": {
      "id":             {"type": "string", "minLength": 1},
      "name":           {"type": "string", "minLength": 1},
      "description":    {"type": "string"},
      "category":       {"enum": ["precision", "metal", "custom", "automotive", "aerospace"]},
      "image":          {"type": "string"},
      "materials":      {"type": "array", "items": {"type": "string"}},
      "applications":   {"type": "array", "items": {"type": "string"}},
      "features":       {"type": "array", "items": {"type": "string"}},
      "specifications": {"type": "object", "additionalProperties": {"type": "string"}}
    }
  }
}`

var seedSchemaLoader = gojsonschema.NewStringLoader(seedSchema)

// LoadSeedFile reads a JSON array of products and validates it before decoding.
func LoadSeedFile(path string) ([]Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(raw)
}

func ParseSeed(raw []byte) ([]Product, error) {
	res, err := gojsonschema.Validate(seedSchemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("validate seed: %w", err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("invalid seed: %s", strings.Join(msgs, "; "))
	}

	var out []Product
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return out, nil
}
