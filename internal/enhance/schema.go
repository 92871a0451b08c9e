package enhance

import "github.com/xeipuuv/gojsonschema"

const responseSchemaJSON = `{
  "type": "object",
  "required": ["possibleConditions"],
  "properties": {
    "disclaimer": {"type": "string"},
    "possibleConditions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "probability", "severity"],
        "properties": {
          "name": {"type": "string", "pattern": "\\S"},
          "probability": {"type": "number", "minimum": 0},
          "description": {"type": "string"},
          "symptoms": {"type": "array", "items": {"type": "string"}},
          "severity": {"type": "string", "pattern": "^\\s*(?i:mild|moderate|severe)\\s*$"},
          "recommendations": {"type": "array", "items": {"type": "string"}},
          "whenToSeekCare": {"type": "string"}
        }
      }
    }
  }
}`

var responseSchema = mustSchema(responseSchemaJSON)

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(err)
	}
	return s
}

// validate returns the schema violations for doc, or nil when it conforms.
func validate(doc []byte) ([]string, error) {
	result, err := responseSchema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return nil, err
	}
	if result.Valid() {
		return nil, nil
	}
	errs := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		errs[i] = desc.String()
	}
	return errs, nil
}
