package question

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrMalformedResponse indicates the generator output is not a single JSON object.
var ErrMalformedResponse = errors.New("malformed question response")

// ErrMissingQuestions indicates the response lacks a "questions" array.
var ErrMissingQuestions = errors.New(`response has no "questions" array`)

// ResponseSchema is the JSON schema a generator response must satisfy.
const ResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["questions"],
  "properties": {
    "questions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["question", "options", "correctAnswer", "category"],
        "properties": {
          "question": { "type": "string" },
          "options": { "type": "array", "items": { "type": "string" } },
          "correctAnswer": { "type": "integer" },
          "category": { "type": "string" }
        }
      }
    }
  }
}`

var responseSchema = jsonschema.MustCompileString("questions.schema.json", ResponseSchema)

type responsePayload struct {
	Questions []Question `json:"questions"`
}

// ParseResponse parses generator output into an ordered question sequence.
// It fails on anything other than exactly want well-formed questions.
func ParseResponse(text string, want int) ([]Question, error) {
	data := []byte(trimCodeFence(text))
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrMalformedResponse)
	}

	var document any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&document); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing content after JSON object", ErrMalformedResponse)
	}

	object, ok := document.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top-level value is not an object", ErrMalformedResponse)
	}
	if _, ok := object["questions"].([]any); !ok {
		return nil, ErrMissingQuestions
	}
	if err := responseSchema.Validate(document); err != nil {
		return nil, &ValidationError{Issues: []Issue{{Field: "response", Message: err.Error()}}}
	}

	var payload responsePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return NormalizeQuestions(payload.Questions, want)
}
