package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Model is one entry of the model list. Only ID is guaranteed to be set; the other
// fields are filled in when the server sends them in the usual OpenAI shape.
type Model = openai.Model

var jsonNull = []byte("null")

// decodeModels checks the shape of a /v1/models body and returns its records in
// response order.
func decodeModels(body []byte) ([]Model, error) {
	if !json.Valid(body) {
		var v any
		return nil, &DecodeError{Err: json.Unmarshal(body, &v)}
	}

	var envelope map[string]json.RawMessage

	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &SchemaError{Field: "(root)", Reason: "expected an object"}
	}

	data, ok := envelope["data"]
	if !ok || bytes.Equal(data, jsonNull) {
		return nil, &SchemaError{Field: "data", Reason: "missing"}
	}

	var records []json.RawMessage

	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &SchemaError{Field: "data", Reason: "expected an array"}
	}

	models := make([]Model, 0, len(records))

	for i, raw := range records {
		m, err := decodeModel(raw)
		if err != nil {
			err.Field = fmt.Sprintf("data[%d]%s", i, err.Field)
			return nil, err
		}

		models = append(models, m)
	}

	return models, nil
}

func decodeModel(raw json.RawMessage) (Model, *SchemaError) {
	var record map[string]json.RawMessage

	if err := json.Unmarshal(raw, &record); err != nil || record == nil {
		return Model{}, &SchemaError{Reason: "expected an object"}
	}

	rawID, ok := record["id"]
	if !ok || bytes.Equal(rawID, jsonNull) {
		return Model{}, &SchemaError{Field: ".id", Reason: "missing"}
	}

	var id string

	if err := json.Unmarshal(rawID, &id); err != nil {
		return Model{}, &SchemaError{Field: ".id", Reason: "expected a string"}
	}

	var m Model

	// Fields other than id are informational; a server that sends them in some other
	// shape still gets its models listed.
	if err := json.Unmarshal(raw, &m); err != nil {
		m = Model{}
	}

	m.ID = id

	return m, nil
}
