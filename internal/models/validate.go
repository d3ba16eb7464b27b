package models

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a decoded wire value against its schema tags. Server
// payloads must pass here before crossing into the rest of the program.
// Non-struct payloads (aggregate maps) have no tags to check.
func Validate(v interface{}) error {
	if !isStruct(v) {
		return nil
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("validate %T: %w", v, err)
	}
	return nil
}

func isStruct(v interface{}) bool {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	return rv.Kind() == reflect.Struct
}

// ValidateList applies the single-entity schema to every element. Any
// single failure fails the whole list; there is no partial acceptance.
func ValidateList[T any](items []T) error {
	for i := range items {
		if err := Validate(items[i]); err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
	}
	return nil
}

// Decode unmarshals and validates a single entity payload.
func Decode[T any](raw json.RawMessage) (T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("decode %T: %w", v, err)
	}
	if err := Validate(v); err != nil {
		return v, err
	}
	return v, nil
}

// DecodeList unmarshals and validates a collection payload.
func DecodeList[T any](raw json.RawMessage) ([]T, error) {
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %T list: %w", items, err)
	}
	if err := ValidateList(items); err != nil {
		return nil, err
	}
	return items, nil
}
