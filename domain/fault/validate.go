package fault

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var structValidator = newStructValidator()

// newStructValidator reports fields by their JSON names, which are also the
// persisted field names.
func newStructValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// CheckStruct runs the `validate` struct tags of s and records one violation
// per failing field, worded by message(field, tag). Only the first failing
// tag of a field is reported.
func (e *ValidationError) CheckStruct(s any, message func(field, tag string) string) error {
	err := structValidator.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	for _, fe := range verrs {
		e.Add(fe.Field(), message(fe.Field(), fe.Tag()))
	}
	return nil
}
