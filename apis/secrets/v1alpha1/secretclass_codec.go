/*
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"k8s.io/apimachinery/pkg/util/validation/field"
	sigsjson "sigs.k8s.io/json"
	"sigs.k8s.io/yaml"
)

var (
	// ErrSchemaViolation is returned when a document or value does not match
	// the SecretClass schema: missing, unknown or mistyped fields, or a backend
	// with zero or several variants.
	ErrSchemaViolation = errors.New("schema violation")

	// ErrUnknownBackendVariant is returned when a backend carries a single tag
	// that does not name a known variant.
	ErrUnknownBackendVariant = errors.New("unknown backend variant")
)

func schemaViolation(errs field.ErrorList) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrSchemaViolation, errs.ToAggregate())
}

// NewSecretClass returns a SecretClass carrying the type identity of this API version.
func NewSecretClass(name string, spec SecretClassSpec) *SecretClass {
	sc := &SecretClass{Spec: spec}
	sc.Name = name
	sc.SetGroupVersionKind(SecretClassGroupVersionKind)
	return sc
}

// Encode serializes a SecretClass to JSON. An empty apiVersion and kind are
// filled in; any other type identity is refused.
func Encode(sc *SecretClass) ([]byte, error) {
	if sc == nil {
		return nil, fmt.Errorf("%w: object must not be nil", ErrSchemaViolation)
	}
	out := sc.DeepCopy()
	if out.APIVersion == "" && out.Kind == "" {
		out.SetGroupVersionKind(SecretClassGroupVersionKind)
	}
	errs := validateTypeMeta(out.APIVersion, out.Kind)
	errs = append(errs, ValidateSecretClass(out)...)
	if len(errs) > 0 {
		return nil, schemaViolation(errs)
	}
	return json.Marshal(out)
}

// EncodeYAML serializes a SecretClass to YAML.
func EncodeYAML(sc *SecretClass) ([]byte, error) {
	data, err := Encode(sc)
	if err != nil {
		return nil, err
	}
	return yaml.JSONToYAML(data)
}

// EncodeSpec serializes a bare SecretClassSpec to JSON.
func EncodeSpec(spec *SecretClassSpec) ([]byte, error) {
	if spec == nil {
		return nil, schemaViolation(field.ErrorList{field.Required(field.NewPath("spec"), "")})
	}
	if errs := ValidateSecretClassSpec(spec, field.NewPath("spec")); len(errs) > 0 {
		return nil, schemaViolation(errs)
	}
	return json.Marshal(spec)
}

// Decode parses a JSON or YAML SecretClass document. Unknown fields,
// duplicate fields and field names in the wrong case are rejected. Either a
// fully valid SecretClass or an error wrapping ErrSchemaViolation or
// ErrUnknownBackendVariant is returned.
func Decode(data []byte) (*SecretClass, error) {
	jsonData, err := toJSON(data)
	if err != nil {
		return nil, err
	}
	if err := rejectNulls(jsonData, nil); err != nil {
		return nil, err
	}
	sc := &SecretClass{}
	if err := unmarshalStrict(jsonData, sc, nil); err != nil {
		return nil, err
	}
	errs := validateTypeMeta(sc.APIVersion, sc.Kind)
	errs = append(errs, ValidateSecretClass(sc)...)
	if len(errs) > 0 {
		return nil, schemaViolation(errs)
	}
	return sc, nil
}

// DecodeSpec parses a bare SecretClassSpec document, such as
// {"backend":{"k8sSearch":{}}}.
func DecodeSpec(data []byte) (*SecretClassSpec, error) {
	jsonData, err := toJSON(data)
	if err != nil {
		return nil, err
	}
	specPath := field.NewPath("spec")
	if err := rejectNulls(jsonData, specPath); err != nil {
		return nil, err
	}
	spec := &SecretClassSpec{}
	if err := unmarshalStrict(jsonData, spec, specPath); err != nil {
		return nil, err
	}
	if errs := ValidateSecretClassSpec(spec, specPath); len(errs) > 0 {
		return nil, schemaViolation(errs)
	}
	return spec, nil
}

func validateTypeMeta(apiVersion, kind string) field.ErrorList {
	var errs field.ErrorList
	if apiVersion != SchemeGroupVersion.String() {
		errs = append(errs, field.NotSupported(field.NewPath("apiVersion"), apiVersion, []string{SchemeGroupVersion.String()}))
	}
	if kind != SecretClassKind {
		errs = append(errs, field.NotSupported(field.NewPath("kind"), kind, []string{SecretClassKind}))
	}
	return errs
}

func toJSON(data []byte) ([]byte, error) {
	jsonData, err := yaml.YAMLToJSONStrict(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaViolation, err)
	}
	if isJSONNull(jsonData) {
		return nil, fmt.Errorf("%w: document must not be empty", ErrSchemaViolation)
	}
	return jsonData, nil
}

// unmarshalStrict decodes data into v, rejecting unknown and duplicate fields.
// Field names are matched case-sensitively. Errors already classified by a
// nested decoder are passed through unchanged.
func unmarshalStrict(data []byte, v any, path *field.Path) error {
	strictErrs, err := sigsjson.UnmarshalStrict(data, v, sigsjson.DisallowDuplicateFields, sigsjson.DisallowUnknownFields)
	if err != nil {
		if errors.Is(err, ErrSchemaViolation) || errors.Is(err, ErrUnknownBackendVariant) {
			return err
		}
		return fmt.Errorf("%w: %s", ErrSchemaViolation, withPath(path, err))
	}
	if len(strictErrs) > 0 {
		msgs := make([]error, 0, len(strictErrs))
		for _, e := range strictErrs {
			msgs = append(msgs, errors.New(withPath(path, e)))
		}
		return fmt.Errorf("%w: %w", ErrSchemaViolation, errors.Join(msgs...))
	}
	return nil
}

// rejectNulls reports explicit nulls, which the decoder would otherwise treat
// as absent fields. The contents of metadata belong to ObjectMeta and are not
// inspected.
func rejectNulls(data []byte, root *field.Path) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		// reported by the strict decoder
		return nil
	}
	return schemaViolation(findNulls(doc, root, root == nil))
}

func findNulls(v any, path *field.Path, resourceRoot bool) field.ErrorList {
	var errs field.ErrorList
	switch v := v.(type) {
	case nil:
		errs = append(errs, field.Invalid(path, nil, "must not be null"))
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if resourceRoot && k == "metadata" && v[k] != nil {
				continue
			}
			errs = append(errs, findNulls(v[k], path.Child(k), false)...)
		}
	case []any:
		for i, item := range v {
			errs = append(errs, findNulls(item, path.Index(i), false)...)
		}
	}
	return errs
}

func withPath(path *field.Path, err error) string {
	if path == nil {
		return err.Error()
	}
	return path.String() + ": " + err.Error()
}

func isJSONNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
