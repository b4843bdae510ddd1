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
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation/field"
)

// BackendVariant is implemented by the payload type of every SecretClassBackend
// variant. The set of implementations is closed.
// +kubebuilder:object:generate:false
type BackendVariant interface {
	// BackendName returns the wire tag of the variant.
	BackendName() SecretClassBackendName

	isSecretClassBackend()
}

var (
	_ BackendVariant = &K8sSearchBackend{}
	_ BackendVariant = &AutoTLSBackend{}
)

// BackendName implements BackendVariant.
func (*K8sSearchBackend) BackendName() SecretClassBackendName { return K8sSearchBackendName }
func (*K8sSearchBackend) isSecretClassBackend()               {}

// BackendName implements BackendVariant.
func (*AutoTLSBackend) BackendName() SecretClassBackendName { return AutoTLSBackendName }
func (*AutoTLSBackend) isSecretClassBackend()               {}

// specBackendPath is where a backend sits in a SecretClass document.
var specBackendPath = field.NewPath("spec", "backend")

// backendVariants maps every known wire tag to a constructor for its payload.
var backendVariants = map[SecretClassBackendName]func() BackendVariant{
	K8sSearchBackendName: func() BackendVariant { return &K8sSearchBackend{} },
	AutoTLSBackendName:   func() BackendVariant { return &AutoTLSBackend{} },
}

// KnownBackendNames returns the wire tags of all backend variants, sorted.
func KnownBackendNames() []string {
	names := make([]string, 0, len(backendVariants))
	for name := range backendVariants {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}

// NewSecretClassBackend returns a backend holding v as its only variant.
// A nil payload yields an empty backend, which fails validation.
func NewSecretClassBackend(v BackendVariant) SecretClassBackend {
	switch v := v.(type) {
	case *K8sSearchBackend:
		return SecretClassBackend{K8sSearch: v}
	case *AutoTLSBackend:
		return SecretClassBackend{AutoTLS: v}
	default:
		return SecretClassBackend{}
	}
}

// Variant returns the populated variant, or a schema violation if zero or
// several variants are set.
func (b *SecretClassBackend) Variant() (BackendVariant, error) {
	if errs := validateBackendVariants(b, specBackendPath); len(errs) > 0 {
		return nil, schemaViolation(errs)
	}
	return b.variants()[0], nil
}

// Name returns the wire tag of the populated variant.
func (b *SecretClassBackend) Name() (SecretClassBackendName, error) {
	v, err := b.Variant()
	if err != nil {
		return "", err
	}
	return v.BackendName(), nil
}

func (b *SecretClassBackend) variants() []BackendVariant {
	var set []BackendVariant
	if b.K8sSearch != nil {
		set = append(set, b.K8sSearch)
	}
	if b.AutoTLS != nil {
		set = append(set, b.AutoTLS)
	}
	return set
}

func validateBackendVariants(b *SecretClassBackend, path *field.Path) field.ErrorList {
	set := b.variants()
	switch len(set) {
	case 1:
		return nil
	case 0:
		return field.ErrorList{field.Required(path,
			fmt.Sprintf("exactly one of %s must be specified", strings.Join(KnownBackendNames(), ", ")))}
	default:
		names := make([]string, 0, len(set))
		for _, v := range set {
			names = append(names, string(v.BackendName()))
		}
		return field.ErrorList{field.Forbidden(path,
			fmt.Sprintf("exactly one backend may be specified, found %d: %s", len(set), strings.Join(names, ", ")))}
	}
}

// MarshalJSON encodes the backend as a single tag wrapping its payload.
// Backends with zero or several variants are refused.
func (b SecretClassBackend) MarshalJSON() ([]byte, error) {
	if errs := validateBackendVariants(&b, specBackendPath); len(errs) > 0 {
		return nil, schemaViolation(errs)
	}
	type backend SecretClassBackend
	return json.Marshal(backend(b))
}

// UnmarshalJSON decodes a single-tag backend document. Payloads are decoded
// strictly; unknown tags yield ErrUnknownBackendVariant. An empty or null
// backend decodes to an empty value and is reported by validation.
func (b *SecretClassBackend) UnmarshalJSON(data []byte) error {
	path := specBackendPath
	if isJSONNull(data) {
		*b = SecretClassBackend{}
		return nil
	}

	var tags map[string]json.RawMessage
	if err := unmarshalStrict(data, &tags, path); err != nil {
		return err
	}
	if len(tags) > 1 {
		names := make([]string, 0, len(tags))
		for name := range tags {
			names = append(names, name)
		}
		sort.Strings(names)
		return schemaViolation(field.ErrorList{field.Forbidden(path,
			fmt.Sprintf("exactly one backend may be specified, found %d: %s", len(tags), strings.Join(names, ", ")))})
	}

	decoded := SecretClassBackend{}
	for tag, payload := range tags {
		newVariant, ok := backendVariants[SecretClassBackendName(tag)]
		if !ok {
			return fmt.Errorf("%w: %w", ErrUnknownBackendVariant,
				field.NotSupported(path, tag, KnownBackendNames()))
		}
		if isJSONNull(payload) {
			return schemaViolation(field.ErrorList{field.Required(path.Child(tag), "backend payload must be an object")})
		}
		v := newVariant()
		if err := unmarshalStrict(payload, v, path.Child(tag)); err != nil {
			return err
		}
		decoded = NewSecretClassBackend(v)
	}
	*b = decoded
	return nil
}
