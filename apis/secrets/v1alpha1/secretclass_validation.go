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
	"fmt"

	"k8s.io/apimachinery/pkg/util/validation/field"
)

// ValidateSecretClass checks the structural rules of a SecretClass: exactly
// one backend variant and every required nested field present.
func ValidateSecretClass(sc *SecretClass) field.ErrorList {
	return ValidateSecretClassSpec(&sc.Spec, field.NewPath("spec"))
}

// ValidateSecretClassSpec checks a spec rooted at path.
func ValidateSecretClassSpec(spec *SecretClassSpec, path *field.Path) field.ErrorList {
	backendPath := path.Child("backend")
	if errs := validateBackendVariants(&spec.Backend, backendPath); len(errs) > 0 {
		return errs
	}
	switch v := spec.Backend.variants()[0].(type) {
	case *K8sSearchBackend:
		return nil
	case *AutoTLSBackend:
		return validateAutoTLSBackend(v, backendPath.Child(string(AutoTLSBackendName)))
	default:
		return field.ErrorList{field.InternalError(backendPath, fmt.Errorf("unhandled backend variant %T", v))}
	}
}

// validateAutoTLSBackend reports the CA secret name, the deepest required
// field. Absent ca and secret objects decode to their zero values.
func validateAutoTLSBackend(b *AutoTLSBackend, path *field.Path) field.ErrorList {
	if b.CA.Secret.Name == "" {
		return field.ErrorList{field.Required(path.Child("ca", "secret", "name"), "the CA secret must be referenced by name")}
	}
	return nil
}
