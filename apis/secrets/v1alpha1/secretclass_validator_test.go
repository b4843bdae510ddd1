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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime"
)

type observedValidation struct {
	backend   string
	operation string
	err       error
}

func recordValidations(t *testing.T) *[]observedValidation {
	t.Helper()
	var observed []observedValidation
	SetValidationObserver(func(backend, operation string, err error) {
		observed = append(observed, observedValidation{backend: backend, operation: operation, err: err})
	})
	t.Cleanup(func() { SetValidationObserver(nil) })
	return &observed
}

func TestSecretClassValidator(t *testing.T) {
	tests := []struct {
		name        string
		obj         runtime.Object
		wantBackend string
		assertErr   func(t *testing.T, err error)
	}{
		{
			name:        "k8sSearch",
			obj:         NewSecretClass("search", SecretClassSpec{Backend: NewSecretClassBackend(&K8sSearchBackend{})}),
			wantBackend: "k8sSearch",
			assertErr: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name:        "autoTls",
			obj:         NewSecretClass("tls", autoTLSSpec("ca-cert", "default")),
			wantBackend: "autoTls",
			assertErr: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "secret class must have only a single backend",
			obj: NewSecretClass("both", SecretClassSpec{Backend: SecretClassBackend{
				K8sSearch: &K8sSearchBackend{},
				AutoTLS:   &AutoTLSBackend{CA: AutoTLSCA{Secret: corev1.SecretReference{Name: "x"}}},
			}}),
			wantBackend: InvalidBackend,
			assertErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrSchemaViolation)
				assert.ErrorContains(t, err, "spec.backend: Forbidden")
			},
		},
		{
			name:        "secret class must have a backend",
			obj:         NewSecretClass("none", SecretClassSpec{}),
			wantBackend: InvalidBackend,
			assertErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrSchemaViolation)
			},
		},
		{
			name:        "missing CA secret name",
			obj:         NewSecretClass("tls", autoTLSSpec("", "default")),
			wantBackend: InvalidBackend,
			assertErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrSchemaViolation)
				assert.ErrorContains(t, err, "spec.backend.autoTls.ca.secret.name: Required value")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/create", func(t *testing.T) {
			observed := recordValidations(t)
			_, err := (&SecretClassValidator{}).ValidateCreate(context.Background(), tt.obj)
			tt.assertErr(t, err)
			require.Len(t, *observed, 1)
			assert.Equal(t, tt.wantBackend, (*observed)[0].backend)
			assert.Equal(t, OperationCreate, (*observed)[0].operation)
			assert.Equal(t, err, (*observed)[0].err)
		})
		t.Run(tt.name+"/update", func(t *testing.T) {
			observed := recordValidations(t)
			_, err := (&SecretClassValidator{}).ValidateUpdate(context.Background(), nil, tt.obj)
			tt.assertErr(t, err)
			require.Len(t, *observed, 1)
			assert.Equal(t, OperationUpdate, (*observed)[0].operation)
		})
	}
}

func TestSecretClassValidatorRejectsOtherTypes(t *testing.T) {
	observed := recordValidations(t)
	_, err := (&SecretClassValidator{}).ValidateCreate(context.Background(), &corev1.Secret{})
	assert.EqualError(t, err, "expected a SecretClass but got *v1.Secret")
	assert.Empty(t, *observed)
}

func TestSecretClassValidatorDelete(t *testing.T) {
	warnings, err := (&SecretClassValidator{}).ValidateDelete(context.Background(), NewSecretClass("none", SecretClassSpec{}))
	assert.NoError(t, err)
	assert.Empty(t, warnings)
}
