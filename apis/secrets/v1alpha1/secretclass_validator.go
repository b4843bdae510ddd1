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
	"fmt"
	"sync"

	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/webhook/admission"
)

// Validation operations reported to the validation observer.
const (
	OperationCreate = "create"
	OperationUpdate = "update"
)

// InvalidBackend is reported to the validation observer when no single
// backend could be determined.
const InvalidBackend = "invalid"

var validatorLog = ctrl.Log.WithName("secretclass-validator")

// Observer hook, set by pkg/metrics to avoid an import cycle.
var (
	observerMu        sync.RWMutex
	observeValidation func(backend, operation string, err error)
)

// SetValidationObserver registers fn to be called after every admission
// validation with the backend tag, the operation and the outcome.
func SetValidationObserver(fn func(backend, operation string, err error)) {
	observerMu.Lock()
	defer observerMu.Unlock()
	observeValidation = fn
}

// Ensures SecretClassValidator implements the admission.CustomValidator interface correctly.
var _ admission.CustomValidator = &SecretClassValidator{}

// SecretClassValidator implements webhook validation for SecretClass resources.
// +kubebuilder:webhook:path=/validate-secrets-stackable-tech-v1alpha1-secretclass,mutating=false,failurePolicy=fail,sideEffects=None,groups=secrets.stackable.tech,resources=secretclasses,verbs=create;update,versions=v1alpha1,name=vsecretclass.secrets.stackable.tech,admissionReviewVersions=v1
type SecretClassValidator struct{}

// ValidateCreate implements admission.CustomValidator so a webhook will be registered for the type.
func (v *SecretClassValidator) ValidateCreate(_ context.Context, obj runtime.Object) (admission.Warnings, error) {
	return nil, validateObject(obj, OperationCreate)
}

// ValidateUpdate implements admission.CustomValidator so a webhook will be registered for the type.
func (v *SecretClassValidator) ValidateUpdate(_ context.Context, _, newObj runtime.Object) (admission.Warnings, error) {
	return nil, validateObject(newObj, OperationUpdate)
}

// ValidateDelete implements admission.CustomValidator; nothing to check on delete.
func (v *SecretClassValidator) ValidateDelete(_ context.Context, _ runtime.Object) (admission.Warnings, error) {
	return nil, nil
}

func validateObject(obj runtime.Object, operation string) error {
	sc, ok := obj.(*SecretClass)
	if !ok {
		return fmt.Errorf("expected a %s but got %T", SecretClassKind, obj)
	}

	err := schemaViolation(ValidateSecretClass(sc))
	backend := InvalidBackend
	if err == nil {
		name, _ := sc.Spec.Backend.Name()
		backend = string(name)
	} else {
		validatorLog.V(1).Info("rejected SecretClass", "name", sc.GetName(), "operation", operation, "error", err.Error())
	}

	observerMu.RLock()
	fn := observeValidation
	observerMu.RUnlock()
	if fn != nil {
		fn(backend, operation, err)
	}
	return err
}

// SetupWebhookWithManager registers the validating webhook with the manager.
func (c *SecretClass) SetupWebhookWithManager(mgr ctrl.Manager) error {
	return ctrl.NewWebhookManagedBy(mgr).
		For(c).
		WithValidator(&SecretClassValidator{}).
		Complete()
}
