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

// Package metrics exposes Prometheus metrics about SecretClass admission.
// Importing it wires the metrics into the SecretClass validator.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"

	secretsv1alpha1 "github.com/stackabletech/secret-operator/apis/secrets/v1alpha1"
)

const (
	// SecretClassSubsystem is the subsystem name used for SecretClass metrics.
	SecretClassSubsystem = "secretclass"

	validationsTotal = "validations_total"

	StatusError   = "error"
	StatusSuccess = "success"
)

var (
	validationCallsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Subsystem: SecretClassSubsystem,
		Name:      validationsTotal,
		Help:      "Number of SecretClass admission validations by backend, operation and outcome",
	}, []string{"backend", "operation", "status"})
)

// ObserveValidation records the outcome of a SecretClass admission validation.
func ObserveValidation(backend, operation string, err error) {
	validationCallsTotal.WithLabelValues(backend, operation, deriveStatus(err)).Inc()
}

func deriveStatus(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusSuccess
}

func init() {
	metrics.Registry.MustRegister(validationCallsTotal)
	secretsv1alpha1.SetValidationObserver(ObserveValidation)
}
