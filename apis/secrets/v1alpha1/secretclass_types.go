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
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// SecretClassSpec defines how secrets requested through a SecretClass are provisioned.
type SecretClassSpec struct {
	// Backend selects the mechanism used to obtain secret material.
	Backend SecretClassBackend `json:"backend"`
}

// SecretClassBackendName is the wire tag of a SecretClassBackend variant.
type SecretClassBackendName string

const (
	// K8sSearchBackendName tags the K8sSearch variant.
	K8sSearchBackendName SecretClassBackendName = "k8sSearch"
	// AutoTLSBackendName tags the AutoTLS variant.
	AutoTLSBackendName SecretClassBackendName = "autoTls"
)

// SecretClassBackend holds exactly one backend variant.
// Use NewSecretClassBackend to build one and Variant to read it.
// +kubebuilder:validation:MaxProperties=1
// +kubebuilder:validation:MinProperties=1
type SecretClassBackend struct {
	// K8sSearch locates existing secrets through the Kubernetes API.
	// +optional
	K8sSearch *K8sSearchBackend `json:"k8sSearch,omitempty"`

	// AutoTLS issues certificates signed by a certificate authority.
	// +optional
	AutoTLS *AutoTLSBackend `json:"autoTls,omitempty"`
}

// K8sSearchBackend takes no parameters yet.
type K8sSearchBackend struct{}

// AutoTLSBackend issues TLS certificates automatically.
type AutoTLSBackend struct {
	// CA configures the certificate authority used to sign certificates.
	CA AutoTLSCA `json:"ca"`
}

// AutoTLSCA points at the key material of the certificate authority.
type AutoTLSCA struct {
	// Secret references the Secret holding the CA certificate and key.
	// Only the reference is stored, never the key material.
	Secret corev1.SecretReference `json:"secret"`
}

// SecretClass describes how a secret should be provisioned when one is requested.
// +kubebuilder:object:root=true
// +kubebuilder:storageversion
// +kubebuilder:metadata:labels="app.kubernetes.io/part-of=secret-operator"
// +kubebuilder:resource:scope=Cluster,categories={secrets}
type SecretClass struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec SecretClassSpec `json:"spec"`
}

// +kubebuilder:object:root=true

// SecretClassList contains a list of SecretClass resources.
type SecretClassList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []SecretClass `json:"items"`
}
