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

// Package v1alpha1 contains the SecretClass API: a cluster-scoped resource that
// selects the backend a secret-provisioning controller uses to produce secrets.
// +kubebuilder:object:generate=true
// +groupName=secrets.stackable.tech
package v1alpha1

//go:generate go run sigs.k8s.io/controller-tools/cmd/controller-gen object:headerFile="../../../hack/boilerplate.go.txt" paths="./..."
