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
	"reflect"

	"k8s.io/apimachinery/pkg/api/meta"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/scheme"
)

// Package type metadata.
const (
	Group   = "secrets.stackable.tech"
	Version = "v1alpha1"
)

var (
	// SchemeGroupVersion is group version used to register these objects.
	SchemeGroupVersion = schema.GroupVersion{Group: Group, Version: Version}

	// SchemeBuilder is used to add go types to the GroupVersionKind scheme.
	SchemeBuilder = &scheme.Builder{GroupVersion: SchemeGroupVersion}
	// AddToScheme adds the types in this group-version to the given scheme.
	AddToScheme = SchemeBuilder.AddToScheme
)

// SecretClass type metadata.
var (
	// SecretClassKind is the kind name for SecretClass resources.
	SecretClassKind = reflect.TypeOf(SecretClass{}).Name()
	// SecretClassListKind is the kind name for SecretClass lists.
	SecretClassListKind = reflect.TypeOf(SecretClassList{}).Name()
	// SecretClassGroupKind is the group kind for SecretClass resources.
	SecretClassGroupKind = schema.GroupKind{Group: Group, Kind: SecretClassKind}.String()
	// SecretClassKindAPIVersion is the API version for SecretClass resources.
	SecretClassKindAPIVersion = SecretClassKind + "." + SchemeGroupVersion.String()
	// SecretClassGroupVersionKind is the group version kind for SecretClass resources.
	SecretClassGroupVersionKind = SchemeGroupVersion.WithKind(SecretClassKind)

	// SecretClassGroupVersionResource is the plural resource derived from the kind,
	// SecretClassSingularGroupVersionResource its singular form.
	SecretClassGroupVersionResource, SecretClassSingularGroupVersionResource = meta.UnsafeGuessKindToResource(SecretClassGroupVersionKind)
	// SecretClassResource is the plural resource name, "secretclasses".
	SecretClassResource = SecretClassGroupVersionResource.Resource
)

func init() {
	SchemeBuilder.Register(&SecretClass{}, &SecretClassList{})
}
