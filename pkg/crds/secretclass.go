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

// Package crds generates the CustomResourceDefinition of the SecretClass API
// and validates documents against it the way the API server does.
package crds

import (
	"encoding/json"
	"fmt"

	"k8s.io/apiextensions-apiserver/pkg/apis/apiextensions"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	structuralschema "k8s.io/apiextensions-apiserver/pkg/apiserver/schema"
	"k8s.io/apiextensions-apiserver/pkg/apiserver/schema/pruning"
	"k8s.io/apiextensions-apiserver/pkg/apiserver/validation"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/utils/ptr"
	sigsjson "sigs.k8s.io/json"
	"sigs.k8s.io/yaml"

	secretsv1alpha1 "github.com/stackabletech/secret-operator/apis/secrets/v1alpha1"
)

const (
	typeObject = "object"
	typeString = "string"
)

// SecretClassValidationSchema returns the structural OpenAPI v3 schema of a
// SecretClass. The backend object admits exactly one property.
func SecretClassValidationSchema() *apiextensionsv1.JSONSchemaProps {
	secretRef := apiextensionsv1.JSONSchemaProps{
		Description: "Secret references the Secret holding the CA certificate and key. Only the reference is stored, never the key material.",
		Type:        typeObject,
		Properties: map[string]apiextensionsv1.JSONSchemaProps{
			"name": {
				Description: "name is unique within a namespace to reference a secret resource.",
				Type:        typeString,
				MinLength:   ptr.To[int64](1),
			},
			"namespace": {
				Description: "namespace defines the space within which the secret name must be unique.",
				Type:        typeString,
			},
		},
		Required: []string{"name"},
		XMapType: ptr.To("atomic"),
	}

	backendNames := secretsv1alpha1.KnownBackendNames()
	backend := apiextensionsv1.JSONSchemaProps{
		Description:   fmt.Sprintf("Backend selects the mechanism used to obtain secret material. Exactly one of %v must be set.", backendNames),
		Type:          typeObject,
		MinProperties: ptr.To[int64](1),
		MaxProperties: ptr.To[int64](1),
		Properties: map[string]apiextensionsv1.JSONSchemaProps{
			string(secretsv1alpha1.K8sSearchBackendName): {
				Description: "K8sSearch locates existing secrets through the Kubernetes API.",
				Type:        typeObject,
			},
			string(secretsv1alpha1.AutoTLSBackendName): {
				Description: "AutoTLS issues certificates signed by a certificate authority.",
				Type:        typeObject,
				Properties: map[string]apiextensionsv1.JSONSchemaProps{
					"ca": {
						Description: "CA configures the certificate authority used to sign certificates.",
						Type:        typeObject,
						Properties: map[string]apiextensionsv1.JSONSchemaProps{
							"secret": secretRef,
						},
						Required: []string{"secret"},
					},
				},
				Required: []string{"ca"},
			},
		},
	}

	return &apiextensionsv1.JSONSchemaProps{
		Description: "SecretClass describes how a secret should be provisioned when one is requested.",
		Type:        typeObject,
		Properties: map[string]apiextensionsv1.JSONSchemaProps{
			"apiVersion": {
				Description: "APIVersion defines the versioned schema of this representation of an object.",
				Type:        typeString,
			},
			"kind": {
				Description: "Kind is a string value representing the REST resource this object represents.",
				Type:        typeString,
			},
			"metadata": {
				Type: typeObject,
			},
			"spec": {
				Description: "SecretClassSpec defines how secrets requested through a SecretClass are provisioned.",
				Type:        typeObject,
				Properties: map[string]apiextensionsv1.JSONSchemaProps{
					"backend": backend,
				},
				Required: []string{"backend"},
			},
		},
		Required: []string{"spec"},
	}
}

// SecretClassCRD returns the cluster-scoped CustomResourceDefinition that
// registers the SecretClass API with the API server.
func SecretClassCRD() *apiextensionsv1.CustomResourceDefinition {
	return &apiextensionsv1.CustomResourceDefinition{
		TypeMeta: metav1.TypeMeta{
			APIVersion: apiextensionsv1.SchemeGroupVersion.String(),
			Kind:       "CustomResourceDefinition",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name: secretsv1alpha1.SecretClassResource + "." + secretsv1alpha1.Group,
			Labels: map[string]string{
				"app.kubernetes.io/part-of": "secret-operator",
			},
		},
		Spec: apiextensionsv1.CustomResourceDefinitionSpec{
			Group: secretsv1alpha1.Group,
			Names: apiextensionsv1.CustomResourceDefinitionNames{
				Plural:     secretsv1alpha1.SecretClassResource,
				Singular:   secretsv1alpha1.SecretClassSingularGroupVersionResource.Resource,
				Kind:       secretsv1alpha1.SecretClassKind,
				ListKind:   secretsv1alpha1.SecretClassListKind,
				Categories: []string{"secrets"},
			},
			Scope: apiextensionsv1.ClusterScoped,
			Versions: []apiextensionsv1.CustomResourceDefinitionVersion{
				{
					Name:    secretsv1alpha1.Version,
					Served:  true,
					Storage: true,
					Schema: &apiextensionsv1.CustomResourceValidation{
						OpenAPIV3Schema: SecretClassValidationSchema(),
					},
				},
			},
		},
	}
}

// MarshalYAML renders a CRD the way it is applied to a cluster.
func MarshalYAML(crd *apiextensionsv1.CustomResourceDefinition) ([]byte, error) {
	return yaml.Marshal(crd)
}

func toStructural(schema *apiextensionsv1.JSONSchemaProps) (*apiextensions.JSONSchemaProps, *structuralschema.Structural, error) {
	internal := &apiextensions.JSONSchemaProps{}
	if err := apiextensionsv1.Convert_v1_JSONSchemaProps_To_apiextensions_JSONSchemaProps(schema, internal, nil); err != nil {
		return nil, nil, fmt.Errorf("failed to convert schema: %w", err)
	}
	structural, err := structuralschema.NewStructural(internal)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build structural schema: %w", err)
	}
	return internal, structural, nil
}

// CheckStructural returns an error if schema is not a structural schema as
// required by apiextensions.k8s.io/v1.
func CheckStructural(schema *apiextensionsv1.JSONSchemaProps) error {
	_, structural, err := toStructural(schema)
	if err != nil {
		return err
	}
	if errs := structuralschema.ValidateStructural(field.NewPath("openAPIV3Schema"), structural); len(errs) > 0 {
		return errs.ToAggregate()
	}
	return nil
}

// ValidateDocument validates a JSON or YAML SecretClass document against the
// generated schema. Fields the API server would prune are reported as errors,
// matching strict field validation.
func ValidateDocument(data []byte) field.ErrorList {
	root := field.NewPath("document")
	jsonData, err := yaml.YAMLToJSONStrict(data)
	if err != nil {
		return field.ErrorList{field.Invalid(root, string(data), err.Error())}
	}
	var obj map[string]any
	if err := json.Unmarshal(jsonData, &obj); err != nil {
		return field.ErrorList{field.TypeInvalid(root, string(jsonData), "must be an object")}
	}
	if obj == nil {
		return field.ErrorList{field.Required(root, "document must not be empty")}
	}

	internal, structural, err := toStructural(SecretClassValidationSchema())
	if err != nil {
		return field.ErrorList{field.InternalError(root, err)}
	}
	validator, _, err := validation.NewSchemaValidator(internal)
	if err != nil {
		return field.ErrorList{field.InternalError(root, err)}
	}

	// pruning rewrites obj in place
	var metadata []byte
	if m, ok := obj["metadata"].(map[string]any); ok {
		if metadata, err = json.Marshal(m); err != nil {
			return field.ErrorList{field.InternalError(root, err)}
		}
	}

	var errs field.ErrorList
	gvk := secretsv1alpha1.SecretClassGroupVersionKind
	if apiVersion, _ := obj["apiVersion"].(string); apiVersion != gvk.GroupVersion().String() {
		errs = append(errs, field.NotSupported(field.NewPath("apiVersion"), obj["apiVersion"], []string{gvk.GroupVersion().String()}))
	}
	if kind, _ := obj["kind"].(string); kind != gvk.Kind {
		errs = append(errs, field.NotSupported(field.NewPath("kind"), obj["kind"], []string{gvk.Kind}))
	}
	errs = append(errs, validation.ValidateCustomResource(nil, obj, validator)...)

	unknown := pruning.PruneWithOptions(obj, structural, true, structuralschema.UnknownFieldPathOptions{
		TrackUnknownFieldPaths: true,
	})
	for _, path := range unknown {
		errs = append(errs, field.Forbidden(field.NewPath(path), "unknown field"))
	}
	if metadata != nil {
		errs = append(errs, validateMetadata(metadata)...)
	}
	return errs
}

// validateMetadata strictly decodes metadata into ObjectMeta. The schema
// leaves metadata to the API server, which rejects unknown and mistyped fields.
func validateMetadata(data []byte) field.ErrorList {
	path := field.NewPath("metadata")
	var meta metav1.ObjectMeta
	strictErrs, err := sigsjson.UnmarshalStrict(data, &meta, sigsjson.DisallowDuplicateFields, sigsjson.DisallowUnknownFields)
	if err != nil {
		return field.ErrorList{field.Invalid(path, string(data), err.Error())}
	}
	errs := make(field.ErrorList, 0, len(strictErrs))
	for _, e := range strictErrs {
		errs = append(errs, field.Forbidden(path, e.Error()))
	}
	return errs
}
