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

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	"sigs.k8s.io/yaml"

	secretsv1alpha1 "github.com/stackabletech/secret-operator/apis/secrets/v1alpha1"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const autoTLSDocument = `
apiVersion: secrets.stackable.tech/v1alpha1
kind: SecretClass
metadata:
  name: tls
spec:
  backend:
    autoTls:
      ca:
        secret:
          name: secret-provisioner-tls-ca
          namespace: default
`

func run(stdin string, args ...string) (string, error) {
	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	DeferCleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

var _ = Describe("crd", func() {
	It("prints the SecretClass CRD", func() {
		out, err := run("", "crd", "--output", "")
		Expect(err).ToNot(HaveOccurred())

		var crd apiextensionsv1.CustomResourceDefinition
		Expect(yaml.Unmarshal([]byte(out), &crd)).To(Succeed())
		Expect(crd.Name).To(Equal("secretclasses.secrets.stackable.tech"))
		Expect(crd.Spec.Scope).To(Equal(apiextensionsv1.ClusterScoped))
		Expect(crd.Spec.Names.Kind).To(Equal(secretsv1alpha1.SecretClassKind))
	})

	It("writes the CRD to a file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "crd.yaml")
		out, err := run("", "crd", "--output", path)
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(BeEmpty())

		content, err := os.ReadFile(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(content)).To(ContainSubstring("kind: CustomResourceDefinition"))
		Expect(string(content)).To(ContainSubstring("maxProperties: 1"))
	})
})

var _ = Describe("validate", func() {
	It("reports the backend of a valid document read from a file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "secretclass.yaml")
		Expect(os.WriteFile(path, []byte(autoTLSDocument), 0o600)).To(Succeed())

		out, err := run("", "validate", "-f", path)
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("SecretClass \"tls\" is valid, backend: autoTls\n"))
	})

	It("reads the document from stdin", func() {
		doc := `{"apiVersion":"secrets.stackable.tech/v1alpha1","kind":"SecretClass","metadata":{"name":"search"},"spec":{"backend":{"k8sSearch":{}}}}`
		out, err := run(doc, "validate", "-f", "-")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(ContainSubstring("backend: k8sSearch"))
	})

	DescribeTable("rejects invalid documents",
		func(doc string, target error) {
			_, err := run(doc, "validate", "-f", "-")
			Expect(err).To(MatchError(target))
		},
		Entry("two backends",
			`{"apiVersion":"secrets.stackable.tech/v1alpha1","kind":"SecretClass","metadata":{"name":"x"},"spec":{"backend":{"k8sSearch":{},"autoTls":{"ca":{"secret":{"name":"x"}}}}}}`,
			secretsv1alpha1.ErrSchemaViolation),
		Entry("no backend",
			`{"apiVersion":"secrets.stackable.tech/v1alpha1","kind":"SecretClass","metadata":{"name":"x"},"spec":{"backend":{}}}`,
			secretsv1alpha1.ErrSchemaViolation),
		Entry("unknown backend",
			`{"apiVersion":"secrets.stackable.tech/v1alpha1","kind":"SecretClass","metadata":{"name":"x"},"spec":{"backend":{"unknownThing":{}}}}`,
			secretsv1alpha1.ErrUnknownBackendVariant),
	)

	It("fails on a missing file", func() {
		_, err := run("", "validate", "-f", filepath.Join(GinkgoT().TempDir(), "missing.yaml"))
		Expect(err).To(MatchError(ContainSubstring("could not read document")))
	})
})

var _ = Describe("webhook flags", func() {
	It("maps TLS versions", func() {
		Expect(tlsVersion("1.2")).To(BeEquivalentTo(0x0303))
		Expect(tlsVersion("1.3")).To(BeEquivalentTo(0x0304))
		Expect(tlsVersion("")).To(BeEquivalentTo(0x0303))
	})

	It("resolves cipher suite names", func() {
		ids, err := getTLSCipherSuitesIDs("TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256")
		Expect(err).ToNot(HaveOccurred())
		Expect(ids).To(HaveLen(1))

		_, err = getTLSCipherSuitesIDs("TLS_NOT_A_CIPHER")
		Expect(err).To(MatchError("cipher TLS_NOT_A_CIPHER was not found"))
	})
})
