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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stackabletech/secret-operator/pkg/crds"
)

var crdOutputFile string

func init() {
	rootCmd.AddCommand(crdCmd)

	crdCmd.Flags().StringVar(&crdOutputFile, "output", "", "If set, the CRD will be written to this file")
}

var crdCmd = &cobra.Command{
	Use:   "crd",
	Short: "prints the SecretClass CustomResourceDefinition",
	Long:  `Prints the SecretClass CustomResourceDefinition, including its structural validation schema, as YAML.`,
	Args:  cobra.NoArgs,
	RunE:  crdRun,
}

func crdRun(cmd *cobra.Command, _ []string) error {
	crd := crds.SecretClassCRD()
	if err := crds.CheckStructural(crd.Spec.Versions[0].Schema.OpenAPIV3Schema); err != nil {
		return fmt.Errorf("generated schema is not structural: %w", err)
	}
	content, err := crds.MarshalYAML(crd)
	if err != nil {
		return fmt.Errorf("could not marshal crd: %w", err)
	}

	out := cmd.OutOrStdout()
	if crdOutputFile != "" {
		f, err := os.Create(crdOutputFile)
		if err != nil {
			return fmt.Errorf("could not create output file: %w", err)
		}
		defer f.Close()

		out = f
	}

	_, err = fmt.Fprint(out, string(content))
	return err
}
