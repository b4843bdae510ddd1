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
	"io"
	"os"

	"github.com/spf13/cobra"

	secretsv1alpha1 "github.com/stackabletech/secret-operator/apis/secrets/v1alpha1"
)

var validateFile string

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFile, "filename", "f", "", "SecretClass document to validate, - reads from stdin")
	_ = validateCmd.MarkFlagRequired("filename")
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "validates a SecretClass document",
	Long: `Decodes a SecretClass document (JSON or YAML) with strict field validation
and prints the backend it selects. Exits non-zero if the document is invalid.`,
	Args: cobra.NoArgs,
	RunE: validateRun,
}

func validateRun(cmd *cobra.Command, _ []string) error {
	var (
		data []byte
		err  error
	)
	if validateFile == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(validateFile)
	}
	if err != nil {
		return fmt.Errorf("could not read document: %w", err)
	}

	sc, err := secretsv1alpha1.Decode(data)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", secretsv1alpha1.SecretClassKind, err)
	}
	backend, err := sc.Spec.Backend.Name()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %q is valid, backend: %s\n", secretsv1alpha1.SecretClassKind, sc.Name, backend)
	return err
}
