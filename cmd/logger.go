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
	"go.uber.org/zap/zapcore"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// setupLogger installs the controller-runtime logger configured by the
// --loglevel and --zap-time-encoding flags.
func setupLogger() error {
	var lvl zapcore.Level
	var enc zapcore.TimeEncoder
	if err := lvl.UnmarshalText([]byte(loglevel)); err != nil {
		return err
	}
	if err := enc.UnmarshalText([]byte(zapTimeEncoding)); err != nil {
		return err
	}
	opts := zap.Options{
		Level:       lvl,
		TimeEncoder: enc,
	}
	ctrl.SetLogger(zap.New(zap.UseFlagOptions(&opts)))
	return nil
}
