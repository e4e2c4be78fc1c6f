/*
Copyright 2024 The fastyz Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// The fastyz command line front end: a single command that encodes or
// decodes a Yaz0 file, replacing the hand-rolled argument scanner the
// teacher framework used (Kanzi.go's processCommandLine) with a
// cobra/pflag command, the shape this pack's CLI tools converge on for a
// small, fixed flag surface.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

func main() {
	os.Exit(execute(os.Args[1:]))
}

// execute builds and runs the fastyz root command, returning a process
// exit code. It never calls os.Exit itself so main and tests can both
// observe the result.
func execute(args []string) int {
	var (
		forceC    bool
		forceD    bool
		output    string
		overwrite bool
	)

	exitCode := 0

	root := &cobra.Command{
		Use:           "fastyz <input>",
		Short:         "fastyz " + version + " - a Yaz0/SZS container codec",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			if len(cmdArgs) == 0 {
				return cmd.Help()
			}

			o := options{
				input:     cmdArgs[0],
				output:    output,
				forceC:    forceC,
				forceD:    forceD,
				overwrite: overwrite,
			}

			exitCode = run(o, os.Stdout, os.Stderr)
			return nil
		},
	}

	root.SetVersionTemplate("fastyz " + version + "\n")
	root.Flags().BoolP("version", "v", false, "print the version number")
	root.SetArgs(args)
	root.Flags().BoolVarP(&forceC, "compress", "c", false, "force encode mode")
	root.Flags().BoolVarP(&forceD, "decompress", "d", false, "force decode mode")
	root.Flags().StringVarP(&output, "output", "o", "", "explicit output path")
	root.Flags().BoolVarP(&overwrite, "force", "f", false, "overwrite an existing output file")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return exitCode
}
