// Command compoundfile parses a Microsoft compound file and prints its
// directory entries as pretty printed JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/asalih/go-compoundfile"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	strictMode  bool
	verboseMode bool
)

// rootCmd is the single entry point: one positional argument, the file to
// parse. Output goes to stdout, diagnostics to stderr, and any parse
// failure surfaces through RunE so the process exits non-zero.
var rootCmd = &cobra.Command{
	Use:   "compoundfile [flags] FILE",
	Short: "Parse Microsoft compound files",
	Long: `Parse a Microsoft Compound File Binary (CFB/OLE2) container and print
its directory entries as pretty printed JSON.

Only the container structure is decoded (header, DIFAT, FAT, directory
stream); stream payloads are not extracted. This is intended for triage
of legacy Office documents and similar containers.

Examples:
  compoundfile document.doc
  compoundfile --strict --verbose workbook.xls`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fs := afero.NewOsFs()
		data, err := afero.ReadFile(fs, args[0])
		if err != nil {
			return err
		}

		validation := compoundfile.ValidationPermissive
		if strictMode {
			validation = compoundfile.ValidationStrict
		}

		cfb, err := compoundfile.Parse(data, validation)
		if err != nil {
			return err
		}

		if verboseMode {
			fmt.Fprintf(os.Stderr, "sector size: %v\n", cfb.Header.Version.SectorLen())
			fmt.Fprintf(os.Stderr, "FAT entries: %v\n", len(cfb.Fat.Entries))
			fmt.Fprintf(os.Stderr, "directory entries: %v\n", len(cfb.Directory.Entries))
			if cfb.Directory.IsExcel() {
				fmt.Fprintln(os.Stderr, "file is Excel")
			}
		}

		output, err := json.MarshalIndent(cfb.Entries(), "", "    ")
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, string(output))
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&strictMode, "strict", "s", false, "enable strict structure validation")
	rootCmd.Flags().BoolVarP(&verboseMode, "verbose", "v", false, "print parse details to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
