// Package main provides the rvvdasm command line tool. It disassembles a
// single RISC-V Vector instruction word given as a hex or decimal literal.
package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sarchlab/rvvdasm/insts"
)

var (
	dump    bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "rvvdasm <instruction>",
	Short: "Disassemble a RISC-V Vector instruction word",
	Long: `rvvdasm decodes one 32-bit RISC-V "V" extension instruction word
into assembly text. The instruction is given as a single hex (0x-prefixed)
or decimal literal; values wider than 32 bits are masked down.

Examples:
  rvvdasm 0x022180D7
  rvvdasm 1592524887`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVar(&dump, "dump", false, "dump the extracted field breakdown")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace decoding at debug level")
}

func run(cmd *cobra.Command, args []string) error {
	word, err := parseWord(args[0])
	if err != nil {
		fmt.Printf("Error: invalid instruction %q: %v\n", args[0], err)
		return err
	}

	var opts []insts.DecoderOption
	if verbose {
		log := logrus.New()
		log.SetOutput(os.Stderr)
		log.SetLevel(logrus.DebugLevel)
		opts = append(opts, insts.WithLogger(log))
	}

	decoder := insts.NewDecoder(opts...)
	fmt.Println(decoder.Disassemble(word))

	if dump {
		spew.Fdump(os.Stderr, insts.ExtractFields(word))
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
