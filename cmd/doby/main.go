// Command doby performs symmetric, authenticated, streaming encryption
// of files or standard input, producing or consuming a self-describing
// container (see the doby package for the format).
package main

import (
	"fmt"
	"os"

	"github.com/dobycrypt/doby"
	"github.com/dobycrypt/doby/internal/cli"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	forceEncrypt bool
	interactive  bool
	password     string
	timeCost     uint32
	memoryCost   uint32
	parallelism  uint8
	blockSize    int
	cipherName   string
	verbose      bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doby [flags] [INPUT] [OUTPUT]",
		Short: "Symmetric, authenticated, streaming encryption",
		Long: `doby encrypts or decrypts a byte stream with a password.

Run on ordinary data, it encrypts; run on a container it produced
earlier, it decrypts. INPUT and OUTPUT default to stdin and stdout;
either may be "-" to mean the same thing explicitly.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runRoot,
	}

	cmd.Flags().BoolVarP(&forceEncrypt, "force-encrypt", "f", false, "encrypt even if input begins with a doby container's magic bytes")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt before overwriting an existing output file")
	cmd.Flags().StringVar(&password, "password", "", "password (otherwise prompted on a TTY)")
	cmd.Flags().Uint32VarP(&timeCost, "time-cost", "t", 10, "Argon2id time cost")
	cmd.Flags().Uint32VarP(&memoryCost, "memory-cost", "m", 4096, "Argon2id memory cost (KiB)")
	cmd.Flags().Uint8VarP(&parallelism, "parallelism", "p", 4, "Argon2id parallelism")
	cmd.Flags().IntVarP(&blockSize, "block-size", "b", 65536, "chunk buffer size in bytes")
	cmd.Flags().StringVarP(&cipherName, "cipher", "c", "auto", "cipher: aes, xchacha20, or auto")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(inspectCmd())
	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	log := cli.NewLogger(verbose)

	var inputPath, outputPath string
	if len(args) > 0 {
		if err := doby.ValidateFilePath(args[0], "input"); err != nil {
			return err
		}
		inputPath = args[0]
	}
	if len(args) > 1 {
		if err := doby.ValidateFilePath(args[1], "output"); err != nil {
			return err
		}
		outputPath = args[1]
	}

	if err := doby.ValidateChunkSize(blockSize); err != nil {
		return err
	}

	if outputPath != "" && outputPath != "-" && interactive {
		if _, err := os.Stat(outputPath); err == nil {
			ok, err := cli.ConfirmOverwrite(outputPath)
			if err != nil {
				return err
			}
			if !ok {
				log.Info().Str("path", outputPath).Msg("overwrite declined")
				return nil
			}
		}
	}

	in, err := cli.OpenInput(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out := cli.OpenOutput(outputPath)
	defer out.Close()

	kind, err := cli.ResolveCipher(cipherName)
	if err != nil {
		return err
	}
	costs := doby.KDFCostParameters{TimeCost: timeCost, MemoryCost: memoryCost, Parallelism: parallelism}

	// Peek the input before resolving the password, so the decision to
	// confirm reflects what this invocation will actually do rather
	// than just --force-encrypt: a plain encrypt of an ordinary file is
	// the common case, and it deserves the same double-prompt typo
	// protection as a forced one.
	peeked, isContainer, err := doby.PeekMagic(in)
	if err != nil {
		return err
	}
	willEncrypt := forceEncrypt || !isContainer

	pw, err := cli.ResolvePassword(password, willEncrypt)
	if err != nil {
		return err
	}

	verified, err := doby.RunPeeked(in, out, pw, forceEncrypt, peeked, isContainer, blockSize, func() (*doby.EncryptionParameters, error) {
		return doby.NewEncryptionParameters(kind, costs)
	})
	if err != nil {
		return err
	}
	if !verified {
		return doby.ErrAuthFailed
	}

	log.Debug().Str("block-size", humanize.Bytes(uint64(blockSize))).Msg("done")
	return nil
}

func inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [FILE]",
		Short: "Print a container's header fields without decrypting it",
		Long: `inspect reads only the 81-byte magic+header prefix of FILE (or
stdin) and prints the cipher kind and KDF cost parameters. It never
asks for a password and never reads the ciphertext or tag.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInspect,
	}
	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) > 0 {
		if err := doby.ValidateFilePath(args[0], "file"); err != nil {
			return err
		}
		path = args[0]
	}
	in, err := cli.OpenInput(path)
	if err != nil {
		return err
	}
	defer in.Close()

	params, err := doby.InspectHeader(in)
	if err != nil {
		return err
	}

	fmt.Printf("cipher:       %s\n", params.Kind)
	fmt.Printf("time-cost:    %d\n", params.Costs.TimeCost)
	fmt.Printf("memory-cost:  %s\n", humanize.Bytes(uint64(params.Costs.MemoryCost)*1024))
	fmt.Printf("parallelism:  %d\n", params.Costs.Parallelism)
	return nil
}
