package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dargueta/lzwcodec"
	"github.com/dargueta/lzwcodec/codec"
	"github.com/urfave/cli/v2"
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

func newApp() *cli.App {
	kindFlag := &cli.StringFlag{
		Name:    "kind",
		Aliases: []string{"k"},
		Usage:   fmt.Sprintf("what the source is: %s", strings.Join(lzwcodec.KindNames(), ", ")),
		Value:   lzwcodec.KindText.String(),
	}
	outputFlag := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "path of the file to write",
	}

	return &cli.App{
		Name:  "lzwcodec",
		Usage: "Compress and decompress text and images with LZW",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "print compression statistics",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "compress",
				Usage:     "Compress a text file or an image",
				Action:    compressFile,
				ArgsUsage: "SOURCE_FILE",
				Flags: []cli.Flag{
					kindFlag,
					outputFlag,
					&cli.StringFlag{
						Name:  "report",
						Usage: "append statistics to this CSV file",
					},
				},
			},
			{
				Name:      "decompress",
				Usage:     "Rebuild the original file from its container(s)",
				Action:    decompressFile,
				ArgsUsage: "ARTIFACT_FILE",
				Flags:     []cli.Flag{kindFlag, outputFlag},
			},
			{
				Name:      "expand",
				Usage:     "Stream a text container back to plain text (stdin and stdout by default)",
				Action:    expandText,
				ArgsUsage: "[ARTIFACT_FILE | -]",
				Flags:     []cli.Flag{outputFlag},
			},
			{
				Name:   "kinds",
				Usage:  "List the supported source kinds",
				Action: listKinds,
			},
		},
	}
}

func compressFile(context *cli.Context) error {
	if context.NArg() != 1 {
		return fmt.Errorf("expected exactly one source file, got %d", context.NArg())
	}
	kind, err := lzwcodec.ParseKind(context.String("kind"))
	if err != nil {
		return err
	}

	sourcePath := context.Args().First()
	artifactPath := context.String("output")
	if artifactPath == "" {
		artifactPath = strings.TrimSuffix(sourcePath, filepath.Ext(sourcePath)) + ".bin"
	}

	result, err := codec.Compress(kind, sourcePath, artifactPath)
	if err != nil {
		return err
	}

	stats := result.Stats
	log.Printf(
		"%s is compressed into %s.", sourcePath, strings.Join(result.ArtifactPaths, ", "))
	if context.Bool("verbose") {
		if kind.IsImage() {
			log.Printf(
				"Original Image Size: %dx%d (%d pixels)", stats.Width, stats.Height, stats.Pixels())
		}
		log.Printf("Original File Size: %d bytes", stats.OriginalSize)
		log.Printf("Entropy: %.4f", stats.Entropy)
		log.Printf("Code Length: %d bits", stats.CodeWidth)
		log.Printf("Compressed File Size: %d bytes", stats.CompressedSize)
		log.Printf("Compression Ratio: %.2f", stats.CompressionRatio)
	}

	reportPath := context.String("report")
	if reportPath != "" {
		return codec.AppendReport(reportPath, []lzwcodec.Statistics{stats})
	}
	return nil
}

func decompressFile(context *cli.Context) error {
	if context.NArg() != 1 {
		return fmt.Errorf("expected exactly one artifact file, got %d", context.NArg())
	}
	kind, err := lzwcodec.ParseKind(context.String("kind"))
	if err != nil {
		return err
	}

	artifactPath := context.Args().First()
	outputPath, err := codec.Decompress(kind, artifactPath, context.String("output"))
	if err != nil {
		return err
	}

	log.Printf("%s is decompressed into %s.", artifactPath, outputPath)
	if context.Bool("verbose") {
		info, err := os.Stat(outputPath)
		if err == nil {
			log.Printf("Decompressed File Size: %d bytes", info.Size())
		}
	}
	return nil
}

func expandText(context *cli.Context) error {
	if context.NArg() > 1 {
		return fmt.Errorf("expected at most one artifact file, got %d", context.NArg())
	}

	input := context.App.Reader
	artifactPath := context.Args().First()
	if artifactPath != "" && artifactPath != "-" {
		artifactFile, err := os.Open(artifactPath)
		if err != nil {
			return fmt.Errorf("failed to open file for reading: %w", err)
		}
		defer artifactFile.Close()
		input = artifactFile
	}

	var output io.Writer = context.App.Writer
	outputPath := context.String("output")
	if outputPath != "" {
		outputFile, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to open file for writing: %w", err)
		}
		defer outputFile.Close()
		output = outputFile
	}

	nWritten, err := codec.DecompressText(input, output)
	if err != nil {
		return err
	}
	if context.Bool("verbose") {
		log.Printf("Expanded input to %d bytes.", nWritten)
	}
	return nil
}

func listKinds(context *cli.Context) error {
	for _, name := range lzwcodec.KindNames() {
		fmt.Fprintln(context.App.Writer, name)
	}
	return nil
}
