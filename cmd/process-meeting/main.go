// process-meeting transcribes a meeting recording and generates minutes.
//
// Usage:
//
//	process-meeting [flags] meeting.wav
//	process-meeting -format pdf -output minutes.pdf meeting.mp3
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"

	"github.com/mlevkov/contentproc/internal/builder"
	"github.com/mlevkov/contentproc/internal/entity"
)

func main() {
	output := flag.String("output", "", "output file path (default: <audio>-minutes.<ext>)")
	formatName := flag.String("format", "markdown", "output format: markdown, pdf or docx")
	transcriptPath := flag.String("save-transcript", "", "also save the raw transcript to this file")

	mediaUC, logger, err := builder.BuildMeetingProcessor()
	if err != nil {
		log.Fatal("Failed to build meeting processor:", err)
	}
	defer logger.Sync()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: process-meeting [flags] <audio-file>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	audioPath := flag.Arg(0)

	format := entity.ExportFormat(*formatName)
	if err := format.Validate(); err != nil {
		log.Fatalf("Invalid format %q: must be one of markdown, pdf, docx", *formatName)
	}

	audioData, err := os.ReadFile(audioPath)
	if err != nil {
		log.Fatal("Failed to read audio file:", err)
	}

	ctx := ctxzap.ToContext(context.Background(), logger)
	filename := filepath.Base(audioPath)

	fmt.Printf("Transcribing %s...\n", filename)
	transcription, err := mediaUC.Transcribe(ctx, audioData, filename)
	if err != nil {
		log.Fatal("Transcription failed:", err)
	}
	fmt.Printf("Transcription complete (%d characters, language %s)\n",
		len(transcription.Text), transcription.Language)

	if *transcriptPath != "" {
		if err := os.WriteFile(*transcriptPath, []byte(transcription.Text), 0o644); err != nil {
			log.Fatal("Failed to save transcript:", err)
		}
		fmt.Printf("Transcript saved to %s\n", *transcriptPath)
	}

	fmt.Println("Generating meeting minutes...")
	doc, err := mediaUC.RenderMinutes(ctx, transcription.Text, format)
	if err != nil {
		log.Fatal("Minutes generation failed:", err)
	}

	outPath := *output
	if outPath == "" {
		base := filename[:len(filename)-len(filepath.Ext(filename))]
		outPath = base + "-minutes" + doc.Extension
	}

	if err := os.WriteFile(outPath, doc.Content, 0o644); err != nil {
		log.Fatal("Failed to write minutes:", err)
	}

	fmt.Printf("Minutes written to %s (%d bytes)\n", outPath, len(doc.Content))
}
