package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"lessongest/internal/assemble"
	"lessongest/internal/segment"
	"lessongest/internal/source"
)

func newParseCmd() *cobra.Command {
	var (
		input   string
		output  string
		check   bool
		workers int
	)

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse a book dump into structured JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, input, output, check, workers)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "extracted_text.txt", "input file (txt, md, html, pdf or docx)")
	cmd.Flags().StringVarP(&output, "output", "o", "lessons.json", "output JSON file")
	cmd.Flags().BoolVar(&check, "check", false, "validate the output document structure")
	cmd.Flags().IntVar(&workers, "workers", 1, "concurrent section classification workers")

	return cmd
}

func runParse(cmd *cobra.Command, input, output string, check bool, workers int) error {
	loader, err := source.ForFile(input)
	if err != nil {
		return err
	}

	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	raw, err := loader.Load(f, input)
	f.Close()
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Read %d lines from %s\n", len(raw), input)

	toc := segment.ParseTOC(raw)
	fmt.Fprintf(out, "TOC entries found: %d\n", len(toc))
	ids := make([]string, 0, len(toc))
	for id := range toc {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Fprintf(out, "  [%s] %s (page %d)\n", id, toc[id].Title, toc[id].Page)
	}

	cfg := assemble.DefaultConfig()
	if workers > 1 {
		cfg.Workers = workers
	}

	sections := segment.Split(raw, toc, cfg.Splitter)
	fmt.Fprintf(out, "\nContent sections found: %d\n", len(sections))
	for _, sec := range sections {
		fmt.Fprintf(out, "  [%s] %s (%d lines)\n", sec.ID, sec.Title, len(sec.Lines))
	}

	contents := assemble.ClassifyAll(sections, cfg, nil)
	doc := assemble.Compose(sections, contents)

	fmt.Fprintf(out, "\nOutput: %d lessons, %d appendices, %d lists, %d dictionary entries\n",
		len(doc.Lessons), len(doc.Appendices), len(doc.Lists), len(doc.CoreDictionary))

	if check {
		if err := assemble.Validate(doc); err != nil {
			return fmt.Errorf("validate: %w", err)
		}
		fmt.Fprintln(out, "Document structure OK")
	}

	dst, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := doc.Encode(dst); err != nil {
		dst.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	info, err := os.Stat(output)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Written to %s (%d KB)\n", output, info.Size()/1024)
	return nil
}
