package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/longsoft/pfsx/internal/extract"
	"github.com/longsoft/pfsx/pkg/pfs"
)

type sectionReport struct {
	Index       int    `json:"index"`
	Name        string `json:"name,omitempty"`
	Guid        string `json:"guid"`
	Version     string `json:"version"`
	Kind        string `json:"kind"`
	DataSize    uint32 `json:"data_size"`
	DataSigSize uint32 `json:"data_sig_size,omitempty"`
	MetaSize    uint32 `json:"meta_size,omitempty"`
	MetaSigSize uint32 `json:"meta_sig_size,omitempty"`
}

type imageReport struct {
	File          string          `json:"file"`
	FileSize      int64           `json:"file_size"`
	HeaderVersion uint32          `json:"header_version"`
	DataSize      uint32          `json:"data_size"`
	Checksum      uint32          `json:"checksum"`
	Trailing      int             `json:"trailing_bytes,omitempty"`
	NamesFailed   bool            `json:"names_failed,omitempty"`
	Sections      []sectionReport `json:"sections"`
}

func inspectCmd() *cli.Command {
	var (
		filePath string
		asJSON   bool
	)

	return &cli.Command{
		Name:  "inspect",
		Usage: "Inspect the structure of a PFS firmware image without extracting",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "path to the PFS firmware image",
				Destination: &filePath,
				Required:    true,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "emit a machine-readable report",
				Destination: &asJSON,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			_ = ctx

			stat, err := os.Stat(filePath)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: stat %q: %v", filePath, err), 1)
			}

			in, err := pfs.Open(filePath)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: open image: %v", err), 1)
			}
			defer func() { _ = in.Close() }()

			f, rest, err := pfs.DecodeFile(in.Data)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: decode %s: %v", filePath, err), 1)
			}
			names := pfs.ResolveNames(f)

			report := imageReport{
				File:          filepath.Base(filePath),
				FileSize:      stat.Size(),
				HeaderVersion: f.Header.Version,
				DataSize:      f.Header.DataSize,
				Checksum:      f.Footer.Checksum,
				Trailing:      len(rest),
				NamesFailed:   names.Failed,
			}
			for i := range f.Sections {
				s := &f.Sections[i]
				report.Sections = append(report.Sections, sectionReport{
					Index:       i + 1,
					Name:        names.Name(i),
					Guid:        s.Guid.String(),
					Version:     s.VersionString(),
					Kind:        extract.Kind(s.Data),
					DataSize:    s.DataSize,
					DataSigSize: s.DataSigSize,
					MetaSize:    s.MetaSize,
					MetaSigSize: s.MetaSigSize,
				})
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			printReport(report)
			return nil
		},
	}
}

func printReport(r imageReport) {
	fmt.Printf("PFS Inspect: %s\n", r.File)
	fmt.Printf("File: %s (%s)\n", r.File, formatBytes(uint64(r.FileSize)))
	fmt.Printf("PFS Header: v%d data=%s checksum=0x%08X sections=%d\n",
		r.HeaderVersion, formatBytes(uint64(r.DataSize)), r.Checksum, len(r.Sections))
	if r.Trailing > 0 {
		fmt.Printf("Trailing bytes after footer: %d\n", r.Trailing)
	}
	if r.NamesFailed {
		fmt.Println("Section names: unavailable (information section did not decode)")
	}

	section("Sections")
	for _, s := range r.Sections {
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("section_%d", s.Index)
		}
		fmt.Printf("%-28s v%-12s %-16s guid=%s\n", name, s.Version, s.Kind, s.Guid)
		row("data", formatBytes(uint64(s.DataSize)))
		if s.DataSigSize > 0 {
			row("data.sig", formatBytes(uint64(s.DataSigSize)))
		}
		if s.MetaSize > 0 {
			row("meta", formatBytes(uint64(s.MetaSize)))
		}
		if s.MetaSigSize > 0 {
			row("meta.sig", formatBytes(uint64(s.MetaSigSize)))
		}
	}
}

func section(title string) {
	line := strings.Repeat("-", len(title)+8)
	fmt.Printf("\n%s\n--- %s ---\n%s\n", line, title, line)
}

func row(label, value string) {
	if value == "" {
		return
	}
	fmt.Printf("  %-24s %s\n", label+":", value)
}

func formatBytes(b uint64) string {
	const (
		kb = 1024
		mb = 1024 * kb
		gb = 1024 * mb
	)
	switch {
	case b >= gb:
		return fmt.Sprintf("%.2f GiB", float64(b)/float64(gb))
	case b >= mb:
		return fmt.Sprintf("%.2f MiB", float64(b)/float64(mb))
	case b >= kb:
		return fmt.Sprintf("%.2f KiB", float64(b)/float64(kb))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
