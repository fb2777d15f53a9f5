package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// docPackage is a package rendered into the API reference.
type docPackage struct {
	Name     string
	Title    string
	Path     string
	Position int
}

// Packages to document, in sidebar order.
var docPackages = []docPackage{
	{Name: "materialfield", Title: "Material Field", Path: "pkg/materialfield", Position: 1},
	{Name: "fieldstate", Title: "Field State", Path: "pkg/fieldstate", Position: 2},
	{Name: "fieldstyle", Title: "Field Style", Path: "pkg/fieldstyle", Position: 3},
	{Name: "animatable", Title: "Animatable", Path: "pkg/animatable", Position: 4},
	{Name: "binding", Title: "Binding", Path: "pkg/binding", Position: 5},
}

func cmdDocs(a *app) *cobra.Command {
	var (
		root string
		out  string
	)

	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Generate the API reference with gomarkdoc",
		Long: `Render each public package to Markdown with gomarkdoc and write it,
with Docusaurus frontmatter, into the output directory.

gomarkdoc must be on PATH.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := exec.LookPath("gomarkdoc"); err != nil {
				return fmt.Errorf("gomarkdoc not found; install github.com/princjef/gomarkdoc/cmd/gomarkdoc: %w", err)
			}
			if err := os.MkdirAll(out, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			for _, pkg := range docPackages {
				if _, err := os.Stat(filepath.Join(root, pkg.Path)); os.IsNotExist(err) {
					a.log.Warn("skipping package", "name", pkg.Name, "reason", "not found")
					continue
				}
				raw, err := runGomarkdoc(root, pkg)
				if err != nil {
					return err
				}
				if strings.TrimSpace(raw) == "" {
					a.log.Warn("no documentation generated", "name", pkg.Name)
					continue
				}
				path := filepath.Join(out, pkg.Name+".md")
				if err := os.WriteFile(path, []byte(renderDoc(pkg, raw)), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				a.log.Info("generated", "package", pkg.Name, "path", path)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&root, "root", ".", "module root containing pkg/")
	cmd.Flags().StringVar(&out, "out", filepath.Join("website", "docs", "api"), "output directory")
	return cmd
}

func runGomarkdoc(root string, pkg docPackage) (string, error) {
	c := exec.Command("gomarkdoc", "./"+pkg.Path)
	c.Dir = root

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	if err := c.Run(); err != nil {
		return "", fmt.Errorf("gomarkdoc %s: %w: %s", pkg.Path, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// renderDoc prefixes cleaned gomarkdoc output with frontmatter.
func renderDoc(pkg docPackage, raw string) string {
	return fmt.Sprintf("---\nid: %s\ntitle: %s\nsidebar_position: %d\n---\n\n", pkg.Name, pkg.Title, pkg.Position) +
		cleanMarkdown(raw)
}

// cleanMarkdown drops the parts of gomarkdoc output the site renders itself:
// the top heading, the index, import blocks and the HTML around examples.
func cleanMarkdown(content string) string {
	lines := strings.Split(content, "\n")
	var result []string
	inIndex := false
	inImport := false

	for i, line := range lines {
		if i == 0 && strings.HasPrefix(line, "# ") {
			continue
		}

		if line == "## Index" {
			inIndex = true
			continue
		}
		if inIndex {
			if !strings.HasPrefix(line, "## ") {
				continue
			}
			inIndex = false
		}

		if strings.HasPrefix(line, "```go") && i+1 < len(lines) && strings.Contains(lines[i+1], "import") {
			inImport = true
		}
		if inImport {
			if line == "```" {
				inImport = false
			}
			continue
		}

		if strings.HasPrefix(line, "<details><summary>") && strings.HasSuffix(line, "</summary>") {
			summary := strings.TrimSuffix(strings.TrimPrefix(line, "<details><summary>"), "</summary>")
			result = append(result, "", "**"+summary+":**", "")
			continue
		}

		if line == "</details>" || line == "<p>" || line == "</p>" {
			continue
		}

		result = append(result, line)
	}

	return strings.Join(result, "\n")
}
