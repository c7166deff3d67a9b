// Package domain contains the scaffolding engine and the workflows built on it.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"viewstrap.dev/pkg/viewstrap/internal/adapter"
	"viewstrap.dev/pkg/viewstrap/internal/controller"
	m "viewstrap.dev/pkg/viewstrap/internal/model"
)

// ErrNoSelection is returned when Bootstrap is called without any selection.
var ErrNoSelection = errors.New("at least one selection is required")

// BootstrapArgs holds the arguments for scaffolding a single file.
type BootstrapArgs struct {
	Path        m.Path
	Selections  []m.Selection
	Output      m.Path // destination when neither Write nor Diff is set; "-" is stdout
	Write       bool
	Diff        bool
	Interactive bool
	Report      controller.ReportFormat
}

// StatusArgs holds the arguments for the status scan.
type StatusArgs struct {
	Paths      []m.Path
	Exclude    []string
	Extensions []string
	Threads    int
}

// Workflow ties the scaffolding engine to files and to the UI.
type Workflow interface {
	Bootstrap(ctx context.Context, args BootstrapArgs) error
	Status(ctx context.Context, args StatusArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.DiffAdapter
	controller.UI
	ScaffoldEditor
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	diffAdapter adapter.DiffAdapter,
	ui controller.UI,
	editor ScaffoldEditor,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		DiffAdapter:     diffAdapter,
		UI:              ui,
		ScaffoldEditor:  editor,
	}
}

// Bootstrap scaffolds the selected declarations of one file and delivers the
// result according to the requested mode.
func (w *workflow) Bootstrap(ctx context.Context, args BootstrapArgs) error {
	if len(args.Selections) == 0 {
		return ErrNoSelection
	}

	if args.Path.IsStdio() && (args.Write || args.Interactive) {
		return fmt.Errorf("cannot rewrite stdin in place: use --output or --diff")
	}

	content, err := w.ReadFile(ctx, args.Path)
	if err != nil {
		slog.Error("Failed to read source", "path", args.Path, "error", err)
		return fmt.Errorf("read %s: %w", args.Path, err)
	}

	before := NewLineBuffer(string(content))
	after, report := w.Scaffold(before, args.Selections)
	report.Path = args.Path

	slog.Info("Scaffolded buffer",
		"path", args.Path,
		"registered", report.Registered,
		"skipped", report.Skipped,
		"region_created", report.RegionCreated,
		"missing_stubs", report.MissingStubs,
	)

	if err := w.deliver(ctx, args, before, after, report); err != nil {
		return err
	}

	return w.DisplayReport(ctx, report, args.Report)
}

func (w *workflow) deliver(ctx context.Context, args BootstrapArgs, before, after LineBuffer, report m.Report) error {
	switch {
	case args.Diff:
		diff, err := w.diff(args.Path, before, after)
		if err != nil {
			return err
		}

		return w.DisplayDiff(ctx, diff)

	case args.Interactive:
		if !report.Changed {
			return w.DisplayDiff(ctx, "")
		}

		diff, err := w.diff(args.Path, before, after)
		if err != nil {
			return err
		}

		apply, err := w.Confirm(ctx, args.Path, diff)
		if err != nil {
			return fmt.Errorf("confirm: %w", err)
		}

		if !apply {
			slog.Info("Changes discarded", "path", args.Path)
			return nil
		}

		return w.write(ctx, args.Path, after)

	case args.Write:
		if !report.Changed {
			slog.Debug("Nothing to write", "path", args.Path)
			return nil
		}

		return w.write(ctx, args.Path, after)
	}

	if args.Output.IsStdio() {
		return w.DisplayText(ctx, after.Text())
	}

	return w.write(ctx, args.Output, after)
}

func (w *workflow) diff(path m.Path, before, after LineBuffer) (string, error) {
	name := string(path)
	if path.IsStdio() {
		name = "<stdin>"
	}

	return w.Unified(name, name, before.Text(), after.Text())
}

func (w *workflow) write(ctx context.Context, path m.Path, buf LineBuffer) error {
	if err := w.WriteFile(ctx, path, []byte(buf.Text())); err != nil {
		slog.Error("Failed to write source", "path", path, "error", err)
		return fmt.Errorf("write %s: %w", path, err)
	}

	slog.Info("Wrote scaffolded source", "path", path)

	return nil
}

// Status reports, for every matching file, whether the generated region
// exists and which declarations still lack a section.
func (w *workflow) Status(ctx context.Context, args StatusArgs) error {
	excludes, err := compileExcludes(args.Exclude)
	if err != nil {
		return err
	}

	files, err := w.collectFiles(ctx, args, excludes)
	if err != nil {
		return err
	}

	threads := args.Threads
	if threads < 1 {
		threads = 1
	}

	statuses := make([]m.FileStatus, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, path := range files {
		group.Go(func() error {
			status, err := w.fileStatus(groupCtx, path)
			if err != nil {
				return err
			}

			statuses[i] = status

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("Status scan failed", "error", err)
		return err
	}

	return w.DisplayStatus(ctx, statuses)
}

func (w *workflow) fileStatus(ctx context.Context, path m.Path) (m.FileStatus, error) {
	content, err := w.ReadFile(ctx, path)
	if err != nil {
		return m.FileStatus{}, fmt.Errorf("read %s: %w", path, err)
	}

	buf := NewLineBuffer(string(content))
	status := m.FileStatus{
		Path:     path,
		Sections: CountSections(buf),
		Pending:  PendingDeclarations(buf),
	}

	if span, ok := RegionSpan(buf); ok {
		status.HasRegion = true
		status.RegionLine = strings.Count(buf.Text()[:span.Offset], "\n") + 1
	}

	slog.Debug("Computed file status", "path", path, "sections", status.Sections, "pending", len(status.Pending))

	return status, nil
}

// PendingDeclarations lists declarations anywhere in buf that have no section
// yet, as a selection of the whole buffer would.
func PendingDeclarations(buf LineBuffer) []string {
	if buf.Len() == 0 {
		return nil
	}

	whole := m.Selection{End: m.Position{Line: buf.Len() - 1}}
	top := m.Selection{}

	var pending []string

	for _, decl := range ScanDeclarations(buf, []m.Selection{whole}) {
		if !SectionExists(buf, top, decl.Name) {
			pending = append(pending, decl.Name)
		}
	}

	return pending
}

func (w *workflow) collectFiles(ctx context.Context, args StatusArgs, excludes []*regexp.Regexp) ([]m.Path, error) {
	paths := args.Paths
	if len(paths) == 0 {
		paths = []m.Path{"./..."}
	}

	seen := make(map[m.Path]struct{})

	var files []m.Path

	for _, pattern := range paths {
		root, recursive := splitPathPattern(pattern)

		err := w.Walk(ctx, root, recursive, func(path m.Path, _ os.FileInfo) error {
			if !hasExtension(path, args.Extensions) || isExcluded(path, excludes) {
				return nil
			}

			if _, dup := seen[path]; dup {
				return nil
			}

			seen[path] = struct{}{}
			files = append(files, path)

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", pattern, err)
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}

// splitPathPattern turns "./..." style patterns into a root and a recursion flag.
func splitPathPattern(pattern m.Path) (m.Path, bool) {
	p := string(pattern)
	if p == "..." {
		return ".", true
	}

	if strings.HasSuffix(p, "/...") {
		root := strings.TrimSuffix(p, "/...")
		if root == "" {
			root = "/"
		}

		return m.Path(root), true
	}

	return pattern, false
}

func hasExtension(path m.Path, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}

	ext := filepath.Ext(string(path))
	for _, want := range extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}

	return false
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func isExcluded(path m.Path, excludes []*regexp.Regexp) bool {
	for _, re := range excludes {
		if re.MatchString(string(path)) || re.MatchString(filepath.Base(string(path))) {
			return true
		}
	}

	return false
}
