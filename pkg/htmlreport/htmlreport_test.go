package htmlreport

import (
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/epiccheck-report/pkg/violation"
)

var fixedTime = time.Date(2024, time.March, 5, 14, 7, 0, 0, time.UTC)

func renderOutput(t *testing.T, output, projectPath string) string {
	t.Helper()
	fields := NewFields(violation.Classify(output), Meta{
		ProjectPath: projectPath,
		GeneratedAt: fixedTime,
		Output:      output,
		Version:     "v1.2.3",
	})
	doc, err := Render(fields)
	require.NoError(t, err)
	return doc
}

func TestRender_When_NoViolations(t *testing.T) {
	t.Parallel()

	doc := renderOutput(t, "", "/tmp/myproj")

	assert.Contains(t, doc, "No violations found!")
	assert.Contains(t, doc, "Conforming")
	assert.Contains(t, doc, `stat-card success`)
	assert.NotContains(t, doc, "violation(s)")
	assert.NotContains(t, doc, "Violations found")
	assert.NotContains(t, doc, "<pre>")
}

func TestRender_When_ViolationsPresent(t *testing.T) {
	t.Parallel()

	output := "./src/main.c:12: FATAL [C-F4] function body > 20 lines <main>\n" +
		"./src/util.c:3: MINOR [C-G1] header & guard\n"
	doc := renderOutput(t, output, "/tmp/myproj")

	assert.Contains(t, doc, "2 violation(s)")
	assert.Contains(t, doc, "Non-conforming")
	assert.Contains(t, doc, `stat-card danger`)
	assert.NotContains(t, doc, "No violations found!")

	escaped := template.HTMLEscapeString(output)
	assert.Contains(t, doc, escaped, "raw output must appear escaped")
	assert.NotContains(t, doc, "<main>", "raw markup must not leak into the document")
}

func TestRender_SummaryCards(t *testing.T) {
	t.Parallel()

	doc := renderOutput(t, "FATAL MAJOR MAJOR MINOR INFO INFO INFO", "/work/proj")

	for _, want := range []string{
		`<div class="label">Fatal</div>
                <div class="number">1</div>`,
		`<div class="label">Major</div>
                <div class="number">2</div>`,
		`<div class="label">Minor</div>
                <div class="number">1</div>`,
		`<div class="label">Info</div>
                <div class="number">3</div>`,
		`<div class="label">Violations</div>
                <div class="number">7</div>`,
		`<div class="label">Files checked</div>
                <div class="number">?</div>`,
	} {
		assert.Contains(t, doc, want)
	}
}

func TestRender_Metadata(t *testing.T) {
	t.Parallel()

	doc := renderOutput(t, "", "/tmp/myproj")

	assert.Contains(t, doc, "<title>EpicCheck Report - myproj</title>")
	assert.Contains(t, doc, "05/03/2024 at 14:07")
	assert.Contains(t, doc, "Generated by epiccheck-report v1.2.3")
}

func TestRender_IsDeterministic(t *testing.T) {
	t.Parallel()

	output := "FATAL\nMINOR\n"
	assert.Equal(t, renderOutput(t, output, "/p"), renderOutput(t, output, "/p"))
}

func TestRender_OnlyTimestampDiffers(t *testing.T) {
	t.Parallel()

	counts := violation.Classify("MAJOR")
	meta := Meta{ProjectPath: "/p", GeneratedAt: fixedTime, Output: "MAJOR"}
	first, err := Render(NewFields(counts, meta))
	require.NoError(t, err)

	meta.GeneratedAt = fixedTime.Add(26 * time.Hour)
	second, err := Render(NewFields(counts, meta))
	require.NoError(t, err)

	assert.Equal(t,
		strings.Replace(first, fixedTime.Format(DateLayout), "DATE", 1),
		strings.Replace(second, meta.GeneratedAt.Format(DateLayout), "DATE", 1))
}

func TestExecute_When_FieldMissing(t *testing.T) {
	t.Parallel()

	tmpl := template.Must(template.New("broken").Option("missingkey=error").Parse("{{.NoSuchField}}"))
	_, err := execute(tmpl, Fields{})

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
}

func TestNewFields_Status(t *testing.T) {
	t.Parallel()

	clean := NewFields(violation.Counts{}, Meta{ProjectPath: "/x"})
	assert.True(t, clean.Conforming)
	assert.Equal(t, "success", clean.StatusClass)
	assert.Equal(t, "Conforming", clean.StatusText)

	dirty := NewFields(violation.Classify("FATAL MINOR"), Meta{ProjectPath: "/x"})
	assert.False(t, dirty.Conforming)
	assert.Equal(t, "danger", dirty.StatusClass)
	assert.Equal(t, "Non-conforming", dirty.StatusText)
	assert.Equal(t, 2, dirty.Total)
	assert.Len(t, dirty.Severities, 4)
}

func TestProjectName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"/tmp/myproj":  "myproj",
		"/tmp/myproj/": "myproj",
		"myproj":       "myproj",
		"./a/b":        "b",
	}
	for in, want := range tests {
		assert.Equal(t, want, ProjectName(in), "ProjectName(%q)", in)
	}
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "report.html")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, WriteFile(path, "<html>é</html>"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html>é</html>", string(got))
	assertNoTempFiles(t, dir)
}

func TestWriteFile_Permissions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fresh := filepath.Join(dir, "new.html")
	require.NoError(t, WriteFile(fresh, "<html></html>"))
	info, err := os.Stat(fresh)
	require.NoError(t, err)
	assert.Equal(t, reportMode, info.Mode().Perm())

	existing := filepath.Join(dir, "existing.html")
	require.NoError(t, os.WriteFile(existing, []byte("stale"), 0o600))
	require.NoError(t, os.Chmod(existing, 0o600))
	require.NoError(t, WriteFile(existing, "<html></html>"))
	info, err = os.Stat(existing)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWriteFile_When_DirectoryMissing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "report.html")
	err := WriteFile(path, "<html></html>")

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, path, writeErr.Path)
	assert.NoFileExists(t, path)
}

func TestWriteFile_When_TargetIsDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "report.html")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), nil, 0o644))

	err := WriteFile(target, "<html></html>")

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assertNoTempFiles(t, dir)
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, ".epiccheck-report-*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}
