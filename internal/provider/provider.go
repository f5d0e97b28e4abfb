package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Provider supplies raw help() dumps for the classes of one module.
// Discovering which classes exist is the provider's job; the rest of the
// pipeline only consumes the dumps.
type Provider interface {
	ModuleHelp(ctx context.Context, moduleName string) (map[string]string, error)
}

// pyHelpScript drives Python's own reflection: import the module, render
// help() for every vtk class in it, print the result as one JSON object.
const pyHelpScript = `
import sys, json, inspect, importlib, pydoc
mod = importlib.import_module(sys.argv[1])
out = {}
for name, obj in vars(mod).items():
    if inspect.isclass(obj) and name.startswith("vtk"):
        out[name] = pydoc.render_doc(obj, renderer=pydoc.plaintext)
print(json.dumps(out))
`

// ExecProvider shells out to an external command, by default an embedded
// Python one-liner, appending the module name as the last argument. The
// command must print a JSON object mapping class name to raw help text.
// Cancellation and per-unit timeouts arrive through ctx.
type ExecProvider struct {
	Command []string
}

// NewExecProvider creates a provider running the given command, or the
// embedded Python reflection script when command is empty.
func NewExecProvider(command []string) *ExecProvider {
	if len(command) == 0 {
		command = []string{"python3", "-c", pyHelpScript}
	}
	return &ExecProvider{Command: command}
}

func (p *ExecProvider) ModuleHelp(ctx context.Context, moduleName string) (map[string]string, error) {
	args := append(append([]string{}, p.Command[1:]...), moduleName)
	cmd := exec.CommandContext(ctx, p.Command[0], args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("help command for %s: %w", moduleName, ctx.Err())
		}
		return nil, fmt.Errorf("help command for %s failed: %w: %s", moduleName, err, strings.TrimSpace(stderr.String()))
	}

	var dumps map[string]string
	if err := json.Unmarshal(stdout.Bytes(), &dumps); err != nil {
		return nil, fmt.Errorf("help command for %s produced invalid output: %w", moduleName, err)
	}
	return dumps, nil
}

// DirProvider reads pre-captured dumps from <dir>/<module>/<Class>.txt,
// for offline runs and tests.
type DirProvider struct {
	Dir string
}

func NewDirProvider(dir string) *DirProvider {
	return &DirProvider{Dir: dir}
}

func (p *DirProvider) ModuleHelp(ctx context.Context, moduleName string) (map[string]string, error) {
	moduleDir := filepath.Join(p.Dir, moduleName)
	entries, err := os.ReadDir(moduleDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read dumps for %s: %w", moduleName, err)
	}

	dumps := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		b, err := os.ReadFile(filepath.Join(moduleDir, e.Name()))
		if err != nil {
			return nil, err
		}
		dumps[strings.TrimSuffix(e.Name(), ".txt")] = string(b)
	}
	return dumps, nil
}
