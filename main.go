package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"stubdoc/internal/config"
	"stubdoc/internal/markdown"
	"stubdoc/internal/pipeline"
	"stubdoc/internal/provider"
)

// One-shot run: extract every module's help dumps, enhance the official
// stubs, and render the markdown pages. The stubdoc CLI under cmd/ exposes
// the individual stages.
func main() {
	// 1. Load Configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	// 2. Decide where help dumps come from
	var prov provider.Provider
	if cfg.Paths.Dumps != "" {
		prov = provider.NewDirProvider(cfg.Paths.Dumps)
	}

	modules := os.Args[1:]
	if len(modules) == 0 && cfg.Paths.Dumps != "" {
		entries, err := os.ReadDir(cfg.Paths.Dumps)
		if err != nil {
			log.Fatalf("Failed to read dumps directory: %v", err)
		}
		for _, e := range entries {
			if e.IsDir() {
				modules = append(modules, e.Name())
			}
		}
	}
	if len(modules) == 0 {
		log.Fatal("No modules to process. Pass module names or configure paths.dumps.")
	}

	p := pipeline.New(cfg, prov)

	// 3. Extract
	fmt.Printf("🚀 Extracting %d modules...\n", len(modules))
	report, err := p.ExtractAll(ctx, modules)
	if err != nil {
		log.Fatalf("Extraction aborted: %v", err)
	}
	report.PrintSummary()

	// 4. Enhance
	fmt.Println("🔧 Enhancing stubs...")
	report, err = p.EnhanceAll(ctx, modules, true)
	if err != nil {
		log.Fatalf("Enhancement aborted: %v", err)
	}
	report.PrintSummary()

	// 5. Render markdown
	fmt.Println("📝 Rendering markdown...")
	gen := markdown.NewGenerator(cfg.Paths.Markdown)
	for _, module := range modules {
		docs, err := p.LoadModule(module)
		if err != nil {
			log.Fatalf("Failed to load %s: %v", module, err)
		}
		if err := gen.GenerateModule(module, docs); err != nil {
			log.Fatalf("Failed to render %s: %v", module, err)
		}
	}

	fmt.Println("✅ Done.")
}
