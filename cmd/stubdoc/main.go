package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"stubdoc/internal/classify"
	"stubdoc/internal/config"
	"stubdoc/internal/docstore"
	"stubdoc/internal/markdown"
	"stubdoc/internal/pipeline"
	"stubdoc/internal/provider"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "stubdoc",
		Short: "VTK help-text extraction and stub enhancement",
	}
	configPath string

	dumpsDir     string
	singleModule string
	restart      bool
	workers      int
	cleanAll     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the configuration file")

	extractCmd.Flags().StringVar(&dumpsDir, "dumps", "", "Read pre-captured help dumps from this directory instead of running Python")
	enhanceCmd.Flags().StringVar(&singleModule, "single-module", "", "Enhance only this module")
	enhanceCmd.Flags().BoolVar(&restart, "restart", false, "Reprocess modules even when output already exists")
	enhanceCmd.Flags().IntVar(&workers, "workers", 0, "Override the configured worker count")
	cleanCmd.Flags().BoolVar(&cleanAll, "all", false, "Also remove the documentation database")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(enhanceCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(cleanCmd)
}

func loadConfig() *config.Config {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

var extractCmd = &cobra.Command{
	Use:   "extract [modules...]",
	Short: "Extract help dumps into the documentation database",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		var prov provider.Provider
		dir := dumpsDir
		if dir == "" {
			dir = cfg.Paths.Dumps
		}
		if dir != "" {
			prov = provider.NewDirProvider(dir)
		}

		modules := args
		if len(modules) == 0 && dir != "" {
			modules = listSubdirs(dir)
		}
		if len(modules) == 0 {
			log.Fatal("No modules specified. Pass module names or configure a dumps directory.")
		}

		fmt.Printf("🚀 Extracting %d modules with %d workers...\n", len(modules), cfg.Pipeline.Workers)
		report, err := pipeline.New(cfg, prov).ExtractAll(context.Background(), modules)
		if err != nil {
			log.Fatalf("Extraction aborted: %v", err)
		}
		finishReport(report, filepath.Join(cfg.Paths.Docs, "report.json"))
	},
}

var enhanceCmd = &cobra.Command{
	Use:   "enhance [modules...]",
	Short: "Merge the documentation database into the official stubs",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		if workers > 0 {
			cfg.Pipeline.Workers = workers
		}

		modules := args
		if singleModule != "" {
			modules = []string{singleModule}
		}

		fmt.Printf("🚀 Enhancing stubs with %d workers...\n", cfg.Pipeline.Workers)
		report, err := pipeline.New(cfg, nil).EnhanceAll(context.Background(), modules, restart)
		if err != nil {
			log.Fatalf("Enhancement aborted: %v", err)
		}
		finishReport(report, filepath.Join(cfg.Paths.Enhanced, "report.json"))
	},
}

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Render the documentation database as markdown pages",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		p := pipeline.New(cfg, nil)

		modules, err := p.StoredModules()
		if err != nil {
			log.Fatalf("Failed to list modules: %v", err)
		}
		if len(modules) == 0 {
			log.Fatal("Documentation database is empty. Run extract first.")
		}

		gen := markdown.NewGenerator(cfg.Paths.Markdown)
		for _, module := range modules {
			docs, err := p.LoadModule(module)
			if err != nil {
				log.Fatalf("Failed to load %s: %v", module, err)
			}
			if err := gen.GenerateModule(module, docs); err != nil {
				log.Fatalf("Failed to render %s: %v", module, err)
			}
			fmt.Printf("📝 %s: %d classes\n", module, len(docs))
		}
		fmt.Printf("✅ Markdown written to %s\n", cfg.Paths.Markdown)
	},
}

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify documented classes into roles with an LLM",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		if cfg.AI.APIKey == "" {
			log.Fatal("Classification requires an API key (set STUBDOC_API_KEY or GEMINI_API_KEY)")
		}

		ctx := context.Background()
		classifier, err := classify.NewClassifier(ctx, cfg.AI.APIKey, cfg.AI.Model, cfg.AI.RateLimit)
		if err != nil {
			log.Fatalf("Failed to create classifier: %v", err)
		}

		p := pipeline.New(cfg, nil)
		modules, err := p.StoredModules()
		if err != nil {
			log.Fatalf("Failed to list modules: %v", err)
		}

		results := make(map[string]*classify.Classification)
		for _, module := range modules {
			docs, err := p.LoadModule(module)
			if err != nil {
				log.Fatalf("Failed to load %s: %v", module, err)
			}
			classified, err := classifier.ClassifyModule(ctx, docs, cfg.AI.MaxConcurrent)
			if err != nil {
				log.Fatalf("Classification of %s aborted: %v", module, err)
			}
			for name, cls := range classified {
				results[name] = cls
			}
			fmt.Printf("🤖 %s: %d of %d classes classified\n", module, len(classified), len(docs))
		}

		path := filepath.Join(cfg.Paths.Docs, "roles.json")
		b, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			log.Fatalf("Failed to marshal roles: %v", err)
		}
		if err := os.WriteFile(path, append(b, '\n'), 0644); err != nil {
			log.Fatalf("Failed to write roles: %v", err)
		}
		fmt.Printf("✅ Wrote %d classifications to %s\n", len(results), path)
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check integrity and coverage of docs, stubs, and markdown",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		p := pipeline.New(cfg, nil)

		modules, err := p.StoredModules()
		if err != nil {
			log.Fatalf("Failed to list modules: %v", err)
		}
		if len(modules) == 0 {
			log.Fatal("Documentation database is empty. Run extract first.")
		}

		issues := 0
		totalClasses := 0
		for _, module := range modules {
			docs, err := p.LoadModule(module)
			if err != nil {
				fmt.Printf("❌ %s: unreadable database: %v\n", module, err)
				issues++
				continue
			}
			totalClasses += len(docs)

			if _, err := os.Stat(filepath.Join(cfg.Paths.Enhanced, module+".pyi")); err != nil {
				fmt.Printf("⚠️ %s: no enhanced stub\n", module)
				issues++
			}
			if _, err := os.Stat(filepath.Join(cfg.Paths.Markdown, module, "README.md")); err != nil {
				fmt.Printf("⚠️ %s: no markdown index\n", module)
				issues++
			}
		}

		if cfg.Paths.SQLite != "" {
			store, err := docstore.NewSQLiteStore(cfg.Paths.SQLite)
			if err != nil {
				log.Fatalf("Failed to open SQLite mirror: %v", err)
			}
			defer store.Close()

			sums, err := store.Summaries(context.Background())
			if err != nil {
				log.Fatalf("Failed to query SQLite mirror: %v", err)
			}
			for _, s := range sums {
				fmt.Printf("🗄️ %s: %d classes, %d members in SQLite\n", s.ModuleName, s.Classes, s.Members)
			}
		}

		fmt.Printf("\n📊 %d modules, %d classes, %d issues\n", len(modules), totalClasses, issues)
		if issues > 0 {
			os.Exit(1)
		}
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove generated outputs",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		targets := []string{cfg.Paths.Enhanced, cfg.Paths.Markdown}
		if cleanAll {
			targets = append(targets, cfg.Paths.Docs)
			if cfg.Paths.SQLite != "" {
				targets = append(targets, cfg.Paths.SQLite)
			}
		}

		for _, target := range targets {
			if target == "" {
				continue
			}
			if err := os.RemoveAll(target); err != nil {
				log.Fatalf("Failed to remove %s: %v", target, err)
			}
			fmt.Printf("🗑️ Removed %s\n", target)
		}
	},
}

func listSubdirs(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}

func finishReport(report *pipeline.Report, path string) {
	if err := report.Save(path); err != nil {
		log.Fatalf("Failed to save report: %v", err)
	}
	report.PrintSummary()
	fmt.Printf("📄 Report written to %s\n", path)
}
