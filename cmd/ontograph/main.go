// Command ontograph analyzes a directory of ontology documents and builds a
// cross-ontology dependency graph.
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/coolbeans/ontograph/pkg/analyze"
	"github.com/coolbeans/ontograph/pkg/fetch"
	"github.com/coolbeans/ontograph/pkg/metadata"
	"github.com/coolbeans/ontograph/pkg/rdfio"
	"github.com/coolbeans/ontograph/pkg/tree"
	"github.com/coolbeans/ontograph/pkg/watch"
)

var version = "0.1.0"

var verbose bool

// debugf logs only when --verbose is set.
func debugf(format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "ontograph",
		Short: "Ontology dependency graph builder",
		Long: `Ontograph ingests a directory of ontology documents (RDF serializations
plus XML-Schema files) and produces a cross-ontology dependency graph:
which namespace defines what, and which namespaces reference or import
one another.`,
		Version: version,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(fetchCmd())
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(treeCmd())
	rootCmd.AddCommand(watchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fetchCmd() *cobra.Command {
	var (
		input    string
		output   string
		keywords []string
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download ontology definitions listed in a catalogue",
		Long: `Download ontology definition files from a catalogue YAML into
per-ontology directories, writing a metadata.yaml sidecar next to each.

Keyword patterns select catalogue entries: a bare token or +token requires
the keyword, -token excludes it, and * selects everything not excluded.

Example:
  ontograph fetch --input open-repository.yaml --output data/ontologies -k "*" -k "-deprecated"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogue, err := fetch.LoadCatalogue(input)
			if err != nil {
				return err
			}
			if len(catalogue.Ontologies) == 0 {
				return fmt.Errorf("no ontologies found in %s", input)
			}
			debugf("loaded %d catalogue entries from %s", len(catalogue.Ontologies), input)

			fetcher := fetch.NewFetcher(output, 0)
			report, err := fetcher.FetchAll(catalogue, keywords)
			if err != nil {
				return err
			}

			fmt.Printf("Selected %d ontologies, downloaded %d files (%d failed)\n",
				report.Selected, report.Downloaded, report.Failed)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "open-repository.yaml", "catalogue YAML file")
	cmd.Flags().StringVarP(&output, "output", "o", "data/ontologies", "output directory")
	cmd.Flags().StringArrayVarP(&keywords, "keywords", "k", nil, "keyword selection patterns")
	return cmd
}

func analyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Build the cross-ontology dependency graph",
		Long: `Analyze an ontology directory and write the dependency graph document:
one node per namespace with entity counts and provenance, deduplicated
reference/import edges, and rankings by incoming and outgoing references.

Example:
  ontograph analyze --input data/ontologies --output ontology-graph.yaml --graphviz ontology-graph.dot`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.inputDir, "input", "i", "data/ontologies", "ontology directory")
	cmd.Flags().StringVarP(&opts.outputFile, "output", "o", "ontology-graph.yaml", "output document path")
	cmd.Flags().StringVar(&opts.graphvizOut, "graphviz", "", "also write a Graphviz DOT file")
	cmd.Flags().StringArrayVarP(&opts.keywords, "keywords", "k", nil, "keyword filter patterns for the final document")
	cmd.Flags().StringArrayVar(&opts.include, "include", nil, "doublestar globs a file must match")
	cmd.Flags().StringArrayVar(&opts.exclude, "exclude", nil, "doublestar globs that exclude files")
	return cmd
}

func treeCmd() *cobra.Command {
	var (
		input   string
		folders []string
	)

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Extract class/property/individual trees per ontology folder",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tree.Generate(input, folders)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "data/ontologies", "ontology directory")
	cmd.Flags().StringArrayVarP(&folders, "folder", "f", nil, "fuzzy folder-name filter (repeatable)")
	return cmd
}

func watchCmd() *cobra.Command {
	opts := &analyzeOptions{}
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run analysis whenever the ontology directory changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			rerun := func() {
				if err := runAnalyze(opts); err != nil {
					log.Printf("analysis failed: %v", err)
				}
			}

			// One full pass before waiting for changes.
			rerun()

			watcher, err := watch.New(opts.inputDir, debounce, rerun)
			if err != nil {
				return err
			}
			if err := watcher.Start(); err != nil {
				return err
			}
			defer watcher.Stop()

			fmt.Printf("Watching %s (ctrl-c to stop)\n", opts.inputDir)
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			<-sig
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.inputDir, "input", "i", "data/ontologies", "ontology directory")
	cmd.Flags().StringVarP(&opts.outputFile, "output", "o", "ontology-graph.yaml", "output document path")
	cmd.Flags().StringVar(&opts.graphvizOut, "graphviz", "", "also write a Graphviz DOT file")
	cmd.Flags().StringArrayVarP(&opts.keywords, "keywords", "k", nil, "keyword filter patterns for the final document")
	cmd.Flags().StringArrayVar(&opts.include, "include", nil, "doublestar globs a file must match")
	cmd.Flags().StringArrayVar(&opts.exclude, "exclude", nil, "doublestar globs that exclude files")
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "delay before re-analyzing after a change")
	return cmd
}

// analyzeOptions collects the flags shared by analyze and watch.
type analyzeOptions struct {
	inputDir    string
	outputFile  string
	graphvizOut string
	keywords    []string
	include     []string
	exclude     []string
}

// runAnalyze performs one full analysis pass: discover files, process RDF
// and XSD inputs, associate sidecar metadata, build the document, apply
// keyword filtering, and write the outputs. Per-file failures are logged
// and skipped; only missing inputs and output errors are fatal.
func runAnalyze(opts *analyzeOptions) error {
	info, err := os.Stat(opts.inputDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("input directory does not exist or is not a directory: %s", opts.inputDir)
	}

	files, err := rdfio.DiscoverFiles(opts.inputDir, opts.include, opts.exclude)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no ontology-like files found under %s", opts.inputDir)
	}
	debugf("found %d candidate ontology files in %s", len(files), opts.inputDir)

	corpus := rdfio.NewGraph()
	prefixes := rdfio.NewPrefixTable()
	analyzer := analyze.NewAnalyzer()
	metaByFile := make(map[string]*metadata.Record)

	for _, file := range files {
		debugf("processing %s", file)

		record, err := metadata.LoadForFile(file)
		if err != nil {
			log.Printf("failed to load metadata for %s: %v", file, err)
		} else if record != nil {
			metaByFile[file] = record
		}

		if rdfio.LooksLikeSchema(file) {
			schema, err := rdfio.ScanSchema(file)
			if err != nil {
				log.Printf("failed to parse XSD %s: %v", file, err)
				continue
			}
			analyzer.ProcessSchema(file, schema)
			continue
		}

		g, err := rdfio.LoadFile(file, corpus)
		if err != nil {
			log.Printf("%v", err)
			continue
		}
		analyzer.ProcessGraph(file, g)

		if table, err := rdfio.ScanPrefixes(file); err == nil {
			prefixes.Merge(table)
		}
	}

	doc := analyzer.BuildDocument(corpus, prefixes)

	if len(opts.keywords) > 0 {
		debugf("applying keyword filters: %v", opts.keywords)
		byNamespace := metadata.Associate(analyzer.FilesByNamespace(), metaByFile)
		analyze.FilterDocument(doc, metadata.Keywords(byNamespace), opts.keywords)
	}

	if err := writeYAML(opts.outputFile, doc); err != nil {
		return err
	}
	debugf("ontology analysis written to %s", opts.outputFile)

	if opts.graphvizOut != "" {
		if err := writeFile(opts.graphvizOut, []byte(doc.ToDOT())); err != nil {
			return err
		}
		debugf("wrote Graphviz DOT to %s", opts.graphvizOut)
	}

	return nil
}

// writeYAML marshals v and writes it, creating parent directories.
func writeYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	return writeFile(path, data)
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
