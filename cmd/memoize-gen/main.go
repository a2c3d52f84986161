// Package main provides the memoize-gen command, which reads a YAML manifest
// of functions and cache options and writes the generated memoization file.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	str2duration "github.com/xhit/go-str2duration/v2"
	"gopkg.in/yaml.v3"

	memoize "github.com/agentuity/go-memoize"
)

var (
	// Version as provided by goreleaser.
	Version = ""

	manifestPath string
	outPath      string
	pkgOverride  string
	extended     bool
	verbose      bool

	rootCmd = &cobra.Command{
		Use:           "memoize-gen",
		Short:         "Generate memoizing wrappers from a manifest",
		Long:          "memoize-gen reads a YAML manifest describing functions and their cache\nconfiguration and emits a single generated Go file with the renamed\noriginals, wrappers, storage and flush/size helpers.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: execute,
	}
)

// manifest is the on-disk input format. It is already structured: the
// manifest carries signatures and bodies, not parsed source files.
type manifest struct {
	Package   string         `yaml:"package"`
	Functions []manifestFunc `yaml:"functions"`
}

type manifestFunc struct {
	Name    string          `yaml:"name"`
	Params  []manifestParam `yaml:"params"`
	Returns string          `yaml:"returns"`
	Body    string          `yaml:"body"`
	Cache   manifestCache   `yaml:"cache"`
}

type manifestParam struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type manifestCache struct {
	Capacity   int      `yaml:"capacity"`
	TTL        string   `yaml:"ttl"`
	Shared     bool     `yaml:"shared"`
	Hasher     string   `yaml:"hasher"`
	HasherInit string   `yaml:"hasher_init"`
	Ignore     []string `yaml:"ignore"`
}

// ttlExpr turns a manifest TTL into a Go expression. Duration strings like
// "90s" or "1h30m" become their nanosecond count; anything else is passed
// through verbatim as a Go expression, e.g. "5 * time.Minute".
func ttlExpr(s string) string {
	if s == "" {
		return ""
	}
	if d, err := str2duration.ParseDuration(s); err == nil {
		return strconv.FormatInt(d.Nanoseconds(), 10)
	}
	return s
}

func signatureOf(fn manifestFunc) memoize.Signature {
	sig := memoize.Signature{
		Name:       fn.Name,
		ReturnType: fn.Returns,
		Body:       fn.Body,
	}
	for _, p := range fn.Params {
		sig.Params = append(sig.Params, memoize.Param{Name: p.Name, Type: p.Type})
	}
	return sig
}

func execute(cmd *cobra.Command, _ []string) error {
	buf, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("reading manifest: %w", err)
	}
	var m manifest
	if err := yaml.Unmarshal(buf, &m); err != nil {
		return fmt.Errorf("parsing manifest %s: %w", manifestPath, err)
	}

	pkg := m.Package
	if pkgOverride != "" {
		pkg = pkgOverride
	}
	opts := []memoize.Option{}
	if pkg != "" {
		opts = append(opts, memoize.WithPackage(pkg))
	}
	if extended {
		opts = append(opts, memoize.WithExtendedBackends())
	}

	g := memoize.NewGenerator(opts...)
	for _, fn := range m.Functions {
		cfg := memoize.CacheConfig{
			Capacity:     fn.Cache.Capacity,
			TimeToLive:   ttlExpr(fn.Cache.TTL),
			SharedCache:  fn.Cache.Shared,
			CustomHasher: fn.Cache.Hasher,
			HasherInit:   fn.Cache.HasherInit,
			Ignore:       fn.Cache.Ignore,
		}
		a, err := g.Add(cfg, signatureOf(fn))
		if err != nil {
			return fmt.Errorf("function %s: %w", fn.Name, err)
		}
		log.Debug("synthesized", "function", a.Function, "storage", a.Shape.Storage, "concurrency", a.Shape.Concurrency)
	}

	src, err := g.Source()
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	log.Info("wrote generated file", "path", outPath, "functions", len(m.Functions))
	return nil
}

func init() {
	rootCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "memoize.yaml", "path to the YAML manifest")
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "memoized_gen.go", "path of the generated file")
	rootCmd.Flags().StringVarP(&pkgOverride, "package", "p", "", "package name for the generated file (overrides the manifest)")
	rootCmd.Flags().BoolVar(&extended, "extended", false, "enable the capacity and time-to-live backends")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	if Version != "" {
		rootCmd.Version = Version
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
