// Package commands implements the operations the CLI dispatches to:
// packaging an extension directory, listing its files, and previewing
// its processed README.
package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extpack/extpack/pkg/archive"
	"github.com/extpack/extpack/pkg/collector"
	"github.com/extpack/extpack/pkg/config"
	"github.com/extpack/extpack/pkg/descriptor"
	"github.com/extpack/extpack/pkg/errors"
	"github.com/extpack/extpack/pkg/files"
	"github.com/extpack/extpack/pkg/logging"
	"github.com/extpack/extpack/pkg/manifest"
	"github.com/extpack/extpack/pkg/pipeline"
	"github.com/extpack/extpack/pkg/processors"
	"github.com/extpack/extpack/pkg/types"
)

// PackageOptions controls a single packaging run. Non-empty fields
// override the extension directory's config file.
type PackageOptions struct {
	Dir            string
	Output         string
	BaseContentURL string
	BaseImagesURL  string
}

// PackageResult summarizes a completed packaging run
type PackageResult struct {
	Manifest   *types.Manifest
	Descriptor *descriptor.Descriptor
	Files      []types.File
	OutputPath string
}

// Extension returns the packaged extension's full identifier
func (r *PackageResult) Extension() string {
	return fmt.Sprintf("%s.%s-%s", r.Manifest.Publisher, r.Manifest.Name, r.Manifest.Version)
}

// Package runs the full packaging flow for one extension directory:
// collect files, stream them through the processor pipeline, assemble
// and serialize the descriptor, and write the archive.
func Package(opts PackageOptions) (*PackageResult, error) {
	logger := logging.GetLogger("commands.package")
	done := logging.LogOperationStart(logger, "package")
	defer done()

	cfg, err := config.Load(opts.Dir, configOverrides(opts))
	if err != nil {
		return nil, err
	}

	m, processedFiles, procs, err := runPipeline(opts.Dir, cfg)
	if err != nil {
		return nil, err
	}

	assets, properties := pipeline.Collect(procs)
	d, err := descriptor.Build(m, assets, properties)
	if err != nil {
		return nil, err
	}

	descriptorXML, err := descriptor.Serialize(d)
	if err != nil {
		return nil, err
	}
	contentTypes := descriptor.BuildContentTypes(processedFiles)
	contentTypesXML, err := descriptor.SerializeContentTypes(contentTypes)
	if err != nil {
		return nil, err
	}

	outputPath := resolveOutputPath(opts, cfg, m)
	if err := archive.Write(outputPath, descriptorXML, contentTypesXML, processedFiles); err != nil {
		return nil, err
	}

	return &PackageResult{
		Manifest:   m,
		Descriptor: d,
		Files:      processedFiles,
		OutputPath: outputPath,
	}, nil
}

// List returns the files a packaging run would include, without
// building anything.
func List(dir string) ([]types.File, error) {
	return collector.Collect(dir)
}

// ProcessedReadme runs the pipeline and returns the README's content
// as it would appear inside the package.
func ProcessedReadme(dir string) (string, error) {
	cfg, err := config.Load(dir, nil)
	if err != nil {
		return "", err
	}

	_, processedFiles, _, err := runPipeline(dir, cfg)
	if err != nil {
		return "", err
	}

	for _, file := range processedFiles {
		if strings.EqualFold(file.Path(), "extension/readme.md") {
			return files.ReadString(file)
		}
	}
	return "", errors.New(errors.ErrNotFound, "extension has no README").
		WithDetail("dir", dir)
}

// runPipeline reads and validates the manifest, collects the files and
// streams them through the default processor set.
func runPipeline(dir string, cfg *config.Config) (*types.Manifest, []types.File, []types.Processor, error) {
	m, err := manifest.Read(filepath.Join(dir, manifest.FileName))
	if err != nil {
		return nil, nil, nil, err
	}
	if err := manifest.Validate(m); err != nil {
		return nil, nil, nil, err
	}

	collected, err := collector.Collect(dir)
	if err != nil {
		return nil, nil, nil, err
	}

	procs := processors.Default(m, processors.Options{
		BaseContentURL: cfg.BaseContentURL,
		BaseImagesURL:  cfg.BaseImagesURL,
	})

	processedFiles, err := pipeline.Run(procs, collected)
	if err != nil {
		return nil, nil, nil, err
	}
	return m, processedFiles, procs, nil
}

// configOverrides maps non-empty option fields onto config keys
func configOverrides(opts PackageOptions) map[string]interface{} {
	overrides := make(map[string]interface{})
	if opts.Output != "" {
		overrides["output"] = opts.Output
	}
	if opts.BaseContentURL != "" {
		overrides["baseContentUrl"] = opts.BaseContentURL
	}
	if opts.BaseImagesURL != "" {
		overrides["baseImagesUrl"] = opts.BaseImagesURL
	}
	return overrides
}

// resolveOutputPath picks the archive location: flag, then config,
// then <name>-<version>.vsix next to the extension.
func resolveOutputPath(opts PackageOptions, cfg *config.Config, m *types.Manifest) string {
	if cfg.Output != "" {
		if filepath.IsAbs(cfg.Output) {
			return cfg.Output
		}
		return filepath.Join(opts.Dir, cfg.Output)
	}
	return filepath.Join(opts.Dir, fmt.Sprintf("%s-%s.vsix", m.Name, m.Version))
}
