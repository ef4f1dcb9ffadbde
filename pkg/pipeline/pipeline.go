// Package pipeline drives a processor list over the full file stream.
// It encapsulates the flow: thread each file through every processor's
// OnFile in order, then invoke every OnEnd in order.
package pipeline

import (
	"github.com/extpack/extpack/pkg/errors"
	"github.com/extpack/extpack/pkg/logging"
	"github.com/extpack/extpack/pkg/types"
)

// Run streams files through processors and returns the final
// (possibly rewritten) file list in input order.
//
// The run fails fast: the first OnFile or OnEnd failure aborts the run
// and propagates the error. No partial result escapes a failed run.
func Run(processors []types.Processor, inputFiles []types.File) ([]types.File, error) {
	logger := logging.GetLogger("pipeline")
	logger.Debug().
		Int("processors", len(processors)).
		Int("files", len(inputFiles)).
		Msg("Starting packaging pipeline")

	outputFiles := make([]types.File, 0, len(inputFiles))
	for _, file := range inputFiles {
		current := file
		for _, processor := range processors {
			next, err := processor.OnFile(current)
			if err != nil {
				logger.Error().
					Err(err).
					Str("processor", processor.Name()).
					Str("file", current.Path()).
					Msg("Processor failed on file")
				return nil, errors.Wrapf(err, errors.ErrProcessing,
					"processor %q failed on %s", processor.Name(), current.Path()).
					WithDetail("processor", processor.Name()).
					WithDetail("file", current.Path())
			}
			current = next
		}
		outputFiles = append(outputFiles, current)
	}

	for _, processor := range processors {
		if err := processor.OnEnd(); err != nil {
			logger.Error().
				Err(err).
				Str("processor", processor.Name()).
				Msg("Processor failed at end of stream")
			return nil, errors.Wrapf(err, errors.ErrProcessing,
				"processor %q failed at end of stream", processor.Name()).
				WithDetail("processor", processor.Name())
		}
	}

	logger.Debug().Int("files", len(outputFiles)).Msg("Packaging pipeline completed")
	return outputFiles, nil
}

// Collect gathers every processor's accumulated assets and properties
// in processor-list order. It must only be called after a successful
// Run, once all OnEnd hooks have completed.
func Collect(processors []types.Processor) ([]types.Asset, []types.Property) {
	var assets []types.Asset
	var properties []types.Property
	for _, processor := range processors {
		assets = append(assets, processor.Assets()...)
		properties = append(properties, processor.Properties()...)
	}
	return assets, properties
}
