package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/extpack/extpack/internal/version"
	"github.com/extpack/extpack/pkg/commands"
	"github.com/extpack/extpack/pkg/config"
	"github.com/extpack/extpack/pkg/display"
)

// extensionDir resolves the positional directory argument, defaulting
// to the current directory.
func extensionDir(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return os.Getwd()
}

func newPackageCmd() *cobra.Command {
	var (
		output         string
		baseContentURL string
		baseImagesURL  string
	)

	cmd := &cobra.Command{
		Use:     "package [dir]",
		Short:   MsgPackageShort,
		Long:    MsgPackageLong,
		Example: MsgPackageExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := extensionDir(args)
			if err != nil {
				return err
			}

			log.Info().Str("dir", dir).Msg("Packaging extension")

			result, err := commands.Package(commands.PackageOptions{
				Dir:            dir,
				Output:         output,
				BaseContentURL: baseContentURL,
				BaseImagesURL:  baseImagesURL,
			})
			if err != nil {
				return fmt.Errorf(MsgErrPackage, err)
			}

			fmt.Print(display.RenderPackageSummary(display.PackageSummary{
				Extension:  result.Extension(),
				OutputPath: result.OutputPath,
				FileCount:  len(result.Files),
				Assets:     result.Descriptor.Assets,
			}))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().StringVar(&baseContentURL, "base-content-url", "", MsgFlagBaseContent)
	cmd.Flags().StringVar(&baseImagesURL, "base-images-url", "", MsgFlagBaseImages)

	return cmd
}

func newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls [dir]",
		Short:   MsgLsShort,
		Long:    MsgLsLong,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := extensionDir(args)
			if err != nil {
				return err
			}

			listed, err := commands.List(dir)
			if err != nil {
				return fmt.Errorf(MsgErrList, err)
			}
			if len(listed) == 0 {
				fmt.Println(MsgNoFilesFound)
				return nil
			}

			fmt.Print(display.RenderFileList(listed))
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "show [dir]",
		Short:   MsgShowShort,
		Long:    MsgShowLong,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := extensionDir(args)
			if err != nil {
				return err
			}

			content, err := commands.ProcessedReadme(dir)
			if err != nil {
				return fmt.Errorf(MsgErrShow, err)
			}

			fmt.Print(renderMarkdown(content))
			return nil
		},
	}
}

// renderMarkdown renders markdown for the terminal, falling back to the
// raw content when glamour cannot be set up.
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "gen-config [dir]",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := extensionDir(args)
			if err != nil {
				return err
			}

			if write {
				path, err := config.WriteSample(dir)
				if err != nil {
					return fmt.Errorf(MsgErrGenConfig, err)
				}
				fmt.Printf("Wrote %s\n", path)
				return nil
			}

			sample, err := config.Sample()
			if err != nil {
				return fmt.Errorf(MsgErrGenConfig, err)
			}
			fmt.Print(string(sample))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("extpack version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}
