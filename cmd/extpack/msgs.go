package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Package editor extensions into VSIX archives"
	MsgRootLong = `extpack assembles an extension directory into a VSIX archive. It reads
the extension's package.json, runs the files through the packaging
pipeline, generates the package descriptor and content-types map, and
writes everything into a single archive.`

	MsgPackageShort = "Package an extension directory into a .vsix archive"
	MsgPackageLong = `Package collects the extension's files, processes them (rewriting
relative README and CHANGELOG links against the repository), builds the
extension.vsixmanifest descriptor and [Content_Types].xml map, and
writes the archive.`
	MsgPackageExample = `  extpack package                      # Package the current directory
  extpack package ./my-extension       # Package a specific directory
  extpack package -o dist/ext.vsix     # Choose the output path`

	MsgLsShort = "List the files a package would contain"
	MsgLsLong  = "List every file the packaging run would include, after ignore rules are applied."

	MsgShowShort = "Preview the processed README"
	MsgShowLong = `Show renders the README as it would appear inside the package, with
relative links already rewritten against the repository URL.`

	MsgGenConfigShort = "Generate a default extpack.toml configuration file"
	MsgGenConfigLong = `Output the default configuration to stdout, or write it to the
extension directory with -w.`

	MsgVersionShort = "Print version information"

	// Status messages
	MsgPackagedFormat = "Packaged %s\n"
	MsgNoFilesFound   = "No files found."

	// Error messages
	MsgErrPackage   = "failed to package extension: %w"
	MsgErrList      = "failed to list files: %w"
	MsgErrShow      = "failed to render README: %w"
	MsgErrGenConfig = "failed to generate config: %w"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagOutput      = "Output path for the .vsix archive"
	MsgFlagBaseContent = "Base URL prepended to relative links in markdown files"
	MsgFlagBaseImages  = "Base URL prepended to relative image sources in markdown files"
	MsgFlagWrite       = "Write the config to <dir>/extpack.toml instead of stdout"
)

// MsgUsageTemplate is the custom usage template with bold section headers
const MsgUsageTemplate = `{{boldUpper "Usage:"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples:"}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

{{boldUpper "Available Commands:"}}{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding}} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{boldUpper .Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding}} {{.Short}}{{end}}{{end}}{{end}}{{if not .AllChildCommandsHaveGroup}}

{{boldUpper "Additional Commands:"}}{{range $cmds}}{{if (and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding}} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
