package npaths

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Inspect and rewrite file paths"
	MsgExtShort        = "Print the extension of a file name"
	MsgStemShort       = "Print a file name without its extension"
	MsgRenameShort     = "Compute a new file name next to a path"
	MsgStripShort      = "Remove the extension from a path"
	MsgPrefixesShort   = "List the ancestors of a path, root first"
	MsgRelShort        = "Print the path leading from BASE to PATH"
	MsgParentShort     = "Print the parent of a path"
	MsgWalkShort       = "List files or directories below a directory"
	MsgCatShort        = "Print a text file decoded from a charset"
	MsgInfoShort       = "Describe every component of a path"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat   = "Output format: auto, term, text, json or yaml"
	MsgFlagConfig   = "Config file (default $XDG_CONFIG_HOME/npaths/config.toml)"
	MsgFlagDots     = "Dot-separated components in an extension, 0 for all"
	MsgFlagFuzzy    = "Use the longest extension when a name has fewer dots"
	MsgFlagPrefix   = "Text added before the file name"
	MsgFlagInsert   = "Text inserted before the extension"
	MsgFlagExt      = "New extension; an empty value removes it"
	MsgFlagSuffix   = "Text added after the file name"
	MsgFlagMode     = "Iteration mode: full, name or exist"
	MsgFlagStart    = "Index of the first prefix, 0 is the root"
	MsgFlagDepth    = "Maximum depth, negative for unlimited"
	MsgFlagDirs     = "List directories instead of files"
	MsgFlagMatch    = "Only list entries whose relative path matches this glob"
	MsgFlagCharset  = "Charset of the file (utf-8, utf-16, shift_jis, ...)"

	// Error messages
	MsgErrNoCommand  = "no command specified"
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrWalk       = "failed to walk %s: %w"
	MsgErrCat        = "failed to read %s: %w"

	// Debug messages
	MsgDebugConfig = "Using configuration"
)

// Long messages
const (
	MsgRootLong = `npaths computes derived file names and path prefixes.

Extensions may span several dots: with --dots 2 the extension of
"archive.tar.gz" is "tar.gz". With --fuzzy, names with fewer dots fall back
to the longest extension they have.

Defaults come from $XDG_CONFIG_HOME/npaths/config.toml and NPATHS_*
environment variables; see "npaths config".`

	MsgRenameLong = `Rename builds PREFIX + base + INSERT + extension + SUFFIX and prints it as
a sibling of PATH. Nothing is moved on disk.

--ext replaces the extension; --ext "" removes it. Without --ext the
original extension is kept.`

	MsgRenameExample = `  npaths rename photo.jpeg --ext jpg            # photo.jpg
  npaths rename --dots 2 a.tar.gz --insert .v2   # a.v2.tar.gz
  npaths rename notes.txt --prefix old_ --suffix ~`

	MsgPrefixesLong = `Prefixes lists the cumulative ancestors of PATH, from its root down to PATH
itself. --mode name prints single segments instead; --mode exist stops
before the first prefix missing on disk.`

	MsgPrefixesExample = `  npaths prefixes /usr/local/bin          # /  /usr  /usr/local  /usr/local/bin
  npaths prefixes --mode name a/b/c         # a  b  c
  npaths prefixes --start 2 /usr/local/bin  # /usr/local  /usr/local/bin`

	MsgWalkLong = `Walk lists the files below DIR (default "."), in lexical order. With --dirs
it lists DIR and the directories below it instead.

For files, --depth 0 lists the files directly inside DIR; for directories it
lists DIR alone.`

	MsgCompletionLong = `Generate a shell completion script for bash, zsh, fish or powershell.

  source <(npaths completion bash)`
)

// MsgUsageTemplate is the cobra usage template
const MsgUsageTemplate = `{{boldUpper "usage"}}:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "aliases"}}:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "examples"}}:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

{{boldUpper "commands"}}:{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{bold (rpad .Name .NamePadding)}} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{bold $group.Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{bold (rpad .Name .NamePadding)}} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "flags"}}:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "global flags"}}:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
