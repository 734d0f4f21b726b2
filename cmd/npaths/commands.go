package npaths

import (
	"fmt"
	"io"
	"io/fs"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/npaths/internal/version"
	"github.com/arthur-debert/npaths/pkg/config"
	"github.com/arthur-debert/npaths/pkg/errors"
	"github.com/arthur-debert/npaths/pkg/filesystem"
	"github.com/arthur-debert/npaths/pkg/logging"
	"github.com/arthur-debert/npaths/pkg/paths"
	"github.com/arthur-debert/npaths/pkg/textio"
	"github.com/arthur-debert/npaths/pkg/types"
	"github.com/arthur-debert/npaths/pkg/ui"
	"github.com/arthur-debert/npaths/pkg/ui/display"
	"github.com/arthur-debert/npaths/pkg/walk"
)

// state is shared by the commands of one root command
type state struct {
	verbosity  int
	format     string
	configPath string
	dots       int
	fuzzy      bool

	fs       types.FS
	cfg      *config.Config
	renderer ui.Renderer
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	st := &state{fs: filesystem.NewOS()}

	rootCmd := &cobra.Command{
		Use:     "npaths",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.setup(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&st.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&st.format, "format", "f", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&st.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().IntVar(&st.dots, "dots", 1, MsgFlagDots)
	rootCmd.PersistentFlags().BoolVar(&st.fuzzy, "fuzzy", false, MsgFlagFuzzy)

	rootCmd.AddGroup(&cobra.Group{ID: "names", Title: "NAMES:"})
	rootCmd.AddGroup(&cobra.Group{ID: "paths", Title: "PATHS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "files", Title: "FILES:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newExtCmd(st))
	rootCmd.AddCommand(newStemCmd(st))
	rootCmd.AddCommand(newRenameCmd(st))
	rootCmd.AddCommand(newStripCmd(st))
	rootCmd.AddCommand(newPrefixesCmd(st))
	rootCmd.AddCommand(newRelCmd(st))
	rootCmd.AddCommand(newParentCmd(st))
	rootCmd.AddCommand(newInfoCmd(st))
	rootCmd.AddCommand(newWalkCmd(st))
	rootCmd.AddCommand(newCatCmd(st))
	rootCmd.AddCommand(newConfigCmd(st))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// setup loads the configuration, with changed flags overriding it, then
// configures logging and the renderer
func (st *state) setup(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	overrides := map[string]interface{}{}
	if flags.Changed("dots") {
		overrides["extension.dot_count"] = st.dots
	}
	if flags.Changed("fuzzy") {
		overrides["extension.fuzzy"] = st.fuzzy
	}
	if flags.Changed("format") {
		overrides["output.format"] = st.format
	}

	cfg, err := config.Load(config.Options{Path: st.configPath, Overrides: overrides})
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}
	st.cfg = cfg

	logging.SetupLoggerWriter(cmd.ErrOrStderr(), max(st.verbosity, cfg.Log.Verbosity))
	logging.LogCommand(cmd.CommandPath(), args)
	log.Debug().
		Int("dotCount", cfg.Extension.DotCount).
		Bool("fuzzy", cfg.Extension.Fuzzy).
		Str("format", cfg.Output.Format).
		Msg(MsgDebugConfig)

	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	st.renderer, err = ui.NewRenderer(format, cmd.OutOrStdout())
	return err
}

func (st *state) value(command string, p types.Path, v string) error {
	return st.renderer.RenderResult(&display.Value{Command: command, Input: p.String(), Value: v})
}

func (st *state) path(command string, p, result types.Path) error {
	return st.value(command, p, result.String())
}

func newExtCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:     "ext PATH",
		Short:   MsgExtShort,
		GroupID: "names",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := paths.Get(args[0])
			return st.value("ext", p, paths.ExtensionOf(p, st.cfg.ExtensionSpec()))
		},
	}
}

func newStemCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:     "stem PATH",
		Short:   MsgStemShort,
		GroupID: "names",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := paths.Get(args[0])
			return st.value("stem", p, paths.FileNameWithoutExtensionOf(p, st.cfg.ExtensionSpec()))
		},
	}
}

func newRenameCmd(st *state) *cobra.Command {
	var prefix, insert, ext, suffix string

	cmd := &cobra.Command{
		Use:     "rename PATH",
		Short:   MsgRenameShort,
		Long:    MsgRenameLong,
		Example: MsgRenameExample,
		GroupID: "names",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := paths.Get(args[0])
			spec := paths.RewriteSpec{
				Prefix: prefix,
				Insert: insert,
				Suffix: suffix,
				Ext:    st.cfg.ExtensionSpec(),
			}
			if cmd.Flags().Changed("ext") {
				spec.Extension = paths.Ext(ext)
			}

			renamed, err := paths.NewFileName(p, spec)
			if err != nil {
				return err
			}
			return st.path("rename", p, renamed)
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", MsgFlagPrefix)
	cmd.Flags().StringVar(&insert, "insert", "", MsgFlagInsert)
	cmd.Flags().StringVar(&ext, "ext", "", MsgFlagExt)
	cmd.Flags().StringVar(&suffix, "suffix", "", MsgFlagSuffix)
	return cmd
}

func newStripCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:     "strip PATH",
		Short:   MsgStripShort,
		GroupID: "names",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := paths.Get(args[0])
			stripped, err := paths.RemoveExtensionOf(p, st.cfg.ExtensionSpec())
			if err != nil {
				return err
			}
			return st.path("strip", p, stripped)
		},
	}
}

func newPrefixesCmd(st *state) *cobra.Command {
	var (
		mode  string
		start int
	)

	cmd := &cobra.Command{
		Use:     "prefixes PATH",
		Short:   MsgPrefixesShort,
		Long:    MsgPrefixesLong,
		Example: MsgPrefixesExample,
		GroupID: "paths",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			iterMode, err := paths.ParseIterMode(mode)
			if err != nil {
				return err
			}
			p := paths.Get(args[0])
			ps, err := paths.NewPrefixes(p, paths.PrefixOptions{Mode: iterMode, Start: start, FS: st.fs})
			if err != nil {
				return err
			}

			list := &display.List{Command: "prefixes", Input: p.String(), Items: []string{}}
			for prefix := range ps.All() {
				list.Items = append(list.Items, prefix.String())
			}
			return st.renderer.RenderResult(list)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", paths.FullPath.String(), MsgFlagMode)
	cmd.Flags().IntVarP(&start, "start", "s", 0, MsgFlagStart)
	_ = cmd.RegisterFlagCompletionFunc("mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{paths.FullPath.String(), paths.NameOnly.String(), paths.ExistOnly.String()}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func newRelCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:     "rel BASE PATH",
		Short:   MsgRelShort,
		GroupID: "paths",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, p := paths.Get(args[0]), paths.Get(args[1])
			rel, err := paths.Relativize(base, p)
			if err != nil {
				return err
			}
			return st.path("rel", p, rel)
		},
	}
}

func newParentCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:     "parent PATH",
		Short:   MsgParentShort,
		GroupID: "paths",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := paths.Get(args[0])
			parent, err := paths.Parent(p)
			if err != nil {
				return err
			}
			return st.path("parent", p, parent)
		},
	}
}

func newInfoCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:     "info PATH",
		Short:   MsgInfoShort,
		GroupID: "paths",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := paths.Get(args[0])
			spec := st.cfg.ExtensionSpec()

			parent, err := paths.Parent(p)
			if err != nil {
				return err
			}
			abs, err := p.Abs()
			if err != nil {
				return err
			}
			exists, err := filesystem.Exists(st.fs, abs.String())
			if err != nil {
				return err
			}
			root := ""
			if r := p.Root(); r != nil {
				root = r.String()
			}

			record := &display.Record{Command: "info", Input: p.String()}
			record.
				Add("name", paths.FileName(p)).
				Add("stem", paths.FileNameWithoutExtensionOf(p, spec)).
				Add("extension", paths.ExtensionOf(p, spec)).
				Add("parent", parent.String()).
				Add("root", root).
				Add("segments", strconv.Itoa(p.NameCount())).
				Add("absolute", abs.String()).
				Add("normalized", p.Normalize().String()).
				Add("exists", strconv.FormatBool(exists)).
				Add("cwd", strconv.FormatBool(paths.IsCurrentDirectory(p)))
			return st.renderer.RenderResult(record)
		},
	}
}

func newWalkCmd(st *state) *cobra.Command {
	var (
		depth int
		dirs  bool
		match string
	)

	cmd := &cobra.Command{
		Use:     "walk [DIR]",
		Short:   MsgWalkShort,
		Long:    MsgWalkLong,
		GroupID: "files",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := paths.Get(".")
			if len(args) == 1 {
				start = paths.Get(args[0])
			}
			opts := walk.Options{MaxDepth: st.cfg.Walk.MaxDepth, Dirs: dirs, Match: st.cfg.Walk.Match}
			if cmd.Flags().Changed("depth") {
				opts.MaxDepth = depth
			}
			if cmd.Flags().Changed("match") {
				opts.Match = match
			}

			list := &display.List{Command: "walk", Input: start.String(), Items: []string{}}
			err := walk.Walk(st.fs, start, opts, func(p types.Path, _ fs.FileInfo) error {
				list.Items = append(list.Items, p.String())
				return nil
			})
			if err != nil {
				return fmt.Errorf(MsgErrWalk, start, err)
			}
			return st.renderer.RenderResult(list)
		},
	}

	cmd.Flags().IntVarP(&depth, "depth", "d", walk.Unlimited, MsgFlagDepth)
	cmd.Flags().BoolVar(&dirs, "dirs", false, MsgFlagDirs)
	cmd.Flags().StringVar(&match, "match", "", MsgFlagMatch)
	return cmd
}

func newCatCmd(st *state) *cobra.Command {
	var charset string

	cmd := &cobra.Command{
		Use:     "cat FILE",
		Short:   MsgCatShort,
		GroupID: "files",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("charset") {
				charset = st.cfg.Reader.Charset
			}
			p := paths.Get(args[0])
			r, err := textio.Open(st.fs, p, charset)
			if err != nil {
				return fmt.Errorf(MsgErrCat, p, err)
			}
			defer r.Close()

			_, err = io.Copy(cmd.OutOrStdout(), r)
			return err
		},
	}

	cmd.Flags().StringVarP(&charset, "charset", "c", textio.UTF8, MsgFlagCharset)
	return cmd
}

func newConfigCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := config.Dump(st.cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "npaths "+version.String())
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
