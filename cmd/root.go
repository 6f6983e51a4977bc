package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hidetatz/kai/internal/editor"
	"github.com/hidetatz/kai/internal/terminal"
)

var rootCmd = &cobra.Command{
	Use:     "kai [path]",
	Short:   "A minimal full-screen terminal text editor",
	Long:    `kai opens path, or an empty untitled document, for editing in the terminal.`,
	Version: editor.Version,
	Args:    cobra.MaximumNArgs(1),
	// the editor owns the screen; main reports errors after it is restored
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runEditor,
}

func init() {
	rootCmd.Flags().String("debug-log", "", "append debug logs to this file")

	_ = viper.BindPFlag("debug_log", rootCmd.Flags().Lookup("debug-log"))
	viper.SetEnvPrefix("kai")
	_ = viper.BindEnv("debug_log")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runEditor(cmd *cobra.Command, args []string) (err error) {
	logger, closeLog, err := newLogger(viper.GetString("debug_log"))
	if err != nil {
		return err
	}
	defer closeLog()

	session := terminal.NewSession(os.Stdin, os.Stdout)

	// clear the screen and put the terminal back before the error is printed
	fatal := func(err error) error {
		_ = terminal.Reset(os.Stdout)
		if rerr := session.Restore(); rerr != nil {
			logger.Error("restore terminal", "err", rerr)
		}
		logger.Error("fatal", "err", err)
		return err
	}

	if err := session.EnableRawMode(); err != nil {
		return fatal(err)
	}
	defer func() {
		if rerr := session.Restore(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	rows, cols, err := session.WindowSize()
	if err != nil {
		return fatal(err)
	}

	e := editor.New(editor.Config{
		Rows:   rows,
		Cols:   cols,
		Keys:   terminal.NewDecoder(os.Stdin),
		Out:    os.Stdout,
		Logger: logger,
	})

	if len(args) == 1 {
		if err := e.Open(args[0]); err != nil {
			return fatal(err)
		}
	}

	if err := e.Run(); err != nil {
		return fatal(err)
	}
	return nil
}
